// README: Free-text plan parsing into canonical task names.
package planner

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// defaultTasks is used when the text yields nothing parseable.
var defaultTasks = []string{"Get coffee", "Buy bouquets"}

// canonicalTaskRules map chunk keywords to canonical task names, checked in
// order. Chunks matching nothing are kept verbatim, sentence-cased.
var canonicalTaskRules = []struct {
	keywords []string
	task     string
}{
	{[]string{"bouquet", "flowers", "flower"}, "Buy bouquets"},
	{[]string{"coffee", "cafe", "breakfast"}, "Get coffee"},
	{[]string{"grocer", "store", "shopping"}, "Buy groceries"},
	{[]string{"post", "courier", "parcel"}, "Visit post office"},
	{[]string{"meet", "friend"}, "Meet friend"},
}

// ParseTasks splits free text on common separators and maps each chunk to a
// canonical task name. This is a keyword heuristic, not language
// understanding; unrecognized chunks pass through as their own tasks.
func ParseTasks(text string) []string {
	lowered := strings.ToLower(strings.TrimSpace(text))
	lowered = strings.ReplaceAll(lowered, " and then ", ";")
	lowered = strings.ReplaceAll(lowered, " then ", ";")
	lowered = strings.ReplaceAll(lowered, " and ", ";")

	var tasks []string
	for _, chunk := range strings.Split(lowered, ";") {
		chunk = strings.Trim(chunk, " .")
		if chunk == "" {
			continue
		}
		tasks = append(tasks, canonicalTask(chunk))
	}

	if len(tasks) == 0 {
		return append([]string(nil), defaultTasks...)
	}
	return tasks
}

func canonicalTask(chunk string) string {
	for _, rule := range canonicalTaskRules {
		for _, kw := range rule.keywords {
			if strings.Contains(chunk, kw) {
				return rule.task
			}
		}
	}
	return upperFirst(chunk)
}

// upperFirst upcases the first rune. Slicing the first byte would corrupt
// multibyte letters.
func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
