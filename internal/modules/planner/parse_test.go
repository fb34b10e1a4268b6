// README: Free-text plan parsing tests.
package planner

import (
	"reflect"
	"testing"
)

func TestParseTasks(t *testing.T) {
	cases := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "separated by and",
			text: "get coffee and buy flowers",
			want: []string{"Get coffee", "Buy bouquets"},
		},
		{
			name: "separated by then",
			text: "grab a coffee then pick up a bouquet then hit the grocery store",
			want: []string{"Get coffee", "Buy bouquets", "Buy groceries"},
		},
		{
			name: "and then collapses to one separator",
			text: "get breakfast and then mail a parcel",
			want: []string{"Get coffee", "Visit post office"},
		},
		{
			name: "unrecognized chunk passes through sentence-cased",
			text: "walk the dog",
			want: []string{"Walk the dog"},
		},
		{
			name: "meet friend",
			text: "meet rohan and buy flowers",
			want: []string{"Meet friend", "Buy bouquets"},
		},
		{
			name: "multibyte first letter upcased whole",
			text: "échanger un cadeau",
			want: []string{"Échanger un cadeau"},
		},
		{
			name: "empty text falls back to defaults",
			text: "   ",
			want: []string{"Get coffee", "Buy bouquets"},
		},
		{
			name: "trailing punctuation stripped",
			text: "get coffee.",
			want: []string{"Get coffee"},
		},
	}
	for _, tc := range cases {
		got := ParseTasks(tc.text)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("%s: ParseTasks(%q) = %v, want %v", tc.name, tc.text, got, tc.want)
		}
	}
}

// TestParseTasks_DefaultsAreACopy verifies callers cannot mutate the shared
// default slice through the return value.
func TestParseTasks_DefaultsAreACopy(t *testing.T) {
	got := ParseTasks("")
	got[0] = "mutated"
	if defaultTasks[0] != "Get coffee" {
		t.Error("default task list was mutated through a returned slice")
	}
}
