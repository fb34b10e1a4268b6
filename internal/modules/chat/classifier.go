// README: Weighted regex classifier routing chat messages to travel or small talk.
package chat

import (
	"regexp"
	"strings"
)

// Kind is the routing decision for a chat message.
type Kind string

const (
	KindTravel   Kind = "travel"
	KindPersonal Kind = "personal"
	KindGeneral  Kind = "general"
)

// Extracted carries entities pulled out of a message during classification.
type Extracted struct {
	City     string
	Activity string
}

var travelPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(places?|attractions?|restaurants?|hotels?|cafes?|parks?|museums?|shops?)\b`),
	regexp.MustCompile(`\b(visit|go|travel|explore|roam|wander|see|find)\b`),
	regexp.MustCompile(`\b(near|around|in|at|to)\s+\w+`),
	regexp.MustCompile(`\b(best|top|popular|famous|recommended)\s+\w+`),
	regexp.MustCompile(`\b(where|what)\s+(places?|to\s+do|to\s+visit)`),
	regexp.MustCompile(`\b(manali|jaipur|delhi|mumbai|bangalore|chennai|kolkata|hyderabad|pune|ahmedabad|udaipur|jodhpur|jaisalmer|mount\s+abu|pushkar|germany|france|italy|spain|uk|usa|canada|australia|japan|china|thailand|singapore|dubai)\b`),
	regexp.MustCompile(`\b(coffee|food|eat|drink|shopping|entertainment)\b`),
	regexp.MustCompile(`\b(travel|trip|vacation|holiday|journey)\b`),
	regexp.MustCompile(`\b(want\s+to\s+go|planning\s+to\s+visit|thinking\s+of\s+going)\b`),
}

var personalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(hi|hello|hey|good\s+(morning|afternoon|evening))\b`),
	regexp.MustCompile(`\b(how\s+are\s+you|how\s+you\s+doing)\b`),
	regexp.MustCompile(`\b(what\s+is\s+your\s+name|who\s+are\s+you)\b`),
	regexp.MustCompile(`\b(my\s+name\s+is|i\s+am\s+called|call\s+me)\b`),
	regexp.MustCompile(`\b(thank\s+you|thanks|bye|goodbye)\b`),
	regexp.MustCompile(`\b(weather|time|date|day)\b`),
	regexp.MustCompile(`\b(joke|funny|entertain|tell\s+me)\b`),
}

var cityRe = regexp.MustCompile(`\b(manali|jaipur|delhi|mumbai|bangalore|chennai|kolkata|hyderabad|pune|ahmedabad|udaipur|jodhpur|jaisalmer|mount\s+abu|pushkar|germany|france|italy|spain|uk|usa|canada|australia|japan|china|thailand|singapore|dubai)\b`)

var activityRe = regexp.MustCompile(`\b(coffee|cafe|restaurant|food|park|museum|shopping|hotel|attraction|place)\b`)

var travelWords = []string{"travel", "trip", "vacation", "holiday", "journey"}

var travelPhrases = []string{"want to go", "planning to visit", "thinking of going"}

// Classify scores a message against the travel and personal pattern sets and
// returns the winning kind plus any city or activity it mentions. Travel wins
// on a lower threshold than personal, so a bare city name is enough to route
// toward place search.
func Classify(message string) (Kind, Extracted) {
	lower := strings.ToLower(message)

	var travel, personal float64
	var info Extracted

	for _, re := range travelPatterns {
		travel += float64(len(re.FindAllStringIndex(lower, -1))) * 0.4
	}
	for _, re := range personalPatterns {
		personal += float64(len(re.FindAllStringIndex(lower, -1))) * 0.3
	}

	if m := cityRe.FindString(lower); m != "" {
		info.City = m
		travel += 0.8
	}
	if m := activityRe.FindString(lower); m != "" {
		info.Activity = m
		travel += 0.4
	}

	for _, w := range travelWords {
		if strings.Contains(lower, w) {
			travel += 0.6
			break
		}
	}
	for _, p := range travelPhrases {
		if strings.Contains(lower, p) {
			travel += 0.7
			break
		}
	}

	switch {
	case travel > personal && travel > 0.2:
		return KindTravel, info
	case personal > 0.3:
		return KindPersonal, info
	default:
		return KindGeneral, info
	}
}

// findCity scans text for a known destination name, used to recover a
// destination from earlier conversation turns.
func findCity(text string) string {
	return cityRe.FindString(strings.ToLower(text))
}
