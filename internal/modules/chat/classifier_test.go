// README: Intent classifier tests.
package chat

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		name    string
		message string
		want    Kind
	}{
		{"greeting", "Hi there, how are you?", KindPersonal},
		{"introduction", "Hello, my name is Priya", KindPersonal},
		{"bare introduction scores below threshold", "My name is Priya", KindGeneral},
		{"gratitude", "thanks, bye!", KindPersonal},
		{"city mention", "I want to go to Jaipur", KindTravel},
		{"activity search", "find me a good coffee place", KindTravel},
		{"trip planning", "planning a vacation next month", KindTravel},
		{"recommendations", "best restaurants near me", KindTravel},
		{"neither", "hmm", KindGeneral},
	}
	for _, tc := range cases {
		got, _ := Classify(tc.message)
		if got != tc.want {
			t.Errorf("%s: Classify(%q) = %q, want %q", tc.name, tc.message, got, tc.want)
		}
	}
}

// TestClassify_ExtractsEntities verifies city and activity capture is
// case-insensitive and picks the first mention.
func TestClassify_ExtractsEntities(t *testing.T) {
	_, info := Classify("Find a CAFE in MANALI or maybe Delhi")
	if info.City != "manali" {
		t.Errorf("city = %q, want manali", info.City)
	}
	if info.Activity != "cafe" {
		t.Errorf("activity = %q, want cafe", info.Activity)
	}
}

// TestClassify_CityAloneIsTravel verifies a bare destination clears the
// travel threshold even with no travel verbs.
func TestClassify_CityAloneIsTravel(t *testing.T) {
	got, info := Classify("udaipur")
	if got != KindTravel {
		t.Errorf("kind = %q, want %q", got, KindTravel)
	}
	if info.City != "udaipur" {
		t.Errorf("city = %q", info.City)
	}
}

func TestFindCity(t *testing.T) {
	if got := findCity("We talked about Mount Abu last time"); got != "mount abu" {
		t.Errorf("findCity = %q, want mount abu", got)
	}
	if got := findCity("no destination here"); got != "" {
		t.Errorf("findCity = %q, want empty", got)
	}
}
