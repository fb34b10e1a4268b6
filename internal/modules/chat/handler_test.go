// README: Chat handler tests (routing, memory, degradation).
package chat

import (
	"context"
	"errors"
	"strings"
	"testing"

	"urnav/internal/places"
	"urnav/internal/types"
)

var jaipur = types.Point{Lat: 26.9124, Lng: 75.7873}

// stubAI echoes a marker plus selected prompt fragments so tests can tell
// which path built the prompt.
type stubAI struct {
	reply   string
	err     error
	prompts []string
}

func (s *stubAI) GenerateReply(_ context.Context, prompt string, _ map[string]string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.reply, s.err
}

type stubSearch struct {
	results []places.Candidate
	err     error
	params  []places.SearchParams
}

func (s *stubSearch) Search(_ context.Context, p places.SearchParams) ([]places.Candidate, error) {
	s.params = append(s.params, p)
	return s.results, s.err
}

func newTestHandler(ai *stubAI, search *stubSearch) *Handler {
	return NewHandler(ai, search, NewStore(), 0)
}

// TestHandleMessage_CapturesName verifies name introductions are stored and
// used in the prompt.
func TestHandleMessage_CapturesName(t *testing.T) {
	ai := &stubAI{reply: "Nice to meet you!"}
	h := newTestHandler(ai, &stubSearch{})

	h.HandleMessage(context.Background(), "u1", "hello, my name is priya", &jaipur, "Jaipur")

	if got := h.store.Info("u1").Name; got != "Priya" {
		t.Errorf("stored name = %q, want Priya", got)
	}
	if len(ai.prompts) != 1 || !strings.Contains(ai.prompts[0], "Priya") {
		t.Errorf("prompt does not carry the captured name: %v", ai.prompts)
	}
}

// TestHandleMessage_TravelSearchesActivity verifies a travel message triggers
// a place search with the extracted activity around the user.
func TestHandleMessage_TravelSearchesActivity(t *testing.T) {
	ai := &stubAI{reply: "Try these spots."}
	search := &stubSearch{results: []places.Candidate{
		{Name: "Tapri", Category: "Cafe", Lat: 26.91, Lng: 75.79, DistanceM: 400, Rating: 9.1},
	}}
	h := newTestHandler(ai, search)

	reply := h.HandleMessage(context.Background(), "u1", "find me a cafe nearby", &jaipur, "Jaipur")
	if reply != "Try these spots." {
		t.Errorf("reply = %q", reply)
	}

	if len(search.params) != 1 {
		t.Fatalf("expected 1 search, got %d", len(search.params))
	}
	p := search.params[0]
	if p.Query != "cafe" || p.RadiusM != 5000 {
		t.Errorf("search params = %+v", p)
	}
	if *p.Lat != jaipur.Lat || *p.Lng != jaipur.Lng {
		t.Errorf("search centered at (%v, %v)", *p.Lat, *p.Lng)
	}
	if !strings.Contains(ai.prompts[0], "Tapri") {
		t.Error("found place missing from the prompt")
	}
}

// TestHandleMessage_CityWidensSearch verifies a named domestic city recenters
// the search at its coordinates with the wider radius.
func TestHandleMessage_CityWidensSearch(t *testing.T) {
	search := &stubSearch{}
	h := newTestHandler(&stubAI{reply: "ok"}, search)

	h.HandleMessage(context.Background(), "u1", "places to visit in udaipur", &jaipur, "Jaipur")

	if len(search.params) != 1 {
		t.Fatalf("expected 1 search, got %d", len(search.params))
	}
	p := search.params[0]
	if *p.Lat != 24.5854 || *p.Lng != 73.7125 || p.RadiusM != 10000 {
		t.Errorf("search params = %+v", p)
	}
}

// TestHandleMessage_InternationalSkipsSearch verifies international
// destinations get advice instead of a local search.
func TestHandleMessage_InternationalSkipsSearch(t *testing.T) {
	ai := &stubAI{reply: "Visit in spring."}
	search := &stubSearch{}
	h := newTestHandler(ai, search)

	h.HandleMessage(context.Background(), "u1", "thinking of going to japan", &jaipur, "Jaipur")

	if len(search.params) != 0 {
		t.Errorf("international query ran %d local searches", len(search.params))
	}
	if !strings.Contains(ai.prompts[0], "Japan") {
		t.Error("advice prompt does not name the destination")
	}
}

// TestHandleMessage_RemembersDestination verifies a follow-up without a city
// reuses the destination from earlier in the conversation.
func TestHandleMessage_RemembersDestination(t *testing.T) {
	search := &stubSearch{}
	h := newTestHandler(&stubAI{reply: "ok"}, search)

	h.HandleMessage(context.Background(), "u1", "I want to visit jaipur", &jaipur, "")
	h.HandleMessage(context.Background(), "u1", "find a restaurant there", &jaipur, "")

	if len(search.params) != 2 {
		t.Fatalf("expected 2 searches, got %d", len(search.params))
	}
	p := search.params[1]
	if p.RadiusM != 10000 {
		t.Errorf("follow-up did not reuse the city radius: %+v", p)
	}
}

// TestHandleMessage_GeneralRerouting verifies general messages with place
// words go to the travel path and the rest to small talk.
func TestHandleMessage_GeneralRerouting(t *testing.T) {
	search := &stubSearch{}
	h := newTestHandler(&stubAI{reply: "ok"}, search)

	h.HandleMessage(context.Background(), "u1", "anywhere worth a visit?", &jaipur, "")
	if len(search.params) != 1 {
		t.Errorf("place-word message skipped the travel path: %d searches", len(search.params))
	}

	h.HandleMessage(context.Background(), "u2", "hmm okay", &jaipur, "")
	if len(search.params) != 1 {
		t.Error("small-talk message reached the travel path")
	}
}

// TestHandleMessage_CannedFallbacks verifies model failures degrade to the
// canned replies instead of errors.
func TestHandleMessage_CannedFallbacks(t *testing.T) {
	h := newTestHandler(&stubAI{err: errors.New("model down")}, &stubSearch{})

	if got := h.HandleMessage(context.Background(), "u1", "find a cafe", &jaipur, ""); got != fallbackTravelReply {
		t.Errorf("travel fallback = %q", got)
	}
	if got := h.HandleMessage(context.Background(), "u2", "hello there", &jaipur, ""); got != fallbackPersonalReply {
		t.Errorf("personal fallback = %q", got)
	}
}

// TestHandleMessage_NilModel verifies the handler works without a model.
func TestHandleMessage_NilModel(t *testing.T) {
	h := NewHandler(nil, &stubSearch{}, NewStore(), 0)
	if got := h.HandleMessage(context.Background(), "u1", "hello there", &jaipur, ""); got != fallbackPersonalReply {
		t.Errorf("reply = %q", got)
	}
}

// TestStore_HistoryTruncation verifies only the last ten messages survive.
func TestStore_HistoryTruncation(t *testing.T) {
	h := newTestHandler(&stubAI{reply: "ok"}, &stubSearch{})

	for i := 0; i < 8; i++ {
		h.HandleMessage(context.Background(), "u1", "hello there", &jaipur, "")
	}

	msgs := h.store.Get("u1").Messages
	if len(msgs) != historyLimit {
		t.Fatalf("history length = %d, want %d", len(msgs), historyLimit)
	}
	if msgs[0].Role != "user" || msgs[len(msgs)-1].Role != "assistant" {
		t.Errorf("window shape: first=%s last=%s", msgs[0].Role, msgs[len(msgs)-1].Role)
	}
}

// TestClearConversation verifies a cleared user starts fresh.
func TestClearConversation(t *testing.T) {
	h := newTestHandler(&stubAI{reply: "ok"}, &stubSearch{})
	h.HandleMessage(context.Background(), "u1", "hello, my name is priya", &jaipur, "")
	h.store.Clear("u1")

	if info := h.store.Info("u1"); info.Name != "" || len(h.store.Get("u1").Messages) != 0 {
		t.Errorf("conversation not cleared: %+v", info)
	}
}
