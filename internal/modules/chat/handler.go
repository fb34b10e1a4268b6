// README: Chat message routing, context assembly, and reply generation.
package chat

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"urnav/internal/places"
	"urnav/internal/types"
)

const replyTimeout = 20 * time.Second

// Canned replies used when the language model is unavailable or failing.
const (
	fallbackTravelReply   = "I'm having trouble finding places right now. Please try again in a moment!"
	fallbackPersonalReply = "I'm here to help! What would you like to explore today?"
)

// ReplyGenerator produces conversational text from a prompt and context facts.
type ReplyGenerator interface {
	GenerateReply(ctx context.Context, prompt string, contextMap map[string]string) (string, error)
}

// Searcher finds nearby places for travel queries.
type Searcher interface {
	Search(ctx context.Context, p places.SearchParams) ([]places.Candidate, error)
}

// cityCoord pins a known destination; international ones get travel advice
// instead of a local search.
type cityCoord struct {
	point         types.Point
	international bool
}

var cityCoords = map[string]cityCoord{
	"manali":    {point: types.Point{Lat: 32.2432, Lng: 77.1892}},
	"jaipur":    {point: types.Point{Lat: 26.9124, Lng: 75.7873}},
	"delhi":     {point: types.Point{Lat: 28.7041, Lng: 77.1025}},
	"mumbai":    {point: types.Point{Lat: 19.0760, Lng: 72.8777}},
	"udaipur":   {point: types.Point{Lat: 24.5854, Lng: 73.7125}},
	"germany":   {point: types.Point{Lat: 51.1657, Lng: 10.4515}, international: true},
	"france":    {point: types.Point{Lat: 46.2276, Lng: 2.2137}, international: true},
	"italy":     {point: types.Point{Lat: 41.8719, Lng: 12.5674}, international: true},
	"spain":     {point: types.Point{Lat: 40.4637, Lng: -3.7492}, international: true},
	"uk":        {point: types.Point{Lat: 55.3781, Lng: -3.4360}, international: true},
	"usa":       {point: types.Point{Lat: 37.0902, Lng: -95.7129}, international: true},
	"japan":     {point: types.Point{Lat: 36.2048, Lng: 138.2529}, international: true},
	"thailand":  {point: types.Point{Lat: 15.8700, Lng: 100.9925}, international: true},
	"singapore": {point: types.Point{Lat: 1.3521, Lng: 103.8198}, international: true},
	"dubai":     {point: types.Point{Lat: 25.2048, Lng: 55.2708}, international: true},
}

var nameIntroRe = regexp.MustCompile(`\b(?:my\s+name\s+is|i\s+am\s+called|call\s+me)\s+(\w+)`)

var generalTravelWords = []string{"place", "visit", "go", "see", "find"}

// Handler routes incoming chat messages through classification, optional
// place search, and reply generation.
type Handler struct {
	ai     ReplyGenerator
	search Searcher
	store  *Store
	maxAge time.Duration
}

func NewHandler(ai ReplyGenerator, search Searcher, store *Store, maxAge time.Duration) *Handler {
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}
	return &Handler{ai: ai, search: search, store: store, maxAge: maxAge}
}

// HandleMessage processes one chat turn and returns the assistant reply.
// Failures on the model or search side degrade to canned replies rather than
// errors, so the chat surface never 500s on upstream trouble.
func (h *Handler) HandleMessage(ctx context.Context, userID types.ID, message string, loc *types.Point, locName string) string {
	h.store.SweepExpired(h.maxAge)
	h.store.Touch(userID, loc, locName)
	h.store.Append(userID, "user", message)

	kind, info := Classify(message)
	if kind == KindGeneral {
		kind = KindPersonal
		lower := strings.ToLower(message)
		for _, w := range generalTravelWords {
			if strings.Contains(lower, w) {
				kind = KindTravel
				break
			}
		}
	}

	var reply string
	if kind == KindTravel {
		reply = h.travelReply(ctx, userID, message, loc, locName, info)
	} else {
		reply = h.personalReply(ctx, userID, message)
	}

	h.store.Append(userID, "assistant", reply)
	return reply
}

func (h *Handler) travelReply(ctx context.Context, userID types.ID, message string, loc *types.Point, locName string, info Extracted) string {
	conv := h.store.Get(userID)
	history := formatHistory(conv.Messages)

	// Fall back to a destination mentioned earlier in the conversation when
	// the current message names none.
	city := info.City
	if city == "" {
		for _, m := range conv.Messages {
			if m.Role != "user" {
				continue
			}
			if found := findCity(m.Content); found != "" {
				city = found
				break
			}
		}
	}

	searchAt := types.Point{}
	if loc != nil {
		searchAt = *loc
	}
	radius := 5000
	area := "around " + orDefault(locName, "your location")

	international := false
	if coord, ok := cityCoords[city]; ok {
		searchAt = coord.point
		radius = 10000
		international = coord.international
		area = "in " + titleWord(city)
	}

	if international {
		prompt := fmt.Sprintf(
			"You are URNAV, a helpful travel assistant.\n\nCONVERSATION HISTORY:\n%s\n\nUSER'S CURRENT QUERY: %q\nDESTINATION: %s\n\nThe user wants to travel to %s, an international destination. Give travel advice: popular attractions, best time to visit, practical tips. Reference the conversation history for context. Keep it warm and at most 3-4 sentences.",
			history, message, titleWord(city), titleWord(city),
		)
		return h.generate(ctx, prompt, map[string]string{
			"query":       message,
			"destination": city,
			"user_name":   conv.User.Name,
		}, fallbackTravelReply)
	}

	lat, lng := searchAt.Lat, searchAt.Lng
	cands, err := h.search.Search(ctx, places.SearchParams{
		Lat:     &lat,
		Lng:     &lng,
		Query:   info.Activity,
		RadiusM: radius,
	})
	if err != nil {
		log.Printf("chat: place search failed: %v", err)
		prompt := fmt.Sprintf(
			"You are URNAV, a travel assistant. The user asked: %q\n\nCONVERSATION HISTORY:\n%s\n\nPlace search is unavailable right now. Acknowledge their request warmly and suggest they try again shortly.",
			message, history,
		)
		return h.generate(ctx, prompt, map[string]string{"query": message}, fallbackTravelReply)
	}

	prompt := fmt.Sprintf(
		"You are URNAV, a helpful and context-aware travel assistant.\n\nCONVERSATION HISTORY:\n%s\n\nUSER'S CURRENT QUERY: %q\nUSER'S NAME: %s\nSEARCH AREA: %s\n\nPLACES FOUND:\n%s\n\nUse the conversation history for follow-up context. Mention the found places helpfully, or suggest alternatives if none were found. Keep it conversational, warm, and 2-4 sentences.",
		history, message, orDefault(conv.User.Name, "Not provided"), area, summarizePlaces(cands),
	)
	return h.generate(ctx, prompt, map[string]string{
		"query":     message,
		"user_name": conv.User.Name,
	}, fallbackTravelReply)
}

func (h *Handler) personalReply(ctx context.Context, userID types.ID, message string) string {
	conv := h.store.Get(userID)
	history := formatHistory(conv.Messages)
	lower := strings.ToLower(message)

	if m := nameIntroRe.FindStringSubmatch(lower); m != nil {
		name := titleWord(m[1])
		h.store.SetName(userID, name)
		prompt := fmt.Sprintf(
			"You are URNAV, a friendly travel assistant.\n\nCONVERSATION HISTORY:\n%s\n\nThe user just told you their name: %s. Welcome them by name and ask how you can help them explore today. 1-2 enthusiastic sentences.",
			history, name,
		)
		return h.generate(ctx, prompt, map[string]string{"user_name": name}, fallbackPersonalReply)
	}

	if strings.Contains(lower, "what is my name") || strings.Contains(lower, "do you know my name") {
		var prompt string
		if conv.User.Name != "" {
			prompt = fmt.Sprintf(
				"You are URNAV. The user asked: %q\n\nCONVERSATION HISTORY:\n%s\n\nTheir name is %s. Confirm it in a friendly way and ask how you can help.",
				message, history, conv.User.Name,
			)
		} else {
			prompt = fmt.Sprintf(
				"You are URNAV. The user asked: %q\n\nCONVERSATION HISTORY:\n%s\n\nYou do not know their name yet. Say so kindly and invite them to share it.",
				message, history,
			)
		}
		return h.generate(ctx, prompt, map[string]string{"user_name": conv.User.Name}, fallbackPersonalReply)
	}

	if strings.Contains(lower, "what is your name") || strings.Contains(lower, "who are you") {
		prompt := fmt.Sprintf(
			"You are URNAV, an AI travel companion. The user asked: %q\n\nCONVERSATION HISTORY:\n%s\n\nIntroduce yourself as URNAV and explain how you help with travel and exploration. Warm, 1-2 sentences.",
			message, history,
		)
		return h.generate(ctx, prompt, nil, fallbackPersonalReply)
	}

	prompt := fmt.Sprintf(
		"You are URNAV, a friendly travel assistant.\n\nCONVERSATION HISTORY:\n%s\n\nUSER'S CURRENT QUERY: %q\nUSER'S NAME: %s\n\nUse the history for follow-up context. If they hint at travel, gently steer them toward asking about places to visit. Warm, 1-2 sentences.",
		history, message, orDefault(conv.User.Name, "Not provided"),
	)
	return h.generate(ctx, prompt, map[string]string{
		"query":     message,
		"user_name": conv.User.Name,
	}, fallbackPersonalReply)
}

func (h *Handler) generate(ctx context.Context, prompt string, contextMap map[string]string, fallback string) string {
	if h.ai == nil {
		return fallback
	}
	ctx, cancel := context.WithTimeout(ctx, replyTimeout)
	defer cancel()

	reply, err := h.ai.GenerateReply(ctx, prompt, contextMap)
	if err != nil || strings.TrimSpace(reply) == "" {
		if err != nil {
			log.Printf("chat: reply generation failed: %v", err)
		}
		return fallback
	}
	return reply
}

func formatHistory(messages []Message) string {
	if len(messages) == 0 {
		return "No previous conversation."
	}
	lines := make([]string, 0, len(messages))
	for _, m := range messages {
		role := "URNAV"
		if m.Role == "user" {
			role = "User"
		}
		lines = append(lines, role+": "+m.Content)
	}
	return strings.Join(lines, "\n")
}

func summarizePlaces(cands []places.Candidate) string {
	if len(cands) == 0 {
		return "No specific places found"
	}
	if len(cands) > 5 {
		cands = cands[:5]
	}
	var b strings.Builder
	for _, c := range cands {
		fmt.Fprintf(&b, "- %s (%s), %.0fm away", c.Name, c.Category, c.DistanceM)
		if c.Rating > 0 {
			fmt.Fprintf(&b, ", rated %.1f/10", c.Rating)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func titleWord(s string) string {
	if s == "" {
		return s
	}
	parts := strings.Fields(s)
	for i, p := range parts {
		parts[i] = strings.ToUpper(p[:1]) + strings.ToLower(p[1:])
	}
	return strings.Join(parts, " ")
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
