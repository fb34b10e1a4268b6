// README: Day-planning orchestration over the resolver and session store.
package planner

import (
	"context"
	"errors"
	"time"

	"urnav/internal/modules/itinerary"
	"urnav/internal/modules/route"
	"urnav/internal/types"
)

// ErrNoTasks is returned when a plan request carries neither a task list nor
// parseable free text.
var ErrNoTasks = errors.New("planner: no tasks to plan")

// Service turns a task list into a planned itinerary session.
type Service struct {
	resolver *Resolver
	store    *itinerary.Store
	maxAge   time.Duration
}

func NewService(resolver *Resolver, store *itinerary.Store, maxAge time.Duration) *Service {
	if maxAge <= 0 {
		maxAge = itinerary.DefaultMaxAge
	}
	return &Service{resolver: resolver, store: store, maxAge: maxAge}
}

// PlanResult is the response shape for a planned day.
type PlanResult struct {
	Origin  types.Point       `json:"origin"`
	Tasks   []itinerary.Task  `json:"tasks"`
	Route   route.Summary     `json:"route"`
	Summary itinerary.Summary `json:"summary"`
}

// PlanDay resolves each task to a place, records the tasks in the session
// keyed by user and origin, and summarizes the walking route over the
// pending stops. Tasks may arrive as an explicit list or as free text; free
// text wins only when the list is empty.
func (s *Service) PlanDay(ctx context.Context, userID types.ID, origin types.Point, tasks []string, text string) (PlanResult, error) {
	s.store.SweepExpired(s.maxAge)

	if len(tasks) == 0 && text != "" {
		tasks = ParseTasks(text)
	}
	if len(tasks) == 0 {
		return PlanResult{}, ErrNoTasks
	}

	resolved := make([]itinerary.Task, 0, len(tasks))
	for i, task := range tasks {
		cand := s.resolver.Resolve(ctx, task, origin, i)
		lat, lng := cand.Lat, cand.Lng
		dist, rating := cand.DistanceM, cand.Rating
		resolved = append(resolved, itinerary.Task{
			Description: task,
			Place:       cand.Name,
			Lat:         &lat,
			Lng:         &lng,
			Category:    cand.Category,
			DistanceM:   &dist,
			Rating:      &rating,
			ExternalID:  cand.ExternalID,
		})
	}

	sess := s.store.AddTasks(userID, origin, resolved)
	stops := s.store.PendingStops(userID, origin)

	return PlanResult{
		Origin:  origin,
		Tasks:   sess.Tasks,
		Route:   route.SummarizeFrom(origin, stops),
		Summary: s.store.Summarize(userID, origin),
	}, nil
}

// CompleteTask marks the named task done and returns the refreshed progress.
func (s *Service) CompleteTask(userID types.ID, origin types.Point, description string) (itinerary.Session, itinerary.Summary, error) {
	s.store.SweepExpired(s.maxAge)

	sess, err := s.store.CompleteTask(userID, origin, description)
	if err != nil {
		return itinerary.Session{}, itinerary.Summary{}, err
	}
	return sess, s.store.Summarize(userID, origin), nil
}

// Status reports the session's tasks and completion counts.
func (s *Service) Status(userID types.ID, origin types.Point) ([]itinerary.Task, itinerary.Summary) {
	s.store.SweepExpired(s.maxAge)
	return s.store.AllTasks(userID, origin), s.store.Summarize(userID, origin)
}
