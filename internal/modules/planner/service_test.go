// README: Day-planning service tests.
package planner

import (
	"context"
	"errors"
	"testing"

	"urnav/internal/modules/itinerary"
	"urnav/internal/places"
)

func newTestService(search Searcher) *Service {
	return NewService(NewResolver(search, nil, 0), itinerary.NewStore(), 0)
}

// TestPlanDay verifies tasks resolve to stops and the summary counts them.
func TestPlanDay(t *testing.T) {
	search := &stubSearcher{results: map[string][]places.Candidate{
		"coffee@5000":  {cand("Tapri Central", 200, 9.1)},
		"florist@5000": {cand("Flower Paradise", 500, 8.0)},
	}}
	svc := newTestService(search)

	result, err := svc.PlanDay(context.Background(), "u1", origin, []string{"Get coffee", "Buy bouquets"}, "")
	if err != nil {
		t.Fatalf("plan: %v", err)
	}

	if len(result.Tasks) != 2 {
		t.Fatalf("tasks = %d", len(result.Tasks))
	}
	if result.Tasks[0].Place != "Tapri Central" || result.Tasks[1].Place != "Flower Paradise" {
		t.Errorf("resolved places: %q, %q", result.Tasks[0].Place, result.Tasks[1].Place)
	}
	if result.Summary.TotalTasks != 2 || result.Summary.PendingTasks != 2 || result.Summary.CompletedTasks != 0 {
		t.Errorf("summary = %+v", result.Summary)
	}
	if result.Route.ETAMinutes <= 0 {
		t.Errorf("route eta = %d, want positive", result.Route.ETAMinutes)
	}
	for _, task := range result.Tasks {
		if !task.HasCoordinates() {
			t.Errorf("task %q has no coordinates", task.Description)
		}
	}
}

// TestPlanDay_FreeText verifies text parsing feeds the pipeline.
func TestPlanDay_FreeText(t *testing.T) {
	svc := newTestService(&stubSearcher{err: errors.New("offline")})

	result, err := svc.PlanDay(context.Background(), "u1", origin, nil, "get coffee and buy flowers")
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if len(result.Tasks) != 2 {
		t.Fatalf("tasks = %d", len(result.Tasks))
	}
	if result.Tasks[0].Description != "Get coffee" || result.Tasks[1].Description != "Buy bouquets" {
		t.Errorf("parsed tasks: %q, %q", result.Tasks[0].Description, result.Tasks[1].Description)
	}
}

// TestPlanDay_NoInput verifies the sentinel for an empty request.
func TestPlanDay_NoInput(t *testing.T) {
	svc := newTestService(&stubSearcher{})
	if _, err := svc.PlanDay(context.Background(), "u1", origin, nil, ""); !errors.Is(err, ErrNoTasks) {
		t.Errorf("err = %v, want ErrNoTasks", err)
	}
}

// TestPlanDay_Replan verifies replanning the same tasks does not duplicate
// them in the session.
func TestPlanDay_Replan(t *testing.T) {
	svc := newTestService(&stubSearcher{err: errors.New("offline")})

	if _, err := svc.PlanDay(context.Background(), "u1", origin, []string{"Get coffee"}, ""); err != nil {
		t.Fatalf("first plan: %v", err)
	}
	result, err := svc.PlanDay(context.Background(), "u1", origin, []string{"Get coffee"}, "")
	if err != nil {
		t.Fatalf("second plan: %v", err)
	}
	if result.Summary.TotalTasks != 1 {
		t.Errorf("total tasks = %d, want 1", result.Summary.TotalTasks)
	}
}

// TestCompleteTask_UpdatesSummary verifies the complete-then-status flow.
func TestCompleteTask_UpdatesSummary(t *testing.T) {
	svc := newTestService(&stubSearcher{err: errors.New("offline")})

	if _, err := svc.PlanDay(context.Background(), "u1", origin, []string{"Get coffee", "Buy bouquets"}, ""); err != nil {
		t.Fatalf("plan: %v", err)
	}
	_, summary, err := svc.CompleteTask("u1", origin, "Get coffee")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if summary.CompletedTasks != 1 || summary.PendingTasks != 1 {
		t.Errorf("summary = %+v", summary)
	}

	tasks, summary := svc.Status("u1", origin)
	if len(tasks) != 2 || summary.CompletionRate != 50 {
		t.Errorf("status: %d tasks, rate %v", len(tasks), summary.CompletionRate)
	}
}
