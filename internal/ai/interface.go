// README: AI provider abstraction; keeps modules testable without a live model.
package ai

import "context"

// Provider defines the contract for the text-understanding/reply collaborator.
// Both methods are best-effort: callers must treat any error as "no suggestion
// available" and fall through to their next strategy or a canned reply.
type Provider interface {
	// SuggestCategories returns 2-3 place-search category strings for a task
	// description (e.g. "Get coffee" -> ["coffee shop", "cafe", "coffee"]).
	SuggestCategories(ctx context.Context, task string) ([]string, error)

	// GenerateReply produces a short conversational answer for the given
	// prompt. contextMap carries soft context (user name, history, places).
	GenerateReply(ctx context.Context, prompt string, contextMap map[string]string) (string, error)
}
