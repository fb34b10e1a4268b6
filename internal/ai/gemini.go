// README: Gemini-backed implementation of the Provider interface.
package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/tidwall/gjson"
	"google.golang.org/api/option"
)

const geminiModel = "gemini-2.0-flash"

// GeminiProvider implements Provider using Google's Gemini models.
type GeminiProvider struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiProvider initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("gemini: missing api key")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	model := client.GenerativeModel(geminiModel)
	model.SetTemperature(0.5)

	return &GeminiProvider{client: client, model: model}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

// SuggestCategories asks the model for the best 2-3 search categories for a
// task. The response is expected to be a bare JSON array of strings; anything
// else is an error and callers fall back to the keyword tables.
func (p *GeminiProvider) SuggestCategories(ctx context.Context, task string) ([]string, error) {
	prompt := buildCategoryPrompt(task)

	text, err := p.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	// The model occasionally wraps the array in prose or a code fence.
	// Extract the first [...] span and parse it leniently.
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("gemini: no JSON array in response: %q", text)
	}

	parsed := gjson.Parse(text[start : end+1])
	if !parsed.IsArray() {
		return nil, fmt.Errorf("gemini: malformed category array: %q", text)
	}

	var categories []string
	for _, v := range parsed.Array() {
		if s := strings.TrimSpace(v.String()); s != "" {
			categories = append(categories, s)
		}
	}
	if len(categories) == 0 {
		return nil, fmt.Errorf("gemini: empty category array")
	}
	if len(categories) > 3 {
		categories = categories[:3]
	}
	return categories, nil
}

// GenerateReply sends the prompt with soft context appended and returns the
// model's text.
func (p *GeminiProvider) GenerateReply(ctx context.Context, prompt string, contextMap map[string]string) (string, error) {
	fullPrompt := prompt
	if len(contextMap) > 0 {
		var meta []string
		for _, key := range []string{"user_name", "destination", "query", "lang"} {
			if v := contextMap[key]; v != "" {
				meta = append(meta, fmt.Sprintf("%s=%s", key, v))
			}
		}
		if len(meta) > 0 {
			fullPrompt = fmt.Sprintf("Context: %s\n\n%s", strings.Join(meta, "; "), prompt)
		}
	}

	text, err := p.generate(ctx, fullPrompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("gemini: API returned empty text")
	}
	return strings.TrimSpace(text), nil
}

func (p *GeminiProvider) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := p.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini: no response candidates")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	return cleanFencedString(b.String()), nil
}

func buildCategoryPrompt(task string) string {
	return fmt.Sprintf(`Given this task: %q

Determine the best 2-3 place-search categories to find places for this task.
Return ONLY a JSON array of category strings, nothing else.

Examples:
- Task: "Get coffee" -> ["coffee shop", "cafe", "coffee"]
- Task: "Buy flowers" -> ["florist", "flower shop", "gift shop"]
- Task: "Get groceries" -> ["grocery store", "supermarket", "convenience store"]
- Task: "Go to gym" -> ["gym", "fitness center", "health club"]
- Task: "Watch movie" -> ["movie theater", "cinema", "entertainment"]
- Task: "Get medicine" -> ["pharmacy", "drugstore", "medical store"]

Return the JSON array:`, task)
}

// cleanFencedString removes markdown code blocks if present (e.g. ```json ... ```)
func cleanFencedString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
