package processor

import (
	"fmt"
	"strings"

	"github.com/w-h-a/textproc/provider"
)

// Normalize coerces a provider's raw output into the fixed result
// shape for the task. It is pure and it never substitutes defaults:
// anything missing or mistyped fails with ErrMalformedOutput.
func Normalize(task provider.Task, raw any) (Result, error) {
	switch task {
	case provider.TaskSummarize:
		return normalizeSummary(raw)
	case provider.TaskEntities:
		return normalizeEntities(raw)
	case provider.TaskSentiment:
		return normalizeSentiment(raw)
	default:
		return nil, fmt.Errorf("%w: unknown task %q", ErrInvalidRequest, task)
	}
}

func normalizeSummary(raw any) (Result, error) {
	switch v := raw.(type) {
	case string:
		if len(strings.TrimSpace(v)) == 0 {
			return nil, fmt.Errorf("%w: empty summary", ErrMalformedOutput)
		}
		return Summary{Summary: v}, nil
	case map[string]any:
		summary, err := stringField(v, "summary")
		if err != nil {
			return nil, err
		}
		return Summary{Summary: summary}, nil
	default:
		return nil, fmt.Errorf("%w: summary must be text, got %T", ErrMalformedOutput, raw)
	}
}

func normalizeEntities(raw any) (Result, error) {
	items, ok := raw.([]any)
	if !ok {
		// some providers hand back the whole JSON object
		payload, isMap := raw.(map[string]any)
		if !isMap {
			return nil, fmt.Errorf("%w: entities must be a sequence, got %T", ErrMalformedOutput, raw)
		}
		items, ok = payload["entities"].([]any)
		if !ok {
			return nil, fmt.Errorf("%w: missing entities sequence", ErrMalformedOutput)
		}
	}

	entities := make([]Entity, 0, len(items))

	for i, item := range items {
		pair, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: entity %d must be an object, got %T", ErrMalformedOutput, i, item)
		}
		text, err := stringField(pair, "text")
		if err != nil {
			return nil, fmt.Errorf("entity %d: %w", i, err)
		}
		label, err := stringField(pair, "label")
		if err != nil {
			return nil, fmt.Errorf("entity %d: %w", i, err)
		}
		entities = append(entities, Entity{Text: text, Label: label})
	}

	return Entities{Entities: entities}, nil
}

func normalizeSentiment(raw any) (Result, error) {
	payload, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: sentiment must be an object, got %T", ErrMalformedOutput, raw)
	}

	label, err := stringField(payload, "label")
	if err != nil {
		// tolerate the alternate spelling some providers use
		label, err = stringField(payload, "sentiment")
		if err != nil {
			return nil, fmt.Errorf("%w: missing label", ErrMalformedOutput)
		}
	}

	label = strings.ToUpper(strings.TrimSpace(label))
	switch label {
	case SentimentPositive, SentimentNegative, SentimentNeutral:
	default:
		return nil, fmt.Errorf("%w: unknown sentiment label %q", ErrMalformedOutput, label)
	}

	score, err := numberField(payload, "score")
	if err != nil {
		return nil, err
	}
	if score < 0 || score > 1 {
		return nil, fmt.Errorf("%w: score %v outside [0,1]", ErrMalformedOutput, score)
	}

	return Sentiment{Label: label, Score: score}, nil
}

func stringField(payload map[string]any, key string) (string, error) {
	v, ok := payload[key]
	if !ok {
		return "", fmt.Errorf("%w: missing %s", ErrMalformedOutput, key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string, got %T", ErrMalformedOutput, key, v)
	}
	return s, nil
}

func numberField(payload map[string]any, key string) (float64, error) {
	v, ok := payload[key]
	if !ok {
		return 0, fmt.Errorf("%w: missing %s", ErrMalformedOutput, key)
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("%w: %s must be a number, got %T", ErrMalformedOutput, key, v)
	}
}
