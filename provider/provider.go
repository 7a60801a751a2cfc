package provider

import "context"

// Provider is the language-model capability the orchestrator invokes.
// The shape of the raw output depends on the task: a string for
// summaries, a sequence of text/label pairs for entity extraction,
// and a label plus confidence score for sentiment. Coercing the raw
// output into a fixed shape is the normalizer's job, not the
// provider's.
type Provider interface {
	Invoke(ctx context.Context, text string, task Task) (any, error)
	Name() string
}
