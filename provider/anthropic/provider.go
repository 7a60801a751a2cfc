package anthropic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	anthropicopt "github.com/anthropics/anthropic-sdk-go/option"
	"github.com/w-h-a/textproc/provider"
)

type anthropicProvider struct {
	options provider.Options
	client  *anthropic.Client
}

func (p *anthropicProvider) Name() string {
	return "anthropic"
}

func (p *anthropicProvider) Invoke(ctx context.Context, text string, task provider.Task) (any, error) {
	req := anthropic.MessageNewParams{
		Model:     anthropic.Model(p.options.Model),
		MaxTokens: 1024,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(provider.Prompt(task) + text)),
		},
	}

	rsp, err := p.client.Messages.New(ctx, req)
	if err != nil {
		return nil, classify(err)
	}

	var b strings.Builder
	for _, content := range rsp.Content {
		if block, ok := content.AsAny().(anthropic.TextBlock); ok {
			b.WriteString(block.Text)
		}
	}

	result := b.String()
	if len(result) == 0 {
		return nil, fmt.Errorf("%w: no response from Anthropic", provider.ErrUnavailable)
	}

	if task == provider.TaskSummarize {
		return result, nil
	}

	// non-summary tasks asked the model for JSON; if it sent something
	// else, hand it through and let the normalizer flag it
	var raw any
	if err := json.Unmarshal([]byte(result), &raw); err != nil {
		return result, nil
	}

	return raw, nil
}

func classify(err error) error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusBadRequest, http.StatusForbidden, http.StatusUnprocessableEntity:
			return fmt.Errorf("%w: %v", provider.ErrRejected, err)
		}
	}
	return fmt.Errorf("%w: %v", provider.ErrUnavailable, err)
}

func NewProvider(opts ...provider.Option) provider.Provider {
	options := provider.NewOptions(opts...)

	p := &anthropicProvider{
		options: options,
	}

	client := anthropic.NewClient(
		anthropicopt.WithAPIKey(options.ApiKey),
	)

	p.client = &client

	return p
}
