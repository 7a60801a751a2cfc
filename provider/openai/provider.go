package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sashabaranov/go-openai"
	"github.com/w-h-a/textproc/provider"
)

type openAIProvider struct {
	options provider.Options
	client  *openai.Client
}

func (p *openAIProvider) Name() string {
	return "openai"
}

func (p *openAIProvider) Invoke(ctx context.Context, text string, task provider.Task) (any, error) {
	req := openai.ChatCompletionRequest{
		Model: p.options.Model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: provider.Prompt(task) + text,
			},
		},
	}

	if task != provider.TaskSummarize {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	rsp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, classify(err)
	}

	if len(rsp.Choices) == 0 || len(rsp.Choices[0].Message.Content) == 0 {
		return nil, fmt.Errorf("%w: no response from OpenAI", provider.ErrUnavailable)
	}

	content := rsp.Choices[0].Message.Content

	if task == provider.TaskSummarize {
		return content, nil
	}

	// non-summary tasks asked the model for JSON; if it sent something
	// else, hand it through and let the normalizer flag it
	var raw any
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return content, nil
	}

	return raw, nil
}

func classify(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case http.StatusBadRequest, http.StatusForbidden, http.StatusUnprocessableEntity:
			return fmt.Errorf("%w: %v", provider.ErrRejected, err)
		}
	}
	return fmt.Errorf("%w: %v", provider.ErrUnavailable, err)
}

func NewProvider(opts ...provider.Option) provider.Provider {
	options := provider.NewOptions(opts...)

	p := &openAIProvider{
		options: options,
	}

	client := openai.NewClient(options.ApiKey)

	p.client = client

	return p
}
