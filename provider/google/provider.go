package google

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/w-h-a/textproc/provider"
	"google.golang.org/api/googleapi"
	genaiopt "google.golang.org/api/option"
)

type googleProvider struct {
	options provider.Options
	client  *genai.Client
}

func (p *googleProvider) Name() string {
	return "google"
}

func (p *googleProvider) Invoke(ctx context.Context, text string, task provider.Task) (any, error) {
	model := p.client.GenerativeModel(p.options.Model)
	if task != provider.TaskSummarize {
		model.ResponseMIMEType = "application/json"
	}

	rsp, err := model.GenerateContent(ctx, genai.Text(provider.Prompt(task)+text))
	if err != nil {
		return nil, classify(err)
	}

	if len(rsp.Candidates) == 0 || rsp.Candidates[0].Content == nil || len(rsp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("%w: no response from Google", provider.ErrUnavailable)
	}

	var b strings.Builder
	for _, part := range rsp.Candidates[0].Content.Parts {
		if block, ok := part.(genai.Text); ok {
			b.WriteString(string(block))
		}
	}

	result := b.String()

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
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusBadRequest, http.StatusForbidden, http.StatusUnprocessableEntity:
			return fmt.Errorf("%w: %v", provider.ErrRejected, err)
		}
	}
	return fmt.Errorf("%w: %v", provider.ErrUnavailable, err)
}

func NewProvider(opts ...provider.Option) provider.Provider {
	options := provider.NewOptions(opts...)

	p := &googleProvider{
		options: options,
	}

	client, err := genai.NewClient(
		context.Background(),
		genaiopt.WithAPIKey(options.ApiKey),
	)
	if err != nil {
		panic(err)
	}

	p.client = client

	return p
}
