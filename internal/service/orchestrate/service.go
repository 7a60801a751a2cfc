package orchestrate

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/w-h-a/textproc/processor"
	"github.com/w-h-a/textproc/provider"
	"github.com/w-h-a/textproc/store"
)

type Service struct {
	provider provider.Provider
	store    store.Store
	tracer   trace.Tracer
}

// Process runs one request end to end: validate, invoke the provider,
// normalize, persist. Exactly one record is appended per success and
// none on any failure path. The provider call is network-bound and
// happens strictly before the store is touched, so a slow model never
// holds up other callers' reads or writes.
func (s *Service) Process(ctx context.Context, text string, task provider.Task) (processor.Record, error) {
	if len(task) == 0 {
		task = provider.TaskSummarize
	}

	ctx, span := s.tracer.Start(
		ctx,
		"process",
		trace.WithAttributes(
			attribute.String("task", string(task)),
			attribute.String("provider", s.provider.Name()),
		),
	)
	defer span.End()

	if len(strings.TrimSpace(text)) == 0 {
		err := fmt.Errorf("%w: text is required", processor.ErrInvalidRequest)
		span.SetStatus(codes.Error, err.Error())
		return processor.Record{}, err
	}

	switch task {
	case provider.TaskSummarize, provider.TaskEntities, provider.TaskSentiment:
	default:
		err := fmt.Errorf("%w: unknown task %q", processor.ErrInvalidRequest, task)
		span.SetStatus(codes.Error, err.Error())
		return processor.Record{}, err
	}

	raw, err := s.provider.Invoke(ctx, text, task)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "provider call failed")
		return processor.Record{}, err
	}

	result, err := processor.Normalize(task, raw)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "normalization failed")
		return processor.Record{}, err
	}

	rec := processor.Record{
		Id:     uuid.New().String(),
		Text:   text,
		Task:   task,
		Result: result,
	}

	rec, err = s.store.Insert(ctx, rec)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
		return processor.Record{}, err
	}

	return rec, nil
}

func (s *Service) History(ctx context.Context) ([]processor.Record, error) {
	return s.store.List(ctx)
}

func (s *Service) Lookup(ctx context.Context, id string) (processor.Record, bool, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) ProviderName() string {
	return s.provider.Name()
}

func New(p provider.Provider, st store.Store) *Service {
	if p == nil {
		panic("provider is required")
	}

	if st == nil {
		panic("store is required")
	}

	return &Service{
		provider: p,
		store:    st,
		tracer:   otel.Tracer("textproc/orchestrate"),
	}
}
