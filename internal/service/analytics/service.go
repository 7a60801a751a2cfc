package analytics

import (
	"context"
	"fmt"
	"math"
	"time"
	"unicode/utf8"

	"github.com/w-h-a/textproc/processor"
	"github.com/w-h-a/textproc/provider"
	"github.com/w-h-a/textproc/store"
)

// Stats summarizes everything processed so far.
type Stats struct {
	TotalProcessed    int                   `json:"total_processed"`
	ByTaskType        map[provider.Task]int `json:"by_task_type"`
	AverageTextLength float64               `json:"average_text_length"`
}

// Service derives read-only aggregates from the store. It holds no
// state of its own; every call reads a fresh snapshot.
type Service struct {
	store store.Store
}

func (s *Service) Stats(ctx context.Context) (Stats, error) {
	records, err := s.store.List(ctx)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{
		TotalProcessed: len(records),
		ByTaskType:     map[provider.Task]int{},
	}

	total := 0
	for _, rec := range records {
		stats.ByTaskType[rec.Task]++
		total += utf8.RuneCountInString(rec.Text)
	}

	if len(records) > 0 {
		stats.AverageTextLength = round2(float64(total) / float64(len(records)))
	}

	return stats, nil
}

// SentimentDistribution counts sentiment records by label. All three
// labels are always present, zero-filled when absent.
func (s *Service) SentimentDistribution(ctx context.Context) (map[string]int, error) {
	records, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	distribution := map[string]int{
		processor.SentimentPositive: 0,
		processor.SentimentNegative: 0,
		processor.SentimentNeutral:  0,
	}

	for _, rec := range records {
		if rec.Task != provider.TaskSentiment {
			continue
		}
		sentiment, ok := rec.Result.(processor.Sentiment)
		if !ok {
			continue
		}
		if _, known := distribution[sentiment.Label]; known {
			distribution[sentiment.Label]++
		}
	}

	return distribution, nil
}

// RecentActivity returns the records created within the trailing
// window. The window boundary is inclusive: a record stamped at the
// same instant as the cutoff is in.
func (s *Service) RecentActivity(ctx context.Context, windowHours float64) ([]processor.Record, error) {
	if windowHours < 0 {
		return nil, fmt.Errorf("%w: window must be non-negative, got %v hours", processor.ErrInvalidRequest, windowHours)
	}

	cutoff := time.Now().UTC().Add(-time.Duration(windowHours * float64(time.Hour)))

	return s.store.ListSince(ctx, cutoff)
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

func New(st store.Store) *Service {
	if st == nil {
		panic("store is required")
	}

	return &Service{
		store: st,
	}
}
