package processor

import "github.com/w-h-a/textproc/provider"

const (
	SentimentPositive = "POSITIVE"
	SentimentNegative = "NEGATIVE"
	SentimentNeutral  = "NEUTRAL"
)

// Result is the task-shaped payload of a record. Exactly one concrete
// shape exists per task kind, so the record's task and the structure
// of its result can never disagree.
type Result interface {
	Task() provider.Task
}

type Summary struct {
	Summary string `json:"summary"`
}

func (Summary) Task() provider.Task { return provider.TaskSummarize }

type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// Entities holds extracted entities in order of first occurrence.
// Duplicates are preserved.
type Entities struct {
	Entities []Entity `json:"entities"`
}

func (Entities) Task() provider.Task { return provider.TaskEntities }

type Sentiment struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

func (Sentiment) Task() provider.Task { return provider.TaskSentiment }
