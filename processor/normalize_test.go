package processor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/w-h-a/textproc/provider"
)

func TestNormalize_SummaryFromString(t *testing.T) {
	result, err := Normalize(provider.TaskSummarize, "a short recap")
	require.NoError(t, err)
	require.Equal(t, Summary{Summary: "a short recap"}, result)
	require.Equal(t, provider.TaskSummarize, result.Task())
}

func TestNormalize_SummaryFromObject(t *testing.T) {
	result, err := Normalize(provider.TaskSummarize, map[string]any{"summary": "a short recap"})
	require.NoError(t, err)
	require.Equal(t, Summary{Summary: "a short recap"}, result)
}

func TestNormalize_EmptySummaryIsMalformed(t *testing.T) {
	_, err := Normalize(provider.TaskSummarize, "   ")
	require.True(t, errors.Is(err, ErrMalformedOutput))
}

func TestNormalize_SummaryWrongTypeIsMalformed(t *testing.T) {
	_, err := Normalize(provider.TaskSummarize, 42)
	require.True(t, errors.Is(err, ErrMalformedOutput))
}

func TestNormalize_EntitiesFromSequence(t *testing.T) {
	raw := []any{
		map[string]any{"text": "Ada Lovelace", "label": "PERSON"},
		map[string]any{"text": "London", "label": "LOCATION"},
		map[string]any{"text": "Ada Lovelace", "label": "PERSON"},
	}

	result, err := Normalize(provider.TaskEntities, raw)
	require.NoError(t, err)

	entities := result.(Entities).Entities
	require.Len(t, entities, 3)
	require.Equal(t, Entity{Text: "Ada Lovelace", Label: "PERSON"}, entities[0])
	require.Equal(t, Entity{Text: "London", Label: "LOCATION"}, entities[1])
	// duplicates survive in occurrence order
	require.Equal(t, entities[0], entities[2])
}

func TestNormalize_EntitiesFromWrappedObject(t *testing.T) {
	raw := map[string]any{
		"entities": []any{
			map[string]any{"text": "Acme", "label": "ORGANIZATION"},
		},
	}

	result, err := Normalize(provider.TaskEntities, raw)
	require.NoError(t, err)
	require.Equal(t, Entities{Entities: []Entity{{Text: "Acme", Label: "ORGANIZATION"}}}, result)
}

func TestNormalize_EmptyEntitySequence(t *testing.T) {
	result, err := Normalize(provider.TaskEntities, []any{})
	require.NoError(t, err)
	require.Empty(t, result.(Entities).Entities)
}

func TestNormalize_EntityMissingLabelIsMalformed(t *testing.T) {
	raw := []any{map[string]any{"text": "Acme"}}
	_, err := Normalize(provider.TaskEntities, raw)
	require.True(t, errors.Is(err, ErrMalformedOutput))
}

func TestNormalize_EntitiesWrongShapeIsMalformed(t *testing.T) {
	_, err := Normalize(provider.TaskEntities, "Acme, London")
	require.True(t, errors.Is(err, ErrMalformedOutput))

	_, err = Normalize(provider.TaskEntities, map[string]any{"entities": "Acme"})
	require.True(t, errors.Is(err, ErrMalformedOutput))
}

func TestNormalize_Sentiment(t *testing.T) {
	result, err := Normalize(provider.TaskSentiment, map[string]any{"label": "POSITIVE", "score": 0.95})
	require.NoError(t, err)
	require.Equal(t, Sentiment{Label: SentimentPositive, Score: 0.95}, result)
}

func TestNormalize_SentimentAlternateKeyAndCase(t *testing.T) {
	result, err := Normalize(provider.TaskSentiment, map[string]any{"sentiment": "negative", "score": 0.5})
	require.NoError(t, err)
	require.Equal(t, Sentiment{Label: SentimentNegative, Score: 0.5}, result)
}

func TestNormalize_SentimentUnknownLabelIsMalformed(t *testing.T) {
	_, err := Normalize(provider.TaskSentiment, map[string]any{"label": "AMBIVALENT", "score": 0.5})
	require.True(t, errors.Is(err, ErrMalformedOutput))
}

func TestNormalize_SentimentMissingScoreIsMalformed(t *testing.T) {
	_, err := Normalize(provider.TaskSentiment, map[string]any{"label": "NEUTRAL"})
	require.True(t, errors.Is(err, ErrMalformedOutput))
}

func TestNormalize_SentimentScoreOutOfRangeIsMalformed(t *testing.T) {
	for _, score := range []float64{-0.1, 1.1} {
		_, err := Normalize(provider.TaskSentiment, map[string]any{"label": "NEUTRAL", "score": score})
		require.True(t, errors.Is(err, ErrMalformedOutput))
	}
}

func TestNormalize_SentimentNonObjectIsMalformed(t *testing.T) {
	_, err := Normalize(provider.TaskSentiment, "POSITIVE")
	require.True(t, errors.Is(err, ErrMalformedOutput))
}

func TestNormalize_UnknownTaskIsInvalid(t *testing.T) {
	_, err := Normalize(provider.Task("translate"), "bonjour")
	require.True(t, errors.Is(err, ErrInvalidRequest))
}
