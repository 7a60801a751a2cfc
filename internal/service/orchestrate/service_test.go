package orchestrate

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/w-h-a/textproc/processor"
	"github.com/w-h-a/textproc/provider"
	memorystore "github.com/w-h-a/textproc/store/memory"
)

type stubProvider struct {
	raw   any
	err   error
	calls int
}

func (p *stubProvider) Invoke(ctx context.Context, text string, task provider.Task) (any, error) {
	p.calls++
	return p.raw, p.err
}

func (p *stubProvider) Name() string {
	return "stub"
}

func TestProcess_Success(t *testing.T) {
	st := memorystore.NewStore()
	svc := New(&stubProvider{raw: "a recap"}, st)

	rec, err := svc.Process(context.Background(), "some long text", provider.TaskSummarize)
	require.NoError(t, err)

	require.NotEmpty(t, rec.Id)
	require.Equal(t, "some long text", rec.Text)
	require.Equal(t, provider.TaskSummarize, rec.Task)
	require.Equal(t, processor.Summary{Summary: "a recap"}, rec.Result)
	require.False(t, rec.CreatedAt.IsZero())

	records, err := st.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, rec, records[0])
}

func TestProcess_DefaultsToSummarize(t *testing.T) {
	svc := New(&stubProvider{raw: "a recap"}, memorystore.NewStore())

	rec, err := svc.Process(context.Background(), "some text", "")
	require.NoError(t, err)
	require.Equal(t, provider.TaskSummarize, rec.Task)
}

func TestProcess_StoresTextVerbatim(t *testing.T) {
	svc := New(&stubProvider{raw: "a recap"}, memorystore.NewStore())

	rec, err := svc.Process(context.Background(), "  padded text  ", provider.TaskSummarize)
	require.NoError(t, err)
	require.Equal(t, "  padded text  ", rec.Text)
}

func TestProcess_EmptyTextIsInvalid(t *testing.T) {
	p := &stubProvider{raw: "a recap"}
	st := memorystore.NewStore()
	svc := New(p, st)

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := svc.Process(context.Background(), text, provider.TaskSummarize)
		require.True(t, errors.Is(err, processor.ErrInvalidRequest))
	}

	require.Zero(t, p.calls)

	records, err := st.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestProcess_UnknownTaskIsInvalid(t *testing.T) {
	p := &stubProvider{raw: "a recap"}
	st := memorystore.NewStore()
	svc := New(p, st)

	_, err := svc.Process(context.Background(), "some text", provider.Task("translate"))
	require.True(t, errors.Is(err, processor.ErrInvalidRequest))
	require.Zero(t, p.calls)
}

func TestProcess_ProviderFailureWritesNothing(t *testing.T) {
	st := memorystore.NewStore()
	svc := New(&stubProvider{err: provider.ErrUnavailable}, st)

	_, err := svc.Process(context.Background(), "some text", provider.TaskSummarize)
	require.True(t, errors.Is(err, provider.ErrUnavailable))

	records, err := st.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestProcess_MalformedOutputWritesNothing(t *testing.T) {
	st := memorystore.NewStore()
	svc := New(&stubProvider{raw: map[string]any{"label": "POSITIVE"}}, st)

	_, err := svc.Process(context.Background(), "I love this!", provider.TaskSentiment)
	require.True(t, errors.Is(err, processor.ErrMalformedOutput))

	records, err := st.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestProcess_IdsAreUnique(t *testing.T) {
	svc := New(&stubProvider{raw: "a recap"}, memorystore.NewStore())

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		rec, err := svc.Process(context.Background(), "some text", provider.TaskSummarize)
		require.NoError(t, err)
		require.False(t, seen[rec.Id])
		seen[rec.Id] = true
	}
}

func TestHistoryAndLookup(t *testing.T) {
	svc := New(&stubProvider{raw: "a recap"}, memorystore.NewStore())

	first, err := svc.Process(context.Background(), "first text", provider.TaskSummarize)
	require.NoError(t, err)
	second, err := svc.Process(context.Background(), "second text", provider.TaskSummarize)
	require.NoError(t, err)

	records, err := svc.History(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{first.Id, second.Id}, []string{records[0].Id, records[1].Id})

	rec, found, err := svc.Lookup(context.Background(), second.Id)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, second, rec)

	_, found, err = svc.Lookup(context.Background(), "missing")
	require.NoError(t, err)
	require.False(t, found)
}
