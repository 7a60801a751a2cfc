package processor

import (
	"time"

	"github.com/w-h-a/textproc/provider"
)

// Record is one processed-text entry. Records are immutable once the
// store has accepted them: the id is never reused and no update or
// delete exists.
type Record struct {
	Id        string        `json:"id"`
	Text      string        `json:"original_text"`
	Task      provider.Task `json:"task_type"`
	Result    Result        `json:"processed_result"`
	CreatedAt time.Time     `json:"created_at"`
}
