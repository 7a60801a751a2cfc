package provider

// Task is the requested analysis operation.
type Task string

const (
	TaskSummarize Task = "summarize"
	TaskEntities  Task = "entities"
	TaskSentiment Task = "sentiment"
)

// ParseTask maps the wire name of a task to its kind. An empty name
// selects summarization.
func ParseTask(name string) (Task, bool) {
	switch Task(name) {
	case "":
		return TaskSummarize, true
	case TaskSummarize, TaskEntities, TaskSentiment:
		return Task(name), true
	default:
		return "", false
	}
}
