package provider

// Prompt returns the instruction a backend sends ahead of the user
// text so the model emits the raw-output shape its task requires:
// plain prose for summaries, JSON for entities and sentiment.
func Prompt(task Task) string {
	switch task {
	case TaskEntities:
		return "Extract the named entities from the following text. " +
			"Respond with only a JSON object of the form " +
			`{"entities": [{"text": "...", "label": "..."}]} ` +
			"where label is PERSON, ORGANIZATION, LOCATION, or a similar category. " +
			"List entities in order of first occurrence and keep duplicates.\n\n"
	case TaskSentiment:
		return "Analyze the sentiment of the following text. " +
			"Respond with only a JSON object of the form " +
			`{"label": "POSITIVE" | "NEGATIVE" | "NEUTRAL", "score": <confidence between 0 and 1>}` +
			".\n\n"
	default:
		return "You are a helpful assistant that summarizes text. " +
			"Summarize the following text in a concise paragraph:\n\n"
	}
}
