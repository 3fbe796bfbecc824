package engine

// QuickPrompts returns the suggested prompt chips the UI renders under the
// input box. The set shifts once a prediction exists, steering the user
// toward the context-aware intents.
func QuickPrompts(hasPrediction bool) []string {
	if hasPrediction {
		return []string{
			"Explain my result",
			"Is my score good?",
			"How can I improve my score?",
			"Compare my vehicle with an EV",
		}
	}
	return []string{
		"What fuel types exist?",
		"How do electric cars compare?",
		"How can I reduce emissions?",
		"How does the prediction model work?",
	}
}
