package insight

// suggestionByTag maps a concern tag to a fixed tip. Tags without an entry
// produce no suggestion.
var suggestionByTag = map[string]string{
	"stress":        "Consider trying relaxation techniques like deep breathing or meditation",
	"anxiety":       "Consider trying relaxation techniques like deep breathing or meditation",
	"headache":      "Stay hydrated and maintain regular sleep schedule to prevent headaches",
	"migraine":      "Stay hydrated and maintain regular sleep schedule to prevent headaches",
	"sleep":         "Establish a consistent bedtime routine and limit screen time before bed",
	"insomnia":      "Establish a consistent bedtime routine and limit screen time before bed",
	"tired":         "Ensure adequate sleep and consider your nutrition and hydration levels",
	"fatigue":       "Ensure adequate sleep and consider your nutrition and hydration levels",
	"study":         "Take regular breaks and try the Pomodoro technique for better focus",
	"concentration": "Take regular breaks and try the Pomodoro technique for better focus",
}

// DeriveSuggestions returns one tip per recognized concern tag, preserving
// tag order. Duplicate tips are kept when two tags share one (e.g. stress
// and anxiety both recurring), matching the per-tag lookup semantics.
func DeriveSuggestions(tags []string) []string {
	var suggestions []string
	for _, tag := range tags {
		if tip, ok := suggestionByTag[tag]; ok {
			suggestions = append(suggestions, tip)
		}
	}
	return suggestions
}
