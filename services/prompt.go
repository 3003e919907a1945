package services

import "fmt"

// actionSuffixes maps each recognized action to the instruction appended
// to the question. Keys are case-sensitive; unknown actions get no
// suffix, which asks the model for a direct answer.
var actionSuffixes = map[string]string{
	"keywords":   "Extract keywords.",
	"summarize":  "Summarize this content.",
	"solution":   "Give the solution.",
	"hint":       "Give only hint got the question.",
	"concept":    "Explain the whole concept behind this.",
	"translate":  "Translate this.",
	"questions":  "Analyse the content and generate the questions.",
	"tips":       "give the tips for me to boost.",
	"shortnotes": "give the short notes of this content.",
}

// ComposePrompt builds the upstream prompt from the raw question, the
// optional exam context, and the selected action. The stored history
// row keeps the raw question, never this composed string.
func ComposePrompt(question, exam, action string) string {
	prompt := question
	if exam != "" {
		prompt = fmt.Sprintf("This is a question from the %s. %s", exam, question)
	}
	if suffix, ok := actionSuffixes[action]; ok {
		prompt += " " + suffix
	}
	return prompt
}
