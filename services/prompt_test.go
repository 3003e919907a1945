package services

import "testing"

func TestComposePrompt(t *testing.T) {
	tests := []struct {
		name     string
		question string
		exam     string
		action   string
		want     string
	}{
		{
			name:     "summarize with exam context",
			question: "Photosynthesis converts light to energy",
			exam:     "Biology 101",
			action:   "summarize",
			want:     "This is a question from the Biology 101. Photosynthesis converts light to energy Summarize this content.",
		},
		{
			name:     "keywords without exam",
			question: "Newton's laws of motion",
			action:   "keywords",
			want:     "Newton's laws of motion Extract keywords.",
		},
		{
			name:     "hint suffix",
			question: "Solve x^2 = 4",
			action:   "hint",
			want:     "Solve x^2 = 4 Give only hint got the question.",
		},
		{
			name:     "unknown action falls back to plain answer",
			question: "What is entropy?",
			exam:     "Physics",
			action:   "explain-like-im-five",
			want:     "This is a question from the Physics. What is entropy?",
		},
		{
			name:     "empty action means plain answer",
			question: "What is entropy?",
			want:     "What is entropy?",
		},
		{
			name:     "action keys are case sensitive",
			question: "What is entropy?",
			action:   "Summarize",
			want:     "What is entropy?",
		},
		{
			name:     "shortnotes suffix",
			question: "The French Revolution",
			action:   "shortnotes",
			want:     "The French Revolution give the short notes of this content.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComposePrompt(tt.question, tt.exam, tt.action)
			if got != tt.want {
				t.Errorf("ComposePrompt() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestActionSuffixesExhaustive(t *testing.T) {
	want := []string{
		"keywords", "summarize", "solution", "hint", "concept",
		"translate", "questions", "tips", "shortnotes",
	}
	if len(actionSuffixes) != len(want) {
		t.Fatalf("expected %d actions, got %d", len(want), len(actionSuffixes))
	}
	for _, action := range want {
		if _, ok := actionSuffixes[action]; !ok {
			t.Errorf("missing action %q", action)
		}
	}
}
