package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuiz_Start(t *testing.T) {
	f := DefaultQuiz.Start()
	assert.Contains(t, string(f), "Choose the correct past form for &quot;go&quot;:")
	assert.Contains(t, string(f), ">went</button>")
	assert.Contains(t, string(f), ">goed</button>")
}

func TestQuiz_Check(t *testing.T) {
	tests := []struct {
		name    string
		choice  string
		correct bool
		verdict string
	}{
		{name: "correct", choice: "went", correct: true, verdict: "Chính xác!"},
		{name: "incorrect", choice: "goed", correct: false, verdict: "Chưa đúng."},
		{name: "unknown option", choice: "gone", correct: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, correct := DefaultQuiz.Check(tt.choice)
			assert.Equal(t, tt.correct, correct)
			if tt.verdict != "" {
				assert.Contains(t, string(f), tt.verdict)
			} else {
				assert.Equal(t, DefaultQuiz.Start(), f)
			}
		})
	}
}
