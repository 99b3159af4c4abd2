package widget

import "studyenglish/internal/render"

// Quiz is a single multiple-choice question
type Quiz struct {
	Question string
	Options  []string
	Answer   string
}

// DefaultQuiz is the demo question shown by the quiz widget
var DefaultQuiz = Quiz{
	Question: `1) Choose the correct past form for "go":`,
	Options:  []string{"went", "goed"},
	Answer:   "went",
}

// Start renders the unanswered question
func (q Quiz) Start() render.Fragment {
	return render.Quiz(q.Question, q.Options, q.Answer, "")
}

// Check renders the question with a verdict for choice. Choices that are
// not options restart the question.
func (q Quiz) Check(choice string) (render.Fragment, bool) {
	if !q.isOption(choice) {
		return q.Start(), false
	}
	return render.Quiz(q.Question, q.Options, q.Answer, choice), choice == q.Answer
}

func (q Quiz) isOption(choice string) bool {
	for _, opt := range q.Options {
		if opt == choice {
			return true
		}
	}
	return false
}
