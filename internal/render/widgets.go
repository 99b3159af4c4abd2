package render

import (
	"fmt"
	"strings"

	"studyenglish/internal/escape"
)

// WordOfDay fills the word and definition slots of the word-of-the-day panel.
func WordOfDay(word, definition string) Fragment {
	return Fragment(fmt.Sprintf(`<div class="text-3xl font-bold text-indigo-700">%s</div>`+"\n"+`<div class="text-gray-600">%s</div>`,
		escape.String(word), escape.String(definition)))
}

// ChatLine is one line of the chat log, prefixed with the speaker.
func ChatLine(speaker, text string, bot bool) Fragment {
	class := "bg-white p-2 rounded mb-2"
	if bot {
		class = "bg-indigo-50 p-2 rounded mb-2"
	}
	return Fragment(fmt.Sprintf(`<div class="%s">%s: %s</div>`, class, escape.String(speaker), escape.String(text)))
}

// QuizEvent is the interaction event quiz answer buttons trigger.
const QuizEvent = "quiz.answer"

// Quiz renders a question with one button per option and, once answered,
// a verdict line. answer is empty until the user picks an option.
func Quiz(question string, options []string, correct, answer string) Fragment {
	var b strings.Builder
	b.WriteString(`<div class="p-4">`)
	fmt.Fprintf(&b, `<div class="mb-2">%s</div>`, escape.String(question))
	for _, opt := range options {
		o := escape.String(opt)
		fmt.Fprintf(&b, `<button class="mr-2 px-3 py-1 bg-gray-100 rounded" data-event="%s" data-value="%s">%s</button>`, QuizEvent, o, o)
	}
	fmt.Fprintf(&b, `<div class="mt-3 text-sm text-gray-600">%s</div>`, msgQuizNote)
	if answer != "" {
		if answer == correct {
			fmt.Fprintf(&b, `<div class="mt-2 text-green-600">%s "<b>%s</b>"</div>`, msgQuizCorrect, escape.String(correct))
		} else {
			fmt.Fprintf(&b, `<div class="mt-2 text-red-600">%s "<b>%s</b>".</div>`, msgQuizIncorrect, escape.String(correct))
		}
	}
	b.WriteString(`</div>`)
	return Fragment(b.String())
}
