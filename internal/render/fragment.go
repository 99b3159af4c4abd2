// Package render turns lookup outcomes and widget state into HTML
// fragments. Every externally sourced string is escaped exactly once, at
// the point where it is interpolated.
package render

import (
	"fmt"
	"strings"

	"studyenglish/internal/domain"
	"studyenglish/internal/escape"
)

// Fragment is HTML that replaces (or is appended to) a display region.
type Fragment string

func (f Fragment) String() string { return string(f) }

// Prompt asks for an English word.
func Prompt() Fragment {
	return note(msgEnglishPrompt)
}

// Loading is shown while a lookup for word is in flight.
func Loading(word string) Fragment {
	return Fragment(fmt.Sprintf(`<div class="text-gray-600">%s <b>%s</b> ...</div>`,
		msgLoading, escape.String(word)))
}

// Outcome renders the result of looking up word. It is pure: the same
// outcome and word always produce the same fragment.
func Outcome(o domain.Outcome, word string) Fragment {
	switch o.Kind {
	case domain.OutcomeFailure:
		return Failure(word, o.Message())
	case domain.OutcomeSuccess:
		if o.Entry.IsEmpty() {
			return NotFound(word)
		}
		return Entry(o.Entry, word)
	default:
		return NotFound(word)
	}
}

// NotFound reports that word has no definitions.
func NotFound(word string) Fragment {
	return Fragment(fmt.Sprintf(`<div class="text-red-600">%s "<b>%s</b>".</div>`,
		msgNotFound, escape.String(word)))
}

// Failure reports a failed lookup of word with the error text.
func Failure(word, message string) Fragment {
	return Fragment(fmt.Sprintf(`<div class="text-red-600">%s "<b>%s</b>": %s</div>`,
		msgFailure, escape.String(word), escape.String(message)))
}

// Entry renders a dictionary entry. word is the original query, used when
// the entry has no headword and for the translate link.
func Entry(e *domain.DictionaryEntry, word string) Fragment {
	var b strings.Builder

	headword := e.Word
	if headword == "" {
		headword = word
	}
	fmt.Fprintf(&b, `<div class="text-xl font-semibold text-indigo-700 mb-2">%s</div>`, escape.String(headword))

	if ph, ok := e.DisplayPhonetic(); ok {
		fmt.Fprintf(&b, "\n"+`<div class="text-sm text-gray-600 mb-2">%s %s</div>`, msgPhonetic, escape.String(ph.Text))
	}

	if ph, ok := e.AudioPhonetic(); ok {
		if src, valid := escape.URL(ph.Audio); valid {
			fmt.Fprintf(&b, "\n"+`<div class="mb-2"><audio controls src="%s"></audio></div>`, src)
		}
	}

	for _, m := range e.Meanings {
		b.WriteString("\n")
		writeMeaning(&b, m)
	}

	fmt.Fprintf(&b, "\n"+`<div class="mt-2">%s</div>`, translateLink(word))

	return Fragment(b.String())
}

func writeMeaning(b *strings.Builder, m domain.Meaning) {
	fmt.Fprintf(b, `<div class="mb-3"><div class="font-medium text-indigo-600">%s</div>`, escape.String(m.PartOfSpeech))
	b.WriteString(`<ul class="list-disc pl-5 text-gray-700">`)
	for _, d := range m.Definitions {
		fmt.Fprintf(b, `<li><div>%s</div>`, escape.String(d.Definition))
		if d.Example != "" {
			fmt.Fprintf(b, `<div class="text-sm text-gray-500">%s %s</div>`, msgExample, escape.String(d.Example))
		}
		if syn := d.ShownSynonyms(); len(syn) > 0 {
			fmt.Fprintf(b, `<div class="text-sm text-gray-500">%s %s</div>`, msgSynonyms, escape.String(strings.Join(syn, ", ")))
		}
		b.WriteString(`</li>`)
	}
	b.WriteString(`</ul></div>`)
}

func translateLink(word string) string {
	href := fmt.Sprintf(TranslateURL, escape.Component(word))
	return fmt.Sprintf(`<a href="%s" target="_blank" rel="noopener noreferrer" class="text-indigo-600 underline">%s</a>`,
		escape.String(href), msgTranslate)
}

func note(text string) Fragment {
	return Fragment(fmt.Sprintf(`<div class="text-gray-600">%s</div>`, escape.String(text)))
}
