package render

import (
	"fmt"

	"studyenglish/internal/escape"
)

// LocalKind selects the wording of a local dictionary result
type LocalKind int

const (
	// LocalVietnameseEnglish translates Vietnamese to English
	LocalVietnameseEnglish LocalKind = iota
	// LocalVietnameseDefinition defines a Vietnamese word in Vietnamese
	LocalVietnameseDefinition
)

// LocalPrompt asks for a word to look up locally.
func LocalPrompt(kind LocalKind) Fragment {
	if kind == LocalVietnameseDefinition {
		return note(msgDefinitionPrompt)
	}
	return note(msgVietnamesePrompt)
}

// LocalHit renders the mapped value of a local dictionary. Vietnamese to
// English results carry a note that the dictionary is only a demo.
func LocalHit(kind LocalKind, value string) Fragment {
	if kind == LocalVietnameseDefinition {
		return Fragment(fmt.Sprintf(`<div><b>%s</b> %s</div>`, msgDefinitionLabel, escape.String(value)))
	}
	return Fragment(fmt.Sprintf(`<div><b>%s</b> %s</div>`+"\n"+`<div class="text-sm text-gray-500 mt-2">%s</div>`,
		msgEnglishLabel, escape.String(value), msgLocalNote))
}

// LocalMiss reports that word, exactly as typed, is not in the local
// dictionary.
func LocalMiss(word string) Fragment {
	return Fragment(fmt.Sprintf(`<div class="text-red-600">%s "<b>%s</b>" %s</div>`,
		msgLocalMissBefore, escape.String(word), msgLocalMissAfter))
}
