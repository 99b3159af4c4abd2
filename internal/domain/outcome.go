package domain

// OutcomeKind tags a lookup outcome
type OutcomeKind string

const (
	OutcomeSuccess  OutcomeKind = "success"
	OutcomeNotFound OutcomeKind = "not_found"
	OutcomeFailure  OutcomeKind = "failure"
)

// Outcome is the result of one lookup attempt. Entry is set on success;
// Err holds the failure, or ErrNotFound for not found.
type Outcome struct {
	Kind  OutcomeKind
	Entry *DictionaryEntry
	Err   error

	// Alternates counts the additional entries of the response that were
	// discarded; only the first entry is kept.
	Alternates int
}

// Success wraps a parsed entry
func Success(entry *DictionaryEntry) Outcome {
	return Outcome{Kind: OutcomeSuccess, Entry: entry}
}

// NotFound is a well-formed but empty result
func NotFound() Outcome {
	return Outcome{Kind: OutcomeNotFound, Err: ErrNotFound}
}

// Failure wraps a network, HTTP or parse error
func Failure(err error) Outcome {
	return Outcome{Kind: OutcomeFailure, Err: err}
}

// Message returns the error text of a failure or not found outcome, or
// an empty string on success
func (o Outcome) Message() string {
	if o.Err == nil {
		return ""
	}
	return o.Err.Error()
}
