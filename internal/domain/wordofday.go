package domain

import "time"

// WordOfDay is the featured word and its short definition
type WordOfDay struct {
	Date       time.Time
	Word       string
	Definition string
}

// wordsOfDay rotates by day of year
var wordsOfDay = []struct {
	word, definition string
}{
	{"serendipity", "A fortunate discovery or pleasant surprise."},
	{"resilient", "Able to recover quickly from difficulties."},
	{"curious", "Eager to know or learn something."},
	{"meticulous", "Showing great attention to detail."},
	{"eloquent", "Fluent and persuasive in speaking or writing."},
	{"wanderlust", "A strong desire to travel."},
	{"gratitude", "The quality of being thankful."},
}

// WordOfDayFor returns the word featured on the given date
func WordOfDayFor(date time.Time) WordOfDay {
	w := wordsOfDay[(date.YearDay()-1)%len(wordsOfDay)]
	return WordOfDay{
		Date:       date,
		Word:       w.word,
		Definition: w.definition,
	}
}

// DateKey returns date in YYYYMMDD format
func (w WordOfDay) DateKey() string {
	return w.Date.Format("20060102")
}
