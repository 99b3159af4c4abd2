package render

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var whitespace = regexp.MustCompile(`\s+`)

// PlainText converts a fragment to text for surfaces that cannot show
// HTML. Block elements go on their own line, list items are bulleted and
// links and audio keep their URL.
func PlainText(f Fragment) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(f)))
	if err != nil {
		return string(f)
	}

	var tw textWriter
	doc.Find("body").Contents().Each(func(_ int, s *goquery.Selection) {
		tw.write(s)
	})
	return tw.String()
}

type textWriter struct {
	lines  []string
	cur    strings.Builder
	prefix string
}

func (w *textWriter) text(s string) {
	w.cur.WriteString(whitespace.ReplaceAllString(s, " "))
}

func (w *textWriter) newline() {
	line := strings.TrimSpace(w.cur.String())
	if line != "" {
		w.lines = append(w.lines, w.prefix+line)
		w.prefix = ""
	}
	w.cur.Reset()
}

func (w *textWriter) children(s *goquery.Selection) {
	s.Contents().Each(func(_ int, c *goquery.Selection) {
		w.write(c)
	})
}

func (w *textWriter) write(s *goquery.Selection) {
	node := s.Get(0)
	switch node.Type {
	case html.TextNode:
		w.text(node.Data)
	case html.ElementNode:
		switch node.Data {
		case "audio":
			w.newline()
			w.text("🔊 " + s.AttrOr("src", ""))
			w.newline()
		case "a":
			w.text(strings.TrimSpace(s.Text()))
			if href, ok := s.Attr("href"); ok {
				w.text(" (" + href + ")")
			}
		case "button":
			w.text("[" + strings.TrimSpace(s.Text()) + "] ")
		case "li":
			w.newline()
			w.prefix = "• "
			w.children(s)
			w.newline()
			w.prefix = ""
		case "div", "p", "ul", "ol":
			w.newline()
			w.children(s)
			w.newline()
		default:
			w.children(s)
		}
	}
}

func (w *textWriter) String() string {
	w.newline()
	return strings.Join(w.lines, "\n")
}

// Action is an interactive button found in a fragment
type Action struct {
	Event string
	Value string
	Label string
}

// Actions lists the buttons of f that trigger an interaction event, in
// document order.
func Actions(f Fragment) []Action {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(f)))
	if err != nil {
		return nil
	}

	var actions []Action
	doc.Find("button[data-event]").Each(func(_ int, s *goquery.Selection) {
		actions = append(actions, Action{
			Event: s.AttrOr("data-event", ""),
			Value: s.AttrOr("data-value", ""),
			Label: strings.TrimSpace(s.Text()),
		})
	})
	return actions
}
