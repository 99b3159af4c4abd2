// Package widget holds the toy widgets of the study page.
package widget

import (
	"strings"
	"time"

	"studyenglish/internal/render"
	"studyenglish/internal/ui"
)

const (
	DefaultReplyDelay = 600 * time.Millisecond

	chatUser  = "You"
	chatBot   = "AI"
	chatReply = "Xin chào! Tôi là nhân vật AI demo."
)

// Chat echoes the user's message and answers with a canned reply after a
// fixed delay. Pending replies are never cancelled; several may be
// pending at once.
type Chat struct {
	delay     time.Duration
	afterFunc func(time.Duration, func())
}

// NewChat creates a chat widget replying after delay
func NewChat(delay time.Duration) *Chat {
	if delay < 0 {
		delay = 0
	}
	return &Chat{
		delay: delay,
		afterFunc: func(d time.Duration, f func()) {
			time.AfterFunc(d, f)
		},
	}
}

// Send appends the user's line to out and schedules the reply. It returns
// a channel closed once the reply has been appended, or nil when text is
// blank and nothing happened.
func (c *Chat) Send(text string, out ui.Appender) <-chan struct{} {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	out.Append(render.ChatLine(chatUser, text, false))

	done := make(chan struct{})
	c.afterFunc(c.delay, func() {
		out.Append(render.ChatLine(chatBot, chatReply, true))
		close(done)
	})
	return done
}
