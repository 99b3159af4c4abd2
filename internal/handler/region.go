package handler

import (
	"strings"
	"sync"

	"studyenglish/internal/render"
	"studyenglish/internal/service"
	"studyenglish/internal/ui"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Widgets that own a result message per chat
const (
	widgetEnglish    = "english"
	widgetVietnamese = "vi-en"
	widgetDefinition = "vi-vi"
	widgetQuiz       = "quiz"
)

// widgetFor maps a button event to the widget whose message it updates
func widgetFor(event string) string {
	switch event {
	case service.EventQuizStart, service.EventQuizAnswer:
		return widgetQuiz
	default:
		return event
	}
}

type regionKey struct {
	chat   int64
	widget string
}

type chatRegion struct {
	message *messageRegion
	guarded *ui.Guarded
}

// regions keeps one guarded display region per chat and widget
type regions struct {
	bot    Bot
	policy ui.Policy
	logger *zap.Logger

	mu sync.Mutex
	m  map[regionKey]*chatRegion
}

func newRegions(bot Bot, policy ui.Policy, logger *zap.Logger) *regions {
	return &regions{
		bot:    bot,
		policy: policy,
		logger: logger,
		m:      make(map[regionKey]*chatRegion),
	}
}

func (r *regions) entry(chat *tele.Chat, widget string) *chatRegion {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := regionKey{chat: chat.ID, widget: widget}
	e, ok := r.m[key]
	if !ok {
		msg := r.fresh(chat)
		e = &chatRegion{message: msg, guarded: ui.NewGuarded(msg, r.policy)}
		r.m[key] = e
	}
	return e
}

// get returns the region of widget in chat
func (r *regions) get(chat *tele.Chat, widget string) ui.Region {
	return r.entry(chat, widget).guarded
}

// retarget points the widget's region at msg; nil starts a new message
// on the next write.
func (r *regions) retarget(chat *tele.Chat, widget string, msg *tele.Message) {
	r.entry(chat, widget).message.setTarget(msg)
}

// fresh returns an unguarded region that starts a new message
func (r *regions) fresh(chat *tele.Chat) *messageRegion {
	return &messageRegion{bot: r.bot, chat: chat, logger: r.logger}
}

// log returns an appender that posts each line as its own message
func (r *regions) log(chat *tele.Chat) ui.Appender {
	return ui.AppenderFunc(func(f render.Fragment) {
		text := render.PlainText(f)
		if text == "" {
			return
		}
		if _, err := r.bot.Send(chat, text); err != nil {
			r.logger.Error("Failed to send chat line", zap.Error(err), zap.Int64("chat_id", chat.ID))
		}
	})
}

// messageRegion shows fragments in a single Telegram message, editing
// it in place once sent.
type messageRegion struct {
	bot    Bot
	chat   *tele.Chat
	logger *zap.Logger

	mu     sync.Mutex
	target *tele.Message
}

func (m *messageRegion) setTarget(msg *tele.Message) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.target = msg
}

// Replace implements ui.Region
func (m *messageRegion) Replace(f render.Fragment) {
	text := render.PlainText(f)
	if text == "" {
		return
	}

	var opts []interface{}
	if markup := actionMarkup(render.Actions(f)); markup != nil {
		opts = append(opts, markup)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.target != nil {
		edited, err := m.bot.Edit(m.target, text, opts...)
		if err == nil {
			if edited != nil {
				m.target = edited
			}
			return
		}
		if isNotModified(err) {
			return
		}
		m.logger.Warn("Failed to edit message, sending new",
			zap.Error(err),
			zap.Int64("chat_id", m.chat.ID),
		)
	}

	sent, err := m.bot.Send(m.chat, text, opts...)
	if err != nil {
		m.logger.Error("Failed to send message", zap.Error(err), zap.Int64("chat_id", m.chat.ID))
		return
	}
	m.target = sent
}

// isNotModified reports whether an edit was rejected because the message
// already shows the same content.
func isNotModified(err error) bool {
	return err != nil && strings.Contains(err.Error(), "message is not modified")
}

// actionMarkup turns fragment buttons into inline keyboard buttons
func actionMarkup(actions []render.Action) *tele.ReplyMarkup {
	if len(actions) == 0 {
		return nil
	}
	markup := &tele.ReplyMarkup{}
	row := make(tele.Row, 0, len(actions))
	for _, a := range actions {
		row = append(row, markup.Data(a.Label, btnEvent.Unique, eventData(a.Event, a.Value)))
	}
	markup.Inline(row)
	return markup
}
