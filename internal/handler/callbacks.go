package handler

import (
	"strings"
	"unicode"

	"studyenglish/internal/service"
	"studyenglish/internal/ui"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// eventData packs an interaction event into callback data
func eventData(event, value string) string {
	return event + ":" + value
}

// parseEventData reverses eventData
func parseEventData(data string) (event, value string, ok bool) {
	event, value, ok = strings.Cut(cleanCallbackData(data), ":")
	if !ok || event == "" {
		return "", "", false
	}
	return event, value, true
}

// respond acknowledges a callback; failures are only logged
func (h *Handler) respond(cb *tele.Callback, resp ...*tele.CallbackResponse) {
	if err := h.bot.Respond(cb, resp...); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err), zap.String("callback_id", cb.ID))
	}
}

// handleCallback handles callback queries no button endpoint matched
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	// Clean data from all non-printable characters
	data := cleanCallbackData(callback.Data)
	h.logger.Debug("Processing callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
		zap.String("id", callback.ID),
	)

	switch callback.Unique {
	case btnWordOfDay.Unique:
		return h.handleWordOfDay(c)
	case btnQuiz.Unique:
		return h.handleQuiz(c)
	case btnEvent.Unique:
		return h.handleEventButton(c)
	case btnMainMenu.Unique:
		return h.handleStart(c)
	}

	// Buttons whose unique did not come through carry it as data
	if callback.Unique == "" {
		switch data {
		case btnWordOfDay.Unique:
			return h.handleWordOfDay(c)
		case btnQuiz.Unique:
			return h.handleQuiz(c)
		case btnMainMenu.Unique:
			return h.handleStart(c)
		}
	}

	h.logger.Warn("Unhandled callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	h.respond(callback)
	return nil
}

// handleWordOfDay shows today's word in a new message
func (h *Handler) handleWordOfDay(c tele.Context) error {
	chat := c.Chat()
	if chat == nil {
		return nil
	}
	if cb := c.Callback(); cb != nil {
		h.respond(cb)
	}
	return h.dispatch(chat, ui.Event{
		Name:   service.EventWordOfDay,
		Region: h.regions.fresh(chat),
	})
}

// handleQuiz shows the quiz question in a new message
func (h *Handler) handleQuiz(c tele.Context) error {
	chat := c.Chat()
	if chat == nil {
		return nil
	}
	if cb := c.Callback(); cb != nil {
		h.respond(cb)
	}
	h.regions.retarget(chat, widgetQuiz, nil)
	return h.dispatch(chat, ui.Event{
		Name:   service.EventQuizStart,
		Region: h.regions.get(chat, widgetQuiz),
	})
}

// handleEventButton replays a widget button as an interaction event and
// updates the message the button belongs to.
func (h *Handler) handleEventButton(c tele.Context) error {
	callback := c.Callback()
	chat := c.Chat()
	if callback == nil || chat == nil {
		return nil
	}

	event, value, ok := parseEventData(callback.Data)
	if !ok {
		h.logger.Warn("Malformed event button", zap.String("data", callback.Data))
		h.respond(callback)
		return nil
	}
	h.respond(callback)

	widget := widgetFor(event)
	h.regions.retarget(chat, widget, callback.Message)
	return h.dispatch(chat, ui.Event{
		Name:   event,
		Value:  value,
		Region: h.regions.get(chat, widget),
	})
}
