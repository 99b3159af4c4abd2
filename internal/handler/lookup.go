package handler

import (
	"strings"

	"studyenglish/internal/service"
	"studyenglish/internal/ui"

	tele "gopkg.in/telebot.v3"
)

// handleEnglish handles /en <word>
func (h *Handler) handleEnglish(c tele.Context) error {
	return h.lookup(c, service.EventEngClick, widgetEnglish)
}

// handleVietnamese handles /vi <word>
func (h *Handler) handleVietnamese(c tele.Context) error {
	return h.lookup(c, service.EventViClick, widgetVietnamese)
}

// handleDefinition handles /vv <word>
func (h *Handler) handleDefinition(c tele.Context) error {
	return h.lookup(c, service.EventVvClick, widgetDefinition)
}

func (h *Handler) lookup(c tele.Context, event, widget string) error {
	chat := c.Chat()
	if chat == nil {
		return nil
	}
	return h.dispatch(chat, ui.Event{
		Name:   event,
		Value:  commandPayload(c),
		Region: h.regions.get(chat, widget),
	})
}

// handleText sends plain messages to the chat widget
func (h *Handler) handleText(c tele.Context) error {
	chat := c.Chat()
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if chat == nil || strings.HasPrefix(text, "/") {
		return nil
	}

	return h.dispatch(chat, ui.Event{
		Name:  service.EventChatClick,
		Value: text,
		Log:   h.regions.log(chat),
	})
}

// commandPayload returns the text after the command
func commandPayload(c tele.Context) string {
	msg := c.Message()
	if msg == nil {
		return ""
	}
	if msg.Payload != "" {
		return msg.Payload
	}
	_, rest, _ := strings.Cut(strings.TrimSpace(msg.Text), " ")
	return rest
}
