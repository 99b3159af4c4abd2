package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command and the menu button
func (h *Handler) handleStart(c tele.Context) error {
	chat := c.Chat()
	if chat == nil {
		return nil
	}

	fields := []zap.Field{zap.Int64("chat_id", chat.ID)}
	if sender := c.Sender(); sender != nil {
		fields = append(fields, zap.String("username", sender.Username))
	}
	h.logger.Info("User opened menu", fields...)

	if cb := c.Callback(); cb != nil {
		h.respond(cb)
	}
	_, err := h.bot.Send(chat, msgMenu, mainMenuMarkup())
	return err
}
