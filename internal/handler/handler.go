package handler

import (
	"context"
	"errors"
	"fmt"

	"studyenglish/internal/ui"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Bot is the part of *tele.Bot the handler uses
type Bot interface {
	Handle(endpoint interface{}, h tele.HandlerFunc, m ...tele.MiddlewareFunc)
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
	Edit(msg tele.Editable, what interface{}, opts ...interface{}) (*tele.Message, error)
	Respond(c *tele.Callback, resp ...*tele.CallbackResponse) error
}

// Handler exposes the study widgets as a Telegram bot
type Handler struct {
	bot      Bot
	registry *ui.Registry
	regions  *regions
	logger   *zap.Logger
}

// NewHandler creates a new handler instance. Results of overlapping
// lookups in one chat are ordered by policy.
func NewHandler(bot Bot, registry *ui.Registry, policy ui.Policy, logger *zap.Logger) *Handler {
	return &Handler{
		bot:      bot,
		registry: registry,
		regions:  newRegions(bot, policy, logger),
		logger:   logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/en", h.handleEnglish)
	h.bot.Handle("/vi", h.handleVietnamese)
	h.bot.Handle("/vv", h.handleDefinition)
	h.bot.Handle("/wod", h.handleWordOfDay)
	h.bot.Handle("/quiz", h.handleQuiz)

	// Text messages go to the chat widget
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnWordOfDay, h.handleWordOfDay)
	h.bot.Handle(&btnQuiz, h.handleQuiz)
	h.bot.Handle(&btnEvent, h.handleEventButton)
	h.bot.Handle(&btnMainMenu, h.handleStart)

	// Generic callback handler for dynamic data
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// Inline keyboard buttons
var (
	btnWordOfDay = tele.Btn{
		Unique: "word_of_day",
		Text:   "🌟 Từ của ngày",
	}
	btnQuiz = tele.Btn{
		Unique: "quiz",
		Text:   "📝 Câu đố",
	}
	btnMainMenu = tele.Btn{
		Unique: "main_menu",
		Text:   "🏠 Menu",
	}
	// btnEvent carries "<event>:<value>" for buttons rendered by widgets.
	btnEvent = tele.Btn{
		Unique: "event",
	}
)

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnWordOfDay),
		menu.Row(btnQuiz),
	)
	return menu
}

// dispatch runs an interaction event and reports widgets this bot does
// not serve to the user.
func (h *Handler) dispatch(chat *tele.Chat, ev ui.Event) error {
	err := h.registry.Dispatch(context.Background(), ev)
	if errors.Is(err, ui.ErrUnknownEvent) {
		h.logger.Warn("Event not available", zap.String("event", ev.Name), zap.Int64("chat_id", chat.ID))
		_, sendErr := h.bot.Send(chat, msgUnavailable)
		return sendErr
	}
	if err != nil {
		return fmt.Errorf("dispatch %s: %w", ev.Name, err)
	}
	return nil
}

// HandleError logs a failed update and tells the chat something went
// wrong. It is installed as the bot's OnError hook.
func (h *Handler) HandleError(err error, c tele.Context) {
	fields := []zap.Field{zap.Error(err)}
	var chat *tele.Chat
	if c != nil {
		chat = c.Chat()
	}
	if chat == nil {
		h.logger.Error("Bot handler error", fields...)
		return
	}
	h.logger.Error("Bot handler error", append(fields, zap.Int64("chat_id", chat.ID))...)
	if _, sendErr := h.bot.Send(chat, msgError); sendErr != nil {
		h.logger.Warn("Failed to report error to chat", zap.Error(sendErr))
	}
}

const (
	msgMenu = "📚 Study English\n\n" +
		"/en <từ>: tra từ tiếng Anh\n" +
		"/vi <từ>: từ điển Việt - Anh (demo)\n" +
		"/vv <từ>: từ điển Việt - Việt (demo)\n" +
		"/wod: từ của ngày\n" +
		"/quiz: câu đố\n\n" +
		"Gửi tin nhắn bất kỳ để trò chuyện với AI demo."
	msgUnavailable = "Tính năng này hiện không khả dụng."
	msgError       = "Đã xảy ra lỗi. Vui lòng thử lại sau."
)
