package middleware

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// LogUpdates logs every update handled by the bot
func LogUpdates(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			start := time.Now()
			err := next(c)

			fields := []zap.Field{
				zap.Int("update_id", c.Update().ID),
				zap.Duration("duration", time.Since(start)),
			}
			if chat := c.Chat(); chat != nil {
				fields = append(fields, zap.Int64("chat_id", chat.ID))
			}
			if err != nil {
				logger.Error("Update failed", append(fields, zap.Error(err))...)
				return err
			}
			logger.Debug("Update handled", fields...)
			return nil
		}
	}
}

// Recover turns a handler panic into an error so the poller keeps running
func Recover(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) (err error) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("Panic recovered in bot handler", zap.String("error", fmt.Sprint(rec)))
					err = fmt.Errorf("handler panic: %v", rec)
				}
			}()
			return next(c)
		}
	}
}
