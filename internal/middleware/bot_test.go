package middleware

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	tele "gopkg.in/telebot.v3"
)

func newTestContext() tele.Context {
	return tele.NewContext(nil, tele.Update{
		ID:      7,
		Message: &tele.Message{Text: "/wod", Chat: &tele.Chat{ID: 42}},
	})
}

func TestLogUpdates(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	mw := LogUpdates(zap.New(core))

	err := mw(func(c tele.Context) error { return nil })(newTestContext())
	require.NoError(t, err)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.DebugLevel, entry.Level)
	assert.Equal(t, int64(42), entry.ContextMap()["chat_id"])
	assert.Equal(t, int64(7), entry.ContextMap()["update_id"])
}

func TestLogUpdates_Error(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	mw := LogUpdates(zap.New(core))
	boom := errors.New("boom")

	err := mw(func(c tele.Context) error { return boom })(newTestContext())
	assert.ErrorIs(t, err, boom)

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, zapcore.ErrorLevel, logs.All()[0].Level)
}

func TestRecover(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	mw := Recover(zap.New(core))

	err := mw(func(c tele.Context) error { panic("kaboom") })(newTestContext())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kaboom")
	assert.Equal(t, 1, logs.Len())

	err = mw(func(c tele.Context) error { return nil })(newTestContext())
	assert.NoError(t, err)
}
