package service

import (
	"context"
	"errors"

	"studyenglish/internal/localdict"
	"studyenglish/internal/render"
	"studyenglish/internal/ui"

	"go.uber.org/zap"
)

// Element IDs the page exposes for each widget
const (
	ElemEngInput  = "engInput"
	ElemEngButton = "engLookupBtn"
	ElemEngResult = "engResult"

	ElemViInput  = "viInput"
	ElemViButton = "viLookupBtn"
	ElemViResult = "viResult"

	ElemVvInput  = "vvInput"
	ElemVvButton = "vvLookupBtn"
	ElemVvResult = "vvResult"

	ElemWordOfDay = "wordOfTheDay"

	ElemChatInput     = "chatInput"
	ElemChatButton    = "sendChatBtn"
	ElemChatContainer = "chatContainer"

	ElemQuizButton    = "startQuizBtn"
	ElemQuizContainer = "quizContainer"
)

// Event names
const (
	EventEngClick   = "eng.lookup.click"
	EventEngKeydown = "eng.input.keydown"

	EventViClick   = "vi.lookup.click"
	EventViKeydown = "vi.input.keydown"

	EventVvClick   = "vv.lookup.click"
	EventVvKeydown = "vv.input.keydown"

	EventWordOfDay = "wod.show"

	EventChatClick   = "chat.send.click"
	EventChatKeydown = "chat.input.keydown"

	EventQuizStart  = "quiz.start.click"
	EventQuizAnswer = render.QuizEvent
)

var (
	// ErrNoRegion is returned when an event carries no display region.
	ErrNoRegion = errors.New("event without display region")
	// ErrNoLog is returned when a chat event carries no log to append to.
	ErrNoLog = errors.New("chat event without log")
)

// Services bundles the use cases widgets are wired to
type Services struct {
	English *EnglishService
	Local   *LocalService
	Widgets *WidgetService
	logger  *zap.Logger
}

// NewServices creates the service bundle
func NewServices(english *EnglishService, local *LocalService, widgets *WidgetService, logger *zap.Logger) *Services {
	return &Services{
		English: english,
		Local:   local,
		Widgets: widgets,
		logger:  logger,
	}
}

// Bindings lists every widget with the elements it needs and its handlers
func (s *Services) Bindings() []ui.Binding {
	english := withRegion(s.englishLookup)
	vi := withRegion(s.localLookup(localdict.VIEN, render.LocalVietnameseEnglish))
	vv := withRegion(s.localLookup(localdict.VIVI, render.LocalVietnameseDefinition))

	return []ui.Binding{
		{
			Widget:   "english",
			Elements: []string{ElemEngInput, ElemEngButton, ElemEngResult},
			Events: map[string]ui.Handler{
				EventEngClick:   english,
				EventEngKeydown: ui.OnEnter(english),
			},
		},
		{
			Widget:   "vi-en",
			Elements: []string{ElemViInput, ElemViButton, ElemViResult},
			Events: map[string]ui.Handler{
				EventViClick:   vi,
				EventViKeydown: ui.OnEnter(vi),
			},
		},
		{
			Widget:   "vi-vi",
			Elements: []string{ElemVvInput, ElemVvButton, ElemVvResult},
			Events: map[string]ui.Handler{
				EventVvClick:   vv,
				EventVvKeydown: ui.OnEnter(vv),
			},
		},
		{
			Widget:   "word-of-day",
			Elements: []string{ElemWordOfDay},
			Events: map[string]ui.Handler{
				EventWordOfDay: withRegion(s.wordOfDay),
			},
		},
		{
			Widget:   "chat",
			Elements: []string{ElemChatInput, ElemChatButton, ElemChatContainer},
			Events: map[string]ui.Handler{
				EventChatClick:   s.chat,
				EventChatKeydown: ui.OnEnter(s.chat),
			},
		},
		{
			Widget:   "quiz",
			Elements: []string{ElemQuizButton, ElemQuizContainer},
			Events: map[string]ui.Handler{
				EventQuizStart:  withRegion(s.quizStart),
				EventQuizAnswer: withRegion(s.quizAnswer),
			},
		},
	}
}

// Wire registers the widgets whose elements exist on host. Widgets with
// missing elements stay inactive.
func (s *Services) Wire(reg *ui.Registry, host ui.Host) []string {
	var active []string
	for _, b := range s.Bindings() {
		if !reg.Bind(host, b) {
			s.logger.Info("Widget inactive, elements missing",
				zap.String("widget", b.Widget),
				zap.Strings("elements", b.Elements),
			)
			continue
		}
		active = append(active, b.Widget)
	}
	return active
}

func withRegion(h ui.Handler) ui.Handler {
	return func(ctx context.Context, ev ui.Event) error {
		if ev.Region == nil {
			return ErrNoRegion
		}
		return h(ctx, ev)
	}
}

func (s *Services) englishLookup(ctx context.Context, ev ui.Event) error {
	_, err := s.English.Lookup(ctx, ev.Value, ev.Region)
	if err != nil {
		// Validation errors are already shown as a prompt.
		s.logger.Debug("English lookup rejected", zap.Error(err))
	}
	return nil
}

func (s *Services) localLookup(dict *localdict.Dictionary, kind render.LocalKind) ui.Handler {
	return func(ctx context.Context, ev ui.Event) error {
		s.Local.Lookup(dict, kind, ev.Value, ev.Region)
		return nil
	}
}

func (s *Services) wordOfDay(ctx context.Context, ev ui.Event) error {
	s.Widgets.ShowWordOfDay(ev.Region)
	return nil
}

func (s *Services) chat(ctx context.Context, ev ui.Event) error {
	if ev.Log == nil {
		return ErrNoLog
	}
	done := s.Widgets.SendChat(ev.Value, ev.Log)
	if done == nil || !ev.AwaitPending {
		return nil
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Services) quizStart(ctx context.Context, ev ui.Event) error {
	s.Widgets.StartQuiz(ev.Region)
	return nil
}

func (s *Services) quizAnswer(ctx context.Context, ev ui.Event) error {
	s.Widgets.AnswerQuiz(ev.Value, ev.Region)
	return nil
}
