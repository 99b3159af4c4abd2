package service

import (
	"time"

	"studyenglish/internal/domain"
	"studyenglish/internal/render"
	"studyenglish/internal/ui"
	"studyenglish/internal/widget"

	"go.uber.org/zap"
)

// WidgetService drives the word-of-the-day, chat and quiz widgets
type WidgetService struct {
	chat   *widget.Chat
	quiz   widget.Quiz
	now    func() time.Time
	logger *zap.Logger
}

// NewWidgetService creates a new widget service
func NewWidgetService(chat *widget.Chat, quiz widget.Quiz, logger *zap.Logger) *WidgetService {
	return &WidgetService{
		chat:   chat,
		quiz:   quiz,
		now:    time.Now,
		logger: logger,
	}
}

// WordOfDay returns today's word
func (s *WidgetService) WordOfDay() domain.WordOfDay {
	return domain.WordOfDayFor(s.now())
}

// ShowWordOfDay fills region with today's word
func (s *WidgetService) ShowWordOfDay(region ui.Region) {
	w := s.WordOfDay()
	region.Replace(render.WordOfDay(w.Word, w.Definition))
}

// Quiz returns the quiz shown by the widget
func (s *WidgetService) Quiz() widget.Quiz {
	return s.quiz
}

// StartQuiz shows the question
func (s *WidgetService) StartQuiz(region ui.Region) {
	region.Replace(s.quiz.Start())
}

// AnswerQuiz shows the question with a verdict for choice
func (s *WidgetService) AnswerQuiz(choice string, region ui.Region) bool {
	f, correct := s.quiz.Check(choice)
	s.logger.Debug("Quiz answered", zap.String("choice", choice), zap.Bool("correct", correct))
	region.Replace(f)
	return correct
}

// SendChat appends the user's message and the delayed reply to log. The
// returned channel is closed once the reply is in, nil for blank text.
func (s *WidgetService) SendChat(text string, log ui.Appender) <-chan struct{} {
	return s.chat.Send(text, log)
}
