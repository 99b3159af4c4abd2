// Package web serves the study page and turns its interaction events
// into registry dispatches.
package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"time"

	"studyenglish/internal/middleware"
	"studyenglish/internal/render"
	"studyenglish/internal/service"
	"studyenglish/internal/ui"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

// Headers exchanged with the page script
const (
	HeaderRegionMode = "X-Region-Mode"
	HeaderRequestSeq = "X-Request-Seq"
)

// Server serves the page and its events
type Server struct {
	registry *ui.Registry
	widgets  *service.WidgetService
	policy   ui.Policy
	logger   *zap.Logger
	now      func() time.Time
}

// NewServer creates the page server. Events are dispatched through
// registry, which may be wired after the server is created.
func NewServer(registry *ui.Registry, widgets *service.WidgetService, policy ui.Policy, logger *zap.Logger) *Server {
	return &Server{
		registry: registry,
		widgets:  widgets,
		policy:   policy,
		logger:   logger,
		now:      time.Now,
	}
}

// Handler returns the routes wrapped in the middleware chain
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handlePage)
	mux.Handle("GET /static/", http.FileServer(http.FS(staticFS)))
	mux.HandleFunc("POST /events/{name}", s.handleEvent)
	mux.HandleFunc("GET /health", s.handleHealth)

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(s.logger),
		middleware.Recovery(s.logger),
	)(mux)
}

// Host renders the page once and reports the element IDs it contains
func (s *Server) Host() (ui.Elements, error) {
	var buf bytes.Buffer
	if err := s.render(&buf); err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(&buf)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}

	var ids []string
	doc.Find("[id]").Each(func(_ int, sel *goquery.Selection) {
		ids = append(ids, sel.AttrOr("id", ""))
	})
	return ui.NewElements(ids...), nil
}

func (s *Server) render(w io.Writer) error {
	wod := s.widgets.WordOfDay()
	data := pageData{
		Year:   s.now().Year(),
		Policy: string(s.policy),
		// Fragments are escaped when rendered.
		WordOfDay: template.HTML(render.WordOfDay(wod.Word, wod.Definition)),
	}
	if err := pageTmpl.ExecuteTemplate(w, "index.html", data); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := s.render(&buf); err != nil {
		s.logger.Error("Failed to render page", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleEvent(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	out := &responseRegion{}
	err := s.registry.Dispatch(r.Context(), ui.Event{
		Name:         name,
		Value:        r.PostFormValue("value"),
		Key:          r.PostFormValue("key"),
		Region:       out,
		Log:          out,
		AwaitPending: true,
	})
	switch {
	case errors.Is(err, ui.ErrUnknownEvent):
		http.Error(w, "unknown event", http.StatusNotFound)
		return
	case err != nil:
		s.logger.Error("Event failed",
			zap.String("event", name),
			zap.String("request_id", middleware.RequestIDFromContext(r.Context())),
			zap.Error(err),
		)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	mode, body := out.result()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set(HeaderRegionMode, mode)
	if seq := r.Header.Get(HeaderRequestSeq); seq != "" {
		w.Header().Set(HeaderRequestSeq, seq)
	}
	_, _ = io.WriteString(w, body)
}

type healthResponse struct {
	Status string `json:"status"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(healthResponse{Status: "ok"})
}
