package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/copperline/callsink/internal/events"
	"github.com/copperline/callsink/internal/payload"
)

// CallSink persists one normalized call record per webhook delivery.
type CallSink interface {
	InsertCall(ctx context.Context, rec payload.CallRecord) error
}

// EventPublisher announces stored calls. May be absent — the service runs
// without an event bus, it just stays quiet.
type EventPublisher interface {
	Publish(subject string, data any) error
}

type Server struct {
	router   *chi.Mux
	port     int
	sink     CallSink
	events   EventPublisher
	triggers []string
	logger   *slog.Logger
}

func NewServer(port int, sink CallSink, pub EventPublisher, triggers []string, logger *slog.Logger) *Server {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	s := &Server{
		router:   router,
		port:     port,
		sink:     sink,
		events:   pub,
		triggers: triggers,
		logger:   logger,
	}

	router.Post("/webhook", s.webhook)
	router.Get("/health", s.health)
	router.Get("/status", s.status)

	return s
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("API server starting", "addr", addr)
	return http.ListenAndServe(addr, s.router)
}

// webhook handles one post-call notification: decode, normalize, store.
// Persistence failures propagate as 500 — silently dropping a record would
// lose data with no retry anywhere in the pipeline.
func (s *Server) webhook(w http.ResponseWriter, r *http.Request) {
	deliveryID := uuid.NewString()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.logger.Error("failed to read webhook body", "delivery_id", deliveryID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to read request body"})
		return
	}

	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		s.logger.Error("webhook body is not valid JSON", "delivery_id", deliveryID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "invalid JSON payload"})
		return
	}

	rec := payload.Normalize(raw, s.triggers)
	s.logger.Info("payload received",
		"delivery_id", deliveryID,
		"conversation_id", strOrEmpty(rec.ConversationID),
		"voicemail_detected", rec.VoicemailDetected,
	)

	if err := s.sink.InsertCall(r.Context(), rec); err != nil {
		s.logger.Error("failed to store call", "delivery_id", deliveryID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	if s.events != nil {
		ev := events.NewCallStored(deliveryID, rec.AgentID, rec.ConversationID, rec.VoicemailDetected)
		if err := s.events.Publish(events.SubjectCallStored, ev); err != nil {
			s.logger.Warn("failed to publish call stored event", "delivery_id", deliveryID, "error", err)
		}
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) status(w http.ResponseWriter, r *http.Request) {
	eventsState := "disabled"
	if s.events != nil {
		eventsState = "enabled"
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"service": "callsink",
		"status":  "ok",
		"events":  eventsState,
	})
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
