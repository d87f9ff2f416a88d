package voice

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rgoodwin/quoteforge/internal/tenant"
	"github.com/rgoodwin/quoteforge/internal/voice"
)

// maxAudioBytes caps an uploaded recording at 25 MB.
const maxAudioBytes = 25 << 20

type Handler struct {
	svc *voice.Service
}

func NewHandler(svc *voice.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.start)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Post("/{id}/audio", h.attachAudio)
	r.Post("/{id}/retry", h.retry)
}

type startSessionRequest struct {
	Purpose       voice.Purpose `json:"purpose"`
	QuoteID       *uuid.UUID    `json:"quote_id,omitempty"`
	ChangeOrderID *uuid.UUID    `json:"change_order_id,omitempty"`
}

func (h *Handler) start(w http.ResponseWriter, r *http.Request) {
	companyID, ok := tenant.CompanyID(w, r)
	if !ok {
		return
	}

	var req startSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	session, err := h.svc.Start(r.Context(), companyID, voice.StartParams{
		Purpose:       req.Purpose,
		QuoteID:       req.QuoteID,
		ChangeOrderID: req.ChangeOrderID,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(session)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	companyID, ok := tenant.CompanyID(w, r)
	if !ok {
		return
	}

	sessions, err := h.svc.List(r.Context(), companyID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(sessions)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	companyID, ok := tenant.CompanyID(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	session, err := h.svc.Get(r.Context(), companyID, id)
	if err != nil {
		if errors.Is(err, voice.ErrNotFound) {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(session)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// attachAudio accepts the raw recording as the request body; the
// Content-Type header names its format and an optional query parameter
// carries the recorded duration.
func (h *Handler) attachAudio(w http.ResponseWriter, r *http.Request) {
	companyID, ok := tenant.CompanyID(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	audio, err := io.ReadAll(io.LimitReader(r.Body, maxAudioBytes+1))
	if err != nil {
		http.Error(w, "reading audio body", http.StatusBadRequest)
		return
	}

	if len(audio) > maxAudioBytes {
		http.Error(w, "audio exceeds size limit", http.StatusRequestEntityTooLarge)
		return
	}

	var duration *int
	if s := r.URL.Query().Get("duration_seconds"); s != "" {
		if d, err := strconv.Atoi(s); err == nil {
			duration = &d
		}
	}

	session, err := h.svc.AttachAudio(r.Context(), companyID, id, audio, r.Header.Get("Content-Type"), duration)
	if err != nil {
		if errors.Is(err, voice.ErrNotFound) {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)

	if err := json.NewEncoder(w).Encode(toResponse(session)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) retry(w http.ResponseWriter, r *http.Request) {
	companyID, ok := tenant.CompanyID(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	session, err := h.svc.Retry(r.Context(), companyID, id)
	if err != nil {
		if errors.Is(err, voice.ErrNotFound) {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusConflict)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)

	if err := json.NewEncoder(w).Encode(toResponse(session)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
