// Package portal serves the client-facing surface: document views
// resolved by share token and a magic-link session exchange. Nothing
// here trusts the tenant header; every lookup goes through a token the
// client was handed. Unknown or expired tokens always read as a plain
// not found.
package portal

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rgoodwin/quoteforge/internal/changeorder"
	"github.com/rgoodwin/quoteforge/internal/client"
	"github.com/rgoodwin/quoteforge/internal/job"
	"github.com/rgoodwin/quoteforge/internal/notify"
	"github.com/rgoodwin/quoteforge/internal/quote"
)

type Handler struct {
	quotes       *quote.Service
	changeOrders *changeorder.Service
	jobs         *job.Service
	clients      *client.Service
	sessions     *Sessions
	notifier     *notify.Notifier
}

func NewHandler(quotes *quote.Service, changeOrders *changeorder.Service, jobs *job.Service, clients *client.Service, sessions *Sessions, notifier *notify.Notifier) *Handler {
	return &Handler{
		quotes:       quotes,
		changeOrders: changeOrders,
		jobs:         jobs,
		clients:      clients,
		sessions:     sessions,
		notifier:     notifier,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/session", h.exchangeMagicLink)
	r.Get("/me", h.me)

	r.Get("/quotes/{token}", h.viewQuote)
	r.Post("/quotes/{token}/sign", h.signQuote)

	r.Get("/jobs/{token}", h.viewJob)

	r.Get("/change-orders/{token}", h.viewChangeOrder)
	r.Post("/change-orders/{token}/sign", h.signChangeOrder)
}

func notFound(w http.ResponseWriter) {
	http.Error(w, "not found", http.StatusNotFound)
}

type exchangeRequest struct {
	MagicLinkToken string `json:"magic_link_token"`
}

type exchangeResponse struct {
	SessionToken string         `json:"session_token"`
	Client       clientResponse `json:"client"`
}

func (h *Handler) exchangeMagicLink(w http.ResponseWriter, r *http.Request) {
	var req exchangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.clients.GetByMagicLink(r.Context(), req.MagicLinkToken)
	if err != nil {
		notFound(w)
		return
	}

	token, err := h.sessions.Mint(c.CompanyID, c.ID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	resp := exchangeResponse{SessionToken: token, Client: toClientResponse(c)}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	companyID, clientID, ok := h.authorize(w, r)
	if !ok {
		return
	}

	c, err := h.clients.Get(r.Context(), companyID, clientID)
	if err != nil {
		notFound(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toClientResponse(c)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// viewQuote resolves a share token and records the first view.
func (h *Handler) viewQuote(w http.ResponseWriter, r *http.Request) {
	q, err := h.quotes.GetByToken(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		notFound(w)
		return
	}

	if q, err = h.quotes.MarkViewed(r.Context(), q); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toQuoteView(q)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type signRequest struct {
	SignatureImage string          `json:"signature_image"`
	SignerName     string          `json:"signer_name"`
	SignerEmail    string          `json:"signer_email"`
	SignerGeo      json.RawMessage `json:"signer_geo,omitempty"`
}

func (h *Handler) signQuote(w http.ResponseWriter, r *http.Request) {
	var req signRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	q, err := h.quotes.SignByToken(r.Context(), chi.URLParam(r, "token"), quote.SignParams{
		SignatureImage: req.SignatureImage,
		SignerName:     req.SignerName,
		SignerEmail:    req.SignerEmail,
		SignerIP:       remoteIP(r),
		SignerGeo:      req.SignerGeo,
	})
	if err != nil {
		writeSignError(w, err)
		return
	}

	jobNumber := ""
	if j, err := h.jobs.GetByQuote(r.Context(), q.CompanyID, q.ID); err == nil {
		jobNumber = j.JobNumber
	}

	h.notifier.QuoteSigned(r.Context(), q, jobNumber)

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toQuoteView(q)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// viewJob resolves a job's share token. Jobs are view-only on the
// portal; its change orders carry their own tokens for signing.
func (h *Handler) viewJob(w http.ResponseWriter, r *http.Request) {
	j, err := h.jobs.GetByToken(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		notFound(w)
		return
	}

	orders, err := h.changeOrders.List(r.Context(), j.CompanyID, j.ID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toJobView(j, orders)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) viewChangeOrder(w http.ResponseWriter, r *http.Request) {
	co, err := h.changeOrders.GetByToken(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		notFound(w)
		return
	}

	if co, err = h.changeOrders.MarkViewed(r.Context(), co); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toChangeOrderView(co)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) signChangeOrder(w http.ResponseWriter, r *http.Request) {
	var req signRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	co, err := h.changeOrders.SignByToken(r.Context(), chi.URLParam(r, "token"), changeorder.SignParams{
		SignatureImage: req.SignatureImage,
		SignerName:     req.SignerName,
		SignerEmail:    req.SignerEmail,
		SignerIP:       remoteIP(r),
		SignerGeo:      req.SignerGeo,
	})
	if err != nil {
		writeSignError(w, err)
		return
	}

	// The signed document carries the job's identity for the
	// confirmation email.
	if j, jerr := h.jobForChangeOrder(r, co); jerr == nil {
		h.notifier.ChangeOrderSigned(r.Context(), co, j.CompanyID, j.ClientID)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toChangeOrderView(co)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) jobForChangeOrder(r *http.Request, co *changeorder.ChangeOrder) (*job.Job, error) {
	return h.jobs.GetByID(r.Context(), co.JobID)
}

func writeSignError(w http.ResponseWriter, err error) {
	var qErr *quote.ValidationError
	var coErr *changeorder.ValidationError

	switch {
	case errors.Is(err, quote.ErrNotFound), errors.Is(err, changeorder.ErrNotFound):
		notFound(w)
	case errors.As(err, &qErr), errors.As(err, &coErr):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, quote.ErrAlreadyAccepted), errors.Is(err, changeorder.ErrAlreadySigned),
		errors.Is(err, quote.ErrStale), errors.Is(err, changeorder.ErrStale):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (h *Handler) authorize(w http.ResponseWriter, r *http.Request) (companyID, clientID uuid.UUID, ok bool) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if token == "" {
		http.Error(w, "missing session token", http.StatusUnauthorized)
		return uuid.Nil, uuid.Nil, false
	}

	co, cl, err := h.sessions.Verify(token)
	if err != nil {
		http.Error(w, "invalid session token", http.StatusUnauthorized)
		return uuid.Nil, uuid.Nil, false
	}

	return co, cl, true
}

func remoteIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}

	return r.RemoteAddr
}
