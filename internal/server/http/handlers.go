package httptransport

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/gophclip/internal/common"
	"github.com/dmitrijs2005/gophclip/internal/logging"
)

type shareRequest struct {
	Content   string `json:"content"`
	ExpiresAt string `json:"expiresAt"`
}

type shareResponse struct {
	Code string `json:"code"`
}

type fetchRequest struct {
	Code string `json:"code"`
}

type fetchResponse struct {
	Content string `json:"content"`
}

type handlers struct {
	log      logging.Logger
	issuer   Issuer
	resolver Resolver
}

func (h *handlers) share(w http.ResponseWriter, r *http.Request) {
	var req shareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Debug(r.Context(), "invalid share body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	code, err := h.issuer.Issue(r.Context(), req.Content, req.ExpiresAt)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, shareResponse{Code: code})
}

func (h *handlers) fetch(w http.ResponseWriter, r *http.Request) {
	var req fetchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Debug(r.Context(), "invalid fetch body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	content, err := h.resolver.Resolve(r.Context(), req.Code)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, fetchResponse{Content: content})
}

// writeServiceError maps the error taxonomy to status codes. Only
// validation messages reach the caller verbatim.
func (h *handlers) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrorValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, common.ErrorNotFound):
		writeError(w, http.StatusNotFound, common.NotFoundMessage)
	case errors.Is(err, common.ErrorCapacityExhausted):
		w.Header().Set("Retry-After", "1")
		writeError(w, http.StatusServiceUnavailable, common.CapacityExhaustedMessage)
	default:
		h.log.Error(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
