// Package handler contains the chi HTTP handlers of the relay gateway.
package handler

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrijs2005/luvletter/internal/logging"
	"github.com/dmitrijs2005/luvletter/internal/relay/textbelt"
)

// apiKeyEnv names the environment variable holding the provider key. The
// key is read per request so it can be rotated without a restart.
const apiKeyEnv = "TEXTBELT_API_KEY"

// SMSHandler forwards send requests to the upstream provider.
type SMSHandler struct {
	provider *textbelt.Client
	logger   logging.Logger
	getenv   func(string) string // test seam
}

// NewSMSHandler constructs an SMSHandler.
func NewSMSHandler(provider *textbelt.Client, logger logging.Logger) *SMSHandler {
	return &SMSHandler{provider: provider, logger: logger, getenv: os.Getenv}
}

// NewRouter builds the gateway router. Any method other than POST on the
// send endpoint gets chi's 405 response.
func NewRouter(h *SMSHandler) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Post("/api/send-sms", h.SendSMS)
	return r
}

type sendRequest struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

type sendResponse struct {
	Success        bool   `json:"success"`
	TextID         string `json:"textId"`
	QuotaRemaining int    `json:"quotaRemaining"`
}

type errorResponse struct {
	Error          string `json:"error"`
	Details        string `json:"details,omitempty"`
	QuotaRemaining *int   `json:"quotaRemaining,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// SendSMS handles POST /api/send-sms.
//
// It validates the body, reads the provider key from the environment and
// forwards the message. Provider failures come back as 500 with the
// provider's own error text in `details` and the remaining quota when the
// provider reported one.
func (h *SMSHandler) SendSMS(w http.ResponseWriter, r *http.Request) {
	var req sendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	if req.To == "" || req.Message == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Missing required fields: to, message"})
		return
	}

	ctx := r.Context()

	key := h.getenv(apiKeyEnv)
	if key == "" {
		h.logger.Error(ctx, "provider api key is not set", "env", apiKeyEnv)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Server configuration error - missing Textbelt API key"})
		return
	}

	h.logger.Info(ctx, "forwarding sms", "to", req.To, "message_length", len(req.Message))

	result, err := h.provider.Send(ctx, req.To, req.Message, key)
	if err != nil {
		h.logger.Error(ctx, "provider request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to send SMS", Details: err.Error()})
		return
	}

	if !result.Success {
		h.logger.Error(ctx, "provider rejected message", "error", result.Error, "quota_remaining", result.QuotaRemaining)
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error:          "Failed to send SMS",
			Details:        result.Error,
			QuotaRemaining: &result.QuotaRemaining,
		})
		return
	}

	h.logger.Info(ctx, "sms sent", "text_id", result.TextID, "quota_remaining", result.QuotaRemaining)

	writeJSON(w, http.StatusOK, sendResponse{
		Success:        true,
		TextID:         result.TextID,
		QuotaRemaining: result.QuotaRemaining,
	})
}
