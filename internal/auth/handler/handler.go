// Package handler exposes token issuance: a caller who presents the shared
// enrollment secret gets a bearer token for their principal address.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"trustlink/internal/auth"
	"trustlink/pkg/domain"
	derrors "trustlink/pkg/domain-errors"
	"trustlink/pkg/platform/secrets"
)

// Handler issues bearer tokens.
type Handler struct {
	logger     *slog.Logger
	tokens     *auth.TokenService
	secretHash string
	tokenTTL   time.Duration
}

// New creates a token Handler. secretHash is the bcrypt hash of the shared
// enrollment secret; when empty, issuance is disabled and the endpoint
// rejects every request.
func New(tokens *auth.TokenService, secretHash string, tokenTTL time.Duration, logger *slog.Logger) *Handler {
	return &Handler{
		logger:     logger,
		tokens:     tokens,
		secretHash: secretHash,
		tokenTTL:   tokenTTL,
	}
}

// Register mounts the token route.
func (h *Handler) Register(r chi.Router) {
	r.Post("/v1/auth/token", h.handleIssueToken)
}

type issueTokenRequest struct {
	Address string `json:"address"`
	Secret  string `json:"secret"`
}

type issueTokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}

func (h *Handler) handleIssueToken(w http.ResponseWriter, r *http.Request) {
	var req issueTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, derrors.New(derrors.CodeBadRequest, "invalid request body"))
		return
	}
	address, err := domain.ParseAddress(req.Address)
	if err != nil {
		writeError(w, derrors.New(derrors.CodeBadRequest, "address is required"))
		return
	}
	if h.secretHash == "" {
		writeError(w, derrors.New(derrors.CodeUnauthorized, "token issuance is disabled"))
		return
	}
	if err := secrets.Verify(req.Secret, h.secretHash); err != nil {
		h.logger.WarnContext(r.Context(), "rejected enrollment secret", "address", address.String())
		writeError(w, derrors.New(derrors.CodeUnauthorized, "invalid enrollment secret"))
		return
	}

	token, err := h.tokens.GenerateToken(address, h.tokenTTL)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to mint token", "error", err.Error())
		writeError(w, derrors.Wrap(err, derrors.CodeInternal, "failed to mint token"))
		return
	}
	writeJSON(w, http.StatusOK, issueTokenResponse{
		Token:     token,
		ExpiresIn: int64(h.tokenTTL.Seconds()),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, err error) {
	code := derrors.CodeOf(err)
	writeJSON(w, derrors.ToHTTPStatus(code), map[string]string{
		"code":    string(code),
		"message": err.Error(),
	})
}
