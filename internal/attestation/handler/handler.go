// Package handler is the thin HTTP layer over the registry engine. It
// delegates to the service without embedding business logic so transport
// concerns remain isolated.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"trustlink/internal/attestation/models"
	"trustlink/internal/platform/middleware"
	"trustlink/pkg/domain"
	derrors "trustlink/pkg/domain-errors"
)

// Service defines the engine operations the transport exposes.
type Service interface {
	Initialize(ctx context.Context, admin domain.Address) error
	RegisterIssuer(ctx context.Context, admin, issuer domain.Address) error
	RemoveIssuer(ctx context.Context, admin, issuer domain.Address) error
	CreateAttestation(ctx context.Context, issuer, subject domain.Address, claimType domain.ClaimType, expiration *uint64) (string, error)
	RevokeAttestation(ctx context.Context, issuer domain.Address, id string) error
	HasValidClaim(ctx context.Context, subject domain.Address, claimType domain.ClaimType) (bool, error)
	GetAttestation(ctx context.Context, id string) (models.Attestation, error)
	GetAttestationStatus(ctx context.Context, id string) (models.Status, error)
	GetSubjectAttestations(ctx context.Context, subject domain.Address, start, limit uint64) ([]string, error)
	GetIssuerAttestations(ctx context.Context, issuer domain.Address, start, limit uint64) ([]string, error)
	IsIssuer(ctx context.Context, address domain.Address) (bool, error)
	GetAdmin(ctx context.Context) (domain.Address, error)
}

// Handler handles registry endpoints.
type Handler struct {
	logger    *slog.Logger
	service   Service
	validator middleware.TokenValidator
}

// New creates a registry Handler.
func New(service Service, validator middleware.TokenValidator, logger *slog.Logger) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		validator: validator,
	}
}

// Register mounts the registry routes. Mutations require a bearer token;
// queries are public.
func (h *Handler) Register(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(h.validator, h.logger))
		r.Post("/v1/registry/initialize", h.handleInitialize)
		r.Post("/v1/registry/issuers", h.handleRegisterIssuer)
		r.Delete("/v1/registry/issuers/{address}", h.handleRemoveIssuer)
		r.Post("/v1/attestations", h.handleCreateAttestation)
		r.Post("/v1/attestations/{id}/revoke", h.handleRevokeAttestation)
	})

	r.Get("/v1/registry/admin", h.handleGetAdmin)
	r.Get("/v1/registry/issuers/{address}", h.handleIsIssuer)
	r.Get("/v1/attestations/{id}", h.handleGetAttestation)
	r.Get("/v1/attestations/{id}/status", h.handleGetAttestationStatus)
	r.Get("/v1/subjects/{address}/attestations", h.handleSubjectAttestations)
	r.Get("/v1/subjects/{address}/claims/{claimType}", h.handleHasValidClaim)
	r.Get("/v1/issuers/{address}/attestations", h.handleIssuerAttestations)
}

func (h *Handler) handleInitialize(w http.ResponseWriter, r *http.Request) {
	var req initializeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, derrors.New(derrors.CodeBadRequest, "invalid request body"))
		return
	}
	admin, err := domain.ParseAddress(req.Admin)
	if err != nil {
		writeError(w, derrors.New(derrors.CodeBadRequest, "admin address is required"))
		return
	}
	if err := h.service.Initialize(r.Context(), admin); err != nil {
		h.logError(r, "initialize failed", err)
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleRegisterIssuer(w http.ResponseWriter, r *http.Request) {
	var req issuerMutationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, derrors.New(derrors.CodeBadRequest, "invalid request body"))
		return
	}
	admin, issuer, err := req.parse()
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.service.RegisterIssuer(r.Context(), admin, issuer); err != nil {
		h.logError(r, "register issuer failed", err)
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleRemoveIssuer(w http.ResponseWriter, r *http.Request) {
	issuer, err := domain.ParseAddress(chi.URLParam(r, "address"))
	if err != nil {
		writeError(w, derrors.New(derrors.CodeBadRequest, "issuer address is required"))
		return
	}
	admin, err := domain.ParseAddress(r.URL.Query().Get("admin"))
	if err != nil {
		writeError(w, derrors.New(derrors.CodeBadRequest, "admin query parameter is required"))
		return
	}
	if err := h.service.RemoveIssuer(r.Context(), admin, issuer); err != nil {
		h.logError(r, "remove issuer failed", err)
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleCreateAttestation(w http.ResponseWriter, r *http.Request) {
	var req createAttestationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, derrors.New(derrors.CodeBadRequest, "invalid request body"))
		return
	}
	issuer, subject, claimType, err := req.parse()
	if err != nil {
		writeError(w, err)
		return
	}
	id, err := h.service.CreateAttestation(r.Context(), issuer, subject, claimType, req.Expiration)
	if err != nil {
		h.logError(r, "create attestation failed", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, createAttestationResponse{ID: id})
}

func (h *Handler) handleRevokeAttestation(w http.ResponseWriter, r *http.Request) {
	var req revokeAttestationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, derrors.New(derrors.CodeBadRequest, "invalid request body"))
		return
	}
	issuer, err := domain.ParseAddress(req.Issuer)
	if err != nil {
		writeError(w, derrors.New(derrors.CodeBadRequest, "issuer address is required"))
		return
	}
	if err := h.service.RevokeAttestation(r.Context(), issuer, chi.URLParam(r, "id")); err != nil {
		h.logError(r, "revoke attestation failed", err)
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleGetAdmin(w http.ResponseWriter, r *http.Request) {
	admin, err := h.service.GetAdmin(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, adminResponse{Admin: admin.String()})
}

func (h *Handler) handleIsIssuer(w http.ResponseWriter, r *http.Request) {
	address, err := domain.ParseAddress(chi.URLParam(r, "address"))
	if err != nil {
		writeError(w, derrors.New(derrors.CodeBadRequest, "address is required"))
		return
	}
	ok, err := h.service.IsIssuer(r.Context(), address)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, isIssuerResponse{Address: address.String(), IsIssuer: ok})
}

func (h *Handler) handleGetAttestation(w http.ResponseWriter, r *http.Request) {
	attestation, err := h.service.GetAttestation(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, attestation)
}

func (h *Handler) handleGetAttestationStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.service.GetAttestationStatus(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Status: status})
}

func (h *Handler) handleHasValidClaim(w http.ResponseWriter, r *http.Request) {
	subject, err := domain.ParseAddress(chi.URLParam(r, "address"))
	if err != nil {
		writeError(w, derrors.New(derrors.CodeBadRequest, "subject address is required"))
		return
	}
	claimType, err := domain.ParseClaimType(chi.URLParam(r, "claimType"))
	if err != nil {
		writeError(w, derrors.New(derrors.CodeBadRequest, "claim type is required"))
		return
	}
	valid, err := h.service.HasValidClaim(r.Context(), subject, claimType)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, validClaimResponse{
		Subject:   subject.String(),
		ClaimType: claimType.String(),
		Valid:     valid,
	})
}

func (h *Handler) handleSubjectAttestations(w http.ResponseWriter, r *http.Request) {
	h.handleListing(w, r, h.service.GetSubjectAttestations)
}

func (h *Handler) handleIssuerAttestations(w http.ResponseWriter, r *http.Request) {
	h.handleListing(w, r, h.service.GetIssuerAttestations)
}

func (h *Handler) handleListing(
	w http.ResponseWriter,
	r *http.Request,
	list func(ctx context.Context, key domain.Address, start, limit uint64) ([]string, error),
) {
	address, err := domain.ParseAddress(chi.URLParam(r, "address"))
	if err != nil {
		writeError(w, derrors.New(derrors.CodeBadRequest, "address is required"))
		return
	}
	start, limit, err := parsePagination(r)
	if err != nil {
		writeError(w, err)
		return
	}
	ids, err := list(r.Context(), address, start, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{IDs: ids, Start: start, Limit: limit})
}

func (h *Handler) logError(r *http.Request, msg string, err error) {
	h.logger.WarnContext(r.Context(), msg, "error", err.Error())
}
