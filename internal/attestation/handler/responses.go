package handler

import (
	"encoding/json"
	"net/http"

	"trustlink/internal/attestation/models"
	derrors "trustlink/pkg/domain-errors"
)

type createAttestationResponse struct {
	ID string `json:"id"`
}

type adminResponse struct {
	Admin string `json:"admin"`
}

type isIssuerResponse struct {
	Address  string `json:"address"`
	IsIssuer bool   `json:"is_issuer"`
}

type statusResponse struct {
	Status models.Status `json:"status"`
}

type validClaimResponse struct {
	Subject   string `json:"subject"`
	ClaimType string `json:"claim_type"`
	Valid     bool   `json:"valid"`
}

type listResponse struct {
	IDs   []string `json:"ids"`
	Start uint64   `json:"start"`
	Limit uint64   `json:"limit"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, err error) {
	code := derrors.CodeOf(err)
	writeJSON(w, derrors.ToHTTPStatus(code), errorResponse{
		Code:    string(code),
		Message: err.Error(),
	})
}
