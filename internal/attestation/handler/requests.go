package handler

import (
	"net/http"
	"strconv"

	"trustlink/pkg/domain"
	derrors "trustlink/pkg/domain-errors"
)

const defaultPageLimit = 50

type initializeRequest struct {
	Admin string `json:"admin"`
}

type issuerMutationRequest struct {
	Admin  string `json:"admin"`
	Issuer string `json:"issuer"`
}

func (r issuerMutationRequest) parse() (admin, issuer domain.Address, err error) {
	admin, err = domain.ParseAddress(r.Admin)
	if err != nil {
		return "", "", derrors.New(derrors.CodeBadRequest, "admin address is required")
	}
	issuer, err = domain.ParseAddress(r.Issuer)
	if err != nil {
		return "", "", derrors.New(derrors.CodeBadRequest, "issuer address is required")
	}
	return admin, issuer, nil
}

type createAttestationRequest struct {
	Issuer     string  `json:"issuer"`
	Subject    string  `json:"subject"`
	ClaimType  string  `json:"claim_type"`
	Expiration *uint64 `json:"expiration,omitempty"`
}

func (r createAttestationRequest) parse() (issuer, subject domain.Address, claimType domain.ClaimType, err error) {
	issuer, err = domain.ParseAddress(r.Issuer)
	if err != nil {
		return "", "", "", derrors.New(derrors.CodeBadRequest, "issuer address is required")
	}
	subject, err = domain.ParseAddress(r.Subject)
	if err != nil {
		return "", "", "", derrors.New(derrors.CodeBadRequest, "subject address is required")
	}
	claimType, err = domain.ParseClaimType(r.ClaimType)
	if err != nil {
		return "", "", "", derrors.New(derrors.CodeBadRequest, "claim type is required")
	}
	return issuer, subject, claimType, nil
}

type revokeAttestationRequest struct {
	Issuer string `json:"issuer"`
}

func parsePagination(r *http.Request) (start, limit uint64, err error) {
	q := r.URL.Query()
	if raw := q.Get("start"); raw != "" {
		start, err = strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return 0, 0, derrors.New(derrors.CodeBadRequest, "start must be a non-negative integer")
		}
	}
	limit = defaultPageLimit
	if raw := q.Get("limit"); raw != "" {
		limit, err = strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return 0, 0, derrors.New(derrors.CodeBadRequest, "limit must be a non-negative integer")
		}
	}
	return start, limit, nil
}
