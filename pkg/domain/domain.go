// Package domain defines the primitive identity types shared across the
// registry. They are domain primitives that enforce validity at parse time.
package domain

import (
	"fmt"
	"strings"
)

// Address is an opaque principal identity. The registry never interprets it;
// it only compares addresses for equality and uses them as storage keys.
type Address string

// ParseAddress validates and returns an Address.
func ParseAddress(s string) (Address, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("address must not be empty")
	}
	return Address(s), nil
}

func (a Address) String() string { return string(a) }

// IsZero reports whether the address is unset.
func (a Address) IsZero() bool { return a == "" }

// ClaimType is an opaque label identifying the kind of assertion an
// attestation makes (e.g. "KYC_PASSED"). No taxonomy is enforced; any
// non-empty string is accepted and matching is exact and case-sensitive.
type ClaimType string

// ParseClaimType validates and returns a ClaimType.
func ParseClaimType(s string) (ClaimType, error) {
	if s == "" {
		return "", fmt.Errorf("claim type must not be empty")
	}
	return ClaimType(s), nil
}

func (c ClaimType) String() string { return string(c) }
