package store

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"trustlink/internal/attestation/models"
	"trustlink/pkg/domain"
	"trustlink/pkg/platform/sentinel"
)

type MemoryStoreSuite struct {
	suite.Suite
	roles        *MemoryRoleStore
	attestations *MemoryAttestationStore
	index        *MemoryIndexStore
	ctx          context.Context
}

func (s *MemoryStoreSuite) SetupTest() {
	s.roles = NewMemoryRoleStore()
	s.attestations = NewMemoryAttestationStore()
	s.index = NewMemoryIndexStore()
	s.ctx = context.Background()
}

func TestMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreSuite))
}

func (s *MemoryStoreSuite) TestAdminSlot() {
	s.Run("unset admin reads as not found", func() {
		_, err := s.roles.GetAdmin(s.ctx)
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("admin slot is write-once", func() {
		s.Require().NoError(s.roles.SetAdmin(s.ctx, "admin-1"))

		admin, err := s.roles.GetAdmin(s.ctx)
		s.Require().NoError(err)
		s.Equal(domain.Address("admin-1"), admin)

		s.Require().ErrorIs(s.roles.SetAdmin(s.ctx, "admin-2"), sentinel.ErrAlreadyUsed)

		admin, err = s.roles.GetAdmin(s.ctx)
		s.Require().NoError(err)
		s.Equal(domain.Address("admin-1"), admin)
	})
}

func (s *MemoryStoreSuite) TestIssuerSet() {
	s.Run("membership is idempotent", func() {
		s.Require().NoError(s.roles.AddIssuer(s.ctx, "issuer-1"))
		s.Require().NoError(s.roles.AddIssuer(s.ctx, "issuer-1"))

		ok, err := s.roles.IsIssuer(s.ctx, "issuer-1")
		s.Require().NoError(err)
		s.True(ok)
	})

	s.Run("removal of non-member is not an error", func() {
		s.Require().NoError(s.roles.RemoveIssuer(s.ctx, "nobody"))
	})

	s.Run("removed issuer loses membership", func() {
		s.Require().NoError(s.roles.AddIssuer(s.ctx, "issuer-2"))
		s.Require().NoError(s.roles.RemoveIssuer(s.ctx, "issuer-2"))

		ok, err := s.roles.IsIssuer(s.ctx, "issuer-2")
		s.Require().NoError(err)
		s.False(ok)
	})
}

func (s *MemoryStoreSuite) TestAttestationRecords() {
	record := models.Attestation{
		ID:        "att-1",
		Issuer:    "issuer-1",
		Subject:   "subject-1",
		ClaimType: "KYC_PASSED",
		Timestamp: 42,
	}

	s.Run("save and find round-trip", func() {
		s.Require().NoError(s.attestations.Save(s.ctx, record))

		found, err := s.attestations.FindByID(s.ctx, "att-1")
		s.Require().NoError(err)
		s.Equal(record, found)

		ok, err := s.attestations.Has(s.ctx, "att-1")
		s.Require().NoError(err)
		s.True(ok)
	})

	s.Run("unknown id is not found", func() {
		_, err := s.attestations.FindByID(s.ctx, "missing")
		s.Require().ErrorIs(err, sentinel.ErrNotFound)

		ok, err := s.attestations.Has(s.ctx, "missing")
		s.Require().NoError(err)
		s.False(ok)
	})

	s.Run("save upserts in place", func() {
		revoked := record
		revoked.Revoked = true
		s.Require().NoError(s.attestations.Save(s.ctx, revoked))

		found, err := s.attestations.FindByID(s.ctx, "att-1")
		s.Require().NoError(err)
		s.True(found.Revoked)
	})
}

func (s *MemoryStoreSuite) TestIndexPagination() {
	subject := domain.Address("subject-1")
	for i := 0; i < 5; i++ {
		s.Require().NoError(s.index.AppendSubject(s.ctx, subject, fmt.Sprintf("att-%d", i)))
	}

	s.Run("window within range", func() {
		ids, err := s.index.ListSubject(s.ctx, subject, 0, 2)
		s.Require().NoError(err)
		s.Equal([]string{"att-0", "att-1"}, ids)
	})

	s.Run("window clamped at the tail", func() {
		ids, err := s.index.ListSubject(s.ctx, subject, 4, 2)
		s.Require().NoError(err)
		s.Equal([]string{"att-4"}, ids)
	})

	s.Run("start beyond total yields empty", func() {
		ids, err := s.index.ListSubject(s.ctx, subject, 10, 2)
		s.Require().NoError(err)
		s.Empty(ids)
	})

	s.Run("zero limit yields empty", func() {
		ids, err := s.index.ListSubject(s.ctx, subject, 0, 0)
		s.Require().NoError(err)
		s.Empty(ids)
	})

	s.Run("start plus limit saturates instead of wrapping", func() {
		ids, err := s.index.ListSubject(s.ctx, subject, 2, math.MaxUint64)
		s.Require().NoError(err)
		s.Equal([]string{"att-2", "att-3", "att-4"}, ids)
	})

	s.Run("issuer index is independent", func() {
		s.Require().NoError(s.index.AppendIssuer(s.ctx, "issuer-1", "att-0"))
		ids, err := s.index.ListIssuer(s.ctx, "issuer-1", 0, 10)
		s.Require().NoError(err)
		s.Equal([]string{"att-0"}, ids)
	})
}

func TestPageBounds(t *testing.T) {
	cases := []struct {
		name                string
		total, start, limit uint64
		lo, hi              uint64
	}{
		{"empty sequence", 0, 0, 10, 0, 0},
		{"full window", 5, 0, 5, 0, 5},
		{"partial tail", 5, 4, 2, 4, 5},
		{"start at total", 5, 5, 1, 0, 0},
		{"overflow saturates", 5, 2, math.MaxUint64, 2, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lo, hi := pageBounds(tc.total, tc.start, tc.limit)
			if lo != tc.lo || hi != tc.hi {
				t.Fatalf("pageBounds(%d, %d, %d) = (%d, %d), want (%d, %d)",
					tc.total, tc.start, tc.limit, lo, hi, tc.lo, tc.hi)
			}
		})
	}
}
