//go:build integration

package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"trustlink/internal/attestation/models"
	"trustlink/internal/attestation/store"
	"trustlink/internal/platform/postgres"
	"trustlink/pkg/domain"
	"trustlink/pkg/platform/sentinel"
	"trustlink/pkg/testutil/containers"
)

type PostgresStoreIntegrationSuite struct {
	suite.Suite

	pg *containers.PostgresContainer

	roles        *store.PostgresRoleStore
	attestations *store.PostgresAttestationStore
	index        *store.PostgresIndexStore
}

func TestPostgresStoreIntegrationSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreIntegrationSuite))
}

func (s *PostgresStoreIntegrationSuite) SetupSuite() {
	s.pg = containers.NewPostgresContainer(s.T())
	_, err := s.pg.DB.ExecContext(context.Background(), postgres.Schema)
	s.Require().NoError(err)
}

func (s *PostgresStoreIntegrationSuite) SetupTest() {
	ctx := context.Background()
	for _, table := range []string{"subject_attestations", "issuer_attestations", "attestations", "issuers", "registry_admin"} {
		_, err := s.pg.DB.ExecContext(ctx, "DELETE FROM "+table)
		s.Require().NoError(err)
	}
	s.roles = store.NewPostgresRoleStore(s.pg.DB)
	s.attestations = store.NewPostgresAttestationStore(s.pg.DB)
	s.index = store.NewPostgresIndexStore(s.pg.DB)
}

func (s *PostgresStoreIntegrationSuite) TestAdminSlotIsWriteOnce() {
	ctx := context.Background()

	_, err := s.roles.GetAdmin(ctx)
	s.ErrorIs(err, sentinel.ErrNotFound)

	s.Require().NoError(s.roles.SetAdmin(ctx, "GADMIN"))
	s.ErrorIs(s.roles.SetAdmin(ctx, "GOTHER"), sentinel.ErrAlreadyUsed)

	admin, err := s.roles.GetAdmin(ctx)
	s.Require().NoError(err)
	s.Equal(domain.Address("GADMIN"), admin)
}

func (s *PostgresStoreIntegrationSuite) TestIssuerMembership() {
	ctx := context.Background()

	s.Require().NoError(s.roles.AddIssuer(ctx, "GISSUER"))
	s.Require().NoError(s.roles.AddIssuer(ctx, "GISSUER"))

	ok, err := s.roles.IsIssuer(ctx, "GISSUER")
	s.Require().NoError(err)
	s.True(ok)

	s.Require().NoError(s.roles.RemoveIssuer(ctx, "GISSUER"))

	ok, err = s.roles.IsIssuer(ctx, "GISSUER")
	s.Require().NoError(err)
	s.False(ok)
}

func (s *PostgresStoreIntegrationSuite) TestAttestationUpsertPreservesRecord() {
	ctx := context.Background()

	att := models.Attestation{
		ID:        "att-1",
		Issuer:    "GISSUER",
		Subject:   "GSUBJECT",
		ClaimType: "KYC_PASSED",
		Timestamp: 1000,
	}
	s.Require().NoError(s.attestations.Save(ctx, att))

	att.Revoked = true
	s.Require().NoError(s.attestations.Save(ctx, att))

	got, err := s.attestations.FindByID(ctx, "att-1")
	s.Require().NoError(err)
	s.True(got.Revoked)
	s.Nil(got.Expiration)
	s.Equal(uint64(1000), got.Timestamp)

	has, err := s.attestations.Has(ctx, "att-1")
	s.Require().NoError(err)
	s.True(has)

	has, err = s.attestations.Has(ctx, "missing")
	s.Require().NoError(err)
	s.False(has)
}

func (s *PostgresStoreIntegrationSuite) TestIndexOrderingAndPagination() {
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		s.Require().NoError(s.index.AppendIssuer(ctx, "GISSUER", id))
	}

	ids, err := s.index.ListIssuer(ctx, "GISSUER", 0, 10)
	s.Require().NoError(err)
	s.Equal([]string{"a", "b", "c"}, ids)

	ids, err = s.index.ListIssuer(ctx, "GISSUER", 1, 1)
	s.Require().NoError(err)
	s.Equal([]string{"b"}, ids)

	ids, err = s.index.ListIssuer(ctx, "GISSUER", 5, 3)
	s.Require().NoError(err)
	s.Empty(ids)
}
