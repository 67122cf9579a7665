package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"

	"trustlink/internal/auth"
	"trustlink/internal/auth/handler"
	"trustlink/pkg/domain"
	"trustlink/pkg/platform/secrets"
)

const enrollmentSecret = "enrollment-secret"

type TokenHandlerSuite struct {
	suite.Suite

	server *httptest.Server
	tokens *auth.TokenService
}

func TestTokenHandlerSuite(t *testing.T) {
	suite.Run(t, new(TokenHandlerSuite))
}

func (s *TokenHandlerSuite) SetupTest() {
	hash, err := secrets.Hash(enrollmentSecret)
	s.Require().NoError(err)
	s.server = s.startServer(hash)
}

func (s *TokenHandlerSuite) startServer(secretHash string) *httptest.Server {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.tokens = auth.NewTokenService("test-signing-key", "trustlink-test")

	r := chi.NewRouter()
	handler.New(s.tokens, secretHash, time.Hour, log).Register(r)

	server := httptest.NewServer(r)
	s.T().Cleanup(server.Close)
	return server
}

func (s *TokenHandlerSuite) issue(server *httptest.Server, address, secret string) *http.Response {
	var buf bytes.Buffer
	s.Require().NoError(json.NewEncoder(&buf).Encode(map[string]string{
		"address": address,
		"secret":  secret,
	}))
	resp, err := server.Client().Post(server.URL+"/v1/auth/token", "application/json", &buf)
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func (s *TokenHandlerSuite) TestIssuesTokenForValidSecret() {
	resp := s.issue(s.server, "GISSUER", enrollmentSecret)
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var body struct {
		Token     string `json:"token"`
		ExpiresIn int64  `json:"expires_in"`
	}
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.Equal(int64(3600), body.ExpiresIn)

	address, err := s.tokens.ValidateToken(body.Token)
	s.Require().NoError(err)
	s.Equal(domain.Address("GISSUER"), address)
}

func (s *TokenHandlerSuite) TestRejectsWrongSecret() {
	resp := s.issue(s.server, "GISSUER", "not-the-secret")
	s.Equal(http.StatusForbidden, resp.StatusCode)
}

func (s *TokenHandlerSuite) TestRejectsMissingAddress() {
	resp := s.issue(s.server, "", enrollmentSecret)
	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *TokenHandlerSuite) TestIssuanceDisabledWithoutConfiguredHash() {
	disabled := s.startServer("")

	resp := s.issue(disabled, "GISSUER", enrollmentSecret)
	s.Equal(http.StatusForbidden, resp.StatusCode)
}
