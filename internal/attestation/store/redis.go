package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/redis/go-redis/v9"

	"trustlink/internal/attestation/models"
	"trustlink/pkg/domain"
	"trustlink/pkg/platform/sentinel"
)

// Redis-backed stores for distributed deployments. The key-value shape maps
// directly: the admin is a write-once string key, issuer membership is one
// key per issuer, attestation records are JSON values, and the two indexes
// are Redis lists, which are append-only and insertion-ordered.
const (
	adminKey           = "trustlink:admin"
	issuerKeyPrefix    = "trustlink:issuer:"
	attestationPrefix  = "trustlink:att:"
	subjectIndexPrefix = "trustlink:idx:subject:"
	issuerIndexPrefix  = "trustlink:idx:issuer:"
)

type RedisRoleStore struct {
	client *redis.Client
}

func NewRedisRoleStore(client *redis.Client) *RedisRoleStore {
	return &RedisRoleStore{client: client}
}

func (s *RedisRoleStore) SetAdmin(ctx context.Context, admin domain.Address) error {
	// SETNX gives the write-once admin slot atomically.
	ok, err := s.client.SetNX(ctx, adminKey, admin.String(), 0).Result()
	if err != nil {
		return fmt.Errorf("set admin: %w", err)
	}
	if !ok {
		return sentinel.ErrAlreadyUsed
	}
	return nil
}

func (s *RedisRoleStore) GetAdmin(ctx context.Context) (domain.Address, error) {
	val, err := s.client.Get(ctx, adminKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", sentinel.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get admin: %w", err)
	}
	return domain.Address(val), nil
}

func (s *RedisRoleStore) AddIssuer(ctx context.Context, issuer domain.Address) error {
	if err := s.client.Set(ctx, issuerKeyPrefix+issuer.String(), "1", 0).Err(); err != nil {
		return fmt.Errorf("add issuer: %w", err)
	}
	return nil
}

func (s *RedisRoleStore) RemoveIssuer(ctx context.Context, issuer domain.Address) error {
	if err := s.client.Del(ctx, issuerKeyPrefix+issuer.String()).Err(); err != nil {
		return fmt.Errorf("remove issuer: %w", err)
	}
	return nil
}

func (s *RedisRoleStore) IsIssuer(ctx context.Context, address domain.Address) (bool, error) {
	n, err := s.client.Exists(ctx, issuerKeyPrefix+address.String()).Result()
	if err != nil {
		return false, fmt.Errorf("issuer membership: %w", err)
	}
	return n > 0, nil
}

type RedisAttestationStore struct {
	client    *redis.Client
	retention time.Duration
}

// RedisAttestationOption configures a RedisAttestationStore.
type RedisAttestationOption func(*RedisAttestationStore)

// WithRetention applies a TTL to attestation record keys. This is an
// infrastructure retention hook only; status derivation never consults it.
// Zero (the default) means records never expire.
func WithRetention(ttl time.Duration) RedisAttestationOption {
	return func(s *RedisAttestationStore) { s.retention = ttl }
}

func NewRedisAttestationStore(client *redis.Client, opts ...RedisAttestationOption) *RedisAttestationStore {
	s := &RedisAttestationStore{client: client}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RedisAttestationStore) Save(ctx context.Context, attestation models.Attestation) error {
	payload, err := json.Marshal(attestation)
	if err != nil {
		return fmt.Errorf("encode attestation: %w", err)
	}
	if err := s.client.Set(ctx, attestationPrefix+attestation.ID, payload, s.retention).Err(); err != nil {
		return fmt.Errorf("save attestation: %w", err)
	}
	return nil
}

func (s *RedisAttestationStore) FindByID(ctx context.Context, id string) (models.Attestation, error) {
	payload, err := s.client.Get(ctx, attestationPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.Attestation{}, sentinel.ErrNotFound
	}
	if err != nil {
		return models.Attestation{}, fmt.Errorf("find attestation: %w", err)
	}
	var attestation models.Attestation
	if err := json.Unmarshal(payload, &attestation); err != nil {
		return models.Attestation{}, fmt.Errorf("decode attestation: %w", err)
	}
	return attestation, nil
}

func (s *RedisAttestationStore) Has(ctx context.Context, id string) (bool, error) {
	n, err := s.client.Exists(ctx, attestationPrefix+id).Result()
	if err != nil {
		return false, fmt.Errorf("attestation exists: %w", err)
	}
	return n > 0, nil
}

type RedisIndexStore struct {
	client *redis.Client
}

func NewRedisIndexStore(client *redis.Client) *RedisIndexStore {
	return &RedisIndexStore{client: client}
}

func (s *RedisIndexStore) AppendSubject(ctx context.Context, subject domain.Address, id string) error {
	if err := s.client.RPush(ctx, subjectIndexPrefix+subject.String(), id).Err(); err != nil {
		return fmt.Errorf("append subject index: %w", err)
	}
	return nil
}

func (s *RedisIndexStore) AppendIssuer(ctx context.Context, issuer domain.Address, id string) error {
	if err := s.client.RPush(ctx, issuerIndexPrefix+issuer.String(), id).Err(); err != nil {
		return fmt.Errorf("append issuer index: %w", err)
	}
	return nil
}

func (s *RedisIndexStore) ListSubject(ctx context.Context, subject domain.Address, start, limit uint64) ([]string, error) {
	return s.listRange(ctx, subjectIndexPrefix+subject.String(), start, limit)
}

func (s *RedisIndexStore) ListIssuer(ctx context.Context, issuer domain.Address, start, limit uint64) ([]string, error) {
	return s.listRange(ctx, issuerIndexPrefix+issuer.String(), start, limit)
}

func (s *RedisIndexStore) listRange(ctx context.Context, key string, start, limit uint64) ([]string, error) {
	if limit == 0 || start > math.MaxInt64 {
		return []string{}, nil
	}
	// LRANGE stop is inclusive; saturate instead of wrapping.
	lo := int64(start)
	hi := int64(math.MaxInt64)
	if limit-1 <= uint64(math.MaxInt64)-start {
		hi = int64(start + limit - 1)
	}
	ids, err := s.client.LRange(ctx, key, lo, hi).Result()
	if err != nil {
		return nil, fmt.Errorf("index range: %w", err)
	}
	return ids, nil
}
