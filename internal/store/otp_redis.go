// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/bvc-digitalhub/internal/config"
	"github.com/MKhiriev/bvc-digitalhub/internal/logger"
	"github.com/redis/go-redis/v9"
)

const (
	otpKeyPrefix      = "otp:"
	attemptsKeyPrefix = "otp:attempts:"
	verifiedKeyPrefix = "otp:verified:"
)

// MaxOTPAttempts is the number of wrong codes that discards an issued code.
const MaxOTPAttempts = 5

// verifyOTPScript results.
const (
	otpVerified  = 1
	otpExhausted = -1
)

// verifyOTPScript checks and redeems a code in one round trip, so two
// requests cannot both redeem it.
//
// KEYS: code, attempts, verified mark. ARGV: code, mark ttl (ms), max attempts.
var verifyOTPScript = redis.NewScript(`
local stored = redis.call('GET', KEYS[1])
if not stored then
	return 0
end
if stored == ARGV[1] then
	redis.call('DEL', KEYS[1], KEYS[2])
	redis.call('SET', KEYS[3], '1', 'PX', ARGV[2])
	return 1
end
local attempts = redis.call('INCR', KEYS[2])
if attempts == 1 then
	local ttl = redis.call('PTTL', KEYS[1])
	if ttl > 0 then
		redis.call('PEXPIRE', KEYS[2], ttl)
	end
end
if attempts >= tonumber(ARGV[3]) then
	redis.call('DEL', KEYS[1], KEYS[2])
	return -1
end
return 0
`)

// NewRedisClient connects to Redis with cfg and pings it.
func NewRedisClient(ctx context.Context, cfg config.Redis, log *logger.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisClient").Msg("error connecting redis (ping)")
		_ = client.Close()
		return nil, fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}
	log.Info().Str("func", "NewRedisClient").Msg("connected to redis successfully")

	return client, nil
}

// redisOTPStore is the Redis-backed [OTPStore]. Codes live under
// "otp:<email>", failed attempts under "otp:attempts:<email>" and verified
// marks under "otp:verified:<email>", all with a TTL so abandoned signups
// clean themselves up.
type redisOTPStore struct {
	client *redis.Client
	logger *logger.Logger
}

// NewRedisOTPStore constructs an [OTPStore] over client.
func NewRedisOTPStore(client *redis.Client, logger *logger.Logger) OTPStore {
	logger.Debug().Msg("creating otp store")
	return &redisOTPStore{
		client: client,
		logger: logger,
	}
}

func (s *redisOTPStore) SaveOTP(ctx context.Context, email, code string, ttl time.Duration) error {
	log := logger.FromContext(ctx)

	email = normalizeEmail(email)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, otpKeyPrefix+email, code, ttl)
		pipe.Del(ctx, attemptsKeyPrefix+email)
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*redisOTPStore.SaveOTP").Msg("error saving otp")
		return fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}

	return nil
}

func (s *redisOTPStore) VerifyOTP(ctx context.Context, email, code string, ttl time.Duration) error {
	log := logger.FromContext(ctx)

	email = normalizeEmail(email)
	keys := []string{otpKeyPrefix + email, attemptsKeyPrefix + email, verifiedKeyPrefix + email}
	result, err := verifyOTPScript.Run(ctx, s.client, keys, code, ttl.Milliseconds(), MaxOTPAttempts).Int()
	if err != nil {
		log.Err(err).Str("func", "*redisOTPStore.VerifyOTP").Msg("error verifying otp")
		return fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}

	switch result {
	case otpVerified:
		return nil
	case otpExhausted:
		log.Warn().Str("func", "*redisOTPStore.VerifyOTP").Msg("otp discarded after too many attempts")
		return ErrOTPInvalid
	default:
		return ErrOTPInvalid
	}
}

func (s *redisOTPStore) IsVerified(ctx context.Context, email string) (bool, error) {
	log := logger.FromContext(ctx)

	n, err := s.client.Exists(ctx, verifiedKeyPrefix+normalizeEmail(email)).Result()
	if err != nil {
		log.Err(err).Str("func", "*redisOTPStore.IsVerified").Msg("error reading verified mark")
		return false, fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}

	return n == 1, nil
}

func (s *redisOTPStore) ConsumeVerified(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	if err := s.client.Del(ctx, verifiedKeyPrefix+normalizeEmail(email)).Err(); err != nil {
		log.Err(err).Str("func", "*redisOTPStore.ConsumeVerified").Msg("error removing verified mark")
		return fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}

	return nil
}
