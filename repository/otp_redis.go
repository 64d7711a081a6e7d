package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"vyoma/domain"
	"vyoma/utils"
)

// redisOTPRegistry implements the same verification state machine as the
// in-memory registry on a Redis hash per email, so codes survive process
// restarts. Expiry is checked against the stored timestamp; the key TTL is
// only garbage collection.
type redisOTPRegistry struct {
	client     *redis.Client
	bypassCode string
}

func NewRedisOTPRegistry(addr, password string, db int, bypassCode string) (domain.OTPRegistry, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &redisOTPRegistry{client: rdb, bypassCode: bypassCode}, nil
}

func otpKey(email string) string { return "otp:" + email }

func (r *redisOTPRegistry) Issue(ctx context.Context, email string) (string, error) {
	code, err := utils.GenerateOTP()
	if err != nil {
		return "", err
	}

	key := otpKey(email)
	expiresAt := time.Now().Add(otpTTL)

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key) // reset any prior code and its attempt counter
	pipe.HSet(ctx, key, map[string]interface{}{
		"code":      code,
		"expiresAt": expiresAt.Unix(),
	})
	pipe.Expire(ctx, key, 2*otpTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return "", err
	}
	return code, nil
}

func (r *redisOTPRegistry) Verify(ctx context.Context, email, code string) (domain.VerifyResult, error) {
	key := otpKey(email)

	vals, err := r.client.HGetAll(ctx, key).Result()
	if err != nil {
		return domain.VerifyResult{}, err
	}
	if len(vals) == 0 {
		return domain.VerifyResult{Reason: otpReasonNotFound}, nil
	}

	expiresAt, err := strconv.ParseInt(vals["expiresAt"], 10, 64)
	if err != nil || time.Now().Unix() > expiresAt {
		if delErr := r.client.Del(ctx, key).Err(); delErr != nil {
			return domain.VerifyResult{}, delErr
		}
		return domain.VerifyResult{Reason: otpReasonExpired}, nil
	}

	attempts, err := r.client.HIncrBy(ctx, key, "attempts", 1).Result()
	if err != nil {
		return domain.VerifyResult{}, err
	}
	if attempts > otpMaxAttempts {
		if delErr := r.client.Del(ctx, key).Err(); delErr != nil {
			return domain.VerifyResult{}, delErr
		}
		return domain.VerifyResult{Reason: otpReasonTooMany}, nil
	}

	if code != vals["code"] && (r.bypassCode == "" || code != r.bypassCode) {
		return domain.VerifyResult{Reason: otpReasonMismatch}, nil
	}

	if err := r.client.Del(ctx, key).Err(); err != nil {
		return domain.VerifyResult{}, err
	}
	return domain.VerifyResult{Valid: true}, nil
}

func (r *redisOTPRegistry) Delete(ctx context.Context, email string) error {
	return r.client.Del(ctx, otpKey(email)).Err()
}
