package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/saikiran2022/Health-care/internal/delivery/dto"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// Redis keys for the doctor directory
	RedisDoctorListKey      = "doctors:all"
	RedisDoctorKeyPrefix    = "doctors:id:"
	DefaultDoctorCacheTTL   = 5 * time.Minute
	redisDoctorCacheTimeout = 2 * time.Second
)

// DoctorCache is a read-through cache in front of the doctor catalog.
// A miss is reported as (nil, nil).
type DoctorCache interface {
	GetDoctors(ctx context.Context) ([]dto.DoctorResponse, error)
	SetDoctors(ctx context.Context, doctors []dto.DoctorResponse) error
	GetDoctor(ctx context.Context, id uuid.UUID) (*dto.DoctorResponse, error)
	SetDoctor(ctx context.Context, doctor *dto.DoctorResponse) error
	Invalidate(ctx context.Context) error
}

type redisDoctorCache struct {
	redisClient *redis.Client
	log         *logrus.Logger
	ttl         time.Duration
}

// NewRedisDoctorCache creates a DoctorCache backed by Redis
func NewRedisDoctorCache(redisClient *redis.Client, log *logrus.Logger, ttl time.Duration) DoctorCache {
	if ttl <= 0 {
		ttl = DefaultDoctorCacheTTL
	}
	return &redisDoctorCache{
		redisClient: redisClient,
		log:         log,
		ttl:         ttl,
	}
}

func (c *redisDoctorCache) GetDoctors(ctx context.Context) ([]dto.DoctorResponse, error) {
	var doctors []dto.DoctorResponse
	found, err := c.get(ctx, RedisDoctorListKey, &doctors)
	if err != nil || !found {
		return nil, err
	}
	return doctors, nil
}

func (c *redisDoctorCache) SetDoctors(ctx context.Context, doctors []dto.DoctorResponse) error {
	return c.set(ctx, RedisDoctorListKey, doctors)
}

func (c *redisDoctorCache) GetDoctor(ctx context.Context, id uuid.UUID) (*dto.DoctorResponse, error) {
	var doctor dto.DoctorResponse
	found, err := c.get(ctx, doctorKey(id), &doctor)
	if err != nil || !found {
		return nil, err
	}
	return &doctor, nil
}

func (c *redisDoctorCache) SetDoctor(ctx context.Context, doctor *dto.DoctorResponse) error {
	if doctor == nil {
		return nil
	}
	return c.set(ctx, doctorKey(doctor.ID), doctor)
}

// Invalidate drops the list key. Individual doctors are never modified, so their keys stay valid.
func (c *redisDoctorCache) Invalidate(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, redisDoctorCacheTimeout)
	defer cancel()

	if err := c.redisClient.Del(ctx, RedisDoctorListKey).Err(); err != nil {
		return fmt.Errorf("invalidate doctor cache: %w", err)
	}
	return nil
}

func (c *redisDoctorCache) get(ctx context.Context, key string, dest interface{}) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, redisDoctorCacheTimeout)
	defer cancel()

	raw, err := c.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("get %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		// A corrupt entry behaves like a miss and gets overwritten on the next set
		c.log.Warnf("Failed to decode cached value for %s: %+v", key, err)
		return false, nil
	}
	return true, nil
}

func (c *redisDoctorCache) set(ctx context.Context, key string, value interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, redisDoctorCacheTimeout)
	defer cancel()

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := c.redisClient.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func doctorKey(id uuid.UUID) string {
	return RedisDoctorKeyPrefix + id.String()
}

// noopDoctorCache is used when Redis is not configured
type noopDoctorCache struct{}

func NewNoopDoctorCache() DoctorCache {
	return noopDoctorCache{}
}

func (noopDoctorCache) GetDoctors(context.Context) ([]dto.DoctorResponse, error) { return nil, nil }

func (noopDoctorCache) SetDoctors(context.Context, []dto.DoctorResponse) error { return nil }

func (noopDoctorCache) GetDoctor(context.Context, uuid.UUID) (*dto.DoctorResponse, error) {
	return nil, nil
}

func (noopDoctorCache) SetDoctor(context.Context, *dto.DoctorResponse) error { return nil }

func (noopDoctorCache) Invalidate(context.Context) error { return nil }
