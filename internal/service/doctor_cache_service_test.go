package service

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/saikiran2022/Health-care/internal/delivery/dto"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, ttl time.Duration) (DoctorCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	log := logrus.New()
	log.SetOutput(io.Discard)

	return NewRedisDoctorCache(client, log, ttl), mr
}

func TestRedisDoctorCache_ListRoundTripAndInvalidate(t *testing.T) {
	cache, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	doctors, err := cache.GetDoctors(ctx)
	require.NoError(t, err)
	assert.Nil(t, doctors)

	want := []dto.DoctorResponse{
		{ID: uuid.New(), Name: "Dr. Priya Sharma", Specialization: "Cardiologist"},
		{ID: uuid.New(), Name: "Dr. Ravi Kumar", Specialization: "Neurologist"},
	}
	require.NoError(t, cache.SetDoctors(ctx, want))

	got, err := cache.GetDoctors(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.NoError(t, cache.Invalidate(ctx))
	got, err = cache.GetDoctors(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisDoctorCache_DoctorExpires(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	doctor := &dto.DoctorResponse{ID: uuid.New(), Name: "Dr. Meera Joshi"}
	require.NoError(t, cache.SetDoctor(ctx, doctor))

	got, err := cache.GetDoctor(ctx, doctor.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, doctor.Name, got.Name)

	mr.FastForward(2 * time.Minute)

	got, err = cache.GetDoctor(ctx, doctor.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisDoctorCache_CorruptEntryIsMiss(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)

	require.NoError(t, mr.Set(RedisDoctorListKey, "not-json"))

	got, err := cache.GetDoctors(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisDoctorCache_UnavailableReturnsError(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)
	mr.Close()

	_, err := cache.GetDoctors(context.Background())
	require.Error(t, err)
}
