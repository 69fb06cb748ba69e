package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ErrLockNotAcquired is returned when another request holds the doctor's
// booking lock for longer than the configured wait.
var ErrLockNotAcquired = errors.New("doctor booking lock not acquired")

// releaseLockScript deletes the lock only while it still carries our token,
// so an expired lock re-taken by someone else is never released by us.
var releaseLockScript = redis.NewScript(`
	if redis.call('GET', KEYS[1]) == ARGV[1] then
		return redis.call('DEL', KEYS[1])
	end
	return 0
`)

const (
	RedisDoctorLockKeyPrefix = "visit:doctor-lock:"

	lockRetryInterval  = 50 * time.Millisecond
	lockReleaseTimeout = 5 * time.Second
)

// UnlockFunc releases a held doctor lock. It is safe to call more than once.
type UnlockFunc func()

// DoctorLocker serializes visit creation per doctor across instances.
type DoctorLocker interface {
	Acquire(ctx context.Context, doctorID int64) (UnlockFunc, error)
}

// DoctorLockService is a DoctorLocker backed by a redis key per doctor
// (SET NX PX with a random token).
type DoctorLockService struct {
	redisClient *redis.Client
	clock       clockwork.Clock
	log         *logrus.Logger
	ttl         time.Duration
	wait        time.Duration
}

func NewDoctorLockService(redisClient *redis.Client, clock clockwork.Clock, log *logrus.Logger, ttl, wait time.Duration) *DoctorLockService {
	return &DoctorLockService{
		redisClient: redisClient,
		clock:       clock,
		log:         log,
		ttl:         ttl,
		wait:        wait,
	}
}

// Acquire takes the doctor's lock, polling until the configured wait elapses.
func (s *DoctorLockService) Acquire(ctx context.Context, doctorID int64) (UnlockFunc, error) {
	key := fmt.Sprintf("%s%d", RedisDoctorLockKeyPrefix, doctorID)
	token := uuid.NewString()
	deadline := s.clock.Now().Add(s.wait)

	for {
		ok, err := s.redisClient.SetNX(ctx, key, token, s.ttl).Result()
		if err != nil {
			s.log.Warnf("Failed to acquire lock for doctor %d: %+v", doctorID, err)
			return nil, fmt.Errorf("acquire lock for doctor %d: %w", doctorID, err)
		}
		if ok {
			s.log.Debugf("Acquired lock for doctor %d", doctorID)
			return s.unlocker(key, token, doctorID), nil
		}

		if !s.clock.Now().Before(deadline) {
			return nil, ErrLockNotAcquired
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-s.clock.After(lockRetryInterval):
		}
	}
}

func (s *DoctorLockService) unlocker(key, token string, doctorID int64) UnlockFunc {
	var once sync.Once
	return func() {
		once.Do(func() { s.release(key, token, doctorID) })
	}
}

func (s *DoctorLockService) release(key, token string, doctorID int64) {
	// The request context may already be cancelled at this point.
	ctx, cancel := context.WithTimeout(context.Background(), lockReleaseTimeout)
	defer cancel()

	if err := releaseLockScript.Run(ctx, s.redisClient, []string{key}, token).Err(); err != nil {
		s.log.Warnf("Failed to release lock for doctor %d: %+v", doctorID, err)
		return
	}
	s.log.Debugf("Released lock for doctor %d", doctorID)
}
