package service

import (
	"context"
	"errors"
	"time"

	"pitschi/internal/model"
	"pitschi/internal/repository"
	"pitschi/pkg/log"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// SyncStatus describes one named guard.
type SyncStatus struct {
	Name       string
	Held       bool
	Holder     string
	AcquiredAt *time.Time
	ExpiresAt  *time.Time
	Flag       string
}

// SyncGuard keeps a named reconciliation from running twice at once. A holder
// that crashes loses the guard once its lease expires.
type SyncGuard interface {
	// TryAcquire returns acquired=false without error when another holder is active.
	TryAcquire(ctx context.Context, name string) (release func(), acquired bool, err error)
	Reset(ctx context.Context, name string) error
	Status(ctx context.Context, name string) (*SyncStatus, error)
}

const releaseTimeout = 10 * time.Second

func NewSyncGuard(
	service *Service,
	lockRepo repository.SyncLockRepository,
	statRepo repository.SystemStatRepository,
	rdb *redis.Client,
) SyncGuard {
	base := syncFlag{statRepo: statRepo, logger: service.logger}
	if service.opts.Lock.Backend == "redis" && rdb != nil {
		return &redisSyncGuard{
			rdb:      rdb,
			ttl:      service.opts.Lock.StaleAfter,
			syncFlag: base,
		}
	}
	return &dbSyncGuard{
		lockRepo: lockRepo,
		ttl:      service.opts.Lock.StaleAfter,
		syncFlag: base,
	}
}

// syncFlag mirrors the guard into the system stats table for older readers.
type syncFlag struct {
	statRepo repository.SystemStatRepository
	logger   *log.Logger
}

func (f syncFlag) set(ctx context.Context, name string, on bool) {
	value := model.StatFalse
	if on {
		value = model.StatTrue
	}
	if err := f.statRepo.Set(ctx, name, value); err != nil {
		f.logger.WithContext(ctx).Warn("failed to update sync flag", zap.String("name", name), zap.Error(err))
	}
}

func (f syncFlag) get(ctx context.Context, name string) string {
	stat, err := f.statRepo.Get(ctx, name)
	if err != nil || stat == nil {
		return ""
	}
	return stat.Value
}

func (f syncFlag) releaser(name string, release func(ctx context.Context) error) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
		defer cancel()
		if err := release(ctx); err != nil {
			f.logger.Error("failed to release sync guard", zap.String("name", name), zap.Error(err))
		}
		f.set(ctx, name, false)
	}
}

type dbSyncGuard struct {
	lockRepo repository.SyncLockRepository
	ttl      time.Duration
	syncFlag
}

func (g *dbSyncGuard) TryAcquire(ctx context.Context, name string) (func(), bool, error) {
	holder := uuid.NewString()
	ok, err := g.lockRepo.Acquire(ctx, name, holder, time.Now(), g.ttl)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		g.logger.WithContext(ctx).Debug("sync already running", zap.String("name", name))
		return nil, false, nil
	}
	g.set(ctx, name, true)
	return g.releaser(name, func(ctx context.Context) error {
		return g.lockRepo.Release(ctx, name, holder)
	}), true, nil
}

func (g *dbSyncGuard) Reset(ctx context.Context, name string) error {
	if err := g.lockRepo.Clear(ctx, name); err != nil {
		return err
	}
	g.set(ctx, name, false)
	return nil
}

func (g *dbSyncGuard) Status(ctx context.Context, name string) (*SyncStatus, error) {
	lock, err := g.lockRepo.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	status := &SyncStatus{Name: name, Flag: g.get(ctx, name)}
	if lock != nil {
		status.Held = lock.Held(time.Now())
		status.Holder = lock.Holder
		status.AcquiredAt = lock.AcquiredAt
		status.ExpiresAt = lock.ExpiresAt
	}
	return status, nil
}

var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type redisSyncGuard struct {
	rdb *redis.Client
	ttl time.Duration
	syncFlag
}

func lockKey(name string) string {
	return "pitschi:lock:" + name
}

func (g *redisSyncGuard) TryAcquire(ctx context.Context, name string) (func(), bool, error) {
	holder := uuid.NewString()
	ok, err := g.rdb.SetNX(ctx, lockKey(name), holder, g.ttl).Result()
	if err != nil {
		return nil, false, err
	}
	if !ok {
		g.logger.WithContext(ctx).Debug("sync already running", zap.String("name", name))
		return nil, false, nil
	}
	g.set(ctx, name, true)
	return g.releaser(name, func(ctx context.Context) error {
		return releaseScript.Run(ctx, g.rdb, []string{lockKey(name)}, holder).Err()
	}), true, nil
}

func (g *redisSyncGuard) Reset(ctx context.Context, name string) error {
	if err := g.rdb.Del(ctx, lockKey(name)).Err(); err != nil {
		return err
	}
	g.set(ctx, name, false)
	return nil
}

func (g *redisSyncGuard) Status(ctx context.Context, name string) (*SyncStatus, error) {
	status := &SyncStatus{Name: name, Flag: g.get(ctx, name)}
	holder, err := g.rdb.Get(ctx, lockKey(name)).Result()
	if errors.Is(err, redis.Nil) {
		return status, nil
	}
	if err != nil {
		return nil, err
	}
	status.Held = true
	status.Holder = holder
	if ttl, err := g.rdb.PTTL(ctx, lockKey(name)).Result(); err == nil && ttl > 0 {
		expires := time.Now().Add(ttl)
		status.ExpiresAt = &expires
	}
	return status, nil
}
