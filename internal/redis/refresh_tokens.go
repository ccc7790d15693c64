package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/gomodule/redigo/redis"
	"github.com/luach-app/luach-backend/internal/config"
	"github.com/luach-app/luach-backend/internal/model"
	"go.uber.org/zap"
)

const sessionKeyPrefix = "session:"

// RefreshTokenRepository stores refresh sessions with the configured TTL.
type RefreshTokenRepository struct {
	pool   *redis.Pool
	logger *zap.SugaredLogger
}

func NewRefreshTokenRepository(pool *redis.Pool, logger *zap.SugaredLogger) *RefreshTokenRepository {
	return &RefreshTokenRepository{
		pool:   pool,
		logger: logger,
	}
}

func (r *RefreshTokenRepository) Add(ctx context.Context, session string, id int64) error {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	return add(conn, session, id)
}

func (r *RefreshTokenRepository) Get(ctx context.Context, session string) (int64, error) {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	return get(conn, session)
}

func (r *RefreshTokenRepository) Refresh(ctx context.Context, old, new string) error {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	id, err := get(conn, old)
	if err != nil {
		return err
	}

	if err := add(conn, new, id); err != nil {
		return err
	}

	if _, err := conn.Do("DEL", sessionKeyPrefix+old); err != nil {
		return fmt.Errorf("delete old session: %w", err)
	}

	return nil
}

func (r *RefreshTokenRepository) Delete(ctx context.Context, session string) error {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	n, err := redis.Int(conn.Do("DEL", sessionKeyPrefix+session))
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	if n == 0 {
		return model.ErrNoRecord
	}

	return nil
}

func add(conn redis.Conn, session string, id int64) error {
	reply, err := redis.String(conn.Do("SET", sessionKeyPrefix+session, id, "NX", "EX", int(config.SessionTTl().Seconds())))
	if errors.Is(err, redis.ErrNil) {
		return model.ErrAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("set session: %w", err)
	}
	if reply != "OK" {
		return fmt.Errorf("unexpected reply: %v", reply)
	}

	return nil
}

func get(conn redis.Conn, session string) (int64, error) {
	id, err := redis.Int64(conn.Do("GET", sessionKeyPrefix+session))
	if errors.Is(err, redis.ErrNil) {
		return 0, model.ErrNoRecord
	}
	if err != nil {
		return 0, fmt.Errorf("get session: %w", err)
	}

	return id, nil
}
