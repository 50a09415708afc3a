package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"train-booking/internal/wizard"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// WizardRepository menyimpan state wizard booking per browser di redis
type WizardRepository interface {
	// Get mengembalikan session baru (SearchEntry) jika key belum ada atau sudah expired
	Get(ctx context.Context, key string) (*wizard.Session, error)
	Save(ctx context.Context, key string, session *wizard.Session) error
}

type wizardRepository struct {
	rdb redis.Cmdable
	ttl time.Duration
	log *zap.Logger
}

func NewWizardRepository(rdb redis.Cmdable, ttl time.Duration, log *zap.Logger) WizardRepository {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &wizardRepository{
		rdb: rdb,
		ttl: ttl,
		log: log.With(zap.String("repository", "wizard")),
	}
}

func WizardKey(sessionKey string) string {
	return "wizard:" + sessionKey
}

func (r *wizardRepository) Get(ctx context.Context, key string) (*wizard.Session, error) {
	raw, err := r.rdb.Get(ctx, WizardKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		return wizard.NewSession(), nil
	}
	if err != nil {
		r.log.Error("Failed to load wizard session", zap.Error(err), zap.String("key", key))
		return nil, fmt.Errorf("get wizard session %s: %w", key, err)
	}

	var session wizard.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		// data rusak dianggap expired
		r.log.Warn("Corrupt wizard session, starting over", zap.Error(err), zap.String("key", key))
		return wizard.NewSession(), nil
	}

	return &session, nil
}

func (r *wizardRepository) Save(ctx context.Context, key string, session *wizard.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode wizard session %s: %w", key, err)
	}

	if err := r.rdb.Set(ctx, WizardKey(key), string(raw), r.ttl).Err(); err != nil {
		r.log.Error("Failed to save wizard session", zap.Error(err), zap.String("key", key))
		return fmt.Errorf("save wizard session %s: %w", key, err)
	}

	return nil
}
