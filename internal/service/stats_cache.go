package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go_5_box_vocab/internal/middleware"
	"go_5_box_vocab/internal/model"
	"go_5_box_vocab/internal/repository"

	"github.com/google/uuid"
)

// StatsCache は GetStats の結果を生徒・世代・日付単位で保持します。
// 集計の前に Generation を読み、同じ世代で Get/Set します。Invalidate は世代を進めるので、
// 無効化より前に読んだ集計を後から Set しても、その値が読まれることはありません。
// キャッシュの失敗は呼び出し元に返さず、DB集計にフォールバックさせます
type StatsCache interface {
	// Generation は生徒の現在の世代を返します。ok=false ならキャッシュを使わない
	Generation(ctx context.Context, studentID uuid.UUID) (gen int64, ok bool)
	Get(ctx context.Context, studentID uuid.UUID, gen int64, day string) (*model.StudentStats, bool)
	Set(ctx context.Context, studentID uuid.UUID, gen int64, day string, stats *model.StudentStats)
	Invalidate(ctx context.Context, studentID uuid.UUID)
}

type statsCacheRepository interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Incr(ctx context.Context, key string) (int64, error)
	DeleteByPattern(ctx context.Context, pattern string) error
}

type redisStatsCache struct {
	repo    statsCacheRepository
	ttl     time.Duration
	metrics *MetricsService
}

// NewStatsCache は CacheRepository を使う StatsCache を返します
func NewStatsCache(repo statsCacheRepository, ttl time.Duration, metrics *MetricsService) StatsCache {
	return &redisStatsCache{repo: repo, ttl: ttl, metrics: metrics}
}

// 世代カウンタは集計値と別の接頭辞にして、集計値の一括削除に巻き込まれないようにする
func statsGenerationKey(studentID uuid.UUID) string {
	return fmt.Sprintf("stats-gen:%s", studentID)
}

func statsKey(studentID uuid.UUID, gen int64, day string) string {
	return fmt.Sprintf("stats:%s:%d:%s", studentID, gen, day)
}

func (c *redisStatsCache) Generation(ctx context.Context, studentID uuid.UUID) (int64, bool) {
	var gen int64
	err := c.repo.Get(ctx, statsGenerationKey(studentID), &gen)
	switch {
	case err == nil:
		return gen, true
	case errors.Is(err, repository.ErrCacheMiss):
		return 0, true
	default:
		middleware.GetLogger(ctx).Warn("Stats cache generation read failed", "error", err, "student_id", studentID)
		return 0, false
	}
}

func (c *redisStatsCache) Get(ctx context.Context, studentID uuid.UUID, gen int64, day string) (*model.StudentStats, bool) {
	var stats model.StudentStats
	err := c.repo.Get(ctx, statsKey(studentID, gen, day), &stats)
	if err != nil {
		if !errors.Is(err, repository.ErrCacheMiss) {
			middleware.GetLogger(ctx).Warn("Stats cache read failed", "error", err, "student_id", studentID)
		}
		c.metrics.RecordCacheLookup(false)
		return nil, false
	}
	c.metrics.RecordCacheLookup(true)
	return &stats, true
}

func (c *redisStatsCache) Set(ctx context.Context, studentID uuid.UUID, gen int64, day string, stats *model.StudentStats) {
	if err := c.repo.Set(ctx, statsKey(studentID, gen, day), stats, c.ttl); err != nil {
		middleware.GetLogger(ctx).Warn("Stats cache write failed", "error", err, "student_id", studentID)
	}
}

// Invalidate は世代を進め、古い世代の集計値を削除します
func (c *redisStatsCache) Invalidate(ctx context.Context, studentID uuid.UUID) {
	logger := middleware.GetLogger(ctx)
	if _, err := c.repo.Incr(ctx, statsGenerationKey(studentID)); err != nil {
		logger.Warn("Stats cache generation bump failed", "error", err, "student_id", studentID)
	}
	if err := c.repo.DeleteByPattern(ctx, fmt.Sprintf("stats:%s:*", studentID)); err != nil {
		logger.Warn("Stats cache invalidation failed", "error", err, "student_id", studentID)
	}
}

// noopStatsCache はキャッシュ無効時に使う
type noopStatsCache struct{}

func (noopStatsCache) Generation(context.Context, uuid.UUID) (int64, bool) { return 0, false }
func (noopStatsCache) Get(context.Context, uuid.UUID, int64, string) (*model.StudentStats, bool) {
	return nil, false
}
func (noopStatsCache) Set(context.Context, uuid.UUID, int64, string, *model.StudentStats) {}
func (noopStatsCache) Invalidate(context.Context, uuid.UUID)                              {}
