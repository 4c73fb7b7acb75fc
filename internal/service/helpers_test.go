package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"go_5_box_vocab/internal/config"
	"go_5_box_vocab/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var baseTime = time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

// setupTestDB はテストごとに独立したインメモリ sqlite を用意します
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, repository.Migrate(db))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		Leitner: config.LeitnerConfig{
			Box1Interval:   config.DefaultBox1Interval,
			Box2Interval:   config.DefaultBox2Interval,
			Box3Interval:   config.DefaultBox3Interval,
			Box4Interval:   config.DefaultBox4Interval,
			Box5Interval:   config.DefaultBox5Interval,
			RetireMastered: true,
		},
		App: config.AppConfig{Timezone: "UTC"},
	}
}

// fakeClock はテストから進められる時計
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(t time.Time) *fakeClock { return &fakeClock{now: t} }

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// memoryCacheRepository は Redis の代わりに使うマップ実装
type memoryCacheRepository struct {
	mu     sync.Mutex
	values map[string][]byte
	sets   int
}

func newMemoryCacheRepository() *memoryCacheRepository {
	return &memoryCacheRepository{values: map[string][]byte{}}
}

func (r *memoryCacheRepository) Get(_ context.Context, key string, dest interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	raw, ok := r.values[key]
	if !ok {
		return repository.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (r *memoryCacheRepository) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = raw
	r.sets++
	return nil
}

func (r *memoryCacheRepository) Incr(_ context.Context, key string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	if raw, ok := r.values[key]; ok {
		if err := json.Unmarshal(raw, &n); err != nil {
			return 0, err
		}
	}
	n++
	r.values[key] = []byte(strconv.FormatInt(n, 10))
	return n, nil
}

// DeleteByPattern は末尾の "*" だけを扱います
func (r *memoryCacheRepository) DeleteByPattern(_ context.Context, pattern string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	prefix := strings.TrimSuffix(pattern, "*")
	for k := range r.values {
		if strings.HasPrefix(k, prefix) {
			delete(r.values, k)
		}
	}
	return nil
}

func (r *memoryCacheRepository) keys() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.values))
	for k := range r.values {
		out = append(out, k)
	}
	return out
}
