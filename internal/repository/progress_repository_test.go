package repository

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"go_5_box_vocab/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

var reviewTime = time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

func newRecord(studentID, wordID uuid.UUID) *model.ProgressRecord {
	due := reviewTime
	return &model.ProgressRecord{
		ProgressID: uuid.New(),
		StudentID:  studentID,
		WordID:     wordID,
		Box:        model.Box1,
		NextDueAt:  &due,
		Version:    1,
	}
}

// 両方の実装が同じ振る舞いをすること
func TestProgressStores(t *testing.T) {
	stores := map[string]func(t *testing.T) ProgressStore{
		"gorm": func(t *testing.T) ProgressStore { return NewGormProgressStore(newTestDB(t)) },
		"memory": func(t *testing.T) ProgressStore {
			return NewMemoryProgressStore()
		},
	}

	for name, newStore := range stores {
		t.Run(name, func(t *testing.T) {
			t.Run("存在しない記録はNotFound", func(t *testing.T) {
				store := newStore(t)
				_, err := store.Get(context.Background(), uuid.New(), uuid.New())
				assert.ErrorIs(t, err, model.ErrNotFound)
			})

			t.Run("作成と取得", func(t *testing.T) {
				ctx := context.Background()
				store := newStore(t)
				rec := newRecord(uuid.New(), uuid.New())
				require.NoError(t, store.Create(ctx, rec))

				got, err := store.Get(ctx, rec.StudentID, rec.WordID)
				require.NoError(t, err)
				assert.Equal(t, rec.ProgressID, got.ProgressID)
				assert.Equal(t, model.Box1, got.Box)
				assert.Equal(t, int64(1), got.Version)
				require.NotNil(t, got.NextDueAt)
				assert.True(t, reviewTime.Equal(*got.NextDueAt))
				assert.Nil(t, got.LastReviewedAt)
			})

			t.Run("同じ生徒と単語の二重作成はConflict", func(t *testing.T) {
				ctx := context.Background()
				store := newStore(t)
				studentID, wordID := uuid.New(), uuid.New()
				require.NoError(t, store.Create(ctx, newRecord(studentID, wordID)))
				err := store.Create(ctx, newRecord(studentID, wordID))
				assert.ErrorIs(t, err, model.ErrConflict)
			})

			t.Run("CompareAndSwapはバージョン一致時のみ更新", func(t *testing.T) {
				ctx := context.Background()
				store := newStore(t)
				rec := newRecord(uuid.New(), uuid.New())
				require.NoError(t, store.Create(ctx, rec))

				next := rec.Clone()
				reviewed := reviewTime.Add(time.Minute)
				due := reviewed.Add(24 * time.Hour)
				next.Box = model.Box2
				next.LastReviewedAt = &reviewed
				next.NextDueAt = &due
				next.CorrectCount = 1
				require.NoError(t, store.CompareAndSwap(ctx, next, 1))
				assert.Equal(t, int64(2), next.Version)

				got, err := store.Get(ctx, rec.StudentID, rec.WordID)
				require.NoError(t, err)
				assert.Equal(t, model.Box2, got.Box)
				assert.Equal(t, int64(2), got.Version)
				assert.Equal(t, 1, got.CorrectCount)
				require.NotNil(t, got.LastReviewedAt)
				assert.True(t, reviewed.Equal(*got.LastReviewedAt))
				require.NotNil(t, got.NextDueAt)
				assert.True(t, due.Equal(*got.NextDueAt))

				stale := got.Clone()
				stale.Box = model.Box1
				err = store.CompareAndSwap(ctx, stale, 1)
				assert.ErrorIs(t, err, model.ErrConflict)

				got, err = store.Get(ctx, rec.StudentID, rec.WordID)
				require.NoError(t, err)
				assert.Equal(t, model.Box2, got.Box)
			})

			t.Run("卒業した記録は出題時刻がnilで保存される", func(t *testing.T) {
				ctx := context.Background()
				store := newStore(t)
				rec := newRecord(uuid.New(), uuid.New())
				require.NoError(t, store.Create(ctx, rec))

				retired := rec.Clone()
				retired.Box = model.Box5
				retired.NextDueAt = nil
				require.NoError(t, store.CompareAndSwap(ctx, retired, rec.Version))

				got, err := store.Get(ctx, rec.StudentID, rec.WordID)
				require.NoError(t, err)
				assert.Equal(t, model.Box5, got.Box)
				assert.Nil(t, got.NextDueAt)
			})

			t.Run("ListByStudentは指定した生徒の記録だけを返す", func(t *testing.T) {
				ctx := context.Background()
				store := newStore(t)
				alice, bob := uuid.New(), uuid.New()
				require.NoError(t, store.Create(ctx, newRecord(alice, uuid.New())))
				require.NoError(t, store.Create(ctx, newRecord(alice, uuid.New())))
				require.NoError(t, store.Create(ctx, newRecord(bob, uuid.New())))

				recs, err := store.ListByStudent(ctx, alice)
				require.NoError(t, err)
				assert.Len(t, recs, 2)
				for _, r := range recs {
					assert.Equal(t, alice, r.StudentID)
				}

				recs, err = store.ListByStudent(ctx, uuid.New())
				require.NoError(t, err)
				assert.Empty(t, recs)
			})
		})
	}
}

func TestMemoryProgressStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryProgressStore()
	rec := newRecord(uuid.New(), uuid.New())
	require.NoError(t, store.Create(ctx, rec))

	got, err := store.Get(ctx, rec.StudentID, rec.WordID)
	require.NoError(t, err)
	got.Box = model.Box4
	*got.NextDueAt = reviewTime.Add(time.Hour)

	again, err := store.Get(ctx, rec.StudentID, rec.WordID)
	require.NoError(t, err)
	assert.Equal(t, model.Box1, again.Box)
	assert.True(t, reviewTime.Equal(*again.NextDueAt))
}

// 同じバージョンからの同時更新はちょうど1つだけ成功する
func TestMemoryProgressStore_ConcurrentCompareAndSwap(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryProgressStore()
	rec := newRecord(uuid.New(), uuid.New())
	require.NoError(t, store.Create(ctx, rec))

	var succeeded, conflicted atomic.Int32
	var g errgroup.Group
	for i := 0; i < 32; i++ {
		g.Go(func() error {
			next := rec.Clone()
			next.Box = model.Box2
			err := store.CompareAndSwap(ctx, next, 1)
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, model.ErrConflict):
				conflicted.Add(1)
			default:
				return err
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, int32(1), succeeded.Load())
	assert.Equal(t, int32(31), conflicted.Load())

	got, err := store.Get(ctx, rec.StudentID, rec.WordID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Version)
}
