//go:generate mockery --name ProgressStore --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_5_box_vocab/internal/middleware"
	"go_5_box_vocab/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProgressStore は (生徒, 単語) ごとの学習記録を保持する
// 更新は Version による楽観的ロックでのみ行う
type ProgressStore interface {
	Get(ctx context.Context, studentID, wordID uuid.UUID) (*model.ProgressRecord, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*model.ProgressRecord, error)
	// Create は存在しない場合のみ作成する。既にあれば model.ErrConflict
	Create(ctx context.Context, rec *model.ProgressRecord) error
	// CompareAndSwap は保存済みの Version が expectedVersion と一致する場合のみ rec で置き換える
	// 成功時は rec.Version を expectedVersion+1 に進める。不一致は model.ErrConflict
	CompareAndSwap(ctx context.Context, rec *model.ProgressRecord, expectedVersion int64) error
}

type gormProgressStore struct {
	db *gorm.DB
}

func NewGormProgressStore(db *gorm.DB) ProgressStore {
	return &gormProgressStore{db: db}
}

func (s *gormProgressStore) Get(ctx context.Context, studentID, wordID uuid.UUID) (*model.ProgressRecord, error) {
	logger := middleware.GetLogger(ctx)
	var rec model.ProgressRecord
	result := s.db.WithContext(ctx).
		Where("student_id = ? AND word_id = ?", studentID, wordID).
		First(&rec)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding progress record in DB", "error", result.Error,
			"student_id", studentID.String(), "word_id", wordID.String())
		return nil, fmt.Errorf("gormProgressStore.Get: %w", result.Error)
	}
	return &rec, nil
}

func (s *gormProgressStore) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*model.ProgressRecord, error) {
	logger := middleware.GetLogger(ctx)
	var recs []*model.ProgressRecord
	result := s.db.WithContext(ctx).Where("student_id = ?", studentID).Find(&recs)
	if result.Error != nil {
		logger.Error("Error listing progress records in DB", "error", result.Error, "student_id", studentID.String())
		return nil, fmt.Errorf("gormProgressStore.ListByStudent: %w", result.Error)
	}
	return recs, nil
}

func (s *gormProgressStore) Create(ctx context.Context, rec *model.ProgressRecord) error {
	logger := middleware.GetLogger(ctx)
	if rec.ProgressID == uuid.Nil {
		rec.ProgressID = uuid.New()
	}
	if rec.Version == 0 {
		rec.Version = 1
	}
	result := s.db.WithContext(ctx).Create(rec)
	if result.Error != nil {
		if isDuplicateKey(result.Error) {
			return model.ErrConflict
		}
		logger.Error("Error creating progress record in DB", "error", result.Error,
			"student_id", rec.StudentID.String(), "word_id", rec.WordID.String())
		return fmt.Errorf("gormProgressStore.Create: %w", result.Error)
	}
	return nil
}

func (s *gormProgressStore) CompareAndSwap(ctx context.Context, rec *model.ProgressRecord, expectedVersion int64) error {
	logger := middleware.GetLogger(ctx)

	// next_due_at の nil は「卒業」を意味するので、明示的に NULL を書き込む
	updates := map[string]interface{}{
		"box":              rec.Box,
		"last_reviewed_at": rec.LastReviewedAt,
		"next_due_at":      rec.NextDueAt,
		"correct_count":    rec.CorrectCount,
		"wrong_count":      rec.WrongCount,
		"version":          expectedVersion + 1,
	}
	if rec.NextDueAt == nil {
		updates["next_due_at"] = gorm.Expr("NULL")
	}

	result := s.db.WithContext(ctx).Model(&model.ProgressRecord{}).
		Where("progress_id = ? AND version = ?", rec.ProgressID, expectedVersion).
		Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating progress record in DB", "error", result.Error,
			"progress_id", rec.ProgressID.String())
		return fmt.Errorf("gormProgressStore.CompareAndSwap: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		logger.Warn("Progress record version mismatch",
			"progress_id", rec.ProgressID.String(), "expected_version", expectedVersion)
		return model.ErrConflict
	}
	rec.Version = expectedVersion + 1
	return nil
}
