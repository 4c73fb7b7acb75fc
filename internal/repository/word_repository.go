//go:generate mockery --name WordRepository --output ./mocks --outpkg mocks --case=underscore
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

// WordRepository はクラス別の単語カタログへのアクセス
type WordRepository interface {
	Create(ctx context.Context, tx *gorm.DB, word *model.Word) error
	FindByID(ctx context.Context, db *gorm.DB, wordID uuid.UUID) (*model.Word, error)
	// FindByClass はカタログ登録順 (position 昇順) で返す
	FindByClass(ctx context.Context, db *gorm.DB, className string) ([]*model.Word, error)
	CheckPromptExists(ctx context.Context, db *gorm.DB, className, prompt string) (bool, error)
	MaxPosition(ctx context.Context, db *gorm.DB, className string) (int64, error)
}

type gormWordRepository struct{}

func NewGormWordRepository() WordRepository {
	return &gormWordRepository{}
}

func (r *gormWordRepository) Create(ctx context.Context, tx *gorm.DB, word *model.Word) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(word)
	if result.Error != nil {
		if isDuplicateKey(result.Error) {
			logger.Warn("Duplicate word on create", "error", result.Error, "class_name", word.ClassName, "prompt", word.Prompt)
			return model.ErrConflict
		}
		logger.Error("Error creating word in DB",
			"error", result.Error,
			"class_name", word.ClassName,
			"prompt", word.Prompt,
		)
		return fmt.Errorf("gormWordRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormWordRepository) FindByID(ctx context.Context, db *gorm.DB, wordID uuid.UUID) (*model.Word, error) {
	logger := middleware.GetLogger(ctx)
	var word model.Word
	result := db.WithContext(ctx).Where("word_id = ?", wordID).First(&word)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding word by ID in DB", "error", result.Error, "word_id", wordID.String())
		return nil, fmt.Errorf("gormWordRepository.FindByID: %w", result.Error)
	}
	return &word, nil
}

func (r *gormWordRepository) FindByClass(ctx context.Context, db *gorm.DB, className string) ([]*model.Word, error) {
	logger := middleware.GetLogger(ctx)
	var words []*model.Word
	result := db.WithContext(ctx).Where("class_name = ?", className).Order("position ASC").Find(&words)
	if result.Error != nil {
		logger.Error("Error finding words by class in DB", "error", result.Error, "class_name", className)
		return nil, fmt.Errorf("gormWordRepository.FindByClass: %w", result.Error)
	}
	return words, nil
}

func (r *gormWordRepository) CheckPromptExists(ctx context.Context, db *gorm.DB, className, prompt string) (bool, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).Model(&model.Word{}).
		Where("class_name = ? AND prompt = ?", className, prompt).
		Count(&count)
	if result.Error != nil {
		logger.Error("Error checking prompt existence in DB", "error", result.Error, "class_name", className, "prompt", prompt)
		return false, fmt.Errorf("gormWordRepository.CheckPromptExists: %w", result.Error)
	}
	return count > 0, nil
}

func (r *gormWordRepository) MaxPosition(ctx context.Context, db *gorm.DB, className string) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var maxPos *int64
	result := db.WithContext(ctx).Model(&model.Word{}).
		Where("class_name = ?", className).
		Select("MAX(position)").
		Scan(&maxPos)
	if result.Error != nil {
		logger.Error("Error reading max word position in DB", "error", result.Error, "class_name", className)
		return 0, fmt.Errorf("gormWordRepository.MaxPosition: %w", result.Error)
	}
	if maxPos == nil {
		return 0, nil
	}
	return *maxPos, nil
}
