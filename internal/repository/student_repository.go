//go:generate mockery --name StudentRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_5_box_vocab/internal/middleware"
	"go_5_box_vocab/internal/model"

	"gorm.io/gorm"
)

// StudentRepository は生徒名簿へのアクセス
type StudentRepository interface {
	Create(ctx context.Context, db *gorm.DB, student *model.Student) error
	FindByCode(ctx context.Context, db *gorm.DB, code string) (*model.Student, error)
	FindByClass(ctx context.Context, db *gorm.DB, className string) ([]*model.Student, error)
	List(ctx context.Context, db *gorm.DB) ([]*model.Student, error)
}

type gormStudentRepository struct{}

func NewGormStudentRepository() StudentRepository {
	return &gormStudentRepository{}
}

func (r *gormStudentRepository) Create(ctx context.Context, db *gorm.DB, student *model.Student) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Create(student)
	if result.Error != nil {
		if isDuplicateKey(result.Error) {
			logger.Warn("Duplicate student code on create", "error", result.Error, "code", student.Code)
			return model.ErrConflict
		}
		logger.Error("Error creating student in DB", "error", result.Error, "code", student.Code)
		return fmt.Errorf("gormStudentRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormStudentRepository) FindByCode(ctx context.Context, db *gorm.DB, code string) (*model.Student, error) {
	logger := middleware.GetLogger(ctx)
	var student model.Student

	result := db.WithContext(ctx).Where("code = ?", code).First(&student)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding student by code in DB", "error", result.Error, "code", code)
		return nil, fmt.Errorf("gormStudentRepository.FindByCode: %w", result.Error)
	}
	return &student, nil
}

func (r *gormStudentRepository) FindByClass(ctx context.Context, db *gorm.DB, className string) ([]*model.Student, error) {
	logger := middleware.GetLogger(ctx)
	var students []*model.Student

	result := db.WithContext(ctx).Where("class_name = ?", className).Order("code ASC").Find(&students)
	if result.Error != nil {
		logger.Error("Error finding students by class in DB", "error", result.Error, "class_name", className)
		return nil, fmt.Errorf("gormStudentRepository.FindByClass: %w", result.Error)
	}
	return students, nil
}

func (r *gormStudentRepository) List(ctx context.Context, db *gorm.DB) ([]*model.Student, error) {
	logger := middleware.GetLogger(ctx)
	var students []*model.Student

	result := db.WithContext(ctx).Order("class_name ASC, code ASC").Find(&students)
	if result.Error != nil {
		logger.Error("Error listing students in DB", "error", result.Error)
		return nil, fmt.Errorf("gormStudentRepository.List: %w", result.Error)
	}
	return students, nil
}
