//go:generate mockery --name StudentService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"strings"

	"go_5_box_vocab/internal/middleware"
	"go_5_box_vocab/internal/model"
	"go_5_box_vocab/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudentService は生徒名簿を扱います。進捗は出題時に遅延作成されるのでここでは作りません
type StudentService interface {
	CreateStudent(ctx context.Context, req *model.CreateStudentRequest) (*model.Student, error)
	GetStudent(ctx context.Context, code string) (*model.Student, error)
	ListStudents(ctx context.Context) ([]*model.Student, error)
}

type studentService struct {
	db          *gorm.DB
	studentRepo repository.StudentRepository
}

func NewStudentService(db *gorm.DB, repo repository.StudentRepository) StudentService {
	return &studentService{db: db, studentRepo: repo}
}

func (s *studentService) CreateStudent(ctx context.Context, req *model.CreateStudentRequest) (*model.Student, error) {
	logger := middleware.GetLogger(ctx)

	student := &model.Student{
		StudentID: uuid.New(),
		Code:      strings.TrimSpace(req.Code),
		Name:      strings.TrimSpace(req.Name),
		ClassName: strings.TrimSpace(req.ClassName),
	}
	if student.Code == "" || student.Name == "" || student.ClassName == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "生徒コード・氏名・クラスは必須です。", "", model.ErrInvalidInput)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.studentRepo.Create(ctx, tx, student)
	})
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			return nil, model.NewAppError("DUPLICATE_STUDENT_CODE", "この生徒コードは既に使用されています。", "code", err)
		}
		logger.Error("Failed to create student", "error", err, "code", student.Code)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "生徒の登録に失敗しました。", "", err)
	}

	logger.Info("Student created", "student_id", student.StudentID, "code", student.Code, "class_name", student.ClassName)
	return student, nil
}

func (s *studentService) GetStudent(ctx context.Context, code string) (*model.Student, error) {
	student, err := s.studentRepo.FindByCode(ctx, s.db, code)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("STUDENT_NOT_FOUND", "生徒が見つかりません。", "student_code", err)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "生徒情報の取得に失敗しました。", "", err)
	}
	return student, nil
}

func (s *studentService) ListStudents(ctx context.Context) ([]*model.Student, error) {
	students, err := s.studentRepo.List(ctx, s.db)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to list students", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "生徒一覧の取得に失敗しました。", "", err)
	}
	return students, nil
}
