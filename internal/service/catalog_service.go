//go:generate mockery --name CatalogService --output ./mocks --outpkg mocks --case=underscore
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

// CatalogService はクラスごとの単語カタログを管理します
type CatalogService interface {
	AddWords(ctx context.Context, className string, req *model.AddWordsRequest) (*model.AddWordsResponse, error)
	ListWords(ctx context.Context, className string) ([]*model.Word, error)
}

type catalogService struct {
	db          *gorm.DB
	wordRepo    repository.WordRepository
	studentRepo repository.StudentRepository
	study       StudyService
}

func NewCatalogService(db *gorm.DB, wordRepo repository.WordRepository, studentRepo repository.StudentRepository, study StudyService) CatalogService {
	return &catalogService{
		db:          db,
		wordRepo:    wordRepo,
		studentRepo: studentRepo,
		study:       study,
	}
}

// AddWords は単語をカタログの末尾に追加します。同じクラスに既にある問題文はスキップします。
// 追加後、クラスの全生徒にボックス1の進捗を作成します
func (s *catalogService) AddWords(ctx context.Context, className string, req *model.AddWordsRequest) (*model.AddWordsResponse, error) {
	logger := middleware.GetLogger(ctx).With("class_name", className)

	className = strings.TrimSpace(className)
	if className == "" {
		return nil, model.NewAppError("INVALID_CLASS_NAME", "クラス名を指定してください。", "class_name", model.ErrInvalidInput)
	}
	if req == nil || len(req.Words) == 0 {
		return nil, model.NewAppError("VALIDATION_ERROR", "単語を1件以上指定してください。", "words", model.ErrInvalidInput)
	}

	resp := &model.AddWordsResponse{Words: []*model.Word{}}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		pos, err := s.wordRepo.MaxPosition(ctx, tx, className)
		if err != nil {
			return err
		}

		seen := make(map[string]bool, len(req.Words))
		for _, in := range req.Words {
			prompt := strings.TrimSpace(in.Prompt)
			answer := strings.TrimSpace(in.Answer)
			if prompt == "" || answer == "" || seen[prompt] {
				resp.SkippedCount++
				continue
			}
			seen[prompt] = true

			exists, err := s.wordRepo.CheckPromptExists(ctx, tx, className, prompt)
			if err != nil {
				return err
			}
			if exists {
				resp.SkippedCount++
				continue
			}

			pos++
			word := &model.Word{
				WordID:    uuid.New(),
				ClassName: className,
				Prompt:    prompt,
				Answer:    answer,
				Position:  pos,
			}
			if err := s.wordRepo.Create(ctx, tx, word); err != nil {
				return err
			}
			resp.Words = append(resp.Words, word)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			logger.Warn("Concurrent catalog update detected", "error", err)
			return nil, model.NewAppError("CONFLICT", "単語の登録が競合しました。もう一度お試しください。", "words", err)
		}
		logger.Error("Failed to add words", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "単語の登録に失敗しました。", "", err)
	}
	resp.AddedCount = len(resp.Words)

	if resp.AddedCount > 0 {
		if err := s.ensureForClass(ctx, className, resp.Words); err != nil {
			return nil, err
		}
	}

	logger.Info("Words added to catalog", "added", resp.AddedCount, "skipped", resp.SkippedCount)
	return resp, nil
}

// ensureForClass はクラスの全生徒に新しい単語の進捗を用意します (コミット後に実行)
func (s *catalogService) ensureForClass(ctx context.Context, className string, words []*model.Word) error {
	logger := middleware.GetLogger(ctx)

	students, err := s.studentRepo.FindByClass(ctx, s.db, className)
	if err != nil {
		logger.Error("Failed to list class students", "error", err, "class_name", className)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "生徒一覧の取得に失敗しました。", "", err)
	}
	for _, st := range students {
		for _, w := range words {
			if _, _, err := s.study.EnsureProgressRecord(ctx, st.Code, w.WordID); err != nil {
				logger.Error("Failed to ensure progress record", "error", err, "student_code", st.Code, "word_id", w.WordID)
				return err
			}
		}
	}
	return nil
}

func (s *catalogService) ListWords(ctx context.Context, className string) ([]*model.Word, error) {
	logger := middleware.GetLogger(ctx).With("class_name", className)

	words, err := s.wordRepo.FindByClass(ctx, s.db, className)
	if err != nil {
		logger.Error("Failed to list words", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "単語一覧の取得に失敗しました。", "", err)
	}
	return words, nil
}
