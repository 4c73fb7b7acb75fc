//go:generate mockery --name StudyService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go_5_box_vocab/internal/config"
	"go_5_box_vocab/internal/leitner"
	"go_5_box_vocab/internal/middleware"
	"go_5_box_vocab/internal/model"
	"go_5_box_vocab/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudyService は出題・採点・集計を扱います
type StudyService interface {
	GetNextDueWord(ctx context.Context, studentCode string) (*model.NextWordResponse, error)
	SubmitAnswer(ctx context.Context, studentCode string, req *model.SubmitAnswerRequest) (*model.SubmitAnswerResponse, error)
	GetStats(ctx context.Context, studentCode string) (*model.StudentStats, error)
	// EnsureProgressRecord はボックス1の進捗を作成します。既にあればそのまま返し created=false
	EnsureProgressRecord(ctx context.Context, studentCode string, wordID uuid.UUID) (rec *model.ProgressRecord, created bool, err error)
}

// 採点の保存でバージョン競合したときの再試行回数
const gradeRetries = 1

type studyService struct {
	db          *gorm.DB
	studentRepo repository.StudentRepository
	wordRepo    repository.WordRepository
	store       repository.ProgressStore
	schedule    leitner.Schedule
	loc         *time.Location
	cache       StatsCache
	metrics     *MetricsService
	now         func() time.Time
}

type StudyOption func(*studyService)

// WithClock は現在時刻の取得元を差し替えます (テスト用)
func WithClock(now func() time.Time) StudyOption {
	return func(s *studyService) { s.now = now }
}

func WithStatsCache(cache StatsCache) StudyOption {
	return func(s *studyService) {
		if cache != nil {
			s.cache = cache
		}
	}
}

func WithMetrics(metrics *MetricsService) StudyOption {
	return func(s *studyService) { s.metrics = metrics }
}

func NewStudyService(
	db *gorm.DB,
	studentRepo repository.StudentRepository,
	wordRepo repository.WordRepository,
	store repository.ProgressStore,
	cfg *config.Config,
	opts ...StudyOption,
) StudyService {
	loc, err := cfg.Location()
	if err != nil {
		loc = time.Local
	}
	s := &studyService{
		db:          db,
		studentRepo: studentRepo,
		wordRepo:    wordRepo,
		store:       store,
		schedule:    leitner.NewSchedule(cfg.Leitner),
		loc:         loc,
		cache:       noopStatsCache{},
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *studyService) GetNextDueWord(ctx context.Context, studentCode string) (*model.NextWordResponse, error) {
	logger := middleware.GetLogger(ctx).With("student_code", studentCode)

	student, err := s.resolveStudent(ctx, studentCode)
	if err != nil {
		return nil, err
	}
	words, records, err := s.loadClassProgress(ctx, student)
	if err != nil {
		return nil, err
	}

	next, ok := leitner.SelectNext(words, records, s.now())
	if !ok {
		logger.Info("No word is due", "total_words", len(words))
		return &model.NextWordResponse{
			Completed: true,
			Message:   "今日の復習はすべて完了しました。",
		}, nil
	}

	wordID := next.Word.WordID
	logger.Debug("Next word selected", "word_id", wordID, "box", int(next.Box()))
	return &model.NextWordResponse{
		WordID:    &wordID,
		Prompt:    next.Word.Prompt,
		BoxNumber: next.Box(),
	}, nil
}

func (s *studyService) SubmitAnswer(ctx context.Context, studentCode string, req *model.SubmitAnswerRequest) (*model.SubmitAnswerResponse, error) {
	logger := middleware.GetLogger(ctx).With("student_code", studentCode, "word_id", req.WordID)

	if leitner.IsBlankAnswer(req.Answer) {
		return nil, model.NewAppError("INVALID_ANSWER", "回答を入力してください。", "answer", model.ErrInvalidInput)
	}

	student, err := s.resolveStudent(ctx, studentCode)
	if err != nil {
		return nil, err
	}
	word, err := s.resolveWord(ctx, student, req.WordID)
	if err != nil {
		return nil, err
	}

	correct := leitner.MatchAnswer(req.Answer, word.Answer)

	var (
		from    model.Box
		updated *model.ProgressRecord
	)
	for attempt := 0; attempt <= gradeRetries; attempt++ {
		from, updated, err = s.applyGrade(ctx, student, word, correct)
		if err == nil {
			break
		}
		if !errors.Is(err, model.ErrConflict) {
			logger.Error("Failed to persist grade", "error", err)
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "学習進捗の更新に失敗しました。", "", err)
		}
		s.metrics.RecordConflict()
		logger.Warn("Grade conflicted with a concurrent update", "attempt", attempt+1)
	}
	if err != nil {
		return nil, model.NewAppError("CONFLICT", "同じ単語への回答が同時に行われました。もう一度お試しください。", "word_id", err)
	}

	s.metrics.RecordAnswer(correct, from, updated.Box)
	s.cache.Invalidate(ctx, student.StudentID)

	logger.Info("Answer graded", "is_correct", correct, "from_box", int(from), "new_box", int(updated.Box))
	return &model.SubmitAnswerResponse{
		IsCorrect:     correct,
		CorrectAnswer: word.Answer,
		NewBox:        updated.Box,
		Message:       feedbackMessage(correct, updated, word.Answer),
	}, nil
}

// applyGrade は1回分の読み取り→遷移→CAS書き込みを行います。
// 競合時は model.ErrConflict を返し、呼び出し元が最初から読み直します
func (s *studyService) applyGrade(ctx context.Context, student *model.Student, word *model.Word, correct bool) (model.Box, *model.ProgressRecord, error) {
	now := s.now()

	rec, err := s.store.Get(ctx, student.StudentID, word.WordID)
	if errors.Is(err, model.ErrNotFound) {
		rec = leitner.NewRecord(student.StudentID, word.WordID, now)
		if err := s.store.Create(ctx, rec); err != nil {
			return 0, nil, err
		}
	} else if err != nil {
		return 0, nil, err
	}

	next := s.schedule.Review(rec, correct, now)
	if err := s.store.CompareAndSwap(ctx, next, rec.Version); err != nil {
		return 0, nil, err
	}
	return rec.Box, next, nil
}

func feedbackMessage(correct bool, rec *model.ProgressRecord, answer string) string {
	switch {
	case !correct:
		return fmt.Sprintf("不正解です。正解は「%s」です。ボックス1に戻ります。", answer)
	case rec.Box == model.MaxBox && rec.NextDueAt == nil:
		return "正解です！この単語は習得済みになりました。"
	default:
		return fmt.Sprintf("正解です！ボックス%dに進みました。", int(rec.Box))
	}
}

func (s *studyService) GetStats(ctx context.Context, studentCode string) (*model.StudentStats, error) {
	student, err := s.resolveStudent(ctx, studentCode)
	if err != nil {
		return nil, err
	}

	now := s.now().In(s.loc)
	day := now.Format(time.DateOnly)
	// 世代は集計の前に読む。集計中に回答が入れば、この Set は古い世代のキーに書かれる
	gen, cacheable := s.cache.Generation(ctx, student.StudentID)
	if cacheable {
		if cached, ok := s.cache.Get(ctx, student.StudentID, gen, day); ok {
			return cached, nil
		}
	}

	words, records, err := s.loadClassProgress(ctx, student)
	if err != nil {
		return nil, err
	}

	stats := aggregateStats(words, records, startOfDay(now))
	if cacheable {
		s.cache.Set(ctx, student.StudentID, gen, day, stats)
	}
	return stats, nil
}

// aggregateStats はカタログの単語ごとに集計します。カタログに無い単語の記録は数えません
func aggregateStats(words []*model.Word, records map[uuid.UUID]*model.ProgressRecord, midnight time.Time) *model.StudentStats {
	stats := &model.StudentStats{TotalWords: len(words)}
	for _, w := range words {
		rec, ok := records[w.WordID]
		if !ok {
			stats.AddToBox(model.Box1)
			continue
		}
		box := rec.Box
		if !box.Valid() {
			box = model.Box1
		}
		stats.AddToBox(box)
		if rec.LastReviewedAt != nil && !rec.LastReviewedAt.Before(midnight) {
			stats.StudiedToday++
		}
		stats.CorrectAnswers += rec.CorrectCount
		stats.WrongAnswers += rec.WrongCount
	}
	return stats
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func (s *studyService) EnsureProgressRecord(ctx context.Context, studentCode string, wordID uuid.UUID) (*model.ProgressRecord, bool, error) {
	logger := middleware.GetLogger(ctx).With("student_code", studentCode, "word_id", wordID)

	student, err := s.resolveStudent(ctx, studentCode)
	if err != nil {
		return nil, false, err
	}
	word, err := s.resolveWord(ctx, student, wordID)
	if err != nil {
		return nil, false, err
	}

	rec := leitner.NewRecord(student.StudentID, word.WordID, s.now())
	err = s.store.Create(ctx, rec)
	if errors.Is(err, model.ErrConflict) {
		existing, getErr := s.store.Get(ctx, student.StudentID, word.WordID)
		if getErr != nil {
			logger.Error("Failed to read existing progress", "error", getErr)
			return nil, false, model.NewAppError("INTERNAL_SERVER_ERROR", "学習進捗の取得に失敗しました。", "", getErr)
		}
		return existing, false, nil
	}
	if err != nil {
		logger.Error("Failed to create progress", "error", err)
		return nil, false, model.NewAppError("INTERNAL_SERVER_ERROR", "学習進捗の作成に失敗しました。", "", err)
	}

	s.cache.Invalidate(ctx, student.StudentID)
	logger.Debug("Progress record created")
	return rec, true, nil
}

func (s *studyService) resolveStudent(ctx context.Context, code string) (*model.Student, error) {
	student, err := s.studentRepo.FindByCode(ctx, s.db, code)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("STUDENT_NOT_FOUND", "生徒が見つかりません。", "student_code", err)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "生徒情報の取得に失敗しました。", "", err)
	}
	return student, nil
}

// resolveWord は生徒のクラスに属する単語だけを返します
func (s *studyService) resolveWord(ctx context.Context, student *model.Student, wordID uuid.UUID) (*model.Word, error) {
	word, err := s.wordRepo.FindByID(ctx, s.db, wordID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("WORD_NOT_FOUND", "単語が見つかりません。", "word_id", err)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "単語の取得に失敗しました。", "", err)
	}
	if word.ClassName != student.ClassName {
		return nil, model.NewAppError("WORD_NOT_FOUND", "単語が見つかりません。", "word_id", model.ErrNotFound)
	}
	return word, nil
}

func (s *studyService) loadClassProgress(ctx context.Context, student *model.Student) ([]*model.Word, map[uuid.UUID]*model.ProgressRecord, error) {
	logger := middleware.GetLogger(ctx)

	words, err := s.wordRepo.FindByClass(ctx, s.db, student.ClassName)
	if err != nil {
		logger.Error("Failed to load class words", "error", err, "class_name", student.ClassName)
		return nil, nil, model.NewAppError("INTERNAL_SERVER_ERROR", "単語一覧の取得に失敗しました。", "", err)
	}
	recs, err := s.store.ListByStudent(ctx, student.StudentID)
	if err != nil {
		logger.Error("Failed to load progress records", "error", err, "student_id", student.StudentID)
		return nil, nil, model.NewAppError("INTERNAL_SERVER_ERROR", "学習進捗の取得に失敗しました。", "", err)
	}

	records := make(map[uuid.UUID]*model.ProgressRecord, len(recs))
	for _, r := range recs {
		records[r.WordID] = r
	}
	return words, records, nil
}
