package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go_5_box_vocab/internal/model"
	"go_5_box_vocab/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type StudyServiceSuite struct {
	suite.Suite
	ctx     context.Context
	db      *gorm.DB
	store   repository.ProgressStore
	clock   *fakeClock
	svc     StudyService
	student *model.Student
	words   []*model.Word // 5-A: apple, house, water
	other   *model.Word   // 6-B の単語
}

func TestStudyServiceSuite(t *testing.T) {
	suite.Run(t, new(StudyServiceSuite))
}

func (s *StudyServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.db = setupTestDB(s.T())
	s.store = repository.NewGormProgressStore(s.db)
	s.clock = newFakeClock(baseTime)

	studentRepo := repository.NewGormStudentRepository()
	wordRepo := repository.NewGormWordRepository()
	s.svc = NewStudyService(s.db, studentRepo, wordRepo, s.store, testConfig(), WithClock(s.clock.Now))

	s.student = &model.Student{StudentID: uuid.New(), Code: "S-001", Name: "Ayşe", ClassName: "5-A"}
	s.Require().NoError(studentRepo.Create(s.ctx, s.db, s.student))

	s.words = nil
	for i, pair := range [][2]string{{"apple", "elma"}, {"house", "ev; yuva"}, {"water", "su"}} {
		w := &model.Word{WordID: uuid.New(), ClassName: "5-A", Prompt: pair[0], Answer: pair[1], Position: int64(i + 1)}
		s.Require().NoError(wordRepo.Create(s.ctx, s.db, w))
		s.words = append(s.words, w)
	}
	s.other = &model.Word{WordID: uuid.New(), ClassName: "6-B", Prompt: "cat", Answer: "kedi", Position: 1}
	s.Require().NoError(wordRepo.Create(s.ctx, s.db, s.other))
}

func (s *StudyServiceSuite) submit(word *model.Word, answer string) *model.SubmitAnswerResponse {
	resp, err := s.svc.SubmitAnswer(s.ctx, s.student.Code, &model.SubmitAnswerRequest{WordID: word.WordID, Answer: answer})
	s.Require().NoError(err)
	return resp
}

func (s *StudyServiceSuite) record(word *model.Word) *model.ProgressRecord {
	rec, err := s.store.Get(s.ctx, s.student.StudentID, word.WordID)
	s.Require().NoError(err)
	return rec
}

func (s *StudyServiceSuite) TestGetNextDueWord_新しい生徒は最初の単語から() {
	next, err := s.svc.GetNextDueWord(s.ctx, s.student.Code)
	s.Require().NoError(err)
	s.False(next.Completed)
	s.Equal(&s.words[0].WordID, next.WordID)
	s.Equal("apple", next.Prompt)
	s.Equal(model.Box1, next.BoxNumber)
}

func (s *StudyServiceSuite) TestGetNextDueWord_読み取り専用で冪等() {
	first, err := s.svc.GetNextDueWord(s.ctx, s.student.Code)
	s.Require().NoError(err)
	second, err := s.svc.GetNextDueWord(s.ctx, s.student.Code)
	s.Require().NoError(err)
	s.Equal(first.WordID, second.WordID)

	recs, err := s.store.ListByStudent(s.ctx, s.student.StudentID)
	s.Require().NoError(err)
	s.Empty(recs, "出題の取得で進捗を作成してはいけない")
}

func (s *StudyServiceSuite) TestGetNextDueWord_単語の無いクラス() {
	lonely := &model.Student{StudentID: uuid.New(), Code: "S-900", Name: "Solo", ClassName: "empty"}
	s.Require().NoError(repository.NewGormStudentRepository().Create(s.ctx, s.db, lonely))

	next, err := s.svc.GetNextDueWord(s.ctx, lonely.Code)
	s.Require().NoError(err)
	s.True(next.Completed)
	s.Nil(next.WordID)
	s.NotEmpty(next.Message)
}

func (s *StudyServiceSuite) TestGetNextDueWord_存在しない生徒() {
	_, err := s.svc.GetNextDueWord(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrNotFound)
}

func (s *StudyServiceSuite) TestSubmitAnswer_正解でボックスが上がる() {
	resp := s.submit(s.words[0], "  ELMA ")
	s.True(resp.IsCorrect)
	s.Equal(model.Box2, resp.NewBox)
	s.Equal("elma", resp.CorrectAnswer)
	s.NotEmpty(resp.Message)

	rec := s.record(s.words[0])
	s.Equal(model.Box2, rec.Box)
	s.Equal(1, rec.CorrectCount)
	s.Require().NotNil(rec.LastReviewedAt)
	s.True(baseTime.Equal(*rec.LastReviewedAt))
	s.Require().NotNil(rec.NextDueAt)
	s.True(baseTime.Add(24 * time.Hour).Equal(*rec.NextDueAt))

	// apple は明日まで出題されない
	next, err := s.svc.GetNextDueWord(s.ctx, s.student.Code)
	s.Require().NoError(err)
	s.Equal("house", next.Prompt)
}

func (s *StudyServiceSuite) TestSubmitAnswer_不正解でボックス1に戻る() {
	s.submit(s.words[0], "elma")
	s.clock.Advance(24 * time.Hour)
	s.submit(s.words[0], "elma")
	s.Equal(model.Box3, s.record(s.words[0]).Box)

	s.clock.Advance(72 * time.Hour)
	resp := s.submit(s.words[0], "armut")
	s.False(resp.IsCorrect)
	s.Equal(model.Box1, resp.NewBox)
	s.Contains(resp.Message, "elma")

	rec := s.record(s.words[0])
	s.Equal(model.Box1, rec.Box)
	s.Equal(2, rec.CorrectCount)
	s.Equal(1, rec.WrongCount)
	s.Require().NotNil(rec.NextDueAt)
	s.True(s.clock.Now().Equal(*rec.NextDueAt), "ボックス1はすぐに出題対象")
}

func (s *StudyServiceSuite) TestSubmitAnswer_ボックス5で卒業() {
	intervals := []time.Duration{24 * time.Hour, 72 * time.Hour, 168 * time.Hour}
	s.submit(s.words[1], "ev")
	for _, d := range intervals {
		s.clock.Advance(d)
		resp := s.submit(s.words[1], "yuva")
		s.True(resp.IsCorrect)
	}

	rec := s.record(s.words[1])
	s.Equal(model.Box5, rec.Box)
	s.Nil(rec.NextDueAt)

	// ボックス5でさらに正解してもボックス5のまま
	resp := s.submit(s.words[1], "ev")
	s.Equal(model.Box5, resp.NewBox)

	s.clock.Advance(365 * 24 * time.Hour)
	for i := 0; i < 5; i++ {
		next, err := s.svc.GetNextDueWord(s.ctx, s.student.Code)
		s.Require().NoError(err)
		s.NotEqual(&s.words[1].WordID, next.WordID)
	}
}

func (s *StudyServiceSuite) TestSubmitAnswer_空の回答は何も変更しない() {
	for _, blank := range []string{"", "   ", "\t\n"} {
		_, err := s.svc.SubmitAnswer(s.ctx, s.student.Code, &model.SubmitAnswerRequest{WordID: s.words[0].WordID, Answer: blank})
		s.ErrorIs(err, model.ErrInvalidInput)
	}
	// 生徒が存在しなくても空回答の判定が先
	_, err := s.svc.SubmitAnswer(s.ctx, "nobody", &model.SubmitAnswerRequest{WordID: uuid.New(), Answer: " "})
	s.ErrorIs(err, model.ErrInvalidInput)

	_, err = s.store.Get(s.ctx, s.student.StudentID, s.words[0].WordID)
	s.ErrorIs(err, model.ErrNotFound)
}

func (s *StudyServiceSuite) TestSubmitAnswer_存在しない対象はNotFound() {
	_, err := s.svc.SubmitAnswer(s.ctx, "nobody", &model.SubmitAnswerRequest{WordID: s.words[0].WordID, Answer: "elma"})
	s.ErrorIs(err, model.ErrNotFound)

	_, err = s.svc.SubmitAnswer(s.ctx, s.student.Code, &model.SubmitAnswerRequest{WordID: uuid.New(), Answer: "elma"})
	s.ErrorIs(err, model.ErrNotFound)

	// 他のクラスの単語
	_, err = s.svc.SubmitAnswer(s.ctx, s.student.Code, &model.SubmitAnswerRequest{WordID: s.other.WordID, Answer: "kedi"})
	s.ErrorIs(err, model.ErrNotFound)

	recs, err := s.store.ListByStudent(s.ctx, s.student.StudentID)
	s.Require().NoError(err)
	s.Empty(recs)
}

func (s *StudyServiceSuite) TestGetStats() {
	stats, err := s.svc.GetStats(s.ctx, s.student.Code)
	s.Require().NoError(err)
	s.Equal(&model.StudentStats{TotalWords: 3, Box1Count: 3}, stats)

	s.submit(s.words[0], "elma")
	s.submit(s.words[1], "konut")

	stats, err = s.svc.GetStats(s.ctx, s.student.Code)
	s.Require().NoError(err)
	s.Equal(3, stats.TotalWords)
	s.Equal(2, stats.StudiedToday)
	s.Equal(2, stats.Box1Count)
	s.Equal(1, stats.Box2Count)
	s.Equal(1, stats.CorrectAnswers)
	s.Equal(1, stats.WrongAnswers)
	s.Equal(stats.TotalWords, stats.Box1Count+stats.Box2Count+stats.Box3Count+stats.Box4Count+stats.Box5Count)

	// 翌日になると「今日の学習数」は0に戻る
	s.clock.Advance(15 * time.Hour)
	stats, err = s.svc.GetStats(s.ctx, s.student.Code)
	s.Require().NoError(err)
	s.Equal(0, stats.StudiedToday)
	s.Equal(1, stats.Box2Count)
}

func (s *StudyServiceSuite) TestGetStats_カタログに無い単語の記録は数えない() {
	orphan := &model.ProgressRecord{
		ProgressID: uuid.New(), StudentID: s.student.StudentID, WordID: uuid.New(),
		Box: model.Box4, Version: 1, CorrectCount: 3,
	}
	s.Require().NoError(s.store.Create(s.ctx, orphan))

	stats, err := s.svc.GetStats(s.ctx, s.student.Code)
	s.Require().NoError(err)
	s.Equal(3, stats.TotalWords)
	s.Equal(3, stats.Box1Count)
	s.Equal(0, stats.Box4Count)
	s.Equal(0, stats.CorrectAnswers)
}

func (s *StudyServiceSuite) TestEnsureProgressRecord_冪等() {
	rec, created, err := s.svc.EnsureProgressRecord(s.ctx, s.student.Code, s.words[2].WordID)
	s.Require().NoError(err)
	s.True(created)
	s.Equal(model.Box1, rec.Box)
	s.Require().NotNil(rec.NextDueAt)
	s.True(baseTime.Equal(*rec.NextDueAt))

	s.submit(s.words[2], "su")

	again, created, err := s.svc.EnsureProgressRecord(s.ctx, s.student.Code, s.words[2].WordID)
	s.Require().NoError(err)
	s.False(created)
	s.Equal(model.Box2, again.Box, "既存の記録は変更しない")

	_, _, err = s.svc.EnsureProgressRecord(s.ctx, s.student.Code, s.other.WordID)
	s.ErrorIs(err, model.ErrNotFound)
}

func (s *StudyServiceSuite) TestEnsureProgressRecord_作成済みの単語は出題時刻順() {
	// house だけ先に記録を作っても、未作成の apple は時刻ゼロ扱いで先に出る
	s.clock.Advance(-time.Hour)
	_, _, err := s.svc.EnsureProgressRecord(s.ctx, s.student.Code, s.words[1].WordID)
	s.Require().NoError(err)
	s.clock.Advance(time.Hour)

	next, err := s.svc.GetNextDueWord(s.ctx, s.student.Code)
	s.Require().NoError(err)
	s.Equal("apple", next.Prompt)
}

// バージョン競合が2回続いたら Conflict を返し、記録は変わらない
func TestSubmitAnswer_ConflictAfterRetry(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	studentRepo := repository.NewGormStudentRepository()
	wordRepo := repository.NewGormWordRepository()

	student := &model.Student{StudentID: uuid.New(), Code: "S-001", Name: "Ali", ClassName: "5-A"}
	require.NoError(t, studentRepo.Create(ctx, db, student))
	word := &model.Word{WordID: uuid.New(), ClassName: "5-A", Prompt: "apple", Answer: "elma", Position: 1}
	require.NoError(t, wordRepo.Create(ctx, db, word))

	inner := repository.NewMemoryProgressStore()
	store := &conflictingStore{ProgressStore: inner, failures: 2}
	metrics := NewMetricsService()
	svc := NewStudyService(db, studentRepo, wordRepo, store, testConfig(),
		WithClock(newFakeClock(baseTime).Now), WithMetrics(metrics))

	_, err := svc.SubmitAnswer(ctx, student.Code, &model.SubmitAnswerRequest{WordID: word.WordID, Answer: "elma"})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrConflict)
	var appErr *model.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "CONFLICT", appErr.Code)
	assert.Equal(t, 2, store.casCalls)

	rec, err := inner.Get(ctx, student.StudentID, word.WordID)
	require.NoError(t, err)
	assert.Equal(t, model.Box1, rec.Box)
	assert.Equal(t, 0, rec.CorrectCount)

	// 1回だけの競合なら再試行で成功する
	store.failures = 1
	resp, err := svc.SubmitAnswer(ctx, student.Code, &model.SubmitAnswerRequest{WordID: word.WordID, Answer: "elma"})
	require.NoError(t, err)
	assert.Equal(t, model.Box2, resp.NewBox)
}

// conflictingStore は CompareAndSwap を指定回数だけ競合させる
type conflictingStore struct {
	repository.ProgressStore
	failures int
	casCalls int
}

func (s *conflictingStore) CompareAndSwap(ctx context.Context, rec *model.ProgressRecord, expected int64) error {
	s.casCalls++
	if s.failures > 0 {
		s.failures--
		return model.ErrConflict
	}
	return s.ProgressStore.CompareAndSwap(ctx, rec, expected)
}
