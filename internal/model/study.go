// internal/model/study.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// NextWordResponse は次に出題する単語。Completed が true の場合は出題対象なし
type NextWordResponse struct {
	Completed bool       `json:"completed"`
	WordID    *uuid.UUID `json:"word_id,omitempty"`
	Prompt    string     `json:"prompt,omitempty"`
	BoxNumber Box        `json:"box_number,omitempty"`
	Message   string     `json:"message,omitempty"`
}

// SubmitAnswerRequest は回答送信リクエストDTO
type SubmitAnswerRequest struct {
	WordID uuid.UUID `json:"word_id" validate:"required"`
	Answer string    `json:"answer" validate:"required"`
}

// SubmitAnswerResponse は採点結果
type SubmitAnswerResponse struct {
	IsCorrect     bool   `json:"is_correct"`
	CorrectAnswer string `json:"correct_answer"`
	NewBox        Box    `json:"new_box"`
	Message       string `json:"message"`
}

// StudentStats はダッシュボード用の集計
type StudentStats struct {
	TotalWords     int `json:"total_words"`
	StudiedToday   int `json:"studied_today"`
	Box1Count      int `json:"box1_count"`
	Box2Count      int `json:"box2_count"`
	Box3Count      int `json:"box3_count"`
	Box4Count      int `json:"box4_count"`
	Box5Count      int `json:"box5_count"`
	CorrectAnswers int `json:"correct_answers"`
	WrongAnswers   int `json:"wrong_answers"`
}

// BoxCount は指定ボックスの件数を返します
func (s *StudentStats) BoxCount(b Box) int {
	switch b {
	case Box1:
		return s.Box1Count
	case Box2:
		return s.Box2Count
	case Box3:
		return s.Box3Count
	case Box4:
		return s.Box4Count
	case Box5:
		return s.Box5Count
	}
	return 0
}

// AddToBox は指定ボックスの件数を1増やします
func (s *StudentStats) AddToBox(b Box) {
	switch b {
	case Box1:
		s.Box1Count++
	case Box2:
		s.Box2Count++
	case Box3:
		s.Box3Count++
	case Box4:
		s.Box4Count++
	case Box5:
		s.Box5Count++
	}
}

// ProgressResponse は進捗記録の作成・確認APIのレスポンス
type ProgressResponse struct {
	WordID         uuid.UUID  `json:"word_id"`
	BoxNumber      Box        `json:"box_number"`
	LastReviewedAt *time.Time `json:"last_reviewed_at"`
	NextDueAt      *time.Time `json:"next_due_at"`
	CorrectCount   int        `json:"correct_count"`
	WrongCount     int        `json:"wrong_count"`
	Created        bool       `json:"created"`
}

// NewProgressResponse は ProgressRecord からレスポンスを作ります
func NewProgressResponse(rec *ProgressRecord, created bool) *ProgressResponse {
	return &ProgressResponse{
		WordID:         rec.WordID,
		BoxNumber:      rec.Box,
		LastReviewedAt: rec.LastReviewedAt,
		NextDueAt:      rec.NextDueAt,
		CorrectCount:   rec.CorrectCount,
		WrongCount:     rec.WrongCount,
		Created:        created,
	}
}
