// internal/model/progress.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Box は5つのボックスの番号。1が未習熟、5が習得済み
type Box int

const (
	Box1 Box = iota + 1 // 1
	Box2                // 2
	Box3                // 3
	Box4                // 4
	Box5                // 5
)

const (
	MinBox = Box1
	MaxBox = Box5
)

// Valid はボックス番号が1〜5の範囲内かを返します
func (b Box) Valid() bool {
	return b >= MinBox && b <= MaxBox
}

// ProgressRecord は生徒×単語ごとの学習進捗
type ProgressRecord struct {
	ProgressID uuid.UUID `gorm:"type:uuid;primaryKey"`
	StudentID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_student_word"`
	WordID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_student_word"`
	Box        Box       `gorm:"not null;default:1"`
	// LastReviewedAt は最後に回答した時刻。一度も回答していなければ nil
	LastReviewedAt *time.Time
	// NextDueAt はこの時刻以降に出題対象になる。nil は卒業済み (再出題しない)
	NextDueAt    *time.Time `gorm:"index"`
	CorrectCount int        `gorm:"not null;default:0"`
	WrongCount   int        `gorm:"not null;default:0"`
	// Version は楽観ロック用。書き込みのたびに1増える
	Version   int64 `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ProgressRecord) TableName() string {
	return "progress_records"
}

// Clone はストア外で安全に書き換えられるコピーを返します
func (p *ProgressRecord) Clone() *ProgressRecord {
	if p == nil {
		return nil
	}
	c := *p
	if p.LastReviewedAt != nil {
		t := *p.LastReviewedAt
		c.LastReviewedAt = &t
	}
	if p.NextDueAt != nil {
		t := *p.NextDueAt
		c.NextDueAt = &t
	}
	return &c
}
