// Package leitner は5ボックス方式の状態遷移・出題順・採点を扱う純粋なロジックです。
// ストレージには依存しません。
package leitner

import (
	"time"

	"go_5_box_vocab/internal/config"
	"go_5_box_vocab/internal/model"

	"github.com/google/uuid"
)

// Schedule はボックスごとの復習間隔
type Schedule struct {
	Intervals [5]time.Duration
	// RetireMastered が true の場合、ボックス5の単語は再出題されない
	RetireMastered bool
}

// DefaultSchedule は 即時 / 1日 / 3日 / 7日 / 卒業 の間隔表
func DefaultSchedule() Schedule {
	return Schedule{
		Intervals: [5]time.Duration{
			config.DefaultBox1Interval,
			config.DefaultBox2Interval,
			config.DefaultBox3Interval,
			config.DefaultBox4Interval,
			config.DefaultBox5Interval,
		},
		RetireMastered: true,
	}
}

// NewSchedule は設定値から Schedule を作ります
func NewSchedule(cfg config.LeitnerConfig) Schedule {
	return Schedule{
		Intervals: [5]time.Duration{
			cfg.Box1Interval,
			cfg.Box2Interval,
			cfg.Box3Interval,
			cfg.Box4Interval,
			cfg.Box5Interval,
		},
		RetireMastered: cfg.RetireMastered,
	}
}

// Interval はボックスの復習間隔を返します。卒業扱いのボックスでは ok=false
func (s Schedule) Interval(b model.Box) (d time.Duration, ok bool) {
	b = clampBox(b)
	if b == model.MaxBox && s.RetireMastered {
		return 0, false
	}
	return s.Intervals[b-1], true
}

// NextDue は reviewedAt に回答したときの次回出題時刻。卒業なら nil
func (s Schedule) NextDue(b model.Box, reviewedAt time.Time) *time.Time {
	d, ok := s.Interval(b)
	if !ok {
		return nil
	}
	due := reviewedAt.Add(d)
	return &due
}

// NextBox は正解なら1つ上 (上限5)、不正解なら必ずボックス1に戻します
func NextBox(current model.Box, correct bool) model.Box {
	if !correct {
		return model.Box1
	}
	current = clampBox(current)
	if current >= model.MaxBox {
		return model.MaxBox
	}
	return current + 1
}

// NewRecord は初めて出題する単語の進捗 (ボックス1・即時出題) を作ります
func NewRecord(studentID, wordID uuid.UUID, now time.Time) *model.ProgressRecord {
	due := now
	return &model.ProgressRecord{
		ProgressID: uuid.New(),
		StudentID:  studentID,
		WordID:     wordID,
		Box:        model.Box1,
		NextDueAt:  &due,
		Version:    1,
	}
}

// Review は回答結果を反映した新しい進捗を返します。rec 自体は変更しません。
// Version はストアの CompareAndSwap が進めるのでここでは触りません
func (s Schedule) Review(rec *model.ProgressRecord, correct bool, now time.Time) *model.ProgressRecord {
	next := rec.Clone()
	next.Box = NextBox(rec.Box, correct)
	reviewedAt := now
	next.LastReviewedAt = &reviewedAt
	next.NextDueAt = s.NextDue(next.Box, now)
	if correct {
		next.CorrectCount++
	} else {
		next.WrongCount++
	}
	return next
}

// IsDue は now の時点で出題対象かを返します。進捗が無い単語は常に対象
func IsDue(rec *model.ProgressRecord, now time.Time) bool {
	if rec == nil {
		return true
	}
	if rec.NextDueAt == nil {
		return false
	}
	return !rec.NextDueAt.After(now)
}

// 範囲外のボックス番号 (壊れたデータ) は近い端に寄せる
func clampBox(b model.Box) model.Box {
	if b < model.MinBox {
		return model.MinBox
	}
	if b > model.MaxBox {
		return model.MaxBox
	}
	return b
}
