package leitner

import (
	"cmp"
	"slices"
	"time"

	"go_5_box_vocab/internal/model"

	"github.com/google/uuid"
)

// Candidate は出題候補の単語と、その進捗 (未学習なら nil)
type Candidate struct {
	Word   *model.Word
	Record *model.ProgressRecord
}

// Box は候補のボックス番号。未学習の単語はボックス1
func (c Candidate) Box() model.Box {
	if c.Record == nil {
		return model.Box1
	}
	return c.Record.Box
}

// dueAt は並び替え用の出題時刻。未学習の単語はゼロ時刻 (最優先) とみなす
func (c Candidate) dueAt() time.Time {
	if c.Record == nil || c.Record.NextDueAt == nil {
		return time.Time{}
	}
	return *c.Record.NextDueAt
}

// DueCandidates は now の時点で出題対象の単語を出題順に並べて返します。
// 順序: ボックス番号の小さい順 → 出題時刻の早い順 → カタログ登録順
func DueCandidates(words []*model.Word, records map[uuid.UUID]*model.ProgressRecord, now time.Time) []Candidate {
	due := make([]Candidate, 0, len(words))
	for _, w := range words {
		rec := records[w.WordID]
		if !IsDue(rec, now) {
			continue
		}
		due = append(due, Candidate{Word: w, Record: rec})
	}
	slices.SortStableFunc(due, compareCandidates)
	return due
}

// SelectNext は次に出題する1件 (DueCandidates の先頭) を返します。対象が無ければ ok=false
func SelectNext(words []*model.Word, records map[uuid.UUID]*model.ProgressRecord, now time.Time) (Candidate, bool) {
	due := DueCandidates(words, records, now)
	if len(due) == 0 {
		return Candidate{}, false
	}
	return due[0], true
}

func compareCandidates(a, b Candidate) int {
	if c := cmp.Compare(a.Box(), b.Box()); c != 0 {
		return c
	}
	if c := a.dueAt().Compare(b.dueAt()); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Word.Position, b.Word.Position); c != 0 {
		return c
	}
	// Position が同じになるのは不正データのみ。IDで決定的にしておく
	return slices.Compare(a.Word.WordID[:], b.Word.WordID[:])
}
