package repository

import (
	"context"
	"sync"

	"go_5_box_vocab/internal/model"

	"github.com/google/uuid"
)

type progressKey struct {
	studentID uuid.UUID
	wordID    uuid.UUID
}

// MemoryProgressStore はプロセス内メモリに学習記録を持つ ProgressStore
// 保存・返却ともにコピーを使うので、呼び出し側が返り値を書き換えても影響しない
type MemoryProgressStore struct {
	mu      sync.Mutex
	records map[progressKey]*model.ProgressRecord
}

func NewMemoryProgressStore() *MemoryProgressStore {
	return &MemoryProgressStore{records: make(map[progressKey]*model.ProgressRecord)}
}

func (s *MemoryProgressStore) Get(_ context.Context, studentID, wordID uuid.UUID) (*model.ProgressRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[progressKey{studentID, wordID}]
	if !ok {
		return nil, model.ErrNotFound
	}
	return rec.Clone(), nil
}

func (s *MemoryProgressStore) ListByStudent(_ context.Context, studentID uuid.UUID) ([]*model.ProgressRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*model.ProgressRecord
	for k, rec := range s.records {
		if k.studentID == studentID {
			out = append(out, rec.Clone())
		}
	}
	return out, nil
}

func (s *MemoryProgressStore) Create(_ context.Context, rec *model.ProgressRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := progressKey{rec.StudentID, rec.WordID}
	if _, ok := s.records[key]; ok {
		return model.ErrConflict
	}
	if rec.ProgressID == uuid.Nil {
		rec.ProgressID = uuid.New()
	}
	if rec.Version == 0 {
		rec.Version = 1
	}
	s.records[key] = rec.Clone()
	return nil
}

func (s *MemoryProgressStore) CompareAndSwap(_ context.Context, rec *model.ProgressRecord, expectedVersion int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := progressKey{rec.StudentID, rec.WordID}
	cur, ok := s.records[key]
	if !ok || cur.Version != expectedVersion {
		return model.ErrConflict
	}
	stored := rec.Clone()
	stored.ProgressID = cur.ProgressID
	stored.CreatedAt = cur.CreatedAt
	stored.Version = expectedVersion + 1
	s.records[key] = stored
	rec.Version = stored.Version
	return nil
}

var _ ProgressStore = (*MemoryProgressStore)(nil)
