// internal/model/word.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Word はクラス単位の単語カタログの1件 (出題語と正解)。登録後は変更しません
type Word struct {
	WordID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"word_id"`
	ClassName string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_word_class_prompt;uniqueIndex:uq_word_class_position" json:"class_name"`
	Prompt    string    `gorm:"not null;uniqueIndex:uq_word_class_prompt" json:"prompt"`
	// Answer は正解。";" 区切りで複数の正解を持てる
	Answer string `gorm:"not null" json:"answer"`
	// Position はクラス内の登録順 (1始まり)。出題順のタイブレークに使う
	Position  int64     `gorm:"not null;uniqueIndex:uq_word_class_position" json:"position"`
	CreatedAt time.Time `json:"created_at"`
}

func (Word) TableName() string {
	return "words"
}

// WordInput は単語登録の1件分
type WordInput struct {
	Prompt string `json:"prompt" validate:"required"`
	Answer string `json:"answer" validate:"required"`
}

// AddWordsRequest は単語一括登録リクエストDTO
type AddWordsRequest struct {
	Words []WordInput `json:"words" validate:"required,min=1,dive"`
}

// AddWordsResponse は一括登録の結果
type AddWordsResponse struct {
	AddedCount   int     `json:"added_count"`
	SkippedCount int     `json:"skipped_count"`
	Words        []*Word `json:"words"`
}
