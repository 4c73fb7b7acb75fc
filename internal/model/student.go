// internal/model/student.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Student はクラスに所属する生徒。コードで一意に識別されます
type Student struct {
	StudentID uuid.UUID `gorm:"type:uuid;primaryKey" json:"student_id"`
	Code      string    `gorm:"type:varchar(64);not null;uniqueIndex" json:"code"`
	Name      string    `gorm:"not null" json:"name"`
	ClassName string    `gorm:"type:varchar(100);not null;index" json:"class_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Student) TableName() string {
	return "students"
}

// CreateStudentRequest は生徒登録APIのリクエストボディ
type CreateStudentRequest struct {
	Code      string `json:"code" validate:"required,max=64"`
	Name      string `json:"name" validate:"required,max=100"`
	ClassName string `json:"class_name" validate:"required,max=100"`
}
