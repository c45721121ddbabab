package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/plugin/soft_delete"
)

// BaseModel is embedded by every persisted record. IDs are UUID strings
// assigned on create and never reused. Deletes set IsDeleted instead of
// removing the row; all queries filter it automatically.
type BaseModel struct {
	ID        string                `json:"id" gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
	IsDeleted soft_delete.DeletedAt `json:"-" gorm:"softDelete:flag"`
}

func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
