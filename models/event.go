package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Event is a single image capture produced by a Camera. The analyzer
// sets IsAnalyzed/IsViolation/ViolationType after the fact; nothing in
// this backend interprets them.
type Event struct {
	BaseModel
	CameraID      string    `json:"camera" gorm:"type:uuid;not null;index"`
	Camera        *Camera   `json:"-" gorm:"foreignKey:CameraID;constraint:OnDelete:CASCADE"`
	Timestamp     time.Time `json:"timestamp"`
	ImageRef      string    `json:"image_ref" gorm:"not null"`
	IsAnalyzed    bool      `json:"is_analyzed"`
	IsViolation   bool      `json:"is_violation"`
	ViolationType string    `json:"violation_type"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if err := e.BaseModel.BeforeCreate(tx); err != nil {
		return err
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}
	return nil
}

func (e *Event) Validate() error {
	if e.CameraID == "" {
		return fmt.Errorf("camera reference must not be empty")
	}
	if e.ImageRef == "" {
		return fmt.Errorf("image_ref must not be empty")
	}
	if len(e.ViolationType) > 255 {
		return fmt.Errorf("violation_type must be at most 255 characters")
	}
	return nil
}
