package models

import "fmt"

type Camera struct {
	BaseModel
	Name          string `json:"name" gorm:"not null"`
	StreamAddress string `json:"stream_address" gorm:"not null"`
	IsActive      bool   `json:"is_active"`
}

// Validate enforces the model-level constraints checked on create and
// after a partial-update merge.
func (c *Camera) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("name must not be empty")
	}
	if len(c.Name) > 255 {
		return fmt.Errorf("name must be at most 255 characters")
	}
	if c.StreamAddress == "" {
		return fmt.Errorf("stream_address must not be empty")
	}
	if len(c.StreamAddress) > 255 {
		return fmt.Errorf("stream_address must be at most 255 characters")
	}
	return nil
}
