package models

import (
	"fmt"

	"gorm.io/datatypes"
)

// Report holds an arbitrary JSON payload produced by external tooling.
// The backend stores and returns it without interpreting the contents.
type Report struct {
	BaseModel
	ReportData datatypes.JSONMap `json:"report_data" gorm:"not null"`
}

func (r *Report) Validate() error {
	if r.ReportData == nil {
		return fmt.Errorf("report_data must not be empty")
	}
	return nil
}
