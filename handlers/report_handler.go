package handlers

import (
	"time"

	"ppe-monitor/be/models"
	"ppe-monitor/be/store"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CreateReportRequest struct {
	ReportData datatypes.JSONMap `json:"report_data" binding:"required"`
}

type UpdateReportRequest struct {
	ReportData *datatypes.JSONMap `json:"report_data"`
}

// reportResponse is the wire shape for reports; the record id stays
// internal.
type reportResponse struct {
	ReportData datatypes.JSONMap `json:"report_data"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

func NewReportResource(db *gorm.DB) *Resource[models.Report, CreateReportRequest, UpdateReportRequest] {
	return NewResource(db, Config[models.Report, CreateReportRequest, UpdateReportRequest]{
		Name:    "Report",
		OrderBy: "created_at DESC",
		Filters: reportFilters,
		Build: func(req *CreateReportRequest) (*models.Report, error) {
			return &models.Report{ReportData: req.ReportData}, nil
		},
		Merge: func(m *models.Report, req *UpdateReportRequest) {
			if req.ReportData != nil {
				m.ReportData = *req.ReportData
			}
		},
		Validate: func(m *models.Report) error {
			return m.Validate()
		},
		Serialize: func(m *models.Report) any {
			return reportResponse{
				ReportData: m.ReportData,
				CreatedAt:  m.CreatedAt,
				UpdatedAt:  m.UpdatedAt,
			}
		},
	})
}

func reportFilters(c *gin.Context) ([]store.Scope, error) {
	var scopes []store.Scope

	start, set, err := timeQuery(c, "start_date")
	if err != nil {
		return nil, err
	}
	if set {
		scopes = append(scopes, store.From("created_at", start))
	}

	end, set, err := timeQuery(c, "end_date")
	if err != nil {
		return nil, err
	}
	if set {
		scopes = append(scopes, store.Until("created_at", end))
	}

	return scopes, nil
}
