package handlers

import (
	"errors"
	"fmt"

	"ppe-monitor/be/models"
	"ppe-monitor/be/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateEventRequest struct {
	CameraID      string `json:"camera_id" binding:"required"`
	ImageRef      string `json:"image_ref" binding:"required"`
	IsAnalyzed    bool   `json:"is_analyzed"`
	IsViolation   bool   `json:"is_violation"`
	ViolationType string `json:"violation_type"`
}

type UpdateEventRequest struct {
	IsAnalyzed    *bool   `json:"is_analyzed"`
	IsViolation   *bool   `json:"is_violation"`
	ViolationType *string `json:"violation_type"`
}

// NewEventResource builds the CRUD engine for capture events. The
// camera reference is resolved at creation and cannot be reassigned;
// only the analyzer flags are updatable.
func NewEventResource(db *gorm.DB) *Resource[models.Event, CreateEventRequest, UpdateEventRequest] {
	return NewResource(db, Config[models.Event, CreateEventRequest, UpdateEventRequest]{
		Name:    "Event",
		OrderBy: "timestamp DESC",
		Filters: eventFilters,
		Build: func(req *CreateEventRequest) (*models.Event, error) {
			var camera models.Camera
			if err := db.First(&camera, "id = ?", req.CameraID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, fmt.Errorf("camera not found: %w", store.ErrNotFound)
				}
				return nil, err
			}
			return &models.Event{
				CameraID:      camera.ID,
				ImageRef:      req.ImageRef,
				IsAnalyzed:    req.IsAnalyzed,
				IsViolation:   req.IsViolation,
				ViolationType: req.ViolationType,
			}, nil
		},
		Merge: func(m *models.Event, req *UpdateEventRequest) {
			if req.IsAnalyzed != nil {
				m.IsAnalyzed = *req.IsAnalyzed
			}
			if req.IsViolation != nil {
				m.IsViolation = *req.IsViolation
			}
			if req.ViolationType != nil {
				m.ViolationType = *req.ViolationType
			}
		},
		Validate: func(m *models.Event) error {
			return m.Validate()
		},
		Serialize: func(m *models.Event) any {
			return m
		},
	})
}

func eventFilters(c *gin.Context) ([]store.Scope, error) {
	var scopes []store.Scope

	if cameraID := c.Query("camera_id"); cameraID != "" {
		scopes = append(scopes, store.Equal("camera_id", cameraID))
	}

	violation, set, err := boolQuery(c, "is_violation")
	if err != nil {
		return nil, err
	}
	if set {
		scopes = append(scopes, store.Equal("is_violation", violation))
	}

	start, set, err := timeQuery(c, "start_date")
	if err != nil {
		return nil, err
	}
	if set {
		scopes = append(scopes, store.From("timestamp", start))
	}

	end, set, err := timeQuery(c, "end_date")
	if err != nil {
		return nil, err
	}
	if set {
		scopes = append(scopes, store.Until("timestamp", end))
	}

	return scopes, nil
}
