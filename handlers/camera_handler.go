package handlers

import (
	"ppe-monitor/be/models"
	"ppe-monitor/be/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateCameraRequest struct {
	Name          string `json:"name" binding:"required"`
	StreamAddress string `json:"stream_address" binding:"required"`
	IsActive      *bool  `json:"is_active"`
}

type UpdateCameraRequest struct {
	Name          *string `json:"name"`
	StreamAddress *string `json:"stream_address"`
	IsActive      *bool   `json:"is_active"`
}

// NewCameraResource builds the CRUD engine for cameras. Deleting a
// camera cascades to every event it produced, in the same transaction.
func NewCameraResource(db *gorm.DB) *Resource[models.Camera, CreateCameraRequest, UpdateCameraRequest] {
	return NewResource(db, Config[models.Camera, CreateCameraRequest, UpdateCameraRequest]{
		Name:    "Camera",
		OrderBy: "created_at DESC",
		Filters: cameraFilters,
		Build: func(req *CreateCameraRequest) (*models.Camera, error) {
			active := true
			if req.IsActive != nil {
				active = *req.IsActive
			}
			return &models.Camera{
				Name:          req.Name,
				StreamAddress: req.StreamAddress,
				IsActive:      active,
			}, nil
		},
		Merge: func(m *models.Camera, req *UpdateCameraRequest) {
			if req.Name != nil {
				m.Name = *req.Name
			}
			if req.StreamAddress != nil {
				m.StreamAddress = *req.StreamAddress
			}
			if req.IsActive != nil {
				m.IsActive = *req.IsActive
			}
		},
		Validate: func(m *models.Camera) error {
			return m.Validate()
		},
		Serialize: func(m *models.Camera) any {
			return m
		},
		Cascade: func(tx *gorm.DB, m *models.Camera) error {
			return tx.Where("camera_id = ?", m.ID).Delete(&models.Event{}).Error
		},
	})
}

func cameraFilters(c *gin.Context) ([]store.Scope, error) {
	var scopes []store.Scope

	active, set, err := boolQuery(c, "active")
	if err != nil {
		return nil, err
	}
	if set {
		scopes = append(scopes, store.Equal("is_active", active))
	}

	if search := c.Query("search"); search != "" {
		scopes = append(scopes, store.Search(search, "name", "stream_address"))
	}

	return scopes, nil
}
