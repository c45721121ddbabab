package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ppe-monitor/be/database"
	"ppe-monitor/be/handlers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	router := gin.New()
	api := router.Group("/api/v1/ppe")
	handlers.NewCameraResource(db).Register(api.Group("/cameras"))
	handlers.NewEventResource(db).Register(api.Group("/events"))
	handlers.NewReportResource(db).Register(api.Group("/reports"))

	return router, db
}

func do(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// assertSameRecord compares two serialized records field by field,
// allowing for the sub-second precision the database driver drops from
// timestamps.
func assertSameRecord(t *testing.T, want, got map[string]any) {
	t.Helper()

	require.Len(t, got, len(want))
	for k, v := range want {
		switch k {
		case "created_at", "updated_at", "timestamp":
			wt, err := time.Parse(time.RFC3339, v.(string))
			require.NoError(t, err)
			gt, err := time.Parse(time.RFC3339, got[k].(string))
			require.NoError(t, err)
			assert.WithinDuration(t, wt, gt, time.Second, k)
		default:
			assert.Equal(t, v, got[k], k)
		}
	}
}
