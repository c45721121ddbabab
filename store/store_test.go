package store_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"ppe-monitor/be/database"
	"ppe-monitor/be/models"
	"ppe-monitor/be/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	// One named in-memory database per test so pooled connections see
	// the same data.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func createCamera(t *testing.T, db *gorm.DB, name string) *models.Camera {
	t.Helper()

	camera := &models.Camera{
		Name:          name,
		StreamAddress: "rtsp://" + name,
		IsActive:      true,
	}
	require.NoError(t, store.New[models.Camera](db).Create(camera))
	return camera
}

func TestCreateAssignsIDAndTimestamps(t *testing.T) {
	db := testDB(t)

	camera := createCamera(t, db, "cam-a")

	assert.NotEmpty(t, camera.ID)
	assert.False(t, camera.CreatedAt.IsZero())
	assert.False(t, camera.UpdatedAt.IsZero())

	got, err := store.New[models.Camera](db).Get(camera.ID)
	require.NoError(t, err)
	assert.Equal(t, camera.Name, got.Name)
	assert.Equal(t, camera.StreamAddress, got.StreamAddress)
}

func TestCreateAssignsDistinctIDs(t *testing.T) {
	db := testDB(t)

	a := createCamera(t, db, "cam-a")
	b := createCamera(t, db, "cam-b")

	assert.NotEqual(t, a.ID, b.ID)
}

func TestGetUnknownID(t *testing.T) {
	db := testDB(t)

	_, err := store.New[models.Camera](db).Get("no-such-id")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestListCountsBeforeSlicing(t *testing.T) {
	db := testDB(t)
	cameras := store.New[models.Camera](db)

	for i := 0; i < 5; i++ {
		createCamera(t, db, fmt.Sprintf("cam-%d", i))
	}

	items, count, err := cameras.List(store.NewPage(0, 2), "created_at DESC")
	require.NoError(t, err)
	assert.EqualValues(t, 5, count)
	assert.Len(t, items, 2)

	// Offset past the end still reports the true count.
	items, count, err = cameras.List(store.NewPage(100, 2), "created_at DESC")
	require.NoError(t, err)
	assert.EqualValues(t, 5, count)
	assert.Empty(t, items)
}

func TestListOrdering(t *testing.T) {
	db := testDB(t)
	camera := createCamera(t, db, "cam-a")
	events := store.New[models.Event](db)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, events.Create(&models.Event{
			CameraID:  camera.ID,
			ImageRef:  fmt.Sprintf("cam-a/%d.jpg", i),
			Timestamp: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	items, _, err := events.List(store.NewPage(0, 10), "timestamp DESC")
	require.NoError(t, err)
	require.Len(t, items, 3)
	for i := 1; i < len(items); i++ {
		assert.True(t, items[i-1].Timestamp.After(items[i].Timestamp))
	}
}

func TestUpdateMergesSparsely(t *testing.T) {
	db := testDB(t)
	camera := createCamera(t, db, "cam-a")
	cameras := store.New[models.Camera](db)

	updated, err := cameras.Update(camera.ID, func(m *models.Camera) error {
		m.Name = "cam-a-renamed"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "cam-a-renamed", updated.Name)
	assert.Equal(t, camera.StreamAddress, updated.StreamAddress)
	assert.Equal(t, camera.IsActive, updated.IsActive)
}

func TestUpdateRollsBackOnMergeError(t *testing.T) {
	db := testDB(t)
	camera := createCamera(t, db, "cam-a")
	cameras := store.New[models.Camera](db)

	_, err := cameras.Update(camera.ID, func(m *models.Camera) error {
		m.Name = "should-not-persist"
		return store.Validationf("rejected")
	})
	require.Error(t, err)
	assert.True(t, store.IsValidation(err))

	got, err := cameras.Get(camera.ID)
	require.NoError(t, err)
	assert.Equal(t, "cam-a", got.Name)
}

func TestUpdateUnknownID(t *testing.T) {
	db := testDB(t)

	_, err := store.New[models.Camera](db).Update("no-such-id", func(m *models.Camera) error {
		return nil
	})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteHidesRecord(t *testing.T) {
	db := testDB(t)
	camera := createCamera(t, db, "cam-a")
	cameras := store.New[models.Camera](db)

	require.NoError(t, cameras.Delete(camera.ID, nil))

	_, err := cameras.Get(camera.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, count, err := cameras.List(store.NewPage(0, 10), "created_at DESC")
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)

	// Soft delete keeps the row, flagged.
	var raw models.Camera
	require.NoError(t, db.Unscoped().First(&raw, "id = ?", camera.ID).Error)
	assert.NotZero(t, raw.IsDeleted)
}

func TestDeleteUnknownID(t *testing.T) {
	db := testDB(t)

	err := store.New[models.Camera](db).Delete("no-such-id", nil)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteCascade(t *testing.T) {
	db := testDB(t)
	camera := createCamera(t, db, "cam-a")
	other := createCamera(t, db, "cam-b")

	events := store.New[models.Event](db)
	for i := 0; i < 3; i++ {
		require.NoError(t, events.Create(&models.Event{
			CameraID: camera.ID,
			ImageRef: fmt.Sprintf("cam-a/%d.jpg", i),
		}))
	}
	require.NoError(t, events.Create(&models.Event{
		CameraID: other.ID,
		ImageRef: "cam-b/0.jpg",
	}))

	cascade := func(tx *gorm.DB, m *models.Camera) error {
		return tx.Where("camera_id = ?", m.ID).Delete(&models.Event{}).Error
	}
	require.NoError(t, store.New[models.Camera](db).Delete(camera.ID, cascade))

	_, count, err := events.List(store.NewPage(0, 10), "timestamp DESC", store.Equal("camera_id", camera.ID))
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)

	// Events of other cameras stay.
	_, count, err = events.List(store.NewPage(0, 10), "timestamp DESC")
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}
