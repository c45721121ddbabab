package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"ppe-monitor/be/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Config parameterizes the generic CRUD engine for one record kind.
// Each entry is a plain value; the per-kind handler files build one and
// hand it to NewResource.
type Config[M, C, U any] struct {
	// Name appears in error messages ("Camera not found").
	Name string
	// OrderBy is the default list ordering, e.g. "created_at DESC".
	OrderBy string
	// Filters translates query parameters into filter scopes.
	Filters func(c *gin.Context) ([]store.Scope, error)
	// Build turns a bound create request into a model, resolving any
	// references (Event looks up its camera here).
	Build func(req *C) (*M, error)
	// Merge copies the fields present in a partial-update request onto
	// the stored record; absent fields stay untouched.
	Merge func(m *M, req *U)
	// Validate checks model constraints on creation and after a merge.
	Validate func(m *M) error
	// Serialize maps a record to its response shape.
	Serialize func(m *M) any
	// Cascade, when set, deletes dependent records inside the same
	// transaction as the parent delete.
	Cascade func(tx *gorm.DB, m *M) error
}

// Resource exposes the five CRUD operations for one record kind.
type Resource[M, C, U any] struct {
	store *store.Store[M]
	cfg   Config[M, C, U]
}

func NewResource[M, C, U any](db *gorm.DB, cfg Config[M, C, U]) *Resource[M, C, U] {
	return &Resource[M, C, U]{
		store: store.New[M](db),
		cfg:   cfg,
	}
}

// Register installs the CRUD routes on a router group.
func (r *Resource[M, C, U]) Register(g *gin.RouterGroup) {
	g.GET("", r.List)
	g.GET("/:id", r.Get)
	g.POST("", r.Create)
	g.PUT("/:id", r.Update)
	g.DELETE("/:id", r.Delete)
}

func (r *Resource[M, C, U]) List(c *gin.Context) {
	page, err := pageFromQuery(c)
	if err != nil {
		r.writeError(c, err)
		return
	}

	scopes, err := r.cfg.Filters(c)
	if err != nil {
		r.writeError(c, err)
		return
	}

	items, count, err := r.store.List(page, r.cfg.OrderBy, scopes...)
	if err != nil {
		r.writeError(c, err)
		return
	}

	out := make([]any, len(items))
	for i := range items {
		out[i] = r.cfg.Serialize(&items[i])
	}

	c.JSON(http.StatusOK, gin.H{"count": count, "items": out})
}

func (r *Resource[M, C, U]) Get(c *gin.Context) {
	m, err := r.store.Get(c.Param("id"))
	if err != nil {
		r.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, r.cfg.Serialize(m))
}

func (r *Resource[M, C, U]) Create(c *gin.Context) {
	var req C
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := r.cfg.Build(&req)
	if err != nil {
		r.writeError(c, err)
		return
	}

	if err := r.cfg.Validate(m); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := r.store.Create(m); err != nil {
		r.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, r.cfg.Serialize(m))
}

func (r *Resource[M, C, U]) Update(c *gin.Context) {
	var req U
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := r.store.Update(c.Param("id"), func(m *M) error {
		r.cfg.Merge(m, &req)
		if err := r.cfg.Validate(m); err != nil {
			return store.Validationf("%s", err)
		}
		return nil
	})
	if err != nil {
		r.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, r.cfg.Serialize(m))
}

func (r *Resource[M, C, U]) Delete(c *gin.Context) {
	if err := r.store.Delete(c.Param("id"), r.cfg.Cascade); err != nil {
		r.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Validation failures are answered with 400 rather than the 200-with-
// error-body the original wire protocol used; see DESIGN.md.
func (r *Resource[M, C, U]) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		msg := r.cfg.Name + " not found"
		if err.Error() != store.ErrNotFound.Error() {
			msg = err.Error()
		}
		c.JSON(http.StatusNotFound, gin.H{"error": msg})
	case store.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func pageFromQuery(c *gin.Context) (store.Page, error) {
	offset, err := intQuery(c, "offset")
	if err != nil {
		return store.Page{}, err
	}
	limit, err := intQuery(c, "limit")
	if err != nil {
		return store.Page{}, err
	}
	return store.NewPage(offset, limit), nil
}

func intQuery(c *gin.Context, key string) (int, error) {
	v, ok := c.GetQuery(key)
	if !ok || v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, store.Validationf("invalid %s %q", key, v)
	}
	return n, nil
}

func boolQuery(c *gin.Context, key string) (val bool, set bool, err error) {
	v, ok := c.GetQuery(key)
	if !ok || v == "" {
		return false, false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, false, store.Validationf("invalid %s %q", key, v)
	}
	return b, true, nil
}

func timeQuery(c *gin.Context, key string) (t time.Time, set bool, err error) {
	v, ok := c.GetQuery(key)
	if !ok || v == "" {
		return time.Time{}, false, nil
	}
	t, err = store.ParseTime(v)
	if err != nil {
		return time.Time{}, false, err
	}
	return t, true, nil
}
