package store_test

import (
	"testing"

	"ppe-monitor/be/store"

	"github.com/stretchr/testify/assert"
)

func TestNewPage(t *testing.T) {
	p := store.NewPage(0, 0)
	assert.Equal(t, 0, p.Offset)
	assert.Equal(t, store.DefaultLimit, p.Limit)

	p = store.NewPage(-5, -1)
	assert.Equal(t, 0, p.Offset)
	assert.Equal(t, store.DefaultLimit, p.Limit)

	p = store.NewPage(20, 50)
	assert.Equal(t, 20, p.Offset)
	assert.Equal(t, 50, p.Limit)

	p = store.NewPage(0, store.MaxLimit+1)
	assert.Equal(t, store.MaxLimit, p.Limit)
}
