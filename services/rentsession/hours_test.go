package rentsession

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotalHours(t *testing.T) {
	t.Run("full day", func(t *testing.T) {
		hours, ok := ComputeTotalHours("2024-01-01", "2024-01-02", "10:00", "10:00")
		assert.True(t, ok)
		assert.Equal(t, 24.0, hours)
	})

	t.Run("partial hours", func(t *testing.T) {
		hours, ok := ComputeTotalHours("2024-01-01", "2024-01-01", "09:00", "17:30")
		assert.True(t, ok)
		assert.Equal(t, 8.5, hours)
	})

	t.Run("seconds layout", func(t *testing.T) {
		hours, ok := ComputeTotalHours("2024-01-01", "2024-01-01", "09:00:00", "10:30:00")
		assert.True(t, ok)
		assert.Equal(t, 1.5, hours)
	})

	t.Run("end before start floors at zero", func(t *testing.T) {
		hours, ok := ComputeTotalHours("2024-01-02", "2024-01-01", "10:00", "10:00")
		assert.True(t, ok)
		assert.Equal(t, 0.0, hours)
	})

	t.Run("missing uninstall time", func(t *testing.T) {
		_, ok := ComputeTotalHours("2024-01-01", "2024-01-02", "10:00", "")
		assert.False(t, ok)
	})

	t.Run("missing dates", func(t *testing.T) {
		_, ok := ComputeTotalHours("", "2024-01-02", "10:00", "10:00")
		assert.False(t, ok)
	})

	t.Run("unparseable time", func(t *testing.T) {
		_, ok := ComputeTotalHours("2024-01-01", "2024-01-02", "ten o'clock", "10:00")
		assert.False(t, ok)
	})
}
