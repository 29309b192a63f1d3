package rentsession

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		newFrom  string
		newTo    string
		existFrom string
		existTo  string
		want     bool
	}{
		{
			name:    "existing contains new start",
			newFrom: "2024-03-10", newTo: "2024-03-20",
			existFrom: "2024-03-05", existTo: "2024-03-12",
			want: true,
		},
		{
			name:    "existing contains new end",
			newFrom: "2024-03-01", newTo: "2024-03-08",
			existFrom: "2024-03-05", existTo: "2024-03-12",
			want: true,
		},
		{
			name:    "new encompasses existing",
			newFrom: "2024-03-01", newTo: "2024-03-31",
			existFrom: "2024-03-05", existTo: "2024-03-12",
			want: true,
		},
		{
			name:    "existing encompasses new",
			newFrom: "2024-03-06", newTo: "2024-03-07",
			existFrom: "2024-03-05", existTo: "2024-03-12",
			want: true,
		},
		{
			name:    "identical windows",
			newFrom: "2024-03-05", newTo: "2024-03-12",
			existFrom: "2024-03-05", existTo: "2024-03-12",
			want: true,
		},
		{
			name:    "new starts the day existing ends",
			newFrom: "2024-03-12", newTo: "2024-03-20",
			existFrom: "2024-03-05", existTo: "2024-03-12",
			want: true,
		},
		{
			name:    "new ends the day existing starts",
			newFrom: "2024-03-01", newTo: "2024-03-05",
			existFrom: "2024-03-05", existTo: "2024-03-12",
			want: true,
		},
		{
			name:    "new strictly before existing",
			newFrom: "2024-03-01", newTo: "2024-03-04",
			existFrom: "2024-03-05", existTo: "2024-03-12",
			want: false,
		},
		{
			name:    "new strictly after existing",
			newFrom: "2024-03-13", newTo: "2024-03-20",
			existFrom: "2024-03-05", existTo: "2024-03-12",
			want: false,
		},
		{
			name:    "single-day window inside existing",
			newFrom: "2024-03-08", newTo: "2024-03-08",
			existFrom: "2024-03-05", existTo: "2024-03-12",
			want: true,
		},
		{
			name:    "adjacent across month boundary",
			newFrom: "2024-04-01", newTo: "2024-04-05",
			existFrom: "2024-03-25", existTo: "2024-03-31",
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(tt.newFrom, tt.newTo, tt.existFrom, tt.existTo)
			assert.Equal(t, tt.want, got)
		})
	}
}
