package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberOfPixels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		radius  float64
		binSize float64
		want    int
	}{
		{"standard region", 10, 0.1, 141},
		{"wide region", 15, 0.1, 212},
		{"coarse binning", 10, 1, 14},
		{"tiny region floors to zero", 0.05, 0.1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NumberOfPixels(tt.radius, tt.binSize))
		})
	}
}
