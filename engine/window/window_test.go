package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWheelToPixels(t *testing.T) {
	tests := []struct {
		name string
		yoff float64
		ppl  float32
		want float32
	}{
		{"notch down moves forward", -1, 100, 100},
		{"notch up moves back", 1, 100, -100},
		{"trackpad fraction", -0.25, 100, 25},
		{"custom line height", -2, 40, 80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, wheelToPixels(tt.yoff, tt.ppl), 1e-6)
		})
	}
}
