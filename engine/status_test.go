package engine_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vendastock/vendaStock/engine"
	"github.com/vendastock/vendaStock/models"
)

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		quantity  int
		requested string
		want      string
	}{
		{0, "", models.StatusOutOfStock},
		{0, models.StatusActive, models.StatusOutOfStock},
		{0, models.StatusInactive, models.StatusOutOfStock},
		{-3, models.StatusActive, models.StatusOutOfStock},
		{1, "", models.StatusActive},
		{5, models.StatusOutOfStock, models.StatusActive},
		{5, models.StatusActive, models.StatusActive},
		{5, models.StatusInactive, models.StatusInactive},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("q=%d requested=%q", tt.quantity, tt.requested), func(t *testing.T) {
			assert.Equal(t, tt.want, engine.DeriveStatus(tt.quantity, tt.requested))
		})
	}
}

func TestDeriveStatusIsPure(t *testing.T) {
	first := engine.DeriveStatus(4, models.StatusInactive)
	second := engine.DeriveStatus(4, models.StatusInactive)
	assert.Equal(t, first, second)
}
