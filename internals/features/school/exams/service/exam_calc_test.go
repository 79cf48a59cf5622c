package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalcExamStats(t *testing.T) {
	total, percentage := CalcExamStats(map[string]int{
		"maths":     80,
		"physics":   70,
		"chemistry": 90,
	})
	assert.Equal(t, 240, total)
	assert.Equal(t, 80.0, percentage)
}

func TestCalcExamStats_Rounding(t *testing.T) {
	total, percentage := CalcExamStats(map[string]int{
		"maths":     55,
		"physics":   67,
		"chemistry": 78,
	})
	assert.Equal(t, 200, total)
	// 200/300 = 66.666... → 66.67
	assert.Equal(t, 66.67, percentage)
}

func TestCalcExamStats_Empty(t *testing.T) {
	total, percentage := CalcExamStats(map[string]int{})
	assert.Equal(t, 0, total)
	assert.Equal(t, 0.0, percentage)
}
