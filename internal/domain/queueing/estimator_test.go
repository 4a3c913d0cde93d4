//go:build unit

package queueing_test

import (
	"testing"

	"barberline/internal/domain/queueing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateWaitMinutes(t *testing.T) {
	testCases := []struct {
		name     string
		position int
		minutes  int
		expected int
	}{
		{name: "front of the line waits nothing", position: 1, minutes: 15, expected: 0},
		{name: "second in line waits one slot", position: 2, minutes: 15, expected: 15},
		{name: "fourth in line", position: 4, minutes: 15, expected: 45},
		{name: "per-barber override", position: 3, minutes: 20, expected: 40},
		{name: "zero position is clamped", position: 0, minutes: 15, expected: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, queueing.EstimateWaitMinutes(tc.position, tc.minutes))
		})
	}
}
