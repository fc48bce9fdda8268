package timerecord

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalculateOvertimeMinutes(t *testing.T) {
	calc := NewBasicOvertimeCalculator(0)
	day := func(h, m, s int) time.Time { return time.Date(2025, 11, 17, h, m, s, 0, time.UTC) }

	cases := []struct {
		name  string
		entry time.Time
		exit  time.Time
		want  int
	}{
		{"exactly eight hours", day(9, 0, 0), day(17, 0, 0), 0},
		{"ninety minutes over", day(9, 0, 0), day(18, 30, 0), 90},
		{"exit before entry", day(9, 0, 0), day(8, 0, 0), 0},
		{"partial minute is floored", day(9, 0, 0), day(17, 1, 59), 1},
		{"same instant", day(9, 0, 0), day(9, 0, 0), 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, calc.CalculateOvertimeMinutes(c.entry, c.exit))
		})
	}
}

func TestNewBasicOvertimeCalculator_CustomShift(t *testing.T) {
	calc := NewBasicOvertimeCalculator(60)
	entry := time.Date(2025, 11, 17, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, 60, calc.StandardMinutes)
	assert.Equal(t, 30, calc.CalculateOvertimeMinutes(entry, entry.Add(90*time.Minute)))
}
