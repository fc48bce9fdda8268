package timerecord

import "time"

// StandardShiftMinutes is the fixed 8 hour shift.
const StandardShiftMinutes = 480

// BasicOvertimeCalculator counts whole minutes worked past StandardMinutes.
type BasicOvertimeCalculator struct {
	StandardMinutes int
}

func NewBasicOvertimeCalculator(standardMinutes int) BasicOvertimeCalculator {
	if standardMinutes <= 0 {
		standardMinutes = StandardShiftMinutes
	}
	return BasicOvertimeCalculator{StandardMinutes: standardMinutes}
}

// CalculateOvertimeMinutes implements timerecord.OvertimeCalculator.
func (c BasicOvertimeCalculator) CalculateOvertimeMinutes(entry, exit time.Time) int {
	// Floor of the millisecond difference; Go division truncates toward zero.
	ms := exit.Sub(entry).Milliseconds()
	minutes := ms / 60000
	if ms < 0 && ms%60000 != 0 {
		minutes--
	}

	overtime := int(minutes) - c.StandardMinutes
	if overtime < 0 {
		return 0
	}
	return overtime
}
