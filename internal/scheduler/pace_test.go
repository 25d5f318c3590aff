package scheduler

import (
	"testing"

	"github.com/alexanderramin/lectio/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputePace_FinishedIsOnTrack(t *testing.T) {
	result := ComputePace(PaceInput{
		Now:      day(2025, 6, 1),
		Deadline: day(2025, 12, 31),
		Total:    100,
		Read:     100,
		Capacity: domain.DefaultCapacity(),
	})
	assert.Equal(t, domain.PaceOnTrack, result.Level)
	assert.Equal(t, 0, result.Remaining)
	assert.Equal(t, 100.0, result.ProgressPct)
}

func TestComputePace_BehindPlanIsSlipping(t *testing.T) {
	result := ComputePace(PaceInput{
		Now:           day(2025, 3, 1),
		Deadline:      day(2025, 12, 31),
		Total:         1189,
		Read:          400,
		ExpectedByNow: 420,
		Capacity:      domain.DefaultCapacity(),
	})
	assert.Equal(t, domain.PaceSlipping, result.Level)
	assert.Equal(t, 20, result.Behind)
	assert.Greater(t, result.SlackPerDay, 0.0)
}

func TestComputePace_InfeasibleIsCritical(t *testing.T) {
	result := ComputePace(PaceInput{
		Now:      day(2025, 12, 30),
		Deadline: day(2025, 12, 31),
		Total:    1189,
		Read:     1100,
		Capacity: domain.DefaultCapacity(),
	})
	assert.Equal(t, domain.PaceBehind, result.Level)
	assert.Equal(t, 2, result.DaysLeft)
	assert.Less(t, result.SlackPerDay, 0.0)
}

func TestComputePace_PastDeadline(t *testing.T) {
	result := ComputePace(PaceInput{
		Now:      day(2026, 1, 2),
		Deadline: day(2025, 12, 31),
		Total:    10,
		Read:     5,
		Capacity: domain.DefaultCapacity(),
	})
	assert.Equal(t, domain.PaceBehind, result.Level)
	assert.Equal(t, 5.0, result.RequiredDaily)
}

func TestExpectedBefore(t *testing.T) {
	start := day(2025, 1, 1)
	p := Allocate(10, start, start.AddDate(0, 0, 4), flat(2))
	require.Len(t, p.Days, 5)
	assert.Equal(t, 0, ExpectedBefore(p, start))
	assert.Equal(t, 6, ExpectedBefore(p, start.AddDate(0, 0, 3)))
	assert.Equal(t, 10, ExpectedBefore(p, start.AddDate(0, 0, 10)))
}
