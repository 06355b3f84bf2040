package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeKPIChangeLabels(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	lastMonth := time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC)
	thisMonth := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		times      []time.Time
		wantValue  int
		wantChange string
	}{
		{
			name:       "empty list",
			times:      nil,
			wantValue:  0,
			wantChange: "0%",
		},
		{
			name:       "all created this month",
			times:      []time.Time{thisMonth, thisMonth, thisMonth, thisMonth, thisMonth},
			wantValue:  5,
			wantChange: "+100%",
		},
		{
			name: "half growth",
			times: []time.Time{
				lastMonth, lastMonth, lastMonth, lastMonth, lastMonth,
				lastMonth, lastMonth, lastMonth, lastMonth, lastMonth,
				thisMonth, thisMonth, thisMonth, thisMonth, thisMonth,
			},
			wantValue:  15,
			wantChange: "+50%",
		},
		{
			name:       "no growth",
			times:      []time.Time{lastMonth, lastMonth, lastMonth},
			wantValue:  3,
			wantChange: "+0%",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metric := ComputeKPI(tt.times, now)
			assert.Equal(t, tt.wantValue, metric.Value)
			assert.Equal(t, tt.wantChange, metric.Change)
		})
	}
}

func TestComputeKPIBoundaryAtStartOfMonth(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	startOfMonth := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	// Exactly at the partition boundary counts as the current month
	metric := ComputeKPI([]time.Time{startOfMonth}, now)
	assert.Equal(t, 1, metric.Value)
	assert.Equal(t, "+100%", metric.Change)

	justBefore := startOfMonth.Add(-time.Second)
	metric = ComputeKPI([]time.Time{justBefore}, now)
	assert.Equal(t, 1, metric.Value)
	assert.Equal(t, "+0%", metric.Change)
}
