package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tripflow/tripflow_backend/internal/core/domain"
)

func TestDateRangesOverlap(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd string
		want                       bool
	}{
		{"disjoint before", "2025-05-01", "2025-05-03", "2025-05-04", "2025-05-06", false},
		{"disjoint after", "2025-05-04", "2025-05-06", "2025-05-01", "2025-05-03", false},
		{"shared end day counts", "2025-05-01", "2025-05-04", "2025-05-04", "2025-05-06", true},
		{"shared start day counts", "2025-05-04", "2025-05-06", "2025-05-01", "2025-05-04", true},
		{"contained", "2025-05-01", "2025-05-10", "2025-05-03", "2025-05-05", true},
		{"identical", "2025-05-01", "2025-05-03", "2025-05-01", "2025-05-03", true},
		{"single day inside", "2025-05-02", "2025-05-02", "2025-05-01", "2025-05-03", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.DateRangesOverlap(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
		})
	}
}

func TestStepHasDateRange(t *testing.T) {
	start, end := "2025-05-01", "2025-05-03"
	assert.True(t, domain.Step{StartDate: &start, EndDate: &end}.HasDateRange())
	assert.False(t, domain.Step{StartDate: &start}.HasDateRange())
	assert.False(t, domain.Step{}.HasDateRange())
}
