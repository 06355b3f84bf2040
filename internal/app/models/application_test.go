package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStatusAliases(t *testing.T) {
	tests := []struct {
		input     ApplicationStatus
		canonical ApplicationStatus
		known     bool
	}{
		{"APPLIED", StatusApplied, true},
		{"SHORTLISTED", StatusShortlisted, true},
		{"REVIEWING", StatusShortlisted, true},
		{"SELECTED", StatusSelected, true},
		{"ACCEPTED", StatusSelected, true},
		{"REJECTED", StatusRejected, true},
		{"COMPLETED", StatusCompleted, true},
		{"PENDING_REVIEW_X", "PENDING_REVIEW_X", false},
		{"", "", false},
	}

	for _, tt := range tests {
		canonical, known := NormalizeStatus(tt.input)
		assert.Equal(t, tt.canonical, canonical, "input %q", tt.input)
		assert.Equal(t, tt.known, known, "input %q", tt.input)
	}
}

func TestCategoryOf(t *testing.T) {
	assert.Equal(t, CategoryPending, CategoryOf(StatusApplied))
	assert.Equal(t, CategoryPending, CategoryOf(StatusShortlisted))
	assert.Equal(t, CategoryPending, CategoryOf("REVIEWING"))
	assert.Equal(t, CategorySuccessful, CategoryOf(StatusSelected))
	assert.Equal(t, CategorySuccessful, CategoryOf("ACCEPTED"))
	assert.Equal(t, CategorySuccessful, CategoryOf(StatusCompleted))
	assert.Equal(t, CategoryNegative, CategoryOf(StatusRejected))

	// Unknown statuses map to the neutral bucket, never an error
	assert.Equal(t, CategoryNeutral, CategoryOf("PENDING_REVIEW_X"))
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, StatusApplied.IsTerminal())
	assert.False(t, StatusShortlisted.IsTerminal())
	assert.False(t, StatusSelected.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.False(t, ApplicationStatus("UNKNOWN").IsTerminal())
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(StatusApplied, StatusShortlisted))
	assert.True(t, CanTransition(StatusApplied, StatusSelected))
	assert.True(t, CanTransition(StatusApplied, StatusRejected))
	assert.True(t, CanTransition(StatusShortlisted, StatusSelected))
	assert.True(t, CanTransition(StatusShortlisted, StatusRejected))
	assert.True(t, CanTransition(StatusSelected, StatusCompleted))
	assert.True(t, CanTransition(StatusSelected, StatusRejected))

	// No transitions out of terminal states
	assert.False(t, CanTransition(StatusRejected, StatusApplied))
	assert.False(t, CanTransition(StatusCompleted, StatusSelected))

	// No backward moves
	assert.False(t, CanTransition(StatusShortlisted, StatusApplied))
	assert.False(t, CanTransition(StatusSelected, StatusShortlisted))

	// Aliases normalize before the check
	assert.True(t, CanTransition(StatusApplied, "REVIEWING"))
	assert.True(t, CanTransition("REVIEWING", "ACCEPTED"))
	assert.False(t, CanTransition("ACCEPTED", "REVIEWING"))

	// Unknown spellings never transition
	assert.False(t, CanTransition("PENDING_REVIEW_X", StatusSelected))
	assert.False(t, CanTransition(StatusApplied, "PENDING_REVIEW_X"))
}
