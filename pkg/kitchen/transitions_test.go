package kitchen

import (
	"testing"

	"github.com/Krithish69/Restaurant/domain"
	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"pending to in progress", domain.OrderPending, domain.OrderInProgress, true},
		{"in progress to completed", domain.OrderInProgress, domain.OrderCompleted, true},
		{"pending to completed skips a step", domain.OrderPending, domain.OrderCompleted, false},
		{"in progress back to pending", domain.OrderInProgress, domain.OrderPending, false},
		{"completed is terminal", domain.OrderCompleted, domain.OrderPending, false},
		{"completed to in progress", domain.OrderCompleted, domain.OrderInProgress, false},
		{"unknown status", "Cancelled", domain.OrderPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestNextState(t *testing.T) {
	assert.Equal(t, domain.OrderInProgress, NextState(domain.OrderPending))
	assert.Equal(t, domain.OrderCompleted, NextState(domain.OrderInProgress))
	assert.Equal(t, "", NextState(domain.OrderCompleted))
	assert.Equal(t, "", NextState("Cancelled"))
}
