package statemachine

import (
	"testing"

	"mozeh-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name  string
		from  models.OrderStatus
		to    models.OrderStatus
		actor models.UserRole
		ok    bool
	}{
		{"admin assigns pending", models.StatusPending, models.StatusAssigned, models.RoleAdmin, true},
		{"driver picks up assigned", models.StatusAssigned, models.StatusPickedUp, models.RoleDriver, true},
		{"admin picks up assigned", models.StatusAssigned, models.StatusPickedUp, models.RoleAdmin, true},
		{"driver delivers picked up", models.StatusPickedUp, models.StatusDelivered, models.RoleDriver, true},
		{"admin delivers picked up", models.StatusPickedUp, models.StatusDelivered, models.RoleAdmin, true},
		{"admin cancels pending", models.StatusPending, models.StatusCancelled, models.RoleAdmin, true},
		{"admin cancels assigned", models.StatusAssigned, models.StatusCancelled, models.RoleAdmin, true},

		{"customer cannot assign", models.StatusPending, models.StatusAssigned, models.RoleCustomer, false},
		{"driver cannot assign", models.StatusPending, models.StatusAssigned, models.RoleDriver, false},
		{"driver cannot cancel", models.StatusPending, models.StatusCancelled, models.RoleDriver, false},
		{"no pickup from pending", models.StatusPending, models.StatusPickedUp, models.RoleDriver, false},
		{"no delivery from assigned", models.StatusAssigned, models.StatusDelivered, models.RoleDriver, false},
		{"no cancel after pickup", models.StatusPickedUp, models.StatusCancelled, models.RoleAdmin, false},
		{"delivered is terminal", models.StatusDelivered, models.StatusPickedUp, models.RoleAdmin, false},
		{"cancelled is terminal", models.StatusCancelled, models.StatusAssigned, models.RoleAdmin, false},
		{"no backwards move", models.StatusPickedUp, models.StatusAssigned, models.RoleAdmin, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CanTransition(tc.from, tc.to, tc.actor)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidTransitionsFrom(t *testing.T) {
	nexts := ValidTransitionsFrom(models.StatusPending)
	require.Len(t, nexts, 2)
	assert.Contains(t, nexts, models.StatusAssigned)
	assert.Contains(t, nexts, models.StatusCancelled)

	assert.Empty(t, ValidTransitionsFrom(models.StatusDelivered))
	assert.Empty(t, ValidTransitionsFrom(models.StatusCancelled))
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(models.StatusDelivered))
	assert.True(t, IsTerminal(models.StatusCancelled))
	assert.False(t, IsTerminal(models.StatusPending))
	assert.False(t, IsTerminal(models.StatusAssigned))
	assert.False(t, IsTerminal(models.StatusPickedUp))
}
