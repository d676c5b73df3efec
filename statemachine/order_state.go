package statemachine

import (
	"errors"

	"mozeh-api/models"
)

// Transition defines a valid state change and the role allowed to perform it
type Transition struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Actor models.UserRole
}

// validTransitions is the authoritative state machine definition.
// Re-targeting an ASSIGNED order to a different driver is not listed here:
// it keeps the order in ASSIGNED and is handled by the assignment operation.
var validTransitions = []Transition{
	// Admin assigns a driver to a fresh order
	{From: models.StatusPending, To: models.StatusAssigned, Actor: models.RoleAdmin},
	// Assigned driver (or admin on their behalf) picks the order up
	{From: models.StatusAssigned, To: models.StatusPickedUp, Actor: models.RoleDriver},
	{From: models.StatusAssigned, To: models.StatusPickedUp, Actor: models.RoleAdmin},
	// Assigned driver (or admin) completes delivery
	{From: models.StatusPickedUp, To: models.StatusDelivered, Actor: models.RoleDriver},
	{From: models.StatusPickedUp, To: models.StatusDelivered, Actor: models.RoleAdmin},
	// Admin cancels before the order is on the road
	{From: models.StatusPending, To: models.StatusCancelled, Actor: models.RoleAdmin},
	{From: models.StatusAssigned, To: models.StatusCancelled, Actor: models.RoleAdmin},
}

type transitionKey struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Actor models.UserRole
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To, t.Actor}] = true
	}
	return m
}()

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	seen := map[models.OrderStatus]bool{}
	for _, t := range validTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// IsTerminal reports whether no transition leaves the given state
func IsTerminal(status models.OrderStatus) bool {
	return len(ValidTransitionsFrom(status)) == 0
}

// CanTransition checks if a given role can move an order from one state to another
func CanTransition(from, to models.OrderStatus, actor models.UserRole) error {
	key := transitionKey{From: from, To: to, Actor: actor}
	if transitionMap[key] {
		return nil
	}
	return errors.New(
		"invalid transition: " + string(from) + " -> " + string(to) +
			" is not allowed for role '" + string(actor) + "'. " +
			"Valid transitions from " + string(from) + " are: " + describeValidFrom(from),
	)
}

func describeValidFrom(status models.OrderStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}
