package kitchen

import "github.com/Krithish69/Restaurant/domain"

// Transition defines a legal order status change. The machine is
// forward-only: Pending -> In Progress -> Completed, with Completed
// terminal and no cancellation state.
type Transition struct {
	From string
	To   string
}

var validTransitions = []Transition{
	{From: domain.OrderPending, To: domain.OrderInProgress},
	{From: domain.OrderInProgress, To: domain.OrderCompleted},
}

var transitionMap = func() map[Transition]bool {
	m := make(map[Transition]bool)
	for _, t := range validTransitions {
		m[t] = true
	}
	return m
}()

// CanTransition reports whether moving from one status to another is legal.
func CanTransition(from, to string) bool {
	return transitionMap[Transition{From: from, To: to}]
}

// NextState returns the single legal successor of a status, or "" for a
// terminal state.
func NextState(from string) string {
	for _, t := range validTransitions {
		if t.From == from {
			return t.To
		}
	}
	return ""
}
