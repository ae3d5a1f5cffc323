package search

// reconstruct walks the flat predecessor table backward from the goal
// identifier to the initial state (identifier 0, which has no
// predecessor), collecting one Step per edge, then reverses the
// sequence. The returned path starts with the initial state at cost 0
// and ends with the goal; the step costs sum to the total cost.
//
// A missing predecessor for a non-initial state cannot occur if the
// driver's invariants hold — every interned non-initial state on the
// popped path had its predecessor recorded when its cost was improved —
// so it is treated as a programming error, not a silent failure.
func (r *runner[S]) reconstruct(goal stateID) []Step[S] {
	const initialID stateID = 0

	steps := make([]Step[S], 0)
	cur := goal
	for cur != initialID {
		p := r.states.predOf(cur)
		if p.prev == noState {
			panic("search: missing predecessor during path reconstruction")
		}
		steps = append(steps, Step[S]{Cost: p.cost, State: r.states.state(cur)})
		cur = p.prev
	}
	steps = append(steps, Step[S]{Cost: 0, State: r.states.state(initialID)})

	// Reverse into initial-first order.
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}

	return steps
}
