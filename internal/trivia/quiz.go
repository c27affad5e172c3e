package trivia

import (
	"fmt"
	"math/rand"
)

// Selector draws the next quiz question. It holds no session state.
type Selector struct {
	intn func(n int) int
}

// NewSelector builds a selector. intn must return a value in [0, n); nil uses the
// process-wide math/rand generator.
func NewSelector(intn func(n int) int) *Selector {
	if intn == nil {
		intn = rand.Intn
	}
	return &Selector{intn: intn}
}

// Next returns a question from pool whose id is not in previouslyAsked, chosen uniformly.
// It does not record the draw; the caller appends the id before asking again.
func (s *Selector) Next(pool []Question, previouslyAsked []int) (Question, error) {
	candidates := Remaining(pool, previouslyAsked)
	switch len(candidates) {
	case 0:
		return Question{}, ErrExhausted
	case 1:
		return candidates[0], nil
	}
	i := s.intn(len(candidates))
	if i < 0 || i >= len(candidates) {
		return Question{}, fmt.Errorf("draw index %d outside [0, %d)", i, len(candidates))
	}
	return candidates[i], nil
}

// Remaining is pool minus the questions already asked, in pool order.
func Remaining(pool []Question, previouslyAsked []int) []Question {
	asked := make(map[int]struct{}, len(previouslyAsked))
	for _, id := range previouslyAsked {
		asked[id] = struct{}{}
	}
	out := make([]Question, 0, len(pool))
	for _, q := range pool {
		if _, seen := asked[q.ID]; !seen {
			out = append(out, q)
		}
	}
	return out
}
