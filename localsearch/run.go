package localsearch

import "github.com/fenwicklab/thopaco/ant"

// Run improves a's tour in place to a local optimum under variant's move
// neighbourhood, restricted to the first nnLS entries of each city's
// neighbour list. dlbEnabled toggles don't-look-bit pruning; when disabled,
// every city is rescanned on every pass until a full pass yields no
// improvement (slower). Both modes stop at a local optimum of the same move
// set, but they scan cities in different orders, so the optimum reached can
// differ.
func Run(a *ant.Ant, dist [][]int64, neighbors [][]int, variant Variant, nnLS int, dlbEnabled bool) error {
	n := len(a.Tour) - 1
	if len(neighbors) != n {
		return ErrSizeMismatch
	}
	switch variant {
	case TwoOpt, TwoHalfOpt, ThreeOpt:
	default:
		return ErrUnknownVariant
	}

	w := append([]int(nil), a.Tour[:n-1]...)
	s := newTourState(w, dist, neighbors, nnLS)

	if dlbEnabled {
		runWithDLB(s, variant)
	} else {
		runWithoutDLB(s, variant)
	}

	copy(a.Tour[:n-1], s.w)
	a.Tour[n] = a.Tour[0]
	return nil
}

func (s *tourState) tryCity(c1 int, variant Variant) (bool, []int) {
	if ok, touched := s.tryTwoOptAt(c1); ok {
		return true, touched[:]
	}
	if variant >= TwoHalfOpt {
		if ok, touched := s.tryOrOptAt(c1, 1); ok {
			return true, touched
		}
	}
	if variant >= ThreeOpt {
		// Or-opt extended to two- and three-city segments, not a
		// three-edge reconnection search.
		for _, segLen := range [2]int{2, 3} {
			if ok, touched := s.tryOrOptAt(c1, segLen); ok {
				return true, touched
			}
		}
	}
	return false, nil
}

func runWithDLB(s *tourState, variant Variant) {
	queue := make([]int, 0, s.l)
	inQueue := make([]bool, len(s.dist))
	for _, c := range s.w {
		if s.fixed(c) {
			continue
		}
		queue = append(queue, c)
		inQueue[c] = true
	}

	for len(queue) > 0 {
		c1 := queue[0]
		queue = queue[1:]
		inQueue[c1] = false

		improved, touched := s.tryCity(c1, variant)
		if !improved {
			s.dlb[c1] = true
			continue
		}

		s.clear(c1)
		if !inQueue[c1] {
			queue = append(queue, c1)
			inQueue[c1] = true
		}
		for _, t := range touched {
			if s.fixed(t) {
				continue
			}
			s.clear(t)
			if !inQueue[t] {
				queue = append(queue, t)
				inQueue[t] = true
			}
		}
	}
}

func runWithoutDLB(s *tourState, variant Variant) {
	movable := make([]int, 0, s.l)
	for _, c := range s.w {
		if !s.fixed(c) {
			movable = append(movable, c)
		}
	}

	for {
		improvedAny := false
		for _, c1 := range movable {
			if improved, _ := s.tryCity(c1, variant); improved {
				improvedAny = true
			}
		}
		if !improvedAny {
			break
		}
	}
}
