package ant

// Reset clears Visited and PackingPlan and pins the three fixed positions
// that every construction step starts from: city 0 (start) at Tour[0],
// city n-2 (end) at Tour[n-2], and city n-1 (sentinel) at Tour[n-1]. Fitness
// is reset to zero; it is only meaningful after a full tour/packing plan
// has been evaluated.
func (a *Ant) Reset() {
	n := len(a.Tour) - 1
	for i := range a.Visited {
		a.Visited[i] = false
	}
	for i := range a.PackingPlan {
		a.PackingPlan[i] = false
	}
	a.Fitness = 0

	a.Tour[0] = 0
	a.Visited[0] = true
	a.Tour[n-2] = n - 2
	a.Visited[n-2] = true
	a.Tour[n-1] = n - 1
	a.Visited[n-1] = true
}

// CopyFrom overwrites a's fields with src's, for the best-so-far/restart-
// best/iteration-best bookkeeping that otherwise allocates a fresh Ant every
// time a new incumbent is found.
func (a *Ant) CopyFrom(src *Ant) error {
	if len(a.Tour) != len(src.Tour) || len(a.PackingPlan) != len(src.PackingPlan) {
		return ErrSizeMismatch
	}
	copy(a.Tour, src.Tour)
	copy(a.Visited, src.Visited)
	copy(a.PackingPlan, src.PackingPlan)
	a.Fitness = src.Fitness
	return nil
}

// Clone returns a deep copy of a.
func (a *Ant) Clone() *Ant {
	out := &Ant{
		Tour:        append([]int(nil), a.Tour...),
		Visited:     append([]bool(nil), a.Visited...),
		PackingPlan: append([]bool(nil), a.PackingPlan...),
		Fitness:     a.Fitness,
	}
	return out
}
