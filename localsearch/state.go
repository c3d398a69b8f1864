package localsearch

// tourState is the working representation local search operates on: the
// open path from the fixed start to the fixed end, excluding the sentinel
// entirely (the sentinel never participates in any move, since its
// inflated distances make it geometrically irrelevant to a real route).
type tourState struct {
	w         []int   // w[0]=start, w[L-1]=end, w[1:L-1] movable
	pos       []int   // pos[city] = index into w
	dlb       []bool  // dlb[city], city-indexed (size n, sentinel slot unused)
	dist      [][]int64
	neighbors [][]int
	nnLS      int
	start     int
	end       int
	l         int // len(w)
}

func newTourState(w []int, dist [][]int64, neighbors [][]int, nnLS int) *tourState {
	n := len(dist)
	s := &tourState{
		w:         append([]int(nil), w...),
		pos:       make([]int, n),
		dlb:       make([]bool, n),
		dist:      dist,
		neighbors: neighbors,
		nnLS:      nnLS,
		start:     w[0],
		end:       w[len(w)-1],
		l:         len(w),
	}
	s.rebuildPos()
	return s
}

func (s *tourState) rebuildPos() {
	for i, c := range s.w {
		s.pos[c] = i
	}
}

func (s *tourState) fixed(c int) bool { return c == s.start || c == s.end }

func (s *tourState) clear(c int) { s.dlb[c] = false }

// candidates returns the first nnLS neighbours of c.
func (s *tourState) candidates(c int) []int {
	nbrs := s.neighbors[c]
	if len(nbrs) > s.nnLS {
		nbrs = nbrs[:s.nnLS]
	}
	return nbrs
}

// reverse reverses w[i..j] inclusive and updates pos for every moved city.
func (s *tourState) reverse(i, j int) {
	for i < j {
		s.w[i], s.w[j] = s.w[j], s.w[i]
		s.pos[s.w[i]] = i
		s.pos[s.w[j]] = j
		i++
		j--
	}
}

// tryTwoOptAt attempts a 2-opt improving move anchored at c1, trying both
// the successor-edge and predecessor-edge removal. Returns the cities whose
// don't-look bits should be cleared on success.
func (s *tourState) tryTwoOptAt(c1 int) (bool, [4]int) {
	for _, dir := range [2]int{1, -1} {
		if ok, touched := s.tryTwoOptDirection(c1, dir); ok {
			return true, touched
		}
	}
	return false, [4]int{}
}

func (s *tourState) tryTwoOptDirection(c1, dir int) (bool, [4]int) {
	p1 := s.pos[c1]
	np1 := p1 + dir
	if np1 < 0 || np1 >= s.l {
		return false, [4]int{}
	}
	s1 := s.w[np1]
	gain1 := s.dist[c1][s1]

	for _, c2 := range s.candidates(c1) {
		if c2 == c1 || c2 == s1 {
			continue
		}
		d12 := s.dist[c1][c2]
		if d12 >= gain1 {
			break // neighbours sorted ascending: no further candidate can improve
		}
		p2 := s.pos[c2]
		np2 := p2 + dir
		if np2 < 0 || np2 >= s.l {
			continue
		}
		s2 := s.w[np2]
		if s2 == c1 {
			continue
		}

		removed := gain1 + s.dist[c2][s2]
		added := d12 + s.dist[s1][s2]
		if added+gainEpsilon >= removed {
			continue
		}

		pa, pb := minMax(p1, np1)
		qa, qb := minMax(p2, np2)
		if pb <= qa {
			s.reverse(pb, qa)
		} else {
			s.reverse(qb, pa)
		}
		return true, [4]int{c1, s1, c2, s2}
	}
	return false, [4]int{}
}

// tryOrOptAt attempts to relocate the segLen-city segment starting at c1
// to sit immediately after one of c1's neighbours. Returns the cities whose
// don't-look bits should be cleared on success.
func (s *tourState) tryOrOptAt(c1 int, segLen int) (bool, []int) {
	p1 := s.pos[c1]
	if p1 < 1 || p1+segLen > s.l-1 {
		return false, nil // segment would spill into the fixed end
	}
	lastPos := p1 + segLen - 1
	last := s.w[lastPos]
	pred := s.w[p1-1]
	succ := s.w[lastPos+1]

	removedGain := s.dist[pred][c1] + s.dist[last][succ] - s.dist[pred][succ]
	if removedGain <= gainEpsilon {
		return false, nil
	}

	for _, c2 := range s.candidates(c1) {
		p2 := s.pos[c2]
		if p2 >= p1-1 && p2 <= lastPos {
			continue // overlaps or adjacent to the segment being moved
		}
		np2 := p2 + 1
		if np2 >= s.l {
			continue // c2 is the fixed end; nothing to insert after
		}
		s2 := s.w[np2]
		if np2 >= p1 && np2 <= lastPos {
			continue
		}

		added := s.dist[c2][c1] + s.dist[last][s2] - s.dist[c2][s2]
		if added+gainEpsilon >= removedGain {
			continue
		}

		s.relocateSegment(p1, segLen, p2)
		return true, []int{pred, succ, c1, last, c2, s2}
	}
	return false, nil
}

// relocateSegment removes the segLen cities starting at position from and
// reinserts them, in the same relative order, immediately after the city
// currently at position target.
func (s *tourState) relocateSegment(from, segLen, target int) {
	segment := append([]int(nil), s.w[from:from+segLen]...)

	rest := make([]int, 0, s.l-segLen)
	rest = append(rest, s.w[:from]...)
	rest = append(rest, s.w[from+segLen:]...)

	targetCity := s.w[target]
	insertAt := 0
	for i, c := range rest {
		if c == targetCity {
			insertAt = i + 1
			break
		}
	}

	newW := make([]int, 0, s.l)
	newW = append(newW, rest[:insertAt]...)
	newW = append(newW, segment...)
	newW = append(newW, rest[insertAt:]...)

	s.w = newW
	s.rebuildPos()
}
