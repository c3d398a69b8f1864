// Package localsearch improves a constructed tour in place to a local
// optimum under one of three move neighbourhoods: 2-opt, 2.5-opt (2-opt
// plus single-city relocation), and an Or-opt-extended third variant
// (2.5-opt plus two- and three-city segment relocation). The third
// variant is NOT the classic three-edge-removal 3-opt (seven reconnections
// with segment reversal over an unrestricted triple of cut points) — it is
// an Or-opt chain extended to longer segments, kept inside the same
// neighbour-list/don't-look-bit incremental search every variant shares.
// See this package's entry in DESIGN.md for why the exhaustive reconnection
// search was not adopted.
//
// All three variants share the same machinery: a position index for O(1)
// successor/predecessor lookups, don't-look bits that skip cities whose
// neighbourhood yielded no improvement last time they were scanned, and
// first-improvement acceptance restricted to each city's neighbour list.
// Cities 0, n-2 and n-1 are fixed endpoints: they are never relocated and
// never serve as a segment's moving point, though they may still appear as
// insertion targets' neighbours.
package localsearch
