package cpdfs

import (
	"github.com/sudokucore/api/internal/constraints"
	"github.com/sudokucore/api/internal/grid"
	"github.com/sudokucore/api/internal/mask"
)

// arc is a directed edge (from, to) meaning "from must differ from to".
type arc struct {
	from, to int
}

// propagateAC3 enforces arc consistency over the "cells i and j must hold
// different values" constraint. It returns an InconsistentGivensError
// naming the cell whose domain emptied and the peer whose singleton domain
// forced the last removal, or nil once every arc is consistent.
//
// The worklist is FIFO and arcs are enumerated in ascending (i, peer) order
// so that which cell empties first -- and hence the reported error -- is
// reproducible.
func propagateAC3(d *Domains) error {
	queue := make([]arc, 0, grid.CellCount*20)
	for i := 0; i < grid.CellCount; i++ {
		for _, j := range constraints.Peers(i) {
			queue = append(queue, arc{from: i, to: j})
		}
	}

	inQueue := make(map[arc]bool, len(queue))
	for _, a := range queue {
		inQueue[a] = true
	}

	for len(queue) > 0 {
		a := queue[0]
		queue = queue[1:]
		inQueue[a] = false

		removed, changed := revise(d, a.from, a.to)
		if !changed {
			continue
		}
		if d[a.from].Empty() {
			v, _ := removed.SingleValue()
			return &grid.InconsistentGivensError{CellA: a.from, CellB: a.to, Value: v}
		}
		for _, k := range constraints.Peers(a.from) {
			if k == a.to {
				continue
			}
			next := arc{from: k, to: a.from}
			if !inQueue[next] {
				queue = append(queue, next)
				inQueue[next] = true
			}
		}
	}
	return nil
}

// revise removes from D[i] any value v for which D[j] = {v} (no alternative
// remains for j). It returns the mask of values actually removed.
func revise(d *Domains, i, j int) (removed mask.Domain, changed bool) {
	v, ok := d[j].SingleValue()
	if !ok || !d[i].Has(v) {
		return 0, false
	}
	d[i] = d[i].Remove(v)
	return mask.Single(v), true
}
