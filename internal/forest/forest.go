// Package forest orders the nodes of a parent-linked forest so that every
// parent precedes its children.
package forest

import (
	"fmt"
	"strconv"
	"strings"
)

// NoParent marks a root.
const NoParent = -1

// CycleError reports a cycle of parent links. Nodes lists the cycle starting
// and ending at the same node.
type CycleError struct {
	Nodes []int
	// Names renders node indices in the message when set.
	Names func(int) string
}

func (e *CycleError) Error() string {
	parts := make([]string, len(e.Nodes))
	for i, n := range e.Nodes {
		if e.Names != nil {
			parts[i] = e.Names(n)
		} else {
			parts[i] = strconv.Itoa(n)
		}
	}
	return "cycle detected in base links: " + strings.Join(parts, " -> ")
}

// Order returns every index of parents such that parents[i] appears before i.
// Nodes keep their relative input order whenever the constraint allows it.
// Each node is finalized exactly once, so the walk is linear in len(parents).
func Order(parents []int) ([]int, error) {
	const (
		unvisited = iota
		temporary
		permanent
	)
	state := make([]uint8, len(parents))
	order := make([]int, 0, len(parents))

	for start := range parents {
		if state[start] == permanent {
			continue
		}

		// Walk up to the first finalized ancestor or root, remembering the path.
		var path []int
		n := start
		for n != NoParent {
			if n < 0 || n >= len(parents) {
				return nil, fmt.Errorf("node %d links to unknown parent %d", path[len(path)-1], n)
			}
			if state[n] == permanent {
				break
			}
			if state[n] == temporary {
				return nil, &CycleError{Nodes: cycleFrom(path, n)}
			}
			state[n] = temporary
			path = append(path, n)
			n = parents[n]
		}

		// Finalize ancestors first.
		for i := len(path) - 1; i >= 0; i-- {
			state[path[i]] = permanent
			order = append(order, path[i])
		}
	}
	return order, nil
}

func cycleFrom(path []int, at int) []int {
	for i, n := range path {
		if n == at {
			cycle := append([]int(nil), path[i:]...)
			return append(cycle, at)
		}
	}
	return []int{at, at}
}
