package planarmap

import "fmt"

// CheckConsistency verifies the map's combinatorial invariants: every
// dart a node lists names a live edge and starts at that node, every live edge's endpoints are
// live nodes, and every face anchor resolves back to its own face. It is
// intended for tests and debugging, not for the hot path of Euler
// operators, which maintain these invariants incrementally.
func (m *Map) CheckConsistency() error {
	for l := CellLabel(1); l < CellLabel(len(m.nodes)); l++ {
		n := &m.nodes[l]
		if !n.live {
			continue
		}
		for _, sl := range n.darts {
			d := Dart{m: m, signedLabel: sl}
			if !d.Edge().Initialized() {
				return fmt.Errorf("consistency: node %d names dead edge %d: %w", l, d.EdgeLabel(), ErrInvariantBroken)
			}
			if d.StartNode().label != l {
				return fmt.Errorf("consistency: dart %d listed at node %d does not start there: %w", sl, l, ErrInvariantBroken)
			}
		}
	}

	for l := CellLabel(1); l < CellLabel(len(m.edges)); l++ {
		e := &m.edges[l]
		if !e.live {
			continue
		}
		if !m.node(e.startNodeLabel).Initialized() {
			return fmt.Errorf("consistency: edge %d start node %d not live: %w", l, e.startNodeLabel, ErrInvariantBroken)
		}
		if !m.node(e.endNodeLabel).Initialized() {
			return fmt.Errorf("consistency: edge %d end node %d not live: %w", l, e.endNodeLabel, ErrInvariantBroken)
		}
	}

	if !m.contoursInitialized {
		return nil
	}
	for l := CellLabel(0); l < CellLabel(len(m.faces)); l++ {
		f := &m.faces[l]
		if !f.live {
			continue
		}
		for _, a := range f.anchors {
			if a.LeftFaceLabel() != l {
				return fmt.Errorf("consistency: face %d anchor resolves to face %d: %w", l, a.LeftFaceLabel(), ErrInvariantBroken)
			}
		}
	}
	return nil
}
