package pyramid

import (
	"fmt"

	"github.com/eldruin/geomap/planarmap"
)

// Kind identifies which Euler operator an Operation replays.
type Kind int

const (
	// KindRemoveIsolatedNode replays planarmap.Map.RemoveIsolatedNode.
	KindRemoveIsolatedNode Kind = iota
	// KindMergeEdges replays planarmap.Map.MergeEdges.
	KindMergeEdges
	// KindRemoveBridge replays planarmap.Map.RemoveBridge.
	KindRemoveBridge
	// KindMergeFaces replays planarmap.Map.MergeFaces.
	KindMergeFaces
	// KindRemoveEdge replays planarmap.Map.RemoveEdge.
	KindRemoveEdge
	// KindRemoveEdgeWithEnds replays planarmap.Map.RemoveEdgeWithEnds.
	KindRemoveEdgeWithEnds
	// KindComposite replays every operation in Children, in order.
	KindComposite
)

// Operation is a single replayable step of a Pyramid's history. It is a
// closed sum type: a primitive operation carries exactly one of NodeLabel
// or Dart depending on Kind, and a composite carries Children; the two
// payload shapes are never populated together.
type Operation struct {
	Kind      Kind
	NodeLabel planarmap.CellLabel
	Dart      planarmap.SerializedDart
	Children  []Operation
}

// RemoveIsolatedNodeOp builds a primitive removeIsolatedNode operation.
func RemoveIsolatedNodeOp(label planarmap.CellLabel) Operation {
	return Operation{Kind: KindRemoveIsolatedNode, NodeLabel: label}
}

// MergeEdgesOp builds a primitive mergeEdges operation.
func MergeEdgesOp(dart planarmap.Dart) Operation {
	return Operation{Kind: KindMergeEdges, Dart: dart.Serialize()}
}

// RemoveBridgeOp builds a primitive removeBridge operation.
func RemoveBridgeOp(dart planarmap.Dart) Operation {
	return Operation{Kind: KindRemoveBridge, Dart: dart.Serialize()}
}

// MergeFacesOp builds a primitive mergeFaces operation.
func MergeFacesOp(dart planarmap.Dart) Operation {
	return Operation{Kind: KindMergeFaces, Dart: dart.Serialize()}
}

// RemoveEdgeOp builds a primitive removeEdge operation.
func RemoveEdgeOp(dart planarmap.Dart) Operation {
	return Operation{Kind: KindRemoveEdge, Dart: dart.Serialize()}
}

// RemoveEdgeWithEndsOp builds a primitive removeEdgeWithEnds operation.
func RemoveEdgeWithEndsOp(dart planarmap.Dart) Operation {
	return Operation{Kind: KindRemoveEdgeWithEnds, Dart: dart.Serialize()}
}

// Clone returns a deep copy of o: a composite's Children are cloned
// recursively, so mutating the clone's tree never aliases o's.
func (o Operation) Clone() Operation {
	clone := o
	if o.Kind == KindComposite {
		clone.Children = make([]Operation, len(o.Children))
		for i, c := range o.Children {
			clone.Children[i] = c.Clone()
		}
	}
	return clone
}

// Perform replays o against m.
func (o Operation) Perform(m *planarmap.Map) error {
	switch o.Kind {
	case KindRemoveIsolatedNode:
		return m.RemoveIsolatedNode(o.NodeLabel)
	case KindMergeEdges:
		_, err := m.MergeEdges(planarmap.RehydrateDart(m, o.Dart))
		return err
	case KindRemoveBridge:
		return m.RemoveBridge(planarmap.RehydrateDart(m, o.Dart))
	case KindMergeFaces:
		_, err := m.MergeFaces(planarmap.RehydrateDart(m, o.Dart))
		return err
	case KindRemoveEdge:
		return m.RemoveEdge(planarmap.RehydrateDart(m, o.Dart))
	case KindRemoveEdgeWithEnds:
		return m.RemoveEdgeWithEnds(planarmap.RehydrateDart(m, o.Dart))
	case KindComposite:
		for i, c := range o.Children {
			if err := c.Perform(m); err != nil {
				return fmt.Errorf("pyramid: composite step %d: %w", i, err)
			}
		}
		return nil
	default:
		return fmt.Errorf("pyramid: unknown operation kind %d", o.Kind)
	}
}
