package pyramid

import (
	"fmt"

	"github.com/eldruin/geomap/planarmap"
)

const minCheckpointSpacing = 10

// Pyramid records every Euler operation applied to a working
// planarmap.Map and keeps sparse checkpoints so any past level can be
// restored without replaying the entire history from level 0.
type Pyramid struct {
	base *planarmap.Map

	ops []Operation

	checkpoints    map[int]*planarmap.Map
	nextCheckpoint int

	currentLevel int

	inComposite      bool
	pendingComposite []Operation
	compositeGuard   *planarmap.Map
}

// New returns a Pyramid whose level 0 is m. m becomes the Pyramid's live
// working map: operations performed through the Pyramid mutate it directly.
func New(m *planarmap.Map) *Pyramid {
	p := &Pyramid{
		base:        m,
		checkpoints: map[int]*planarmap.Map{0: m.Clone()},
	}
	p.nextCheckpoint = checkpointSpacing(m)
	return p
}

func checkpointSpacing(m *planarmap.Map) int {
	total := m.NodeCount() + m.EdgeCount() + m.FaceCount()
	d := total / 4
	if d < minCheckpointSpacing {
		d = minCheckpointSpacing
	}
	return d
}

// Map returns the Pyramid's live working map, currently positioned at
// CurrentLevel().
func (p *Pyramid) Map() *planarmap.Map { return p.base }

// CurrentLevel returns the level the working map is currently at.
func (p *Pyramid) CurrentLevel() int { return p.currentLevel }

// MaxLevel returns the highest level reachable by GotoLevel/GetLevel.
func (p *Pyramid) MaxLevel() int { return len(p.ops) }

// LevelCount returns the number of levels in the pyramid, i.e.
// len(History())+1: level 0 (the map New was called with) plus one level
// per recorded operation.
func (p *Pyramid) LevelCount() int { return len(p.ops) + 1 }

// History returns a copy of every operation committed so far, in level
// order: History()[i] is the operation that turned level i into level
// i+1. Operations staged inside an open composite are not yet part of the
// history; they join it as a single step on EndComposite (see there).
func (p *Pyramid) History() []Operation {
	out := make([]Operation, len(p.ops))
	for i, op := range p.ops {
		out[i] = op.Clone()
	}
	return out
}

// RemoveIsolatedNode performs and records a removeIsolatedNode step.
func (p *Pyramid) RemoveIsolatedNode(label planarmap.CellLabel) error {
	return p.addAndPerform(RemoveIsolatedNodeOp(label))
}

// MergeEdges performs and records a mergeEdges step.
func (p *Pyramid) MergeEdges(dart planarmap.Dart) error {
	return p.addAndPerform(MergeEdgesOp(dart))
}

// RemoveBridge performs and records a removeBridge step.
func (p *Pyramid) RemoveBridge(dart planarmap.Dart) error {
	return p.addAndPerform(RemoveBridgeOp(dart))
}

// MergeFaces performs and records a mergeFaces step.
func (p *Pyramid) MergeFaces(dart planarmap.Dart) error {
	return p.addAndPerform(MergeFacesOp(dart))
}

// RemoveEdge performs and records a removeEdge step.
func (p *Pyramid) RemoveEdge(dart planarmap.Dart) error {
	return p.addAndPerform(RemoveEdgeOp(dart))
}

// RemoveEdgeWithEnds performs and records a removeEdgeWithEnds step.
func (p *Pyramid) RemoveEdgeWithEnds(dart planarmap.Dart) error {
	return p.addAndPerform(RemoveEdgeWithEndsOp(dart))
}

// addAndPerform performs op against the working map and, on
// success, either stages it inside the open composite transaction or
// commits it immediately as a new level. A failing op is never recorded:
// the working map and the history are left exactly as they were.
func (p *Pyramid) addAndPerform(op Operation) error {
	if err := op.Perform(p.base); err != nil {
		return err
	}
	if p.inComposite {
		p.pendingComposite = append(p.pendingComposite, op)
		return nil
	}
	p.commit(op)
	return nil
}

func (p *Pyramid) commit(op Operation) {
	p.ops = append(p.ops, op)
	p.currentLevel++
	if p.currentLevel >= p.nextCheckpoint {
		p.checkpoints[p.currentLevel] = p.base.Clone()
		p.nextCheckpoint = p.currentLevel + checkpointSpacing(p.base)
	}
}

// BeginComposite opens a composite transaction: subsequent
// RemoveIsolatedNode/MergeEdges/RemoveBridge/MergeFaces/RemoveEdge/
// RemoveEdgeWithEnds calls still mutate the working map immediately, but
// are staged rather than committed as their own levels until EndComposite.
func (p *Pyramid) BeginComposite() error {
	if p.inComposite {
		return ErrCompositeAlreadyOpen
	}
	p.inComposite = true
	p.pendingComposite = nil
	p.compositeGuard = p.base.Clone()
	return nil
}

// EndComposite closes the open composite transaction and commits it as a
// single new level: zero staged operations commit nothing, exactly one
// flattens to that operation alone (never wrapped in a composite), and
// two or more commit as a KindComposite step.
func (p *Pyramid) EndComposite() error {
	if !p.inComposite {
		return ErrNoCompositeOpen
	}
	p.inComposite = false
	p.compositeGuard = nil
	switch len(p.pendingComposite) {
	case 0:
	case 1:
		p.commit(p.pendingComposite[0])
	default:
		p.commit(Operation{Kind: KindComposite, Children: p.pendingComposite})
	}
	p.pendingComposite = nil
	return nil
}

// AbortComposite closes the open composite transaction and rolls the
// working map back to its state when BeginComposite was called, undoing
// every operation staged since, whether or not those operations
// themselves succeeded.
func (p *Pyramid) AbortComposite() error {
	if !p.inComposite {
		return ErrNoCompositeOpen
	}
	p.inComposite = false
	p.base.RestoreFrom(p.compositeGuard)
	p.compositeGuard = nil
	p.pendingComposite = nil
	return nil
}

func (p *Pyramid) nearestCheckpointAtOrBefore(level int) (int, *planarmap.Map) {
	best := -1
	for idx := range p.checkpoints {
		if idx <= level && idx > best {
			best = idx
		}
	}
	if best < 0 {
		return -1, nil
	}
	return best, p.checkpoints[best]
}

// GetLevel returns an independent snapshot of the map as it was at level,
// without disturbing the Pyramid's working map or current level.
func (p *Pyramid) GetLevel(level int) (*planarmap.Map, error) {
	if level < 0 || level > len(p.ops) {
		return nil, fmt.Errorf("pyramid: GetLevel(%d): %w", level, ErrOutOfRange)
	}
	cpIdx, cp := p.nearestCheckpointAtOrBefore(level)
	if cpIdx < 0 {
		return nil, fmt.Errorf("pyramid: GetLevel(%d): no checkpoint available", level)
	}
	snap := cp.Clone()
	for i := cpIdx; i < level; i++ {
		if err := p.ops[i].Perform(snap); err != nil {
			return nil, fmt.Errorf("pyramid: GetLevel(%d): replay op %d: %w", level, i, err)
		}
	}
	return snap, nil
}

// GotoLevel moves the working map to level exactly, restoring the
// nearest checkpoint at or before level and replaying forward from there.
func (p *Pyramid) GotoLevel(level int) error {
	if level < 0 || level > len(p.ops) {
		return fmt.Errorf("pyramid: GotoLevel(%d): %w", level, ErrOutOfRange)
	}
	cpIdx, cp := p.nearestCheckpointAtOrBefore(level)
	if cpIdx < 0 {
		return fmt.Errorf("pyramid: GotoLevel(%d): no checkpoint available", level)
	}
	p.base.RestoreFrom(cp)
	for i := cpIdx; i < level; i++ {
		if err := p.ops[i].Perform(p.base); err != nil {
			return fmt.Errorf("pyramid: GotoLevel(%d): replay op %d: %w", level, i, err)
		}
	}
	p.currentLevel = level
	return nil
}

// ApproachLevel moves the working map to level, like GotoLevel, but
// avoids restoring a checkpoint (and replaying from scratch) when the
// working map is already positioned at or after the nearest usable
// checkpoint and no later than level: in that case it simply replays the
// remaining forward steps from the current position.
func (p *Pyramid) ApproachLevel(level int) error {
	if level < 0 || level > len(p.ops) {
		return fmt.Errorf("pyramid: ApproachLevel(%d): %w", level, ErrOutOfRange)
	}
	cpIdx, _ := p.nearestCheckpointAtOrBefore(level)
	if cpIdx >= 0 && p.currentLevel >= cpIdx && p.currentLevel <= level {
		for i := p.currentLevel; i < level; i++ {
			if err := p.ops[i].Perform(p.base); err != nil {
				return fmt.Errorf("pyramid: ApproachLevel(%d): replay op %d: %w", level, i, err)
			}
		}
		p.currentLevel = level
		return nil
	}
	return p.GotoLevel(level)
}

// CutAbove truncates the history above level, discarding every operation
// and checkpoint recorded past it. If the working map is currently beyond
// level, it is first rolled back to exactly level.
func (p *Pyramid) CutAbove(level int) error {
	if level < 0 || level > len(p.ops) {
		return fmt.Errorf("pyramid: CutAbove(%d): %w", level, ErrOutOfRange)
	}
	if p.currentLevel > level {
		if err := p.GotoLevel(level); err != nil {
			return err
		}
	}
	p.ops = p.ops[:level]
	for idx := range p.checkpoints {
		if idx > level {
			delete(p.checkpoints, idx)
		}
	}
	p.nextCheckpoint = level + checkpointSpacing(p.base)
	return nil
}
