// Package pyramid records every Euler operation applied to a planarmap.Map
// as a replayable history, and lets callers jump to any past level by
// restoring the nearest sparse checkpoint and replaying forward from
// there. A Pyramid owns one live working Map; GotoLevel and ApproachLevel
// rewrite that Map in place, while GetLevel returns an independent
// snapshot without disturbing it.
package pyramid
