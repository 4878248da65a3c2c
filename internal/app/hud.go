package app

import (
	"mad-life/internal/core"
	"mad-life/pkg/life"
)

// withCursor appends the hovered cell to a controller snapshot.
func withCursor(snap core.ParameterSnapshot, hover life.Coord) core.ParameterSnapshot {
	groups := make([]core.ParameterGroup, 0, len(snap.Groups)+1)
	groups = append(groups, snap.Groups...)
	groups = append(groups, core.ParameterGroup{Name: "Cursor", Params: []core.Parameter{
		{Key: "cursor", Label: "Cell", Type: core.ParamTypeString, Value: hover.String()},
	}})
	return core.ParameterSnapshot{Groups: groups}
}
