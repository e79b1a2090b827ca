package lineup

import "fmt"

// Position codes carried on every lineup row.
const (
	CodeGoalkeeper = "GK"
	CodeDefender   = "DEF"
	CodeMidfielder = "MID"
	CodeForward    = "FWD"
	CodeSubstitute = "SUB"
	CodeReserve    = "RESERVE"
)

// Tactical line labels, in pitch order.
const (
	LineGoalkeeper = "goalkeeper"
	LineDefense    = "defense"
	LineMidfield0  = "midfield-0"
	LineMidfield1  = "midfield-1"
	LineMidfield2  = "midfield-2"
	LineAttack     = "attack"
)

const (
	keeperOrder = 1
	startingXI  = 11
)

// Role is the resolved tactical assignment for one player. Line and Slot are
// empty for bench players and for orders that resolve into no group.
type Role struct {
	Line string
	Slot string
	Code string
}

var outfieldLines = [5]struct {
	name string
	code string
}{
	{LineDefense, CodeDefender},
	{LineMidfield0, CodeMidfielder},
	{LineMidfield1, CodeMidfielder},
	{LineMidfield2, CodeMidfielder},
	{LineAttack, CodeForward},
}

// ResolvePosition maps a player's 1-based lineup order onto a tactical line,
// lateral slot and position code for the given formation. Order 1 is always
// the goalkeeper. Outfield starters are matched against cumulative group
// boundaries in fixed pitch order; a zero-size group contributes nothing to
// the running boundary, so no order can land in it. Orders past the starting
// eleven classify as substitute or unused reserve, and anything left over
// degrades to an empty Role rather than an error so one odd entry cannot
// sink a whole match.
func ResolvePosition(order int, shape Formation, substitute bool) Role {
	if order == keeperOrder {
		return Role{Line: LineGoalkeeper, Slot: "1/1", Code: CodeGoalkeeper}
	}

	sizes := [5]int{shape.Defense, shape.Mid0, shape.Mid1, shape.Mid2, shape.Attack}
	prev := keeperOrder
	for i, size := range sizes {
		if size > 0 && order <= prev+size {
			return Role{
				Line: outfieldLines[i].name,
				Slot: fmt.Sprintf("%d/%d", order-prev, size),
				Code: outfieldLines[i].code,
			}
		}
		prev += size
	}

	if order > startingXI {
		if substitute {
			return Role{Code: CodeSubstitute}
		}
		return Role{Code: CodeReserve}
	}

	return Role{}
}
