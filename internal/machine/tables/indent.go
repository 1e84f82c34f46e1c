package tables

import "github.com/shapestone/yeast/internal/machine"

// Indent implements s-indent(n): a BeginNode/EndNode pair wrapping the
// indentation scan itself, so a standalone run of this production
// demonstrates spec.md §7's recovery guarantee directly — the enclosing
// BEGIN still receives its paired END even when scanIndent recovers from
// an illegal tab partway through.
//
// Grounded on YAML 1.2's s-indent(n) and on spec.md §7/§8's scenario of a
// tab where only spaces are permitted; scanIndent itself (rather than a
// class-dispatched run of states) is the only way to compare the running
// count against n, the same reason nonPositiveN decides its own control
// flow from inside an action.
func Indent() *machine.Machine {
	const (
		checkStart = 0
		enter      = 1
		scan       = 2
		exit       = 3
	)
	states := []machine.State{
		checkStart: withTransitions(st(), otherwise(enter)),
		enter:      withTransitions(st(emptyTok(machine.BeginNode)), otherwise(scan)),
		scan:       withTransitions(st(scanIndent()), otherwise(exit)),
		exit:       withTransitions(st(emptyTok(machine.EndNode), success()), otherwise(exit)),
	}
	return &machine.Machine{Name: "s-indent", States: states}
}
