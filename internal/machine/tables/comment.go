package tables

import (
	"github.com/shapestone/yeast/internal/charset"
	"github.com/shapestone/yeast/internal/machine"
)

// commentGroupStates implements l-comment: an optional '#' comment
// running to end of line. If the current character isn't '#' it does
// nothing and exits immediately, so it is safe to splice in anywhere a
// comment is merely permitted, not required.
//
// Grounded on YAML 1.2's l-comment / c-nb-comment-text / b-comment
// productions; state shape follows spec.md §4.G's guarded-transition
// dispatch.
var commentGroupStates = []machine.State{
	0: withTransitions(st(),
		on(charset.Hash, 1),
		otherwise(exit),
	),
	1: withTransitions(st(emptyTok(machine.BeginComment), begin(machine.Meta)),
		on(charset.Break|charset.EOF, 3),
		otherwise(2),
	),
	2: withTransitions(st(next()),
		on(charset.Break|charset.EOF, 3),
		otherwise(2),
	),
	3: withTransitions(st(end(machine.Meta), emptyTok(machine.EndComment)),
		on(charset.Break, 4),
		otherwise(exit),
	),
	4: withTransitions(st(begin(machine.Break), next(), end(machine.Break), nextLine()),
		otherwise(exit),
	),
}

var commentGroup = newGroup(commentGroupStates)

// Comment registers l-comment standalone, so it can be driven on its own
// the way _examples/original_source/test_src.c's YIP_TEST harness drives
// one production at a time for isolated testing.
func Comment() *machine.Machine {
	successAt := len(commentGroupStates)
	states := commentGroup.build(0, successAt)
	states = append(states, st(success()))
	return &machine.Machine{Name: "l-comment", States: states}
}
