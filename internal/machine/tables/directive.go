package tables

import (
	"github.com/shapestone/yeast/internal/charset"
	"github.com/shapestone/yeast/internal/machine"
)

// directiveStates implements l-directive: '%' ns-directive-name
// ( s-separate-in-line ns-directive-parameter )* s-l-comments, the way a
// "%YAML 1.2" or "%TAG !e! tag:example.com,2000:" line is scanned.
//
// Name and parameters are both scanned as opaque Meta runs up to the next
// separator, break, or comment — spec.md's directive handling doesn't
// distinguish "%YAML"'s version number from "%TAG"'s handle/prefix pair at
// the tokenizer layer; that belongs to whatever consumes the YEAST stream.
//
// Grounded on YAML 1.2 §6.8's l-directive production and on
// _examples/shapestone-shape-yaml's directive scanning in
// internal/parser/parser.go for the name-then-parameters shape; comment
// handling is the commentGroup spliced in from comment.go.
func directiveStates() []machine.State {
	const (
		checkPercent = 0
		enter        = 1
		nameBase     = 2 // textRun(Meta, White|Break), 3 states
		afterName    = 5
		sepBase      = 6 // whileRun(White, White), 3 states
		afterSep     = 9
		paramBase    = 10 // textRun(Meta, White|Break), 3 states
		afterParam   = 13
		commentBase  = 14 // commentGroup, 5 states
		afterComment = 19
		consumeBreak = 20
		finish       = 21
		fail         = 22
	)

	states := make([]machine.State, fail+1)

	states[checkPercent] = withTransitions(st(),
		on(charset.Percent, enter),
		otherwise(fail),
	)
	states[enter] = withTransitions(st(emptyTok(machine.BeginDirective)),
		otherwise(nameBase),
	)
	copy(states[nameBase:], offsetStates(textRun(machine.Meta, charset.White|charset.Break), nameBase, afterName))
	states[afterName] = withTransitions(st(),
		on(charset.Hash|charset.Break|charset.EOF, commentBase),
		otherwise(sepBase),
	)
	copy(states[sepBase:], offsetStates(whileRun(machine.White, charset.White), sepBase, afterSep))
	states[afterSep] = withTransitions(st(),
		on(charset.Hash|charset.Break|charset.EOF, commentBase),
		otherwise(paramBase),
	)
	copy(states[paramBase:], offsetStates(textRun(machine.Meta, charset.White|charset.Break), paramBase, afterParam))
	states[afterParam] = withTransitions(st(),
		on(charset.White, sepBase),
		on(charset.Hash|charset.Break|charset.EOF, commentBase),
		otherwise(fail),
	)
	copy(states[commentBase:], offsetStates(commentGroupStates, commentBase, afterComment))
	states[afterComment] = withTransitions(st(),
		on(charset.Break, consumeBreak),
		otherwise(finish),
	)
	states[consumeBreak] = withTransitions(
		st(begin(machine.Break), next(), end(machine.Break), nextLine()),
		otherwise(finish),
	)
	states[finish] = withTransitions(st(emptyTok(machine.EndDirective), success()),
		otherwise(finish),
	)
	states[fail] = withTransitions(st(failure()),
		otherwise(fail),
	)

	return states
}

// Directive registers l-directive standalone, for isolated testing the way
// _examples/original_source/test_src.c's YIP_TEST harness drives one
// production at a time.
func Directive() *machine.Machine {
	return &machine.Machine{Name: "l-directive", States: directiveStates()}
}
