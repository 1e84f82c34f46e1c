// Package tables holds the hand-authored production tables that would, in
// a full implementation, come from an offline grammar-to-tables generator
// (spec.md §1's out-of-scope ".m4 macro expansion"). Each file implements
// one or a few related YAML grammar productions as a machine.Machine,
// following the table shape spec.md §4.G/§6 describes and registers them
// with a machine.Registry via Install.
//
// Grounded on _examples/original_source/yip.c's overall state-machine
// contract (states, transitions, actions) and on
// _examples/shapestone-shape-yaml's internal/parser/parser.go for which
// productions a practical YAML scanner needs first — directives, flow and
// block collections, plain and quoted scalars, comments.
//
// Coverage is intentionally a representative subset of the full YAML 1.2
// grammar rather than an exhaustive production-per-BNF-rule rewrite: see
// DESIGN.md's "Grammar coverage" entry for the list and the reasoning.
package tables

import (
	"github.com/shapestone/yeast/internal/charset"
	"github.com/shapestone/yeast/internal/machine"
)

func on(classes charset.Class, target int) machine.Transition {
	return machine.Transition{Classes: classes, Target: target}
}

func otherwise(target int) machine.Transition {
	return machine.Transition{Classes: 0, Target: target}
}

func begin(code machine.Code) machine.Action {
	return machine.Action{Op: machine.OpBeginToken, Code: code}
}

func end(code machine.Code) machine.Action {
	return machine.Action{Op: machine.OpEndToken, Code: code}
}

func emptyTok(code machine.Code) machine.Action {
	return machine.Action{Op: machine.OpEmptyToken, Code: code}
}

func fake(code machine.Code, text string) machine.Action {
	return machine.Action{Op: machine.OpFakeToken, Code: code, Text: []byte(text)}
}

func next() machine.Action       { return machine.Action{Op: machine.OpNextChar} }
func prevChar() machine.Action   { return machine.Action{Op: machine.OpPrevChar} }
func nextLine() machine.Action   { return machine.Action{Op: machine.OpNextLine} }
func resetI() machine.Action     { return machine.Action{Op: machine.OpResetCounter} }
func incrI() machine.Action      { return machine.Action{Op: machine.OpIncrCounter} }
func pushState() machine.Action  { return machine.Action{Op: machine.OpPushState} }
func setState() machine.Action   { return machine.Action{Op: machine.OpSetState} }
func popState() machine.Action   { return machine.Action{Op: machine.OpPopState} }
func resetState() machine.Action { return machine.Action{Op: machine.OpResetState} }
func nonPositiveN() machine.Action {
	return machine.Action{Op: machine.OpNonPositiveN}
}
func scanIndent() machine.Action { return machine.Action{Op: machine.OpScanIndent} }
func success() machine.Action { return machine.Action{Op: machine.OpSuccess} }
func failure() machine.Action { return machine.Action{Op: machine.OpFailure} }

func beginChoice(c machine.Choice) machine.Action {
	return machine.Action{Op: machine.OpBeginChoice, Choice: c}
}
func endChoice(c machine.Choice) machine.Action {
	return machine.Action{Op: machine.OpEndChoice, Choice: c}
}
func commit(c machine.Choice) machine.Action {
	return machine.Action{Op: machine.OpCommit, Choice: c}
}

func st(actions ...machine.Action) machine.State {
	return machine.State{Actions: actions}
}

func stGuarded(g machine.Guard, actions ...machine.Action) machine.State {
	return machine.State{Guard: g, Actions: actions}
}

func withTransitions(s machine.State, transitions ...machine.Transition) machine.State {
	s.Transitions = transitions
	return s
}

// builder assembles a top-level Machine's states incrementally. Most
// productions are a mostly-linear chain interspersed with a handful of
// spliced groups, so states are almost always referenced relative to
// "whatever I add next" (next()) rather than by a fixed absolute index,
// which keeps the table authoring order-independent of renumbering.
type builder struct {
	states []machine.State
}

func (b *builder) next() int { return len(b.states) }

func (b *builder) add(s machine.State) int {
	b.states = append(b.states, s)
	return len(b.states) - 1
}

// spliceGroup inlines g, continuing at resumeAt once g completes, and
// returns g's entry index.
func (b *builder) spliceGroup(g group, resumeAt int) int {
	return splice(&b.states, g, resumeAt)
}

func (b *builder) build() []machine.State { return b.states }

// group is a reusable, relocatable chunk of states with one entry point
// (always its index 0). build returns the chunk's states with every
// internal Target already offset by base, and every exit target (the
// chunk's way of finishing) instead transitioning to next — this is
// what makes splicing possible under spec.md §2's single-active-machine
// constraint: a production that "calls" a sub-rule can't invoke it as a
// nested machine, so its states are inlined directly into the caller's
// table instead.
type group struct {
	build func(base, next int) []machine.State
}

// splice appends g's states (relocated to start at len(*states)) that
// continue to next on success, and returns the entry index.
func splice(states *[]machine.State, g group, next int) int {
	base := len(*states)
	*states = append(*states, g.build(base, next)...)
	return base
}

// exit is the sentinel local target a group's authored states use to mean
// "leave the group here, continue at whatever state the caller passed as
// next" — offsetStates rewrites it to the real absolute target once the
// group is placed.
const exit = -1 << 30

// newGroup builds a group from states authored with local indices (0-based,
// as if the group were its own top-level table) using exit in place of any
// "I'm done, resume the caller" target.
func newGroup(states []machine.State) group {
	return group{build: func(base, next int) []machine.State {
		return offsetStates(states, base, next)
	}}
}

// textRun builds a 3-state local chunk that accumulates characters as a
// MATCH token under code until the current character's class intersects
// stop or the input ends (charset.EOF is always added to stop). Reused
// everywhere a production scans a
// run of content up to a delimiter: comment text, directive parameters,
// plain scalar text.
func textRun(code machine.Code, stop charset.Class) []machine.State {
	stop |= charset.EOF
	return []machine.State{
		0: withTransitions(st(begin(code)), on(stop, 2), otherwise(1)),
		1: withTransitions(st(next()), on(stop, 2), otherwise(1)),
		2: withTransitions(st(end(code)), otherwise(exit)),
	}
}

// whileRun builds a 3-state local chunk that accumulates characters as a
// MATCH token under code for as long as the current character's class
// intersects in, stopping (without consuming the character that broke the
// run) the first time it doesn't — including at EOF, since no code point's
// class intersects in there. The caller is expected to already know the
// current character is a member of in before entering at state 0 (a
// preceding transition dispatched here on that basis); state 0 itself
// never checks it. Used for separator whitespace and indentation runs,
// where the run continues only while a specific class holds rather than
// until a delimiter appears.
func whileRun(code machine.Code, in charset.Class) []machine.State {
	return []machine.State{
		0: withTransitions(st(begin(code)), otherwise(1)),
		1: withTransitions(st(next()), on(in, 1), otherwise(2)),
		2: withTransitions(st(end(code)), otherwise(exit)),
	}
}

func offsetStates(states []machine.State, base, next int) []machine.State {
	out := make([]machine.State, len(states))
	for i, s := range states {
		relocated := make([]machine.Transition, len(s.Transitions))
		for j, t := range s.Transitions {
			target := t.Target
			if target == exit {
				target = next
			} else {
				target += base
			}
			relocated[j] = machine.Transition{Classes: t.Classes, Target: target}
		}
		out[i] = machine.State{Guard: s.Guard, Transitions: relocated, Actions: s.Actions}
	}
	return out
}
