package machine

import "github.com/shapestone/yeast/internal/charset"

// Result is what running one step of a machine produces (spec.md §4.G).
type Result int

const (
	ResultDone       Result = iota // this machine finished (SUCCESS)
	ResultToken                    // one or more tokens are now queued
	ResultUnexpected                // no applicable transition (FAILURE / dispatch miss)
)

// Guard is checked before a state's transitions are dispatched; a failing
// guard is treated the same as no transition matching (spec.md §4.G).
type Guard int

const (
	NoGuard Guard = iota
	GuardStartOfLine
	GuardCounterLessThanN
	GuardCounterLessEqualN
)

func evalGuard(g Guard, p *Parser) bool {
	switch g {
	case NoGuard:
		return true
	case GuardStartOfLine:
		return p.eng.Curr().Class&charset.StartOfLine != 0
	case GuardCounterLessThanN:
		return p.i < p.n
	case GuardCounterLessEqualN:
		return p.i <= p.n
	default:
		return false
	}
}

// Transition is one (class-mask, target) arc. A zero Classes mask is the
// unconditional default arm and must be listed last in a state's
// Transitions slice, matching spec.md §4.G's "first match wins, empty-mask
// transitions come last" rule.
type Transition struct {
	Classes charset.Class
	Target  int
}

func dispatch(transitions []Transition, class charset.Class) (int, bool) {
	for _, t := range transitions {
		if t.Classes == 0 || t.Classes&class != 0 {
			return t.Target, true
		}
	}
	return 0, false
}

// ActionOp is one opcode in a state's action sequence (spec.md §4.G).
type ActionOp int

const (
	OpBeginToken ActionOp = iota
	OpEndToken
	OpEmptyToken
	OpFakeToken
	OpNextChar
	OpPrevChar
	OpNextLine
	OpResetCounter
	OpIncrCounter
	OpBeginChoice
	OpEndChoice
	OpCommit
	OpPushState
	OpSetState
	OpPopState
	OpResetState
	OpNonPositiveN
	OpSuccess
	OpFailure
	OpScanIndent
)

// Choice identifies one of the two named choice points machines use with
// begin_choice/end_choice/commit (spec.md §4.F).
type Choice int

const (
	ChoiceEscape Choice = iota
	ChoiceEscaped
)

var choiceErrors = [...]string{
	ChoiceEscape:  "Commit to 'escape' was made outside it",
	ChoiceEscaped: "Commit to 'escaped' was made outside it",
}

// Action is one instruction in a state's action sequence. Only the fields
// relevant to Op are meaningful.
type Action struct {
	Op     ActionOp
	Code   Code
	Text   []byte
	Choice Choice
}

// State is one node of a machine's table: a guard, an ordered transition
// list (the out-edges from this state), and an action sequence run
// immediately upon entering this state.
type State struct {
	Guard       Guard
	Transitions []Transition
	Actions     []Action
}

// doneState is the sentinel state index meaning "this machine is
// finished", matching yip.c's STATE_DONE.
const doneState = -1

// Machine is a named, table-driven state machine: one compiled YAML
// grammar production. States are indexed 0..len(States)-1; state 0 is the
// entry state and is never itself the target of its own actions (its
// Actions, if any, are ignored — only states reached via a transition run
// their actions), matching how a generated table always starts a
// production by dispatching, never by acting.
type Machine struct {
	Name   string
	States []State
}

// Step runs the active machine forward until it must yield: either a
// token was queued (ResultToken), the machine finished (ResultDone), or no
// transition applied at the current character (ResultUnexpected). Mirrors
// yip_next_token's `switch ((*yip->machine)(yip))` dispatch, generalized
// into data instead of one hand-written function per production.
func (m *Machine) Step(p *Parser) (Result, error) {
	for {
		if p.state == doneState {
			return ResultDone, nil
		}
		if p.actionIndex == 0 {
			st := m.States[p.state]
			if !evalGuard(st.Guard, p) {
				return ResultUnexpected, nil
			}
			target, ok := dispatch(st.Transitions, p.eng.Curr().Class)
			if !ok {
				return ResultUnexpected, nil
			}
			p.state = target
		}
		st := m.States[p.state]
		for ; p.actionIndex < len(st.Actions); p.actionIndex++ {
			act := st.Actions[p.actionIndex]
			result, yielded, err := p.execute(act)
			if err != nil {
				return ResultUnexpected, err
			}
			if yielded {
				p.actionIndex++
				return result, nil
			}
			if p.state == doneState {
				p.actionIndex = 0
				return ResultDone, nil
			}
		}
		p.actionIndex = 0
	}
}

// execute runs one action. yielded reports whether the caller of Step
// must return now (a token was queued); result is meaningful whenever
// yielded is true, or when the action is a terminal (SUCCESS/FAILURE).
func (p *Parser) execute(act Action) (result Result, yielded bool, err error) {
	switch act.Op {
	case OpSuccess:
		p.state = doneState
		p.cleanFinish = true
		return ResultDone, false, nil
	case OpFailure:
		return ResultUnexpected, true, nil
	case OpBeginToken:
		p.beginToken(act.Code)
		return 0, false, nil
	case OpEndToken:
		if p.endToken(act.Code) {
			return ResultToken, true, nil
		}
		return 0, false, nil
	case OpEmptyToken:
		p.emptyToken(act.Code)
		return ResultToken, true, nil
	case OpFakeToken:
		p.fakeToken(act.Code, act.Text)
		return ResultToken, true, nil
	case OpNextChar:
		if err := p.nextChar(); err != nil {
			return 0, false, err
		}
		return 0, false, nil
	case OpPrevChar:
		p.prevChar()
		return 0, false, nil
	case OpNextLine:
		if err := p.nextLine(); err != nil {
			return 0, false, err
		}
		return 0, false, nil
	case OpResetCounter:
		p.i = 0
		return 0, false, nil
	case OpIncrCounter:
		p.i++
		return 0, false, nil
	case OpBeginChoice:
		p.beginChoice(act.Choice)
		return 0, false, nil
	case OpEndChoice:
		p.endChoice(act.Choice)
		return 0, false, nil
	case OpCommit:
		if p.commit(act.Choice) {
			return ResultToken, true, nil
		}
		return 0, false, nil
	case OpPushState:
		p.pushState()
		return 0, false, nil
	case OpSetState:
		p.setState()
		return 0, false, nil
	case OpPopState:
		p.popState()
		return 0, false, nil
	case OpResetState:
		p.resetState()
		return 0, false, nil
	case OpNonPositiveN:
		p.nonPositiveN()
		return ResultToken, true, nil
	case OpScanIndent:
		before := p.tokens.len()
		if err := p.scanIndent(); err != nil {
			return 0, false, err
		}
		if p.tokens.len() > before {
			return ResultToken, true, nil
		}
		return 0, false, nil
	default:
		panic("machine: unknown action opcode")
	}
}
