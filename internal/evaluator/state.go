package evaluator

// State is the input state of an Evaluator.
type State int

const (
	StateIdle State = iota
	StateLeftOperand
	StateOperator
	StateRightOperand
	StateDisplay
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateLeftOperand:
		return "LeftOperand"
	case StateOperator:
		return "Operator"
	case StateRightOperand:
		return "RightOperand"
	case StateDisplay:
		return "Display"
	case StateError:
		return "Error"
	default:
		return "State(?)"
	}
}
