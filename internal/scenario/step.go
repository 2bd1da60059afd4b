package scenario

import (
	"errors"

	"satd/internal/domain"
)

var (
	ErrInvalidScenario = errors.New("invalid scenario")
	ErrExpectation     = errors.New("scenario expectation not met")
	ErrUnknownRef      = errors.New("unknown command reference")
)

// StepKind is the action a step performs on the session
type StepKind uint8

const (
	StepCommand StepKind = iota
	StepConfirm
	StepResult
	StepDisplay
	StepEvent
	StepMenu
	StepLanguage
	StepEndSession
)

func (k StepKind) String() string {
	switch k {
	case StepCommand:
		return "command"
	case StepConfirm:
		return "confirm"
	case StepResult:
		return "result"
	case StepDisplay:
		return "display"
	case StepEvent:
		return "event"
	case StepMenu:
		return "menu"
	case StepLanguage:
		return "language"
	case StepEndSession:
		return "end_session"
	default:
		return "unknown"
	}
}

// Expectation is checked against what a step produced
type Expectation struct {
	// Error is matched with errors.Is; nil expects success
	Error error
	// Result is the general result of the terminal response the step returned
	Result *domain.GeneralResult
	// Sent is whether an event download was sent to the card
	Sent *bool
}

// Step is one compiled scenario action
type Step struct {
	Kind StepKind
	Line int

	// Label names a command step so later steps can reference its id
	Label string
	// Ref is the label of the command an outcome step answers
	Ref string

	Command      domain.ProactiveCommand
	Confirmation domain.Confirmation
	Displayed    bool
	Event        domain.RuntimeEvent
	Expect       Expectation
	Help         bool
	MenuItem     uint8
	Result       domain.ExecutionResult
}

// Scenario is a compiled document ready to run
type Scenario struct {
	Name  string
	Steps []Step
}
