package resource

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ProblemCode classifies a Problem.
type ProblemCode string

const (
	ProblemTooShort     ProblemCode = "too_short"
	ProblemTooLong      ProblemCode = "too_long"
	ProblemNotANumber   ProblemCode = "not_a_number"
	ProblemBelowMin     ProblemCode = "below_min"
	ProblemAboveMax     ProblemCode = "above_max"
	ProblemUnauthorized ProblemCode = "unauthorized"
	ProblemInternal     ProblemCode = "internal"
)

// Catalog keys for problem messages. The keys double as English text.
const (
	MsgTooShort     = "Error: %s can't be less than %d characters long"
	MsgTooLong      = "Error: %s may at most be %d characters long"
	MsgNotANumber   = "Error: %s must be a number"
	MsgBelowMin     = "Error: %s can't be less than %d"
	MsgAboveMax     = "Error: %s may at most be %d"
	MsgUnauthorized = "Error: You don't have admin access"
	MsgInternal     = "Error: Internal server error"
)

// Problem is one user-visible complaint about a submission.
type Problem struct {
	Code ProblemCode
	// Field is the field name; empty for request-level problems.
	Field string
	// Label is the catalog key of the field label.
	Label string
	Value string
	Bound int
}

// UnauthorizedProblem reports a submit without an admin session.
func UnauthorizedProblem() Problem {
	return Problem{Code: ProblemUnauthorized}
}

// InternalProblem reports a store failure during a submit.
func InternalProblem() Problem {
	return Problem{Code: ProblemInternal}
}

var englishPrinter = message.NewPrinter(language.English)

// Message renders the problem through p. A nil printer renders English.
func (pr Problem) Message(p *message.Printer) string {
	if p == nil {
		p = englishPrinter
	}
	label := pr.Label
	if label != "" {
		label = p.Sprintf(label)
	}
	switch pr.Code {
	case ProblemTooShort:
		return p.Sprintf(MsgTooShort, label, pr.Bound)
	case ProblemTooLong:
		return p.Sprintf(MsgTooLong, label, pr.Bound)
	case ProblemNotANumber:
		return p.Sprintf(MsgNotANumber, label)
	case ProblemBelowMin:
		return p.Sprintf(MsgBelowMin, label, pr.Bound)
	case ProblemAboveMax:
		return p.Sprintf(MsgAboveMax, label, pr.Bound)
	case ProblemUnauthorized:
		return p.Sprintf(MsgUnauthorized)
	default:
		return p.Sprintf(MsgInternal)
	}
}

// Messages renders every problem in order.
func Messages(problems []Problem, p *message.Printer) []string {
	out := make([]string, 0, len(problems))
	for _, problem := range problems {
		out = append(out, problem.Message(p))
	}
	return out
}
