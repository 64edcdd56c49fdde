package resource

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Validate checks values against every field of kind, in declaration order.
// Each field contributes at most one problem.
func Validate(kind *Kind, values Values) []Problem {
	var problems []Problem
	for _, field := range kind.Fields {
		if problem, ok := field.check(values.Get(field.Name)); ok {
			problems = append(problems, problem)
		}
	}
	return problems
}

func (f Field) check(raw string) (Problem, bool) {
	problem := Problem{Field: f.Name, Label: f.Label, Value: raw}
	switch f.Type {
	case FieldInteger:
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		switch {
		case err != nil:
			problem.Code = ProblemNotANumber
		case n < f.Min:
			problem.Code, problem.Bound = ProblemBelowMin, f.Min
		case n > f.Max:
			problem.Code, problem.Bound = ProblemAboveMax, f.Max
		default:
			return Problem{}, false
		}
	default:
		length := utf8.RuneCountInString(raw)
		switch {
		case length < f.Min:
			problem.Code, problem.Bound = ProblemTooShort, f.Min
		case length > f.Max:
			problem.Code, problem.Bound = ProblemTooLong, f.Max
		default:
			return Problem{}, false
		}
	}
	return problem, true
}
