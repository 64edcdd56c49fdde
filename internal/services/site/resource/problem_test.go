package resource

import "testing"

func TestProblemMessageEnglish(t *testing.T) {
	t.Parallel()

	tests := []struct {
		problem Problem
		want    string
	}{
		{Problem{Code: ProblemTooShort, Label: "Name", Bound: 5}, "Error: Name can't be less than 5 characters long"},
		{Problem{Code: ProblemTooLong, Label: "Description", Bound: 300}, "Error: Description may at most be 300 characters long"},
		{Problem{Code: ProblemNotANumber, Label: "Grade"}, "Error: Grade must be a number"},
		{Problem{Code: ProblemBelowMin, Label: "Grade", Bound: 0}, "Error: Grade can't be less than 0"},
		{Problem{Code: ProblemAboveMax, Label: "Grade", Bound: 10}, "Error: Grade may at most be 10"},
		{UnauthorizedProblem(), "Error: You don't have admin access"},
		{InternalProblem(), "Error: Internal server error"},
	}
	for _, tc := range tests {
		if got := tc.problem.Message(nil); got != tc.want {
			t.Fatalf("Message(%q) = %q, want %q", tc.problem.Code, got, tc.want)
		}
	}
}
