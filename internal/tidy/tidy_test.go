package tidy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Tidy_collapsesAdjacentMoves(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"pure cancel", ">>><<<", ""},
		{"net right", ">>>><", ">>>"},
		{"net left", ">>><<<<", "<"},
		{"already tidy", ">>>", ">>>"},
		{"interleaved with other ops", "+>>><<<-", "+-"},
		{"no moves", "+-.,#", "+-.,#"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Tidy(tc.in))
		})
	}
}

// ">>" and "<<" would fully cancel to nothing if the tidier merged
// across the bracket in between; since it must not, the input is left
// untouched.
func Test_Tidy_neverCrossesBracketBoundaries(t *testing.T) {
	assert.Equal(t, ">>[x]<<", Tidy(">>[x]<<"))
}

func Test_Tidy_isAFixpoint(t *testing.T) {
	inputs := []string{
		">>><<<+++<<>>.",
		"[>>><<[<>]<<>>]",
		"++++[>++++<-]>.",
		"",
		">>>>",
	}
	for _, in := range inputs {
		once := Tidy(in)
		twice := Tidy(once)
		assert.Equal(t, once, twice, "not idempotent for %q", in)
	}
}
