package compiler

import "fmt"

// RosterMissing is raised when the chars/endchars block is absent or empty.
type RosterMissing struct{}

func (RosterMissing) Error() string {
	return "no characters found in input, aborting"
}

// UnknownCharacter is raised when a handler references a name not present
// in the roster established by the chars block.
type UnknownCharacter struct{ Name string }

func (err UnknownCharacter) Error() string {
	return fmt.Sprintf("character does not exist: %v", err.Name)
}

// BadArity is raised when enter_scene_multiple or exit_scene_multiple is
// given a payload of the wrong length.
type BadArity struct {
	Token string
	Want  string
	Got   int
}

func (err BadArity) Error() string {
	return fmt.Sprintf("%v expects %v names, got %v", err.Token, err.Want, err.Got)
}

// UnknownExpression is raised when an expression-position token has no
// registered handler -- either a token outside the reserved set, or one of
// the reserved-but-unimplemented operators (mod, sqrt, factorial).
type UnknownExpression struct{ Token string }

func (err UnknownExpression) Error() string {
	return fmt.Sprintf("no expression handler for token: %v", err.Token)
}

// DivideByZeroConstant is raised when div's right operand is the constant
// literal 0, which would otherwise compile to a TAPE program that loops
// forever the first time it runs (see DESIGN.md).
type DivideByZeroConstant struct{}

func (DivideByZeroConstant) Error() string {
	return "div by constant-zero right operand would never terminate"
}

// MalformedBracket is raised when a bracketed construct's closing token is
// missing or mismatched.
type MalformedBracket struct{ Open, Close string }

func (err MalformedBracket) Error() string {
	return fmt.Sprintf("malformed %v/%v block", err.Open, err.Close)
}

// DepthExceeded is raised when binary expression nesting exceeds the
// left-hand arena's configured bound -- see Layout.stackLeft.
type DepthExceeded struct{ Max int }

func (err DepthExceeded) Error() string {
	return fmt.Sprintf("binary expression nesting exceeds the compiled-in bound of %v", err.Max)
}
