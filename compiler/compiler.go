package compiler

import (
	"github.com/mjdarby/nspl2tape/internal/panicerr"
	"github.com/mjdarby/nspl2tape/internal/tidy"
)

// compilation carries the state threaded through a single Compile call.
// It is a thin wrapper around Layout today; handlers and the expression
// evaluator take *compilation rather than *Layout directly so that
// future per-run bookkeeping (a token-position stack for error
// messages, say) has somewhere to live without changing every
// handler's signature.
type compilation struct {
	layout *Layout
}

// Compile translates a flat, pre-tokenized NSPL program into TAPE
// source. Expected compile failures -- an empty roster, an unresolvable
// name, a malformed bracket, an unimplemented expression operator --
// come back as plain typed errors from dispatch: this compiler is a
// single side-effect-free pass over a token slice, so threading
// (int, error) back up through recursion is the natural, idiomatic
// shape and needs no panic of its own. panicerr.Recover is still
// wrapped around the whole pass, recovering once at this single API
// boundary, but here purely as a backstop against a genuine bug -- a
// bad slice index, a nil pointer -- turning into a crash instead of a
// reported error.
func Compile(tokens []string) (string, error) {
	c := &compilation{layout: NewLayout()}
	var code string

	err := panicerr.Recover(func() error {
		err := dispatch(c, tokens, statementHandlers())
		if err != nil {
			return err
		}
		code = tidy.Tidy(c.layout.Code())
		return nil
	})
	if err != nil {
		return "", err
	}
	return code, nil
}
