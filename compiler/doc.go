/* Package compiler: NSPL -- almost Brainfuck

NSPL is a pre-tokenised, normalised form of a Shakespeare-style stage-play
language: a flat sequence of comma-separated atoms produced by an upstream
lexer this package never sees. TAPE is the compilation target, an
eight-instruction machine -- `>`, `<`, `+`, `-`, `[`, `]`, `.`, `,`, plus an
optional `#` debug marker -- operating on a linear array of unsigned byte
cells and a single movable data pointer.

This package is the back end: given a token sequence, it produces a
deterministic TAPE program implementing the source semantics. There is no
parser in the conventional sense and no AST -- the dispatcher in tokens.go
walks the flat token sequence directly, handing each recognised atom to a
handler that knows how many tokens it consumes.

Section 1: see layout.go for the memory model every emitted instruction
sequence is built against -- a fixed set of scalar "registers" plus one
cell per declared character.

Section 2: see copy.go and indirect.go for the arithmetic-free vocabulary
(copy, add, subtract) that every higher construct is built from, and for
the indirect-addressing trick that lets generated code act on "whichever
character is currently second person" without knowing at compile time
which character that is.

Section 3: see statements.go and expr.go for the per-token handlers and
the recursive expression evaluator built on top of that vocabulary.

By convention in this package, every exported emitter leaves the Layout's
logical cursor at offset 0 both on entry and on return -- see Layout.MoveTo.
*/
package compiler
