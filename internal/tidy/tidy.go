// Package tidy implements a peephole pass: it
// collapses adjacent, opposite-direction pointer moves into their net
// difference. A compiler that always returns to offset 0 between
// emitted statements (see compiler.Layout) produces long runs of
// `>`/`<` that cancel; a generated `.....>>><<....` pointer dance is
// functionally identical to `.....>....` and considerably shorter.
package tidy

import "strings"

// Tidy collapses every maximal run of `>`/`<` characters to its net
// displacement, one run at a time. Runs are never allowed to cross a
// `[` or `]` boundary -- collapsing through a loop bracket would change
// which cell the loop tests, not just how verbosely the move to it was
// spelled, so each segment between brackets is tidied independently.
// Every non-move, non-bracket byte (`+`, `-`, `.`, `,`, `#`) is a hard
// stop too, purely so a single pass already reaches the fixed point: a
// run is computed and emitted as one instruction block, so there is
// never a leftover `>` adjacent to a `<` for a second pass to find.
func Tidy(code string) string {
	var out strings.Builder
	start := 0
	for i := 0; i < len(code); i++ {
		switch code[i] {
		case '[', ']':
			out.WriteString(collapseMoves(code[start:i]))
			out.WriteByte(code[i])
			start = i + 1
		}
	}
	out.WriteString(collapseMoves(code[start:]))
	return out.String()
}

// collapseMoves tidies a bracket-free segment in a single left-to-right
// pass: each maximal run of `>`/`<` is replaced by the run of whichever
// direction has the larger count, repeated net times.
func collapseMoves(segment string) string {
	var out strings.Builder
	i := 0
	for i < len(segment) {
		c := segment[i]
		if c != '>' && c != '<' {
			out.WriteByte(c)
			i++
			continue
		}
		balance := 0
		j := i
		for j < len(segment) && (segment[j] == '>' || segment[j] == '<') {
			if segment[j] == '>' {
				balance++
			} else {
				balance--
			}
			j++
		}
		switch {
		case balance > 0:
			out.WriteString(strings.Repeat(">", balance))
		case balance < 0:
			out.WriteString(strings.Repeat("<", -balance))
		}
		i = j
	}
	return out.String()
}
