package compiler

import "strings"

// Fixed register offsets. These never move once compilation starts;
// only the character cells (from charBase on) depend on the roster.
const (
	cellCopy     = 0 // scratch for non-destructive copy
	cellResult   = 1 // expression/decision result
	cellLoop     = 2 // loop-counter scratch
	cellRetrieve = 3 // indirect-address walker
	cellTemp     = 4 // scratch for unary ops
	cellTemp2    = 5 // reserved scratch
	cellRight    = 6 // right-hand operand of binary ops
	cellOS1      = 7 // on-stage slot 1
	cellOS2      = 8 // on-stage slot 2
	cellActive   = 9 // active character's 1-based index
	cellSEC      = 10 // second-person character's 1-based index
	charBase     = 11 // first per-character cell

	// leftName seeds roster slot 0: a synthetic, non-user character whose
	// cell doubles as the depth-0 left-hand scratch cell.
	leftName = "left"

	// maxDepth bounds the left-hand arena: nested binary/unary expressions
	// each need their own scratch cell for the lexical recursion depth
	// they're evaluated at. NSPL expression trees in practice nest a
	// handful of levels deep; 32 is generous headroom while keeping the
	// required tape size (11 + R*(1+maxDepth)) modest.
	maxDepth = 32
)

// Layout owns the register assignments, the roster of declared character
// names, and the accumulated TAPE output. It tracks a logical cursor that
// mirrors the real data pointer's position so that every public emitter
// can compute the `>`/`<` run needed to reach any offset from wherever the
// pointer currently sits, and so that MoveTo/Reset calls compose freely
// across nested helper calls -- see doc.go.
type Layout struct {
	out      strings.Builder
	cursor   int
	roster   []string
	index    map[string]int
	depth    int
	maxDepth int
}

// NewLayout returns a Layout with only the synthetic "left" roster slot
// populated; real characters are added by the chars/endchars handler.
func NewLayout() *Layout {
	l := &Layout{
		roster:   []string{leftName},
		index:    map[string]int{leftName: 0},
		maxDepth: maxDepth,
	}
	return l
}

// Emit appends raw TAPE text without moving the logical cursor. Used for
// the instructions that don't move the pointer: `+`, `-`, `[`, `]`, `.`,
// `#`.
func (l *Layout) Emit(s string) { l.out.WriteString(s) }

// MoveTo emits the `>`/`<` run needed to go from the current cursor to
// offset, and updates the cursor to match.
func (l *Layout) MoveTo(offset int) {
	if d := offset - l.cursor; d > 0 {
		l.out.WriteString(strings.Repeat(">", d))
	} else if d < 0 {
		l.out.WriteString(strings.Repeat("<", -d))
	}
	l.cursor = offset
}

// Reset returns the logical cursor to 0, the state every public emitter
// must leave it in.
func (l *Layout) Reset() { l.MoveTo(0) }

// Zero clears the cell at offset.
func (l *Layout) Zero(offset int) {
	l.MoveTo(offset)
	l.Emit("[-]")
	l.Reset()
}

// AddConst emits n plus signs at offset. n must be non-negative -- a
// negative NSPL literal is handled by the const terminal flipping to
// SubConst, see expr.go.
func (l *Layout) AddConst(n, offset int) {
	l.MoveTo(offset)
	l.Emit(strings.Repeat("+", n))
	l.Reset()
}

// SubConst is the mirror of AddConst.
func (l *Layout) SubConst(n, offset int) {
	l.MoveTo(offset)
	l.Emit(strings.Repeat("-", n))
	l.Reset()
}

// addCharacter appends a declared character name to the roster. Returns an
// error if the name collides with the reserved synthetic "left" name.
func (l *Layout) addCharacter(name string) error {
	if name == leftName {
		return UnknownCharacter{Name: name}
	}
	if _, exists := l.index[name]; exists {
		return nil
	}
	l.index[name] = len(l.roster)
	l.roster = append(l.roster, name)
	return nil
}

// characterIndex returns a declared character's 1-based roster index --
// the same value that ends up stored at runtime in OS1/OS2/ACTIVE/SEC.
// The synthetic "left" name is never a valid reference.
func (l *Layout) characterIndex(name string) (int, error) {
	if name == leftName {
		return 0, UnknownCharacter{Name: name}
	}
	idx, ok := l.index[name]
	if !ok {
		return 0, UnknownCharacter{Name: name}
	}
	return idx, nil
}

// resolveChar returns the offset of a declared character's value cell.
func (l *Layout) resolveChar(name string) (int, error) {
	idx, err := l.characterIndex(name)
	if err != nil {
		return 0, err
	}
	return charBase + idx, nil
}

// characterCount returns the number of real (non-synthetic) characters.
func (l *Layout) characterCount() int { return len(l.roster) - 1 }

// rosterSize is the full roster size, including the synthetic "left"
// slot.
func (l *Layout) rosterSize() int { return len(l.roster) }

// enterBinary reserves this nesting depth's left-hand cell, zeroes it, and
// returns its offset. Callers must pair every enterBinary with an
// exitBinary.
func (l *Layout) enterBinary() (leftOffset int, err error) {
	if l.depth >= l.maxDepth {
		return 0, DepthExceeded{Max: l.maxDepth}
	}
	leftOffset = l.stackLeft(l.depth)
	l.depth++
	l.Zero(leftOffset)
	return leftOffset, nil
}

func (l *Layout) exitBinary() { l.depth-- }

// stackLeft returns the offset of the depth-th left-hand scratch cell.
// Depth 0 reuses CHAR[0], the synthetic "left" roster slot's cell; each
// deeper level reserves a fresh stride of rosterSize()+1 cells beyond the
// character array.
func (l *Layout) stackLeft(depth int) int {
	return charBase + depth*(l.rosterSize()+1)
}

// Code returns the accumulated TAPE text emitted so far.
func (l *Layout) Code() string { return l.out.String() }
