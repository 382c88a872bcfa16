package compiler

// The LOOP trick: this machine only has while-nonzero, so every
// compile-time "if" becomes a cell that is guaranteed nonzero exactly when
// the condition holds, tested with `[...]`, and zeroed inside so the loop
// body runs at most once. The helpers here package that idiom so the
// statement and expression emitters (statements.go, expr.go) don't each
// reinvent it.

// guardNonZero runs then() exactly once iff the value at cell is
// currently non-zero. cell itself is left untouched -- the test is taken
// from a disposable copy in LOOP, not a destructive drain, so callers
// never need a separate restore step. Cursor starts and ends at 0.
func (l *Layout) guardNonZero(cell int, then func()) {
	l.Zero(cellLoop)
	l.Copy(cell, cellLoop)
	l.MoveTo(cellLoop)
	l.Emit("[")
	l.Zero(cellLoop)
	then()
	l.MoveTo(cellLoop)
	l.Emit("]")
	l.Reset()
}

// guardZero is guardNonZero's complement: then() runs exactly once iff
// cell currently holds zero. cell is preserved.
func (l *Layout) guardZero(cell int, then func()) {
	l.testEqual(cell, 0)
	l.guardNonZero(cellLoop, then)
	l.Zero(cellLoop)
}

// drainAdd moves counter's value into target one unit at a time: target
// += counter, counter -> 0. Used wherever a register is being consumed
// rather than just read (the add/twice operator routines in expr.go).
func (l *Layout) drainAdd(counter, target int) {
	l.MoveTo(counter)
	l.Emit("[-")
	l.MoveTo(target)
	l.Emit("+")
	l.MoveTo(counter)
	l.Emit("]")
	l.Reset()
}

// drainSubtract is drainAdd's mirror: target -= counter, counter -> 0.
func (l *Layout) drainSubtract(counter, target int) {
	l.MoveTo(counter)
	l.Emit("[-")
	l.MoveTo(target)
	l.Emit("-")
	l.MoveTo(counter)
	l.Emit("]")
	l.Reset()
}

// computeGE sets out to 1 if value(d) >= value(r), else 0. Both d and r
// are preserved. It works by decrementing a copy of each in lockstep:
// whichever copy empties first tells the tale. TEMP and COPY are used as
// the disposable copies, so neither d nor r may be TEMP, COPY, LOOP or
// TEMP2 -- true of every caller in this package (operands live in RIGHT,
// a left-hand stack cell, or the real register file).
func (l *Layout) computeGE(d, r, out int) {
	dc, rc := cellTemp, cellCopy

	l.Zero(dc)
	l.copyFrom(d, dc)
	l.Zero(rc)
	l.copyFrom(r, rc)

	l.Zero(out)
	l.AddConst(1, out) // optimistic: d >= r until proven otherwise

	l.MoveTo(rc)
	l.Emit("[")
	l.Emit("-")
	l.guardZero(dc, func() {
		l.Zero(out) // rc still had units left when dc ran out: d < r
	})
	l.guardNonZero(dc, func() {
		l.SubConst(1, dc)
	})
	l.MoveTo(rc)
	l.Emit("]")
	l.Reset()

	l.Zero(dc)
	l.Zero(rc)
}
