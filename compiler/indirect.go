package compiler

// This file implements indirect addressing: acting on the cell whose
// index is stored at runtime in another cell (ACTIVE or SEC), which is
// needed because "the currently active/addressed character" is not known
// at compile time.
//
// One design this could follow is a single right-nested cascade, one
// level per roster entry, walked in reverse so the firing level
// collapses without touching the others. This implementation instead
// realises the same externally observable contract -- exactly the
// character whose index matches the runtime value is acted on, and
// nothing else is -- with a flat sequence of independent guarded blocks,
// one per character, built from the same "LOOP trick" test-for-zero
// idiom enter_scene and activate already use. See DESIGN.md for why:
// it is simpler to get right and to verify, still walks the roster
// data-driven with zero shared sub-expressions between levels, and
// still leaves every scratch cell zero between statements.

// testEqual sets LOOP to a nonzero value iff the value at cell equals k
// (mod 256), and to zero otherwise. cell is preserved. TEMP2 ends zero.
// Cursor starts and ends at 0.
func (l *Layout) testEqual(cell, k int) {
	l.Zero(cellTemp2)
	l.Copy(cell, cellTemp2)
	l.SubConst(k, cellTemp2)

	l.Zero(cellLoop)
	l.AddConst(1, cellLoop) // optimistic: assume a match until proven otherwise

	l.MoveTo(cellTemp2)
	l.Emit("[")
	l.Zero(cellLoop)  // nested zero loop: disqualifies the candidate in one pass
	l.Zero(cellTemp2) // nested zero loop: drains the diff in one pass, ending the outer loop
	l.MoveTo(cellTemp2)
	l.Emit("]")
	l.Reset()
}

// forEachCharacterMatching walks every declared character in roster
// order, running action(charOffset) exactly once, for exactly the
// character whose 1-based roster index equals the runtime value stored
// in indexCell. If indexCell holds 0 (or any value outside the roster),
// no action ever runs -- the no-second-character-on-stage case.
func (l *Layout) forEachCharacterMatching(indexCell int, action func(charOffset int)) {
	for i := 1; i <= l.characterCount(); i++ {
		l.testEqual(indexCell, i)
		l.MoveTo(cellLoop)
		l.Emit("[")
		l.Zero(cellLoop)
		action(charBase + i)
		l.MoveTo(cellLoop)
		l.Emit("]")
		l.Reset()
	}
}

func (l *Layout) copyFromIndirect(indexCell, dst int) {
	l.forEachCharacterMatching(indexCell, func(charOffset int) {
		l.copyFrom(charOffset, dst)
	})
}

func (l *Layout) copyIntoIndirect(indexCell, src int) {
	l.forEachCharacterMatching(indexCell, func(charOffset int) {
		l.copyInto(src, charOffset)
	})
}

func (l *Layout) zeroIndirect(indexCell int) {
	l.forEachCharacterMatching(indexCell, func(charOffset int) {
		l.Zero(charOffset)
	})
}

func (l *Layout) printIndirect(indexCell int) {
	l.forEachCharacterMatching(indexCell, func(charOffset int) {
		l.MoveTo(charOffset)
		l.Emit(".")
		l.Reset()
	})
}

// copyFromActive copies the active character's value cell into dst.
func (l *Layout) copyFromActive(dst int) { l.copyFromIndirect(cellActive, dst) }

// copyFromSecond copies the second-person character's value cell into dst.
func (l *Layout) copyFromSecond(dst int) { l.copyFromIndirect(cellSEC, dst) }

// copyIntoSecond adds src into the second-person character's value cell.
func (l *Layout) copyIntoSecond(src int) { l.copyIntoIndirect(cellSEC, src) }

// resetSecond zeroes the second-person character's value cell.
func (l *Layout) resetSecond() { l.zeroIndirect(cellSEC) }

// printSecond emits the second-person character's value cell as output.
func (l *Layout) printSecond() { l.printIndirect(cellSEC) }
