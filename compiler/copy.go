package compiler

// Copy implements the standard decrement-and-distribute idiom: it adds
// src's value into dst while leaving src unchanged, using the COPY cell
// as a shuttle. Precondition: COPY is zero (Copy defensively zeroes it
// anyway). Postcondition: src unchanged, dst += original src, COPY
// zero, cursor 0.
func (l *Layout) Copy(src, dst int) {
	l.Zero(cellCopy)

	l.MoveTo(src)
	l.Emit("[-")
	l.MoveTo(dst)
	l.Emit("+")
	l.MoveTo(cellCopy)
	l.Emit("+")
	l.MoveTo(src)
	l.Emit("]")
	l.Reset()

	l.MoveTo(cellCopy)
	l.Emit("[-")
	l.MoveTo(src)
	l.Emit("+")
	l.MoveTo(cellCopy)
	l.Emit("]")
	l.Reset()
}

// copyInto and copyFrom are the same non-destructive copy as Copy; both
// names exist because the indirect routines in indirect.go thread a
// direction parameter and read better calling copyInto(value, char) or
// copyFrom(char, value) depending on which side is the runtime-indexed
// one.
func (l *Layout) copyInto(src, dst int) { l.Copy(src, dst) }
func (l *Layout) copyFrom(src, dst int) { l.Copy(src, dst) }
