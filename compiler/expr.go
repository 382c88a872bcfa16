package compiler

import "strconv"

// evalExpr recursively evaluates the expression rooted at tokens[idx],
// emitting code that leaves its value in target (which the caller has
// already zeroed), and returns the index of the token just past it --
// past the matching end_* token, for every bracketed form. There is no
// intermediate AST: each handler below both emits and reports its own
// extent.
func evalExpr(c *compilation, tokens []string, idx int, target int) (int, error) {
	if idx >= len(tokens) {
		return idx, UnknownExpression{Token: "<end of input>"}
	}
	switch tokens[idx] {
	case "add":
		return evalBinary(c, tokens, idx, target, "end_add", opAdd)
	case "sub":
		return evalBinary(c, tokens, idx, target, "end_sub", opSub)
	case "mul":
		return evalBinary(c, tokens, idx, target, "end_mul", opMul)
	case "div":
		return evalDiv(c, tokens, idx, target)
	case "mod":
		// The reference implementation never finished mod; rather than
		// silently emit nothing for it, refuse to compile it at all.
		return idx, UnknownExpression{Token: "mod"}
	case "cube":
		return evalUnary(c, tokens, idx, target, "end_cube", opCube)
	case "square":
		return evalUnary(c, tokens, idx, target, "end_square", opSquare)
	case "twice":
		return evalUnary(c, tokens, idx, target, "end_twice", opTwice)
	case "sqrt":
		return idx, UnknownExpression{Token: "sqrt"}
	case "factorial":
		return idx, UnknownExpression{Token: "factorial"}
	case "const":
		return evalConst(c, tokens, idx, target)
	case "value_of":
		return evalValueOf(c, tokens, idx, target)
	default:
		return idx, UnknownExpression{Token: tokens[idx]}
	}
}

// evalBinary handles the add/sub/mul shape: operator, left child, right
// child, matching close token. Each binary node gets its own left-hand
// scratch cell from the depth-indexed arena so that nested binaries don't
// clobber each other's partial results.
func evalBinary(c *compilation, tokens []string, idx int, target int, closeTok string, op func(l *Layout, left, right, target int)) (int, error) {
	l := c.layout
	leftOffset, err := l.enterBinary()
	if err != nil {
		return idx, err
	}
	defer l.exitBinary()

	next, err := evalExpr(c, tokens, idx+1, leftOffset)
	if err != nil {
		return idx, err
	}

	l.Zero(cellRight)
	next, err = evalExpr(c, tokens, next, cellRight)
	if err != nil {
		return idx, err
	}

	if next >= len(tokens) || tokens[next] != closeTok {
		return idx, MalformedBracket{Open: tokens[idx], Close: closeTok}
	}
	op(l, leftOffset, cellRight, target)
	return next + 1, nil
}

// evalDiv is evalBinary's cousin: same shape, but it additionally rejects
// a literal constant-zero divisor at compile time (see
// DivideByZeroConstant and DESIGN.md) and calls opDiv directly since
// division needs both operands' cells kept live across a multi-pass
// routine rather than a single operator call.
func evalDiv(c *compilation, tokens []string, idx int, target int) (int, error) {
	l := c.layout
	leftOffset, err := l.enterBinary()
	if err != nil {
		return idx, err
	}
	defer l.exitBinary()

	next, err := evalExpr(c, tokens, idx+1, leftOffset)
	if err != nil {
		return idx, err
	}

	if next+1 < len(tokens) && tokens[next] == "const" && tokens[next+1] == "0" {
		return idx, DivideByZeroConstant{}
	}

	l.Zero(cellRight)
	next, err = evalExpr(c, tokens, next, cellRight)
	if err != nil {
		return idx, err
	}

	if next >= len(tokens) || tokens[next] != "end_div" {
		return idx, MalformedBracket{Open: "div", Close: "end_div"}
	}
	opDiv(l, leftOffset, cellRight, target)
	return next + 1, nil
}

// evalUnary handles cube/square/twice (and the rejected sqrt/factorial,
// which never reach here): operator, single child, matching close token.
// The child is evaluated into RIGHT, which the operator routine is then
// free to consume.
func evalUnary(c *compilation, tokens []string, idx int, target int, closeTok string, op func(l *Layout, operand, target int)) (int, error) {
	l := c.layout
	l.Zero(cellRight)
	next, err := evalExpr(c, tokens, idx+1, cellRight)
	if err != nil {
		return idx, err
	}
	if next >= len(tokens) || tokens[next] != closeTok {
		return idx, MalformedBracket{Open: tokens[idx], Close: closeTok}
	}
	op(l, cellRight, target)
	return next + 1, nil
}

// evalConst handles the `const <signed integer>` terminal: two tokens,
// no close. target is assumed already zero.
func evalConst(c *compilation, tokens []string, idx int, target int) (int, error) {
	if idx+1 >= len(tokens) {
		return idx, UnknownExpression{Token: "const"}
	}
	n, err := strconv.Atoi(tokens[idx+1])
	if err != nil {
		return idx, UnknownExpression{Token: "const " + tokens[idx+1]}
	}
	l := c.layout
	if n >= 0 {
		l.AddConst(n%256, target)
	} else {
		l.SubConst((-n)%256, target)
	}
	return idx + 2, nil
}

// evalValueOf handles `value_of <first_person|second_person|name>`: two
// tokens, no close. first_person/second_person read the runtime-indexed
// ACTIVE/SEC cells; anything else must already be a declared character.
func evalValueOf(c *compilation, tokens []string, idx int, target int) (int, error) {
	if idx+1 >= len(tokens) {
		return idx, UnknownExpression{Token: "value_of"}
	}
	l := c.layout
	switch name := tokens[idx+1]; name {
	case "first_person":
		l.copyFromActive(target)
	case "second_person":
		l.copyFromSecond(target)
	default:
		offset, err := l.resolveChar(name)
		if err != nil {
			return idx, err
		}
		l.copyFrom(offset, target)
	}
	return idx + 2, nil
}

// --- operator routines ---

// opAdd: drain RIGHT into LEFT, then copy LEFT into target.
func opAdd(l *Layout, left, right, target int) {
	l.drainAdd(right, left)
	l.Copy(left, target)
}

// opSub: drain RIGHT out of LEFT, then copy LEFT into target.
func opSub(l *Layout, left, right, target int) {
	l.drainSubtract(right, left)
	l.Copy(left, target)
}

// opMul: while RIGHT > 0, decrement RIGHT and copy LEFT into target --
// accumulates left*right into target.
func opMul(l *Layout, left, right, target int) {
	l.MoveTo(right)
	l.Emit("[-")
	l.Copy(left, target)
	l.MoveTo(right)
	l.Emit("]")
	l.Reset()
}

// opSquare: TEMP accumulates operand*operand by using a disposable copy
// of operand (held in LOOP) as the countdown, copying operand into TEMP
// once per unit. operand is preserved.
func opSquare(l *Layout, operand, target int) {
	l.Zero(cellTemp)
	l.Zero(cellLoop)
	l.copyFrom(operand, cellLoop)
	l.MoveTo(cellLoop)
	l.Emit("[-")
	l.Copy(operand, cellTemp)
	l.MoveTo(cellLoop)
	l.Emit("]")
	l.Reset()
	l.Copy(cellTemp, target)
	l.Zero(cellTemp)
}

// opCube: operand^3 = operand^2 * operand, composed from opSquare and
// opMul through RETRIEVE and TEMP. Consumes operand.
func opCube(l *Layout, operand, target int) {
	l.Zero(cellTemp)
	opSquare(l, operand, cellTemp)
	l.Zero(cellRetrieve)
	l.copyFrom(cellTemp, cellRetrieve)
	l.Zero(cellTemp)
	opMul(l, cellRetrieve, operand, cellTemp)
	l.Copy(cellTemp, target)
	l.Zero(cellTemp)
	l.Zero(cellRetrieve)
}

// opTwice: drain operand into TEMP at rate 2, then copy TEMP into target.
func opTwice(l *Layout, operand, target int) {
	l.Zero(cellTemp)
	l.MoveTo(operand)
	l.Emit("[-")
	l.MoveTo(cellTemp)
	l.Emit("++")
	l.MoveTo(operand)
	l.Emit("]")
	l.Reset()
	l.Copy(cellTemp, target)
	l.Zero(cellTemp)
}

// opDiv: target := floor(left/right), by repeated conditional
// subtraction. computeGE recomputes the continuation test each pass
// (left itself is destructively reduced to the remainder; right is
// preserved throughout since later passes need it again). A
// constant-zero right operand is rejected earlier, at compile time, by
// evalDiv -- a runtime-zero divisor is undefined behaviour, same as the
// reference (see DESIGN.md).
func opDiv(l *Layout, left, right, target int) {
	l.Zero(target)
	l.computeGE(left, right, cellRetrieve)
	l.MoveTo(cellRetrieve)
	l.Emit("[")
	l.Zero(cellCopy)
	l.copyFrom(right, cellCopy)
	l.drainSubtract(cellCopy, left)
	l.AddConst(1, target)
	l.computeGE(left, right, cellRetrieve)
	l.MoveTo(cellRetrieve)
	l.Emit("]")
	l.Reset()
	l.Zero(cellRetrieve)
}
