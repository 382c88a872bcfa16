package compiler

// This file holds the per-token statement handlers described in spec
// §4.5. Every handler has the shape tokens.go's handler type requires:
// it looks at tokens starting at idx, emits code through c.layout, and
// reports how many tokens it consumed.

func handleChars(c *compilation, tokens []string, idx int) (int, error) {
	payload, ok := extractBracket(tokens, idx, "chars", "endchars")
	if !ok {
		return 0, MalformedBracket{Open: "chars", Close: "endchars"}
	}
	if len(payload) == 0 {
		return 0, RosterMissing{}
	}
	for _, name := range payload {
		if err := c.layout.addCharacter(name); err != nil {
			return 0, err
		}
	}
	return 2 + len(payload), nil
}

func handleEnterSceneMultiple(c *compilation, tokens []string, idx int) (int, error) {
	payload, ok := extractBracket(tokens, idx, "enter_scene_multiple", "end_enter_scene_multiple")
	if !ok {
		return 0, MalformedBracket{Open: "enter_scene_multiple", Close: "end_enter_scene_multiple"}
	}
	if len(payload) != 2 {
		return 0, BadArity{Token: "enter_scene_multiple", Want: "exactly 2", Got: len(payload)}
	}
	l := c.layout
	i0, err := l.characterIndex(payload[0])
	if err != nil {
		return 0, err
	}
	i1, err := l.characterIndex(payload[1])
	if err != nil {
		return 0, err
	}
	l.Zero(cellOS1)
	l.AddConst(i0, cellOS1)
	l.Zero(cellOS2)
	l.AddConst(i1, cellOS2)
	return 2 + len(payload), nil
}

func handleExitSceneMultiple(c *compilation, tokens []string, idx int) (int, error) {
	payload, ok := extractBracket(tokens, idx, "exit_scene_multiple", "end_exit_scene_multiple")
	if !ok {
		return 0, MalformedBracket{Open: "exit_scene_multiple", Close: "end_exit_scene_multiple"}
	}
	if len(payload) != 0 && len(payload) != 2 {
		return 0, BadArity{Token: "exit_scene_multiple", Want: "0 or 2", Got: len(payload)}
	}
	l := c.layout
	l.Zero(cellOS1)
	l.Zero(cellOS2)
	return 2 + len(payload), nil
}

// handleEnterScene inserts N into whichever of OS1/OS2 is currently
// empty, with no compile-time knowledge of which -- the choice is made
// at runtime. RESULT starts optimistic ("OS1 is the empty slot"); the
// guard flips it if OS1 turns out occupied. COPY is reused as a one-shot
// "not yet written" flag so exactly one of OS1/OS2 gets N.
func handleEnterScene(c *compilation, tokens []string, idx int) (int, error) {
	if idx+1 >= len(tokens) {
		return 0, MalformedBracket{Open: "enter_scene", Close: "<name>"}
	}
	name := tokens[idx+1]
	l := c.layout
	n, err := l.characterIndex(name)
	if err != nil {
		return 0, err
	}

	l.Zero(cellResult)
	l.AddConst(1, cellResult)
	l.guardNonZero(cellOS1, func() { l.Zero(cellResult) })

	l.Zero(cellCopy)
	l.AddConst(1, cellCopy)
	l.guardNonZero(cellResult, func() {
		l.AddConst(n, cellOS1)
		l.Zero(cellCopy)
	})
	l.guardNonZero(cellCopy, func() {
		l.AddConst(n, cellOS2)
	})
	l.Zero(cellCopy)
	l.Zero(cellResult)
	return 2, nil
}

// handleExitScene removes N from OS1; if that leaves OS1 non-zero (N
// wasn't there), the subtraction is undone and retried against OS2.
func handleExitScene(c *compilation, tokens []string, idx int) (int, error) {
	if idx+1 >= len(tokens) {
		return 0, MalformedBracket{Open: "exit_scene", Close: "<name>"}
	}
	name := tokens[idx+1]
	l := c.layout
	n, err := l.characterIndex(name)
	if err != nil {
		return 0, err
	}

	l.SubConst(n, cellOS1)
	l.guardNonZero(cellOS1, func() {
		l.AddConst(n, cellOS1)
		l.SubConst(n, cellOS2)
	})
	return 2, nil
}

// handleActivate computes ACTIVE := N and SEC := the other on-stage
// character's index. Because the guard primitives here test cells
// non-destructively (control.go), no shuttle-and-restore step is needed
// around the comparisons below -- see DESIGN.md.
func handleActivate(c *compilation, tokens []string, idx int) (int, error) {
	if idx+1 >= len(tokens) {
		return 0, MalformedBracket{Open: "activate", Close: "<name>"}
	}
	name := tokens[idx+1]
	l := c.layout
	n, err := l.characterIndex(name)
	if err != nil {
		return 0, err
	}

	l.Zero(cellResult)
	l.Zero(cellActive)
	l.AddConst(n, cellResult)
	l.AddConst(n, cellActive)

	// RESULT := OS2 - RESULT, OS2 preserved.
	l.Zero(cellTemp)
	l.copyFrom(cellOS2, cellTemp)
	l.drainSubtract(cellResult, cellTemp)
	l.Zero(cellResult)
	l.copyFrom(cellTemp, cellResult)
	l.Zero(cellTemp)

	// SEC := (RESULT != 0), i.e. OS2 != N.
	l.Zero(cellSEC)
	l.guardNonZero(cellResult, func() { l.AddConst(1, cellSEC) })
	l.Zero(cellResult)

	// If OS2 != N, the other character is OS2.
	l.guardNonZero(cellSEC, func() { l.copyFrom(cellOS2, cellResult) })

	l.SubConst(1, cellSEC)

	// If that decrement left SEC non-zero, OS2 == N after all, so the
	// other character is OS1.
	l.guardNonZero(cellSEC, func() {
		l.Zero(cellSEC)
		l.copyFrom(cellOS1, cellSEC)
	})

	l.copyFrom(cellResult, cellSEC)
	l.Zero(cellResult)
	return 2, nil
}

func handleOutput(c *compilation, tokens []string, idx int) (int, error) {
	c.layout.printSecond()
	return 1, nil
}

func handleBreak(c *compilation, tokens []string, idx int) (int, error) {
	c.layout.Emit("#")
	return 1, nil
}

// handleAssign evaluates the enclosed expression into RESULT, then
// writes RESULT into the second-person character's cell (clearing it
// first, since the expression's value replaces whatever was there).
func handleAssign(c *compilation, tokens []string, idx int) (int, error) {
	payload, ok := extractBracket(tokens, idx, "assign", "end_assign")
	if !ok {
		return 0, MalformedBracket{Open: "assign", Close: "end_assign"}
	}
	l := c.layout
	l.Zero(cellResult)
	if _, err := evalExpr(c, payload, 0, cellResult); err != nil {
		return 0, err
	}
	l.resetSecond()
	l.copyIntoSecond(cellResult)
	l.Zero(cellResult)
	return 2 + len(payload), nil
}

// statementHandlers returns the top-level dispatch table: every
// recognised statement-position atom, mapped to its handler. Binary
// and unary expression tokens never appear here -- they only occur
// nested inside an assign's payload, reached through evalExpr.
func statementHandlers() map[string]handler {
	return map[string]handler{
		"chars":                handleChars,
		"enter_scene_multiple": handleEnterSceneMultiple,
		"exit_scene_multiple":  handleExitSceneMultiple,
		"enter_scene":          handleEnterScene,
		"exit_scene":           handleExitScene,
		"activate":             handleActivate,
		"output":               handleOutput,
		"break":                handleBreak,
		"assign":               handleAssign,
	}
}
