package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_guardNonZero(t *testing.T) {
	for _, tc := range []struct {
		name string
		seed int
		want byte
	}{
		{"fires on nonzero", 5, 1},
		{"skips on zero", 0, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			l := NewLayout()
			l.AddConst(tc.seed, cellOS1)
			l.Zero(cellResult)
			l.guardNonZero(cellOS1, func() { l.AddConst(1, cellResult) })
			l.MoveTo(cellResult)
			l.Emit(".")
			l.Reset()
			assert.Equal(t, []byte{tc.want}, runTape(l.Code()))
		})
	}
}

func Test_guardNonZero_preservesTestedCell(t *testing.T) {
	l := NewLayout()
	l.AddConst(5, cellOS1)
	l.guardNonZero(cellOS1, func() {})
	l.MoveTo(cellOS1)
	l.Emit(".")
	l.Reset()
	assert.Equal(t, []byte{5}, runTape(l.Code()))
}

func Test_guardZero(t *testing.T) {
	for _, tc := range []struct {
		name string
		seed int
		want byte
	}{
		{"fires on zero", 0, 1},
		{"skips on nonzero", 3, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			l := NewLayout()
			l.AddConst(tc.seed, cellOS1)
			l.Zero(cellResult)
			l.guardZero(cellOS1, func() { l.AddConst(1, cellResult) })
			l.MoveTo(cellResult)
			l.Emit(".")
			l.Reset()
			assert.Equal(t, []byte{tc.want}, runTape(l.Code()))
		})
	}
}

func Test_drainAddAndSubtract(t *testing.T) {
	l := NewLayout()
	l.AddConst(4, cellOS1)
	l.AddConst(10, cellOS2)
	l.drainAdd(cellOS1, cellOS2) // OS2 += OS1, OS1 -> 0
	l.MoveTo(cellOS1)
	l.Emit(".")
	l.MoveTo(cellOS2)
	l.Emit(".")
	l.Reset()
	assert.Equal(t, []byte{0, 14}, runTape(l.Code()))
}

func Test_computeGE(t *testing.T) {
	for _, tc := range []struct {
		d, r int
		want byte
	}{
		{6, 3, 1},
		{2, 5, 0},
		{4, 4, 1},
		{0, 5, 0},
		{5, 0, 1},
	} {
		l := NewLayout()
		l.AddConst(tc.d, cellOS1)
		l.AddConst(tc.r, cellOS2)
		l.computeGE(cellOS1, cellOS2, cellResult)
		l.MoveTo(cellResult)
		l.Emit(".")
		l.MoveTo(cellOS1)
		l.Emit(".")
		l.MoveTo(cellOS2)
		l.Emit(".")
		l.Reset()
		out := runTape(l.Code())
		assert.Equal(t, tc.want, out[0], "d=%v r=%v", tc.d, tc.r)
		assert.Equal(t, byte(tc.d), out[1], "d preserved")
		assert.Equal(t, byte(tc.r), out[2], "r preserved")
	}
}
