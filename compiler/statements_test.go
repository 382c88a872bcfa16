package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compileStatements(t *testing.T, names []string, src string) *Layout {
	t.Helper()
	c := &compilation{layout: NewLayout()}
	for _, n := range names {
		require.NoError(t, c.layout.addCharacter(n))
	}
	require.NoError(t, dispatch(c, tokens(src), statementHandlers()))
	return c.layout
}

func Test_handleEnterSceneMultiple(t *testing.T) {
	l := compileStatements(t, []string{"A", "B"}, "enter_scene_multiple,A,B,end_enter_scene_multiple")
	l.MoveTo(cellOS1)
	l.Emit(".")
	l.MoveTo(cellOS2)
	l.Emit(".")
	l.Reset()
	assert.Equal(t, []byte{1, 2}, runTape(l.Code()))
}

func Test_handleExitSceneMultiple(t *testing.T) {
	l := compileStatements(t, []string{"A", "B"},
		"enter_scene_multiple,A,B,end_enter_scene_multiple,exit_scene_multiple,end_exit_scene_multiple")
	l.MoveTo(cellOS1)
	l.Emit(".")
	l.MoveTo(cellOS2)
	l.Emit(".")
	l.Reset()
	assert.Equal(t, []byte{0, 0}, runTape(l.Code()))
}

func Test_handleEnterScene_fillsWhicheverSlotIsEmpty(t *testing.T) {
	l := compileStatements(t, []string{"A", "B", "C"},
		"enter_scene_multiple,A,B,end_enter_scene_multiple,exit_scene,A,enter_scene,C")
	l.MoveTo(cellOS1)
	l.Emit(".")
	l.MoveTo(cellOS2)
	l.Emit(".")
	l.Reset()
	assert.Equal(t, []byte{3, 2}, runTape(l.Code()))
}

func Test_handleExitScene_fallsBackToOS2(t *testing.T) {
	l := compileStatements(t, []string{"A", "B"},
		"enter_scene_multiple,A,B,end_enter_scene_multiple,exit_scene,B")
	l.MoveTo(cellOS1)
	l.Emit(".")
	l.MoveTo(cellOS2)
	l.Emit(".")
	l.Reset()
	assert.Equal(t, []byte{1, 0}, runTape(l.Code()))
}

func Test_handleActivate_setsActiveAndSecond(t *testing.T) {
	for _, tc := range []struct {
		name           string
		activate       string
		wantActive     byte
		wantSEC        byte
	}{
		{"activate first of pair", "A", 1, 2},
		{"activate second of pair", "B", 2, 1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			l := compileStatements(t, []string{"A", "B"},
				"enter_scene_multiple,A,B,end_enter_scene_multiple,activate,"+tc.activate)
			l.MoveTo(cellActive)
			l.Emit(".")
			l.MoveTo(cellSEC)
			l.Emit(".")
			l.Reset()
			assert.Equal(t, []byte{tc.wantActive, tc.wantSEC}, runTape(l.Code()))
		})
	}
}

func Test_handleBreak_emitsDebugMarker(t *testing.T) {
	l := compileStatements(t, []string{"A"}, "break")
	assert.Contains(t, l.Code(), "#")
}

func Test_handleAssign_writesIntoSecondPerson(t *testing.T) {
	l := compileStatements(t, []string{"A", "B"},
		"enter_scene_multiple,A,B,end_enter_scene_multiple,activate,A,assign,const,200,end_assign,output")
	assert.Equal(t, []byte{200}, runTape(l.Code()))
}

func Test_handleChars_rejectsEmptyRoster(t *testing.T) {
	c := &compilation{layout: NewLayout()}
	err := dispatch(c, tokens("chars,endchars"), statementHandlers())
	assert.ErrorAs(t, err, new(RosterMissing))
}
