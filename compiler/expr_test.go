package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// evalAndRead evaluates the expression in src (a full assign,...,end_assign
// statement) against a single declared character and returns the byte
// ultimately assigned to it.
func evalAndRead(t *testing.T, exprSrc string) byte {
	t.Helper()
	src := "enter_scene_multiple,A,A,end_enter_scene_multiple,activate,A,assign," + exprSrc + ",end_assign,output"
	l := compileStatements(t, []string{"A"}, src)
	out := runTape(l.Code())
	require.Len(t, out, 1)
	return out[0]
}

func Test_evalExpr_arithmetic(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want byte
	}{
		{"add", "add,const,200,const,100,end_add", byte((200 + 100) % 256)},
		{"sub", "sub,const,5,const,20,end_sub", byte((5 - 20) % 256)},
		{"mul", "mul,const,6,const,7,end_mul", 42},
		{"div exact", "div,const,20,const,4,end_div", 5},
		{"div truncates", "div,const,22,const,4,end_div", 5},
		{"square", "square,const,13,end_square", byte((13 * 13) % 256)},
		{"cube", "cube,const,6,end_cube", byte((6 * 6 * 6) % 256)},
		{"twice", "twice,const,200,end_twice", byte((200 * 2) % 256)},
		{"negative const", "const,-1", 255},
		{"nested binary", "add,mul,const,3,const,4,end_mul,const,1,end_add", 13},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, evalAndRead(t, tc.src))
		})
	}
}

func Test_evalExpr_valueOf(t *testing.T) {
	src := "enter_scene_multiple,A,B,end_enter_scene_multiple,activate,A," +
		"assign,const,9,end_assign,output," +
		"activate,B,assign,value_of,first_person,end_assign,output," +
		"assign,value_of,A,end_assign,output"
	l := compileStatements(t, []string{"A", "B"}, src)
	assert.Equal(t, []byte{9, 9, 9}, runTape(l.Code()))
}

func Test_evalExpr_unknownToken(t *testing.T) {
	c := &compilation{layout: NewLayout()}
	require.NoError(t, c.layout.addCharacter("A"))
	_, err := evalExpr(c, tokens("frobnicate"), 0, cellResult)
	assert.ErrorAs(t, err, new(UnknownExpression))
}

func Test_evalExpr_malformedBracket(t *testing.T) {
	c := &compilation{layout: NewLayout()}
	require.NoError(t, c.layout.addCharacter("A"))
	_, err := evalExpr(c, tokens("add,const,1,const,2"), 0, cellResult)
	assert.ErrorAs(t, err, new(MalformedBracket))
}
