package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xiam/binspec/ast"
)

func TestParserBuildTree(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{
			In:  ``,
			Out: ``,
		},
		{
			In:  `()`,
			Out: `()`,
		},
		{
			In:  `(36-149 1)`,
			Out: `(36-149 1)`,
		},
		{
			In:  "(36-149\n\t 1)",
			Out: "(36-149 1)",
		},
		{
			In:  `(36-149 1) (150-224 225-324 2) (325-400 5)`,
			Out: `(36-149 1) (150-224 225-324 2) (325-400 5)`,
		},
		{
			In:  `(  5  )`,
			Out: `(5)`,
		},
		{
			In:  `() (1) ()`,
			Out: `() (1) ()`,
		},
		{
			In:  `a b c`,
			Out: `a b c`,
		},
		{
			In:  `(1 (2 3) 4)`,
			Out: `(1 (2 3) 4)`,
		},
		{
			In:  "(10-20 1)\n(30-40 2)",
			Out: "(10-20 1) (30-40 2)",
		},
	}

	for i := range testCases {
		root, err := Parse([]byte(testCases[i].In))

		assert.NoError(t, err)
		assert.Equal(t, testCases[i].Out, string(ast.Encode(root)))
	}
}

func TestParserTreeShape(t *testing.T) {
	root, err := Parse([]byte(`(36-149 1) x`))
	assert.NoError(t, err)

	elems := root.List()
	assert.Len(t, elems, 2)

	assert.True(t, elems[0].IsList())
	assert.Len(t, elems[0].List(), 2)
	assert.Equal(t, "36-149", elems[0].List()[0].Text())
	assert.Equal(t, "1", elems[0].List()[1].Text())

	assert.True(t, elems[1].IsSymbol())
	assert.Equal(t, "x", elems[1].Text())
}

func TestParserErrors(t *testing.T) {
	testCases := []struct {
		In  string
		Err error
	}{
		{
			In:  `(36-149 1`,
			Err: ErrUnexpectedEOF,
		},
		{
			In:  `(`,
			Err: ErrUnexpectedEOF,
		},
		{
			In:  `)`,
			Err: ErrUnexpectedToken,
		},
		{
			In:  `(36-149 1))`,
			Err: ErrUnexpectedToken,
		},
		{
			In:  `(1 (2 3)`,
			Err: ErrUnexpectedEOF,
		},
	}

	for i := range testCases {
		root, err := Parse([]byte(testCases[i].In))

		assert.Nil(t, root)
		assert.ErrorIs(t, err, testCases[i].Err)
	}
}
