package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanner(t *testing.T) {
	testCases := []string{
		`1`,

		`-1 -2.22`,

		`36-149`,

		`(36-149 1) (150-224 225-324 2) (325-400 5)`,

		`( ( ( ) ) )`,

		"\t \r\n",

		`"10-20" [1] {2}`,

		`(36-149
			1)`,
	}

	for i := range testCases {
		tokens, err := Tokenize([]byte(testCases[i]))
		t.Logf("tokens: %v", tokens)

		assert.NotNil(t, tokens)
		assert.NoError(t, err)
	}
}

func TestTokenize(t *testing.T) {
	testCases := []struct {
		In  string
		Out []TokenType
	}{
		{
			In:  ``,
			Out: []TokenType{TokenEOF},
		},
		{
			In:  `1`,
			Out: []TokenType{TokenAtom, TokenEOF},
		},
		{
			In:  `36-149`,
			Out: []TokenType{TokenAtom, TokenEOF},
		},
		{
			In:  `()`,
			Out: []TokenType{TokenOpenGroup, TokenCloseGroup, TokenEOF},
		},
		{
			In: `(36-149 1)`,
			Out: []TokenType{
				TokenOpenGroup, TokenAtom, TokenWhitespace, TokenAtom,
				TokenCloseGroup, TokenEOF,
			},
		},
		{
			In: "(36-149\t \t1)",
			Out: []TokenType{
				TokenOpenGroup, TokenAtom, TokenWhitespace, TokenAtom,
				TokenCloseGroup, TokenEOF,
			},
		},
		{
			In:  "a\nb",
			Out: []TokenType{TokenAtom, TokenNewLine, TokenAtom, TokenEOF},
		},
		{
			In: `(150-224 225-324 2)`,
			Out: []TokenType{
				TokenOpenGroup, TokenAtom, TokenWhitespace, TokenAtom,
				TokenWhitespace, TokenAtom, TokenCloseGroup, TokenEOF,
			},
		},
	}

	for i := range testCases {
		tokens, err := Tokenize([]byte(testCases[i].In))
		assert.NoError(t, err)

		tt := []TokenType{}
		for _, tok := range tokens {
			tt = append(tt, tok.Type())
		}
		assert.Equal(t, testCases[i].Out, tt, "case %d: %q", i, testCases[i].In)
	}
}

func TestTokenText(t *testing.T) {
	tokens, err := Tokenize([]byte(`(36-149  1)`))
	assert.NoError(t, err)

	texts := []string{}
	for _, tok := range tokens {
		texts = append(texts, tok.Text())
	}
	assert.Equal(t, []string{"(", "36-149", "  ", "1", ")", ""}, texts)
}

func TestTokenPos(t *testing.T) {
	tokens, err := Tokenize([]byte("(1-2 3)\n(4-5 6)"))
	assert.NoError(t, err)

	assert.True(t, tokens[0].Is(TokenOpenGroup))
	line, col := tokens[0].Pos()
	assert.Equal(t, 1, line)
	assert.Equal(t, 1, col)

	assert.True(t, tokens[6].Is(TokenOpenGroup))
	line, col = tokens[6].Pos()
	assert.Equal(t, 2, line)
	assert.Equal(t, 1, col)

	assert.Equal(t, `(:atom "1-2" [1 2])`, tokens[1].String())
}
