package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid    TokenType = iota
	TokenOpenGroup            // Open parenthesis: "("
	TokenCloseGroup           // Close parenthesis: ")"
	TokenNewLine              // Newline: "\n"
	TokenWhitespace           // Space, tab, formfeed or carriage return: \s\f\t\r
	TokenAtom                 // Any run of characters not broken by the above
	TokenEOF                  // End of file
)

var tokenValues = map[TokenType][]rune{
	TokenOpenGroup:  []rune{'('},
	TokenCloseGroup: []rune{')'},
	TokenNewLine:    []rune{'\n'},
	TokenWhitespace: []rune(" \f\t\r"),
}

var tokenNames = map[TokenType]string{
	TokenInvalid:    "invalid",
	TokenOpenGroup:  "open_group",
	TokenCloseGroup: "close_group",
	TokenNewLine:    "newline",
	TokenWhitespace: "separator",
	TokenAtom:       "atom",
	TokenEOF:        "EOF",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

func isTokenType(tt TokenType) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range tokenValues[tt] {
			if v == r {
				return true
			}
		}
		return false
	}
}

var atomBreak = []rune{'(', ')', ' ', '\f', '\t', '\r', '\n'}

func isAtomBreak(r rune) bool {
	for _, v := range atomBreak {
		if v == r {
			return true
		}
	}
	return false
}
