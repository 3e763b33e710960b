package main

import (
	"fmt"
	"strings"

	"github.com/tmsptr/spreadsheetEvaluator/contracts"
)

type TokenType int

const (
	TokenEOF TokenType = iota
	TokenText
	TokenString
	TokenComma
	TokenLeftParen
	TokenRightParen
)

const (
	charQuote  = '"'
	charComma  = ','
	charLParen = '('
	charRParen = ')'
)

// Token is a lexical token; Pos and End are byte offsets into the expression,
// so the source text of any token span can be sliced back out.
type Token struct {
	Type  TokenType
	Value string
	Pos   int
	End   int
}

// Tokenize splits an expression into text runs, quoted strings and punctuation.
// Whitespace is kept inside text runs: argument text is trimmed by the parser.
func Tokenize(input string) ([]Token, error) {
	tokens := make([]Token, 0, 8)
	pos := 0

	for pos < len(input) {
		switch input[pos] {
		case charQuote:
			end := strings.IndexByte(input[pos+1:], charQuote)
			if end < 0 {
				return nil, fmt.Errorf("unterminated string literal at %d: %w", pos, contracts.SyntaxError)
			}
			end += pos + 1
			tokens = append(tokens, Token{Type: TokenString, Value: input[pos+1 : end], Pos: pos, End: end + 1})
			pos = end + 1
		case charComma:
			tokens = append(tokens, Token{Type: TokenComma, Value: ",", Pos: pos, End: pos + 1})
			pos++
		case charLParen:
			tokens = append(tokens, Token{Type: TokenLeftParen, Value: "(", Pos: pos, End: pos + 1})
			pos++
		case charRParen:
			tokens = append(tokens, Token{Type: TokenRightParen, Value: ")", Pos: pos, End: pos + 1})
			pos++
		default:
			end := pos
			for end < len(input) && !strings.ContainsRune(`"(),`, rune(input[end])) {
				end++
			}
			tokens = append(tokens, Token{Type: TokenText, Value: input[pos:end], Pos: pos, End: end})
			pos = end
		}
	}

	return append(tokens, Token{Type: TokenEOF, Pos: len(input), End: len(input)}), nil
}
