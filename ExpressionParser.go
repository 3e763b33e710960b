package main

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tmsptr/spreadsheetEvaluator/contracts"
)

// Node is an element of a parsed expression
type Node interface {
	// Source is the trimmed text the node was parsed from
	Source() string
}

type CellRefNode struct {
	Name string
}

// LiteralNode is any argument that is neither a cell reference nor a call:
// numbers, quoted strings and bare text are told apart only by the function consuming them.
type LiteralNode struct {
	Text string
}

type CallNode struct {
	Name string
	Args []Node
	Text string
}

func (n *CellRefNode) Source() string { return n.Name }

func (n *LiteralNode) Source() string { return n.Text }

func (n *CallNode) Source() string { return n.Text }

var functionNameRegex = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)

// rawCallRegex matches a call by its outer shape only, whatever sits between the parentheses
var rawCallRegex = regexp.MustCompile(`(?s)^([A-Z][A-Z0-9_]*)\((.*)\)$`)

// ParseExpression parses the text of a formula without its prefix.
// An expression is either exactly a cell name or a single call spanning the whole text.
func ParseExpression(expression string) (Node, error) {
	if IsCellName(expression) {
		return &CellRefNode{Name: expression}, nil
	}

	call, err := parseCallText(expression)
	if err == nil {
		return call, nil
	}

	if raw := parseRawCall(expression); raw != nil {
		return raw, nil
	}
	return nil, err
}

// parseRawCall keeps the argument text of a call whose arguments do not tokenize,
// e.g. an unmatched quote or parenthesis. Arguments are split on the commas
// followed by an even number of quotes and are never parsed as nested calls.
func parseRawCall(expression string) *CallNode {
	match := rawCallRegex.FindStringSubmatch(expression)
	if match == nil {
		return nil
	}

	call := &CallNode{Name: match[1], Args: make([]Node, 0, 4), Text: expression}
	inner := match[2]
	if strings.TrimSpace(inner) == "" {
		return call
	}

	end := len(inner)
	quotesAfter := 0
	for i := len(inner) - 1; i >= 0; i-- {
		switch inner[i] {
		case '"':
			quotesAfter++
		case ',':
			if quotesAfter%2 == 0 {
				call.Args = append(call.Args, rawArgument(inner[i+1:end]))
				end = i
			}
		}
	}
	call.Args = append(call.Args, rawArgument(inner[:end]))

	for i, j := 0, len(call.Args)-1; i < j; i, j = i+1, j-1 {
		call.Args[i], call.Args[j] = call.Args[j], call.Args[i]
	}
	return call
}

func rawArgument(text string) Node {
	text = strings.TrimSpace(text)
	if IsCellName(text) {
		return &CellRefNode{Name: text}
	}
	return &LiteralNode{Text: text}
}

func parseCallText(text string) (*CallNode, error) {
	tokens, err := Tokenize(text)
	if err != nil {
		return nil, err
	}

	p := &expressionParser{input: text, tokens: tokens}
	call, err := p.parseCall()
	if err != nil {
		return nil, err
	}

	if next := p.peek(); next.Type != TokenEOF {
		return nil, fmt.Errorf("unexpected %q at %d: %w", p.input[next.Pos:], next.Pos, contracts.SyntaxError)
	}

	return call, nil
}

type expressionParser struct {
	input  string
	tokens []Token
	pos    int
}

func (p *expressionParser) peek() Token {
	return p.tokens[p.pos]
}

func (p *expressionParser) next() Token {
	token := p.tokens[p.pos]
	if token.Type != TokenEOF {
		p.pos++
	}
	return token
}

func (p *expressionParser) parseCall() (*CallNode, error) {
	name := p.next()
	if name.Type != TokenText || !functionNameRegex.MatchString(name.Value) {
		return nil, fmt.Errorf("expected function name at %d: %w", name.Pos, contracts.SyntaxError)
	}

	if open := p.next(); open.Type != TokenLeftParen {
		return nil, fmt.Errorf("expected ( after %s: %w", name.Value, contracts.SyntaxError)
	}

	call := &CallNode{Name: name.Value, Args: make([]Node, 0, 4)}
	argStart := p.peek().Pos

	for {
		token := p.next()

		switch token.Type {
		case TokenEOF:
			return nil, fmt.Errorf("missing ) for %s: %w", name.Value, contracts.SyntaxError)

		case TokenLeftParen:
			if err := p.skipGroup(); err != nil {
				return nil, err
			}

		case TokenComma:
			call.Args = append(call.Args, p.argument(argStart, token.Pos))
			argStart = token.End

		case TokenRightParen:
			// "SUM()" and "SUM( )" have no arguments, "SUM(,)" has two empty ones
			if len(call.Args) > 0 || strings.TrimSpace(p.input[argStart:token.Pos]) != "" {
				call.Args = append(call.Args, p.argument(argStart, token.Pos))
			}
			call.Text = p.input[name.Pos:token.End]
			return call, nil
		}
	}
}

// skipGroup consumes a parenthesised span nested inside an argument
func (p *expressionParser) skipGroup() error {
	depth := 1
	for depth > 0 {
		switch p.next().Type {
		case TokenEOF:
			return fmt.Errorf("unbalanced parentheses: %w", contracts.SyntaxError)
		case TokenLeftParen:
			depth++
		case TokenRightParen:
			depth--
		}
	}
	return nil
}

func (p *expressionParser) argument(start int, end int) Node {
	text := strings.TrimSpace(p.input[start:end])

	if IsCellName(text) {
		return &CellRefNode{Name: text}
	}

	if call, err := parseCallText(text); err == nil {
		return call
	}

	return &LiteralNode{Text: text}
}
