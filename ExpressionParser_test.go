package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tmsptr/spreadsheetEvaluator/contracts"
)

func TestParseExpression(t *testing.T) {
	t.Run("cell_reference", func(t *testing.T) {
		node, err := ParseExpression("AB12")

		assert.NoError(t, err)
		assert.Equal(t, &CellRefNode{Name: "AB12"}, node)
	})

	t.Run("call", func(t *testing.T) {
		node, err := ParseExpression("SUM(A1, 2)")

		assert.NoError(t, err)
		assert.Equal(t, &CallNode{
			Name: "SUM",
			Args: []Node{&CellRefNode{Name: "A1"}, &LiteralNode{Text: "2"}},
			Text: "SUM(A1, 2)",
		}, node)
	})

	t.Run("empty_argument_lists", func(t *testing.T) {
		for _, expression := range []string{"SUM()", "SUM( )"} {
			node, err := ParseExpression(expression)

			assert.NoError(t, err)
			assert.Empty(t, node.(*CallNode).Args, expression)
		}

		node, err := ParseExpression("SUM(,)")
		assert.NoError(t, err)
		assert.Equal(t, []Node{&LiteralNode{Text: ""}, &LiteralNode{Text: ""}}, node.(*CallNode).Args)
	})

	t.Run("nested_call", func(t *testing.T) {
		node, err := ParseExpression("IF(GT(A1, B1),C1,D1)")

		assert.NoError(t, err)
		call := node.(*CallNode)
		assert.Equal(t, "IF", call.Name)
		assert.Len(t, call.Args, 3)

		condition, ok := call.Args[0].(*CallNode)
		assert.True(t, ok)
		assert.Equal(t, "GT", condition.Name)
		assert.Equal(t, "GT(A1, B1)", condition.Source())
		assert.Equal(t, []Node{&CellRefNode{Name: "A1"}, &CellRefNode{Name: "B1"}}, condition.Args)
	})

	t.Run("quoted_literal", func(t *testing.T) {
		node, err := ParseExpression(`CONCAT(A1,"Hello, World")`)

		assert.NoError(t, err)
		assert.Equal(t, []Node{&CellRefNode{Name: "A1"}, &LiteralNode{Text: `"Hello, World"`}}, node.(*CallNode).Args)
	})

	t.Run("parenthesised_literal", func(t *testing.T) {
		node, err := ParseExpression("SUM((1),2)")

		assert.NoError(t, err)
		assert.Equal(t, []Node{&LiteralNode{Text: "(1)"}, &LiteralNode{Text: "2"}}, node.(*CallNode).Args)
	})

	t.Run("unbalanced_argument_text", func(t *testing.T) {
		testCases := map[string][]Node{
			"SUM(1))":          {&LiteralNode{Text: "1)"}},
			"SUM(1)(2)":        {&LiteralNode{Text: "1)(2"}},
			"SUM(SUM(1)":       {&LiteralNode{Text: "SUM(1"}},
			`CONCAT("a)`:       {&LiteralNode{Text: `"a`}},
			"CONCAT(E1,a(b)":   {&CellRefNode{Name: "E1"}, &LiteralNode{Text: "a(b"}},
			"CONCAT(E1, x)y)":  {&CellRefNode{Name: "E1"}, &LiteralNode{Text: "x)y"}},
			`CONCAT(E1,"abc)`:  {&LiteralNode{Text: `E1,"abc`}},
			`CONCAT(a(,"b,c")`: {&LiteralNode{Text: "a("}, &LiteralNode{Text: `"b,c"`}},
		}

		for expression, expectedArgs := range testCases {
			node, err := ParseExpression(expression)

			assert.NoError(t, err, expression)
			call := node.(*CallNode)
			assert.Equal(t, expression, call.Source(), expression)
			assert.Equal(t, expectedArgs, call.Args, expression)
		}
	})

	t.Run("syntax_errors", func(t *testing.T) {
		expressions := []string{
			"",
			"1A",
			"a1",
			"sum(1)",
			" SUM(1)",
			"SUM (1)",
			"SUM(1) ",
			"SUM(1",
			"=A1 + B1",
			`CONCAT("a`,
		}

		for _, expression := range expressions {
			node, err := ParseExpression(expression)

			assert.Nil(t, node, expression)
			assert.ErrorIs(t, err, contracts.SyntaxError, expression)
		}
	})
}
