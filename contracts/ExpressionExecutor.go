package contracts

type ExpressionExecutor interface {
	Evaluate(expression string, lookup CellLookup) (Value, error)
	EvaluateToValue(expression string, lookup CellLookup) Value
}
