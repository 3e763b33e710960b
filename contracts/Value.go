package contracts

import (
	"bytes"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	json "github.com/bytedance/sonic"
)

// FormulaPrefix marks a string cell value as a formula
const FormulaPrefix = "="

type ValueKind uint8

const (
	UndefinedKind ValueKind = iota
	NumberKind
	BoolKind
	StringKind
)

func (k ValueKind) String() string {
	switch k {
	case NumberKind:
		return "number"
	case BoolKind:
		return "boolean"
	case StringKind:
		return "string"
	default:
		return "undefined"
	}
}

// Value is a raw cell value or an evaluation result.
// The zero Value is undefined: a cell that is absent from the lookup table.
type Value struct {
	Kind   ValueKind
	Number float64
	Bool   bool
	Text   string
}

func Number(number float64) Value {
	return Value{Kind: NumberKind, Number: number}
}

func Bool(b bool) Value {
	return Value{Kind: BoolKind, Bool: b}
}

func String(text string) Value {
	return Value{Kind: StringKind, Text: text}
}

func NaN() Value {
	return Number(math.NaN())
}

func (v Value) IsUndefined() bool {
	return v.Kind == UndefinedKind
}

func (v Value) IsFormula() bool {
	return v.Kind == StringKind && strings.HasPrefix(v.Text, FormulaPrefix)
}

// Expression returns the formula text without its prefix
func (v Value) Expression() string {
	return strings.TrimPrefix(v.Text, FormulaPrefix)
}

// ToNumber converts the value the way JavaScript's Number() does.
// ok is false when the result is not a number.
func (v Value) ToNumber() (number float64, ok bool) {
	switch v.Kind {
	case NumberKind:
		number = v.Number
	case BoolKind:
		if v.Bool {
			number = 1
		}
	case StringKind:
		number = ParseNumber(v.Text)
	default:
		number = math.NaN()
	}

	return number, !math.IsNaN(number)
}

// Truthy follows JavaScript truthiness
func (v Value) Truthy() bool {
	switch v.Kind {
	case NumberKind:
		return v.Number != 0 && !math.IsNaN(v.Number)
	case BoolKind:
		return v.Bool
	case StringKind:
		return v.Text != ""
	default:
		return false
	}
}

// StrictEqual is JavaScript's === for scalar values
func (v Value) StrictEqual(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}

	switch v.Kind {
	case NumberKind:
		return v.Number == other.Number
	case BoolKind:
		return v.Bool == other.Bool
	case StringKind:
		return v.Text == other.Text
	default:
		return true
	}
}

func (v Value) String() string {
	switch v.Kind {
	case NumberKind:
		return FormatNumber(v.Number)
	case BoolKind:
		return strconv.FormatBool(v.Bool)
	case StringKind:
		return v.Text
	default:
		return ""
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case NumberKind:
		if math.IsNaN(v.Number) || math.IsInf(v.Number, 0) {
			return []byte("null"), nil
		}
		return []byte(FormatNumber(v.Number)), nil
	case BoolKind:
		return []byte(strconv.FormatBool(v.Bool)), nil
	case StringKind:
		return json.Marshal(v.Text)
	default:
		return []byte("null"), nil
	}
}

func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("%w: empty input", ValueDecodeError)
	}

	switch data[0] {
	case 'n':
		*v = Value{}
	case 't', 'f':
		b, err := strconv.ParseBool(string(data))
		if err != nil {
			return fmt.Errorf("%w: %s", ValueDecodeError, data)
		}
		*v = Bool(b)
	case '"':
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return fmt.Errorf("%w: %s", ValueDecodeError, err)
		}
		*v = String(text)
	default:
		number, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return fmt.Errorf("%w: %s", ValueDecodeError, data)
		}
		*v = Number(number)
	}

	return nil
}

var decimalLiteralRegex = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// ParseNumber converts text with JavaScript Number() semantics, NaN when the text is not numeric
func ParseNumber(text string) float64 {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}

	switch text {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	if len(text) > 2 && text[0] == '0' {
		base := 0
		switch text[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}

		if base != 0 {
			integer, err := strconv.ParseUint(text[2:], base, 64)
			if err != nil {
				return math.NaN()
			}
			return float64(integer)
		}
	}

	if !decimalLiteralRegex.MatchString(text) {
		return math.NaN()
	}

	number, err := strconv.ParseFloat(text, 64)
	if err != nil && !math.IsInf(number, 0) {
		return math.NaN()
	}
	return number
}

// FormatNumber renders a number the way JavaScript's String() does
func FormatNumber(number float64) string {
	switch {
	case math.IsNaN(number):
		return "NaN"
	case math.IsInf(number, 1):
		return "Infinity"
	case math.IsInf(number, -1):
		return "-Infinity"
	case number == 0:
		return "0"
	}

	abs := math.Abs(number)
	if abs < 1e21 && abs >= 1e-6 {
		return strconv.FormatFloat(number, 'f', -1, 64)
	}

	// Go pads the exponent to two digits, JavaScript does not
	formatted := strconv.FormatFloat(number, 'e', -1, 64)
	mantissa, exponent, _ := strings.Cut(formatted, "e")
	sign := exponent[:1]
	exponent = strings.TrimLeft(exponent[1:], "0")
	return mantissa + "e" + sign + exponent
}
