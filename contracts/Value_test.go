package contracts

import (
	"math"
	"testing"

	json "github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
)

func TestParseNumber(t *testing.T) {
	t.Run("decimal_literals", func(t *testing.T) {
		assert.Equal(t, 12.0, ParseNumber("12"))
		assert.Equal(t, 12.0, ParseNumber(" 12 "))
		assert.Equal(t, -3.5, ParseNumber("-3.5"))
		assert.Equal(t, 0.5, ParseNumber(".5"))
		assert.Equal(t, 1.0, ParseNumber("1."))
		assert.Equal(t, 1000.0, ParseNumber("1e3"))
		assert.Equal(t, 0.025, ParseNumber("2.5E-2"))
	})

	t.Run("empty_text_is_zero", func(t *testing.T) {
		assert.Equal(t, 0.0, ParseNumber(""))
		assert.Equal(t, 0.0, ParseNumber("   "))
	})

	t.Run("prefixed_integers", func(t *testing.T) {
		assert.Equal(t, 31.0, ParseNumber("0x1F"))
		assert.Equal(t, 8.0, ParseNumber("0o10"))
		assert.Equal(t, 5.0, ParseNumber("0b101"))
		assert.True(t, math.IsNaN(ParseNumber("0x")))
		assert.True(t, math.IsNaN(ParseNumber("0b102")))
	})

	t.Run("infinity", func(t *testing.T) {
		assert.True(t, math.IsInf(ParseNumber("Infinity"), 1))
		assert.True(t, math.IsInf(ParseNumber("-Infinity"), -1))
		assert.True(t, math.IsNaN(ParseNumber("infinity")))
	})

	t.Run("not_numbers", func(t *testing.T) {
		for _, text := range []string{"abc", "true", "false", `"3"`, "1A", "A1", "1 2", "--1", "SUM(1,2)"} {
			assert.True(t, math.IsNaN(ParseNumber(text)), text)
		}
	})
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "5", FormatNumber(5))
	assert.Equal(t, "-5", FormatNumber(-5))
	assert.Equal(t, "0", FormatNumber(math.Copysign(0, -1)))
	assert.Equal(t, "123.456", FormatNumber(123.456))
	a, b := 0.1, 0.2
	assert.Equal(t, "0.30000000000000004", FormatNumber(a+b))
	assert.Equal(t, "1e+21", FormatNumber(1e21))
	assert.Equal(t, "100000000000000000000", FormatNumber(1e20))
	assert.Equal(t, "1.5e-7", FormatNumber(1.5e-7))
	assert.Equal(t, "0.000001", FormatNumber(1e-6))
	assert.Equal(t, "NaN", FormatNumber(math.NaN()))
	assert.Equal(t, "Infinity", FormatNumber(math.Inf(1)))
	assert.Equal(t, "-Infinity", FormatNumber(math.Inf(-1)))
}

func TestValue(t *testing.T) {
	t.Run("zero_value_is_undefined", func(t *testing.T) {
		var value Value
		assert.True(t, value.IsUndefined())
		assert.False(t, value.Truthy())
		assert.Equal(t, "", value.String())

		_, ok := value.ToNumber()
		assert.False(t, ok)
	})

	t.Run("formula", func(t *testing.T) {
		assert.True(t, String("=SUM(A1,B1)").IsFormula())
		assert.Equal(t, "SUM(A1,B1)", String("=SUM(A1,B1)").Expression())
		assert.False(t, String(" =A1").IsFormula())
		assert.False(t, Number(1).IsFormula())
	})

	t.Run("to_number", func(t *testing.T) {
		number, ok := Bool(true).ToNumber()
		assert.True(t, ok)
		assert.Equal(t, 1.0, number)

		number, ok = Bool(false).ToNumber()
		assert.True(t, ok)
		assert.Equal(t, 0.0, number)

		number, ok = String("4.5").ToNumber()
		assert.True(t, ok)
		assert.Equal(t, 4.5, number)

		_, ok = String("four").ToNumber()
		assert.False(t, ok)

		_, ok = NaN().ToNumber()
		assert.False(t, ok)
	})

	t.Run("truthy", func(t *testing.T) {
		assert.True(t, Number(-1).Truthy())
		assert.False(t, Number(0).Truthy())
		assert.False(t, NaN().Truthy())
		assert.True(t, String("false").Truthy())
		assert.False(t, String("").Truthy())
		assert.True(t, Bool(true).Truthy())
	})

	t.Run("strict_equal", func(t *testing.T) {
		assert.True(t, Number(5).StrictEqual(Number(5)))
		assert.False(t, Number(5).StrictEqual(String("5")))
		assert.False(t, NaN().StrictEqual(NaN()))
		assert.True(t, Bool(false).StrictEqual(Bool(false)))
		assert.True(t, Value{}.StrictEqual(Value{}))
	})

	t.Run("string", func(t *testing.T) {
		assert.Equal(t, "2.5", Number(2.5).String())
		assert.Equal(t, "true", Bool(true).String())
		assert.Equal(t, "text", String("text").String())
	})
}

func TestValue_JSON(t *testing.T) {
	t.Run("marshal", func(t *testing.T) {
		encoded, err := json.Marshal([]Value{Number(1.5), Bool(true), String(`say "hi"`), {}, NaN()})

		assert.NoError(t, err)
		assert.Equal(t, `[1.5,true,"say \"hi\"",null,null]`, string(encoded))
	})

	t.Run("unmarshal", func(t *testing.T) {
		var values []Value
		err := json.Unmarshal([]byte(`[2, false, "=A1", null, -1e3]`), &values)

		assert.NoError(t, err)
		assert.Equal(t, []Value{Number(2), Bool(false), String("=A1"), {}, Number(-1000)}, values)
	})

	t.Run("unmarshal_sheet", func(t *testing.T) {
		var sheet Sheet
		err := json.Unmarshal([]byte(`{"id":"sheet-1","data":[[1,"=SUM(A1,2)"],[true]]}`), &sheet)

		assert.NoError(t, err)
		assert.Equal(t, "sheet-1", sheet.Id)
		assert.Equal(t, [][]Value{{Number(1), String("=SUM(A1,2)")}, {Bool(true)}}, sheet.Data)
	})

	t.Run("unmarshal_invalid", func(t *testing.T) {
		var value Value
		err := value.UnmarshalJSON([]byte(`{}`))

		assert.ErrorIs(t, err, ValueDecodeError)
	})
}
