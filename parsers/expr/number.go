package expr

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/mosfetlang/sand/diagnostics"
	"github.com/mosfetlang/sand/parsers"
)

// NumberDecimalSeparator introduces a number's fractional part.
const NumberDecimalSeparator = '.'

// NumberDecimalExponentTokens are the characters that introduce a number's
// exponent.
const NumberDecimalExponentTokens = "eE"

// Number is a real number literal, held as an exact rational value: a
// math/big.Rat numerator/denominator pair, so no precision is lost
// converting "1.1" or a large exponent into a value.
type Number struct {
	span  parsers.Span
	value *big.Rat
}

func (n Number) Span() parsers.Span { return n.span }
func (n Number) Value() *big.Rat    { return n.value }

// ParseDecimalNumber parses a real number in decimal radix: an integer
// part, an optional ".digits" fractional part, and an optional "e"/"E"
// exponent.
func ParseDecimalNumber(in *parsers.Input) parsers.Result[Number] {
	start := in.SaveCursor()

	integerPart, ok := readDigits(in)
	if !ok {
		return parsers.Miss[Number]()
	}

	var decimalPart string
	hasDecimalPart := false
	if in.HasPrefix(string(NumberDecimalSeparator)) {
		dotCursor := in.SaveCursor()
		in.ConsumeText(string(NumberDecimalSeparator))
		digits, ok := readDigits(in)
		if !ok {
			return parsers.Fail[Number](errorWithoutDigitsAfterDecimalSeparator(in, start))
		}
		_ = dotCursor
		decimalPart = digits
		hasDecimalPart = true
	}

	var exponent string
	hasExponent := false
	if r, ok := in.PeekRune(); ok && strings.ContainsRune(NumberDecimalExponentTokens, r) {
		in.AdvanceRune()
		exponentStart := in.SaveCursor()
		if r, ok := in.PeekRune(); ok && (r == '+' || r == '-') {
			in.AdvanceRune()
		}
		digits, ok := readDigits(in)
		if !ok {
			return parsers.Fail[Number](errorWithoutDigitsAfterExponentToken(in, start))
		}
		exponent = in.SubstringToCurrent(exponentStart).Content()
		_ = digits
		hasExponent = true
	}

	return convertToNumber(in, start, integerPart, decimalPart, hasDecimalPart, exponent, hasExponent)
}

func readDigits(in *parsers.Input) (string, bool) {
	start := in.SaveCursor()
	for {
		r, ok := in.PeekRune()
		if !ok || r < '0' || r > '9' {
			break
		}
		in.AdvanceRune()
	}
	if in.SaveCursor() == start {
		return "", false
	}
	return in.SubstringToCurrent(start).Content(), true
}

func convertToNumber(
	in *parsers.Input,
	start parsers.Cursor,
	integerPart string,
	decimalPart string,
	hasDecimalPart bool,
	exponent string,
	hasExponent bool,
) parsers.Result[Number] {
	integerTrimmed := strings.TrimLeft(integerPart, "0")
	integerValue := new(big.Int)
	if integerTrimmed != "" {
		integerValue.SetString(integerTrimmed, 10)
	}

	value := new(big.Rat).SetInt(integerValue)

	if hasDecimalPart {
		decimalTrimmed := strings.TrimRight(decimalPart, "0")
		if decimalTrimmed != "" {
			decimalValue := new(big.Int)
			decimalValue.SetString(decimalTrimmed, 10)

			maxU32 := new(big.Int).SetUint64(1<<32 - 1)
			if decimalValue.Cmp(maxU32) > 0 {
				return parsers.Fail[Number](errorTooBig(in, start))
			}

			denom := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(len(decimalTrimmed))), nil)
			numer := new(big.Int).Mul(integerValue, denom)
			numer.Add(numer, decimalValue)
			value = new(big.Rat).SetFrac(numer, denom)
		}
	}

	if hasExponent {
		exponentValue, err := strconv.ParseInt(exponent, 10, 32)
		if err != nil {
			return parsers.Fail[Number](errorTooBigExponent(in, start, exponent))
		}
		ten := big.NewRat(10, 1)
		scale := new(big.Rat).SetInt64(1)
		abs := exponentValue
		negative := abs < 0
		if negative {
			abs = -abs
		}
		for i := int64(0); i < abs; i++ {
			scale.Mul(scale, ten)
		}
		if negative {
			value.Quo(value, scale)
		} else {
			value.Mul(value, scale)
		}
	}

	warnLeadingZeroesIntegerPart(in, start, integerPart)
	if hasExponent {
		warnLeadingZeroesExponent(in, start, exponent)
	}
	if hasDecimalPart {
		warnTrailingZeroes(in, start, decimalPart)
	}

	return parsers.Ok(Number{span: in.SubstringToCurrent(start), value: value})
}

func errorTooBig(in *parsers.Input, start parsers.Cursor) *parsers.ParserError {
	return parsers.GenerateError(in, parsers.NumberTooBig, "The number is too big to be handled", func(log *diagnostics.Log) {
		log.HighlightSection(start.ByteOffset(), in.ByteOffset(), diagnostics.ColorNone)
	})
}

func errorTooBigExponent(in *parsers.Input, start parsers.Cursor, exponent string) *parsers.ParserError {
	endPosition := in.ByteOffset() - len(exponent)
	return parsers.GenerateError(in, parsers.NumberTooBigExponent, "The exponent of the number is too big to be handled", func(log *diagnostics.Log) {
		log.HighlightSection(start.ByteOffset(), endPosition, diagnostics.ColorMagenta).
			HighlightSection(endPosition, in.ByteOffset(), diagnostics.ColorNone).
			AddNote("Max value", "+2147483647").
			AddNote("Min value", "-2147483648")
	})
}

func errorWithoutDigitsAfterDecimalSeparator(in *parsers.Input, start parsers.Cursor) *parsers.ParserError {
	return parsers.GenerateError(in, parsers.NumberWithoutDigitsAfterDecimalSeparator,
		"At least one digit was expected after the decimal separator '.'", func(log *diagnostics.Log) {
			log.HighlightSection(start.ByteOffset(), in.ByteOffset(), diagnostics.ColorMagenta).
				HighlightCursorMessage(in.ByteOffset(), "Add a digit here, e.g. 0", diagnostics.ColorNone)
		})
}

func errorWithoutDigitsAfterExponentToken(in *parsers.Input, start parsers.Cursor) *parsers.ParserError {
	return parsers.GenerateError(in, parsers.NumberWithoutDigitsAfterExponentToken,
		"At least one digit was expected after the exponent token", func(log *diagnostics.Log) {
			log.HighlightSection(start.ByteOffset(), in.ByteOffset(), diagnostics.ColorMagenta).
				HighlightCursorMessage(in.ByteOffset(), "Add a digit here, e.g. 0", diagnostics.ColorNone)
		})
}

func warnLeadingZeroesIntegerPart(in *parsers.Input, start parsers.Cursor, integerPart string) {
	if in.Context().Ignore().NumberLeadingZeroes || integerPart == "0" {
		return
	}

	trimmed := strings.TrimLeft(integerPart, "0")
	if len(integerPart) == len(trimmed) {
		return
	}

	numberOfZeroes := len(integerPart) - len(trimmed)
	if trimmed == "" {
		numberOfZeroes--
	}
	endZeroes := start.ByteOffset() + numberOfZeroes

	message := "Remove these zeroes"
	if numberOfZeroes == 1 {
		message = "Remove this zero"
	}

	parsers.AddWarning(in, parsers.NumberWithLeadingZeroes, "Leading zeroes in the integer part of a number are unnecessary",
		func(log *diagnostics.Log) {
			log.HighlightSectionMessage(start.ByteOffset(), endZeroes, message, diagnostics.ColorNone).
				HighlightSection(endZeroes, in.ByteOffset(), diagnostics.ColorMagenta)
		})
}

func warnLeadingZeroesExponent(in *parsers.Input, start parsers.Cursor, exponent string) {
	if in.Context().Ignore().NumberLeadingZeroes || exponent == "" {
		return
	}

	trimmedSign := strings.TrimLeft(exponent, "+-")
	trimmed := strings.TrimLeft(trimmedSign, "0")

	if trimmed == "" {
		exponentIndex := in.ByteOffset() - len(exponent) - 1
		parsers.AddWarning(in, parsers.NumberWithLeadingZeroes, "The exponent of the number is unnecessary",
			func(log *diagnostics.Log) {
				log.HighlightSection(start.ByteOffset(), exponentIndex, diagnostics.ColorMagenta).
					HighlightSectionMessage(exponentIndex, in.ByteOffset(), "Remove the exponent", diagnostics.ColorNone)
			})
		return
	}

	if len(trimmedSign) != len(trimmed) {
		exponentIndex := in.ByteOffset() - len(trimmedSign)
		numberOfZeroes := len(trimmedSign) - len(trimmed)
		endZeroes := exponentIndex + numberOfZeroes

		message := "Remove these zeroes"
		if numberOfZeroes == 1 {
			message = "Remove this zero"
		}

		parsers.AddWarning(in, parsers.NumberWithLeadingZeroes, "Leading zeroes in the exponent of a number are unnecessary",
			func(log *diagnostics.Log) {
				log.HighlightSection(start.ByteOffset(), exponentIndex, diagnostics.ColorMagenta).
					HighlightSectionMessage(exponentIndex, endZeroes, message, diagnostics.ColorNone).
					HighlightSection(endZeroes, in.ByteOffset(), diagnostics.ColorMagenta)
			})
	}
}

func warnTrailingZeroes(in *parsers.Input, start parsers.Cursor, decimalPart string) {
	if in.Context().Ignore().NumberTrailingZeroes || decimalPart == "" {
		return
	}

	trimmed := strings.TrimRight(decimalPart, "0")
	content := in.SubstringToCurrent(start).Content()
	dotIndex := strings.IndexByte(content, byte(NumberDecimalSeparator))
	if dotIndex < 0 {
		return
	}
	decimalIndex := start.ByteOffset() + dotIndex

	if trimmed == "" {
		exponentIndex := decimalIndex + 1 + len(decimalPart)
		parsers.AddWarning(in, parsers.NumberWithTrailingZeroes, "The decimal part of the number is unnecessary",
			func(log *diagnostics.Log) {
				log.HighlightSection(start.ByteOffset(), decimalIndex, diagnostics.ColorMagenta).
					HighlightSectionMessage(decimalIndex, exponentIndex, "Remove the decimal part", diagnostics.ColorNone)
				if exponentIndex < in.ByteOffset() {
					log.HighlightSection(exponentIndex, in.ByteOffset(), diagnostics.ColorMagenta)
				}
			})
		return
	}

	if len(decimalPart) != len(trimmed) {
		decimalStart := decimalIndex + 1
		numberOfZeroes := len(decimalPart) - len(trimmed)
		endZeroes := decimalStart + len(trimmed) + numberOfZeroes

		message := "Remove these zeroes"
		if numberOfZeroes == 1 {
			message = "Remove this zero"
		}

		parsers.AddWarning(in, parsers.NumberWithTrailingZeroes, "Trailing zeroes in the decimal part of a number are unnecessary",
			func(log *diagnostics.Log) {
				log.HighlightSection(start.ByteOffset(), decimalStart+len(trimmed), diagnostics.ColorMagenta).
					HighlightSectionMessage(decimalStart+len(trimmed), endZeroes, message, diagnostics.ColorNone).
					HighlightSection(endZeroes, in.ByteOffset(), diagnostics.ColorMagenta)
			})
	}
}
