package picojson

import (
	"math"
	"strconv"
	"strings"
)

// isFloatShaped reports whether a lexeme contains a dot or exponent marker,
// the rule also used when choosing whether to parse it as a float.
func isFloatShaped(raw string) bool {
	return strings.ContainsAny(raw, ".eE")
}

// parseNumber interprets a raw numeric lexeme per cfg, following the
// mutually-exclusive float-mode table in Config. The tokenizer is
// assumed to have already rejected malformed lexemes (leading zeros,
// internal "..", malformed exponents); this function only classifies and
// converts a well-formed one. pos is the lexeme's starting byte offset,
// carried into any *ParseError so it points at the number rather than
// offset 0.
func parseNumber(raw string, cfg Config, pos int) (Num, *ParseError) {
	if !isFloatShaped(raw) {
		return parseInteger(raw, cfg.IntWidth), nil
	}

	switch cfg.FloatMode {
	case FloatEnabled:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil || isInfOrNaN(f) {
			// Downgrade to IntegerOverflow; raw lexeme is still reported.
			return Num{Raw: raw, Kind: IntegerOverflow}, nil
		}
		return Num{Raw: raw, Kind: Float, Float: f}, nil

	case FloatError:
		return Num{}, simpleErr(ErrKindFloatNotAllowed, pos)

	case FloatSkip:
		return Num{Raw: raw, Kind: FloatSkipped}, nil

	case FloatTruncate:
		if strings.ContainsAny(raw, "eE") {
			return Num{}, simpleErr(ErrKindInvalidNumber, pos)
		}
		intPart := raw
		if dot := strings.IndexByte(raw, '.'); dot >= 0 {
			intPart = raw[:dot]
		}
		n := parseInteger(intPart, cfg.IntWidth)
		if n.Kind == Integer {
			return Num{Raw: raw, Kind: FloatTruncated, Int: n.Int}, nil
		}
		return Num{Raw: raw, Kind: IntegerOverflow}, nil

	default: // FloatDisabled
		return Num{Raw: raw, Kind: FloatUnparsed}, nil
	}
}

func parseInteger(raw string, width IntWidth) Num {
	v, err := strconv.ParseInt(raw, 10, width.bits())
	if err != nil {
		return Num{Raw: raw, Kind: IntegerOverflow}
	}
	return Num{Raw: raw, Kind: Integer, Int: v}
}

func isInfOrNaN(f float64) bool {
	return math.IsNaN(f) || math.IsInf(f, 0)
}
