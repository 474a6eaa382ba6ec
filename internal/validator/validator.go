// Package validator holds the pure bidding rules: how much a lot accepts
// next and how participant text turns into an amount.
package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"lot-auction/internal/biddingerrors"
	"lot-auction/internal/models"

	"github.com/shopspring/decimal"
)

const monetaryPrecision int32 = 2 // cents

// amountPattern admits plain decimal notation only: no exponent, no grouping,
// at most 12 integer and 12 fractional digits.
var amountPattern = regexp.MustCompile(`^[+-]?[0-9]{1,12}(\.[0-9]{1,12})?$`)

var (
	// MinBid is the opening amount every lot requires
	MinBid = decimal.NewFromInt(50)
	// SmallestIncrement is how much a new bid must exceed the current one
	SmallestIncrement = decimal.NewFromInt(1)
)

// MinimumRequired returns the smallest amount the lot currently accepts.
func MinimumRequired(lot models.Lot) decimal.Decimal {
	if lot.CurrentBid.LessThan(MinBid) {
		return MinBid
	}
	return lot.CurrentBid.Add(SmallestIncrement)
}

// Judge accepts the amount when it meets the lot's minimum; otherwise it
// returns a *biddingerrors.BelowMinimumError.
func Judge(lot models.Lot, amount decimal.Decimal) error {
	minimum := MinimumRequired(lot)
	if amount.LessThan(minimum) {
		return &biddingerrors.BelowMinimumError{Minimum: minimum}
	}
	return nil
}

// ParseAmount turns free text like "150", "150,5" or "$ 150.50" into an
// amount rounded to cents with banker's rounding.
func ParseAmount(raw string) (decimal.Decimal, error) {
	text := stripCurrency(strings.TrimSpace(raw))
	if text == "" {
		return decimal.Zero, fmt.Errorf("%w: empty input", biddingerrors.ErrMalformedAmount)
	}
	text = strings.ReplaceAll(text, ",", ".")
	if !amountPattern.MatchString(text) {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", biddingerrors.ErrMalformedAmount, raw)
	}

	amount, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", biddingerrors.ErrMalformedAmount, raw)
	}
	return amount.RoundBank(monetaryPrecision), nil
}

// stripCurrency drops one currency symbol from either end of the text
func stripCurrency(text string) string {
	if r, size := utf8.DecodeRuneInString(text); size > 0 && unicode.Is(unicode.Sc, r) {
		text = strings.TrimSpace(text[size:])
	}
	if r, size := utf8.DecodeLastRuneInString(text); size > 0 && unicode.Is(unicode.Sc, r) {
		text = strings.TrimSpace(text[:len(text)-size])
	}
	return text
}
