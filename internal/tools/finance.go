package tools

import (
	"errors"
	"math"
)

// LoanQuote is the result of the loan calculator.
type LoanQuote struct {
	MonthlyPayment float64 `json:"monthlyPayment"`
	TotalPayment   float64 `json:"totalPayment"`
	TotalInterest  float64 `json:"totalInterest"`
}

var ErrInvalidLoanTerms = errors.New("principal, rate and months must be non-negative and months > 0")

// LoanPayment computes a fixed-rate amortized loan quote. annualRate is
// a percentage (5.5 means 5.5% a year); a zero rate degenerates to a
// straight division.
func LoanPayment(principal, annualRate float64, months int) (LoanQuote, error) {
	if principal < 0 || annualRate < 0 || months <= 0 {
		return LoanQuote{}, ErrInvalidLoanTerms
	}
	if principal == 0 {
		return LoanQuote{}, nil
	}

	var monthly float64
	if annualRate == 0 {
		monthly = principal / float64(months)
	} else {
		rate := annualRate / 100 / 12
		factor := math.Pow(1+rate, float64(months))
		monthly = principal * rate * factor / (factor - 1)
	}

	monthly = roundCents(monthly)
	total := roundCents(monthly * float64(months))
	return LoanQuote{
		MonthlyPayment: monthly,
		TotalPayment:   total,
		TotalInterest:  roundCents(total - principal),
	}, nil
}

// TipSplit is the result of the tip calculator.
type TipSplit struct {
	Tip       float64 `json:"tip"`
	Total     float64 `json:"total"`
	PerPerson float64 `json:"perPerson"`
}

var ErrInvalidTipTerms = errors.New("bill and percent must be non-negative and people > 0")

// Tip splits a bill with a percentage tip across people.
func Tip(bill, percent float64, people int) (TipSplit, error) {
	if bill < 0 || percent < 0 || people <= 0 {
		return TipSplit{}, ErrInvalidTipTerms
	}
	tip := roundCents(bill * percent / 100)
	total := roundCents(bill + tip)
	return TipSplit{
		Tip:       tip,
		Total:     total,
		PerPerson: roundCents(total / float64(people)),
	}, nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
