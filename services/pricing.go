package services

import (
	"math"
	"strings"
)

// UnitClass is the normalized pricing category of a free-text unit of
// measure. Classification happens once; the pricing rule dispatches on it.
type UnitClass int

const (
	UnitOther   UnitClass = iota // ml, kg, empty, anything unrecognized
	UnitPiece                    // "pz": price per piece, uses the Pz count
	UnitLumpSum                  // "a corpo": the price is the total
	UnitArea                     // "mq": price per square meter, with a total-price heuristic
)

// Thresholds for the area heuristic: an "mq" price above 10000 on more
// than 10 square meters is taken as an already-total price. Strictly
// greater-than on both, matching the historical behavior.
const (
	areaTotalPriceThreshold = 10000.0
	areaTotalQtyThreshold   = 10.0
)

// ClassifyUnit maps a unit-of-measure string to its pricing category
// using a case-insensitive substring match.
func ClassifyUnit(um string) UnitClass {
	um = strings.ToLower(um)
	switch {
	case strings.Contains(um, "pz"):
		return UnitPiece
	case strings.Contains(um, "corpo"):
		return UnitLumpSum
	case strings.Contains(um, "mq"):
		return UnitArea
	default:
		return UnitOther
	}
}

// CalcLineTotal computes the monetary total of a single line item.
// A missing price yields exactly zero. Otherwise the unit class picks
// the rule: piece count × price, lump-sum price as-is, area with the
// total-price heuristic, or price × quantity. When the class-specific
// quantity is missing the item falls back to price × quantity if a
// quantity exists, or to the bare price. Rounding to 2 decimals happens
// here, once, not at display time.
func CalcLineTotal(v LineItem) float64 {
	if v.Prezzo == nil {
		return 0
	}
	price := *v.Prezzo

	switch ClassifyUnit(v.Um) {
	case UnitPiece:
		if v.Pz != nil {
			return round2(price * float64(*v.Pz))
		}
	case UnitLumpSum:
		return round2(price)
	case UnitArea:
		if v.Qta != nil {
			if price > areaTotalPriceThreshold && *v.Qta > areaTotalQtyThreshold {
				return round2(price)
			}
			return round2(price * *v.Qta)
		}
	}

	if v.Qta != nil {
		return round2(price * *v.Qta)
	}
	return round2(price)
}

// CalcPositionTotal sums the line totals of a position.
func CalcPositionTotal(p Position) float64 {
	var total float64
	for _, v := range p.Voci {
		total += CalcLineTotal(v)
	}
	return total
}

// QuoteTotals holds every derived amount of a quotation. Values are
// recomputed on each render; nothing is cached on the input.
type QuoteTotals struct {
	PositionTotals []float64 // parallel to Quotation.Posizioni
	Subtotal       float64   // imponibile: sum of position totals
	TaxAmount      float64   // subtotal × pct/100, rounded to 2 decimals
	GrandTotal     float64   // subtotal + tax amount
}

// CalcQuoteTotals rolls line totals up into position totals, the
// pre-tax subtotal, the tax amount and the grand total.
func CalcQuoteTotals(q Quotation) QuoteTotals {
	totals := QuoteTotals{
		PositionTotals: make([]float64, len(q.Posizioni)),
	}
	for i, pos := range q.Posizioni {
		totals.PositionTotals[i] = CalcPositionTotal(pos)
		totals.Subtotal += totals.PositionTotals[i]
	}
	totals.TaxAmount = round2(totals.Subtotal * q.IvaPercentuale / 100)
	totals.GrandTotal = totals.Subtotal + totals.TaxAmount
	return totals
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
