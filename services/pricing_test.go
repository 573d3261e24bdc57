package services

import (
	"math"
	"testing"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

func TestClassifyUnit(t *testing.T) {
	tests := []struct {
		name string
		um   string
		want UnitClass
	}{
		{"piece lowercase", "pz", UnitPiece},
		{"piece uppercase", "PZ", UnitPiece},
		{"piece embedded", "n. pz", UnitPiece},
		{"lump sum", "a corpo", UnitLumpSum},
		{"lump sum uppercase", "A CORPO", UnitLumpSum},
		{"area", "mq", UnitArea},
		{"area mixed case", "Mq", UnitArea},
		{"linear meters", "ml", UnitOther},
		{"kilograms", "kg", UnitOther},
		{"empty", "", UnitOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyUnit(tt.um)
			if got != tt.want {
				t.Errorf("ClassifyUnit(%q) = %v, want %v", tt.um, got, tt.want)
			}
		})
	}
}

func TestCalcLineTotal(t *testing.T) {
	tests := []struct {
		name string
		item LineItem
		want float64
	}{
		{"no price", LineItem{Um: "mq", Qta: fptr(100)}, 0},
		{"no price no anything", LineItem{}, 0},
		{"piece with count", LineItem{Um: "pz", Pz: iptr(3), Prezzo: fptr(12.5)}, 37.5},
		{"piece without count falls back to quantity", LineItem{Um: "pz", Qta: fptr(4), Prezzo: fptr(10)}, 40},
		{"piece without count or quantity", LineItem{Um: "pz", Prezzo: fptr(10)}, 10},
		{"lump sum", LineItem{Um: "a corpo", Prezzo: fptr(50000)}, 50000},
		{"lump sum ignores quantity", LineItem{Um: "a corpo", Qta: fptr(300), Prezzo: fptr(50000)}, 50000},
		{"area per-unit", LineItem{Um: "mq", Qta: fptr(300), Prezzo: fptr(800)}, 240000},
		{"area already-total", LineItem{Um: "mq", Qta: fptr(15), Prezzo: fptr(12000)}, 12000},
		{"area price at threshold stays per-unit", LineItem{Um: "mq", Qta: fptr(15), Prezzo: fptr(10000)}, 150000},
		{"area qty at threshold stays per-unit", LineItem{Um: "mq", Qta: fptr(10), Prezzo: fptr(12000)}, 120000},
		{"area without quantity", LineItem{Um: "mq", Prezzo: fptr(800)}, 800},
		{"other unit with quantity", LineItem{Um: "ml", Qta: fptr(12), Prezzo: fptr(7.25)}, 87},
		{"no unit with quantity", LineItem{Qta: fptr(2.5), Prezzo: fptr(3.333)}, 8.33},
		{"price alone", LineItem{Prezzo: fptr(99.999)}, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalcLineTotal(tt.item)
			if got != tt.want {
				t.Errorf("CalcLineTotal(%+v) = %v, want %v", tt.item, got, tt.want)
			}
		})
	}
}

func TestCalcPositionTotal(t *testing.T) {
	pos := Position{
		Numero: 1,
		Voci: []LineItem{
			{Um: "mq", Qta: fptr(300), Prezzo: fptr(800)},
			{Um: "a corpo", Prezzo: fptr(50000)},
			{Um: "pz"}, // no price
		},
	}

	got := CalcPositionTotal(pos)
	if got != 290000 {
		t.Errorf("CalcPositionTotal() = %v, want 290000", got)
	}
}

func TestCalcQuoteTotals(t *testing.T) {
	q := Quotation{
		IvaPercentuale: 22,
		Posizioni: []Position{
			{Numero: 1, Voci: []LineItem{{Um: "a corpo", Prezzo: fptr(60)}}},
			{Numero: 2, Voci: []LineItem{{Um: "a corpo", Prezzo: fptr(40)}}},
		},
	}

	totals := CalcQuoteTotals(q)

	if len(totals.PositionTotals) != 2 {
		t.Fatalf("PositionTotals length = %d, want 2", len(totals.PositionTotals))
	}
	if totals.PositionTotals[0] != 60 || totals.PositionTotals[1] != 40 {
		t.Errorf("PositionTotals = %v, want [60 40]", totals.PositionTotals)
	}
	if totals.Subtotal != 100 {
		t.Errorf("Subtotal = %v, want 100", totals.Subtotal)
	}
	if totals.TaxAmount != 22 {
		t.Errorf("TaxAmount = %v, want 22", totals.TaxAmount)
	}
	if totals.GrandTotal != 122 {
		t.Errorf("GrandTotal = %v, want 122", totals.GrandTotal)
	}
}

func TestCalcQuoteTotals_VillaExample(t *testing.T) {
	// One position, two items: mq 800 × 300 plus a 50000 lump sum.
	q := Quotation{
		IvaPercentuale: 22,
		Posizioni: []Position{
			{
				Numero: 1,
				Voci: []LineItem{
					{Descrizione: "Costruzione base", Um: "mq", Qta: fptr(300), Prezzo: fptr(800)},
					{Descrizione: "Villa singola", Um: "a corpo", Prezzo: fptr(50000)},
				},
			},
		},
	}

	totals := CalcQuoteTotals(q)

	if totals.PositionTotals[0] != 290000 {
		t.Errorf("position total = %v, want 290000", totals.PositionTotals[0])
	}
	if totals.TaxAmount != 63800 {
		t.Errorf("TaxAmount = %v, want 63800", totals.TaxAmount)
	}
	if totals.GrandTotal != 353800 {
		t.Errorf("GrandTotal = %v, want 353800", totals.GrandTotal)
	}
}

func TestCalcQuoteTotals_Empty(t *testing.T) {
	totals := CalcQuoteTotals(Quotation{IvaPercentuale: 22})
	if totals.Subtotal != 0 || totals.TaxAmount != 0 || totals.GrandTotal != 0 {
		t.Errorf("empty quotation totals = %+v, want all zero", totals)
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1.234, 1.23},
		{1.236, 1.24},
		{-1.236, -1.24},
		{0, 0},
	}
	for _, tt := range tests {
		got := round2(tt.in)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
