// Package testhelpers provides shared fixtures for quotation tests.
package testhelpers

import (
	"testing"

	"quotegeneration/services"
)

// IntPtr returns a pointer to v.
func IntPtr(v int) *int { return &v }

// FloatPtr returns a pointer to v.
func FloatPtr(v float64) *float64 { return &v }

// Quotation builds a small but complete quotation: one position with
// an area-priced item (mq 800 × 300) and a lump-sum item (50000), so
// the expected totals are 290000.00 before tax and, at the default
// 22%, 63800.00 tax and 353800.00 grand total.
func Quotation(t *testing.T) services.Quotation {
	t.Helper()

	q := services.NewQuotation()
	q.Numero = "1017/2025"
	q.Data = "30/07/2025"
	q.Cliente = services.ClientInfo{
		Nome:      "MARIO ROSSI",
		Indirizzo: "VIA ROMA 123",
		Citta:     "20121 Milano (MI)",
		Cantiere:  "VIA ROMA 123",
	}
	q.Posizioni = []services.Position{
		{
			Numero: 1,
			Voci: []services.LineItem{
				{
					Descrizione: "Costruzione base edificio residenziale",
					Qta:         FloatPtr(300),
					Um:          "mq",
					Prezzo:      FloatPtr(800),
				},
				{
					Descrizione: "Maggiorazione tipologia villa singola",
					Pz:          IntPtr(1),
					Qta:         FloatPtr(1),
					Um:          "a corpo",
					Prezzo:      FloatPtr(50000),
				},
			},
		},
	}
	return q
}
