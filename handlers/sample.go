package handlers

import (
	"time"

	"github.com/pocketbase/pocketbase/core"

	"quotegeneration/services"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

// sampleQuotation builds the hardcoded villa example used by the
// try-it-out endpoint. The issue date is today.
func sampleQuotation() services.Quotation {
	q := services.NewQuotation()
	q.Numero = "1017/2025"
	q.Data = time.Now().Format("02/01/2006")
	q.Cliente = services.ClientInfo{
		Nome:      "MARIO ROSSI",
		Indirizzo: "VIA GARIBALDI 45",
		Citta:     "20121 Milano (MI)",
		Cantiere:  "VIA GARIBALDI 45 - RISTRUTTURAZIONE APPARTAMENTO",
	}
	q.Posizioni = []services.Position{
		{
			Numero: 1,
			Voci: []services.LineItem{
				{
					Descrizione: "Costruzione base edificio residenziale",
					Qta:         floatPtr(300),
					Um:          "mq",
					Prezzo:      floatPtr(800),
				},
				{
					Descrizione: "Maggiorazione tipologia villa singola",
					Pz:          intPtr(1),
					Qta:         floatPtr(1),
					Um:          "a corpo",
					Prezzo:      floatPtr(50000),
				},
				{
					Descrizione: "Maggiorazione 3 camere da letto e 2 bagni",
					Pz:          intPtr(1),
					Qta:         floatPtr(1),
					Um:          "a corpo",
					Prezzo:      floatPtr(25000),
				},
				{
					Descrizione: "Maggiorazione stile moderno",
					Pz:          intPtr(1),
					Qta:         floatPtr(1),
					Um:          "a corpo",
					Prezzo:      floatPtr(20000),
				},
				{
					Descrizione: "Impianto fotovoltaico 6kW",
					Pz:          intPtr(1),
					Qta:         floatPtr(1),
					Um:          "a corpo",
					Prezzo:      floatPtr(15000),
				},
				{
					Descrizione: "Riscaldamento a pavimento",
					Qta:         floatPtr(300),
					Um:          "mq",
					Prezzo:      floatPtr(45),
				},
			},
		},
	}
	return q
}

// HandleGenerateSample returns a handler that renders the built-in
// example quotation, exercising the same pipeline as the real endpoint.
func HandleGenerateSample() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return respondQuotePDF(e, sampleQuotation())
	}
}
