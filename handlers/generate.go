// Package handlers wires the quotation service onto the HTTP router.
package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase/core"

	"quotegeneration/services"
)

// quotationInput is the wire wrapper around the quotation payload.
type quotationInput struct {
	Output services.Quotation `json:"output"`
}

// decodeQuotation parses and validates a quotation payload. The target
// is pre-populated with defaults so fields absent from the JSON keep
// the default company info and tax rate.
func decodeQuotation(r io.Reader) (services.Quotation, error) {
	input := quotationInput{Output: services.NewQuotation()}
	if err := json.NewDecoder(r).Decode(&input); err != nil {
		return services.Quotation{}, fmt.Errorf("decode quotation: %w", err)
	}
	if err := input.Output.Validate(); err != nil {
		return services.Quotation{}, fmt.Errorf("validate quotation: %w", err)
	}
	return input.Output, nil
}

func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}

// HandleGenerateQuote returns a handler that renders a quotation
// payload into a PDF response.
func HandleGenerateQuote() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		q, err := decodeQuotation(e.Request.Body)
		if err != nil {
			log.Printf("generate: invalid payload: %v", err)
			return e.String(http.StatusBadRequest, fmt.Sprintf("Dati preventivo non validi: %v", err))
		}
		return respondQuotePDF(e, q)
	}
}

// respondQuotePDF runs the full pipeline for an already-validated
// quotation: logo fetch (with fallback), render, respond. Shared with
// the sample endpoint.
func respondQuotePDF(e *core.RequestEvent, q services.Quotation) error {
	logo := services.FetchLogo(nil, services.LogoURL)

	pdfBytes, err := services.GenerateQuotePDF(q, logo)
	if err != nil {
		log.Printf("generate: failed to render PDF for quote %s: %v", q.Numero, err)
		return e.String(http.StatusInternalServerError, fmt.Sprintf("Errore nella generazione del PDF: %v", err))
	}

	filename := fmt.Sprintf("preventivo_%s.pdf", sanitizeFilename(q.Numero))

	e.Response.Header().Set("Content-Type", "application/pdf")
	e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`inline; filename="%s"`, filename))
	e.Response.Write(pdfBytes)
	return nil
}

// HandleGenerateQuoteExcel returns a handler that renders a quotation
// payload into an Excel workbook.
func HandleGenerateQuoteExcel() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		q, err := decodeQuotation(e.Request.Body)
		if err != nil {
			log.Printf("generate: invalid payload: %v", err)
			return e.String(http.StatusBadRequest, fmt.Sprintf("Dati preventivo non validi: %v", err))
		}

		xlsxBytes, err := services.GenerateQuoteExcel(q)
		if err != nil {
			log.Printf("generate: failed to render Excel for quote %s: %v", q.Numero, err)
			return e.String(http.StatusInternalServerError, fmt.Sprintf("Errore nella generazione del file Excel: %v", err))
		}

		filename := fmt.Sprintf("preventivo_%s.xlsx", sanitizeFilename(q.Numero))

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}
