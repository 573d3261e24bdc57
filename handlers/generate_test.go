package handlers

import (
	"strings"
	"testing"

	"quotegeneration/services"
	"quotegeneration/testhelpers"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"quote number with slash", "1017/2025", "1017-2025"},
		{"backslashes", "a\\b", "a-b"},
		{"colons", "a:b", "a-b"},
		{"spaces", "numero 12", "numero-12"},
		{"plain", "1017", "1017"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizeFilename(tt.input)
			if got != tt.want {
				t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestQuotationFixture_EndToEnd(t *testing.T) {
	q := testhelpers.Quotation(t)

	totals := services.CalcQuoteTotals(q)
	if totals.Subtotal != 290000 {
		t.Errorf("subtotal = %v, want 290000", totals.Subtotal)
	}
	if totals.GrandTotal != 353800 {
		t.Errorf("grand total = %v, want 353800", totals.GrandTotal)
	}

	pdf, err := services.GenerateQuotePDF(q, nil)
	if err != nil {
		t.Fatalf("GenerateQuotePDF() error = %v", err)
	}
	if string(pdf[:5]) != "%PDF-" {
		t.Errorf("result does not start with PDF header, got %q", string(pdf[:5]))
	}
}

const validPayload = `{
  "output": {
    "numero": "1017/2025",
    "data": "30/07/2025",
    "cliente": {
      "nome": "MARIO ROSSI",
      "indirizzo": "VIA ROMA 123",
      "citta": "20121 Milano (MI)",
      "cantiere": "VIA ROMA 123"
    },
    "posizioni": [
      {
        "numero": 1,
        "voci": [
          {"descrizione": "Opera", "um": "a corpo", "prezzo": 200000.0}
        ]
      }
    ]
  }
}`

func TestDecodeQuotation_Defaults(t *testing.T) {
	q, err := decodeQuotation(strings.NewReader(validPayload))
	if err != nil {
		t.Fatalf("decodeQuotation() error = %v", err)
	}

	if q.Numero != "1017/2025" {
		t.Errorf("numero = %q", q.Numero)
	}
	if q.IvaPercentuale != 22 {
		t.Errorf("default iva = %v, want 22", q.IvaPercentuale)
	}
	if q.Azienda.Nome != "AbitaLab" {
		t.Errorf("default company name = %q, want AbitaLab", q.Azienda.Nome)
	}
	if q.Azienda.PIva != "P.Iva: 12345678901" {
		t.Errorf("default company tax id = %q", q.Azienda.PIva)
	}
}

func TestDecodeQuotation_PartialCompanyOverride(t *testing.T) {
	payload := strings.Replace(validPayload,
		`"posizioni"`,
		`"azienda": {"nome": "Altra Srl"}, "posizioni"`, 1)

	q, err := decodeQuotation(strings.NewReader(payload))
	if err != nil {
		t.Fatalf("decodeQuotation() error = %v", err)
	}
	if q.Azienda.Nome != "Altra Srl" {
		t.Errorf("company name = %q, want override", q.Azienda.Nome)
	}
	// Fields not named in the payload keep their defaults.
	if q.Azienda.Telefono != "Tel. 02 12345678" {
		t.Errorf("company phone = %q, want default", q.Azienda.Telefono)
	}
}

func TestDecodeQuotation_TaxOverride(t *testing.T) {
	payload := strings.Replace(validPayload,
		`"posizioni"`,
		`"iva_percentuale": 10.0, "posizioni"`, 1)

	q, err := decodeQuotation(strings.NewReader(payload))
	if err != nil {
		t.Fatalf("decodeQuotation() error = %v", err)
	}
	if q.IvaPercentuale != 10 {
		t.Errorf("iva = %v, want 10", q.IvaPercentuale)
	}
}

func TestDecodeQuotation_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"malformed json", `{"output": `},
		{"missing numero", `{"output": {"data": "30/07/2025", "cliente": {"nome": "A", "indirizzo": "B", "citta": "C", "cantiere": "D"}, "posizioni": [{"numero": 1, "voci": []}]}}`},
		{"missing client name", `{"output": {"numero": "1", "data": "30/07/2025", "cliente": {"indirizzo": "B", "citta": "C", "cantiere": "D"}, "posizioni": [{"numero": 1, "voci": []}]}}`},
		{"no positions", `{"output": {"numero": "1", "data": "30/07/2025", "cliente": {"nome": "A", "indirizzo": "B", "citta": "C", "cantiere": "D"}}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := decodeQuotation(strings.NewReader(tt.payload)); err == nil {
				t.Error("decodeQuotation() accepted invalid payload")
			}
		})
	}
}
