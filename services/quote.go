// Package services implements the quotation pricing engine and the
// PDF/Excel document renderers.
package services

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// LineItem is a single billable row ("voce") of a quotation.
// Pz, Qta and Prezzo are pointers because their absence is meaningful
// to the pricing rules: a missing price always yields a zero total.
type LineItem struct {
	Descrizione string   `json:"descrizione"`
	Pz          *int     `json:"pz"`
	Qta         *float64 `json:"qta"`
	Um          string   `json:"um"`
	Prezzo      *float64 `json:"prezzo"`
}

// Position groups line items under one visible position number.
// The first item row carries the number label; a synthetic trailing
// row holds the position subtotal.
type Position struct {
	Numero int        `json:"numero"`
	Voci   []LineItem `json:"voci"`
}

// ClientInfo identifies the quotation recipient.
type ClientInfo struct {
	Nome      string `json:"nome"`
	Indirizzo string `json:"indirizzo"`
	Citta     string `json:"citta"`
	Cantiere  string `json:"cantiere"`
}

// CompanyInfo identifies the issuer. Every field is independently
// overridable by the caller; missing fields keep the defaults.
type CompanyInfo struct {
	Nome      string `json:"nome"`
	Indirizzo string `json:"indirizzo"`
	CapCitta  string `json:"cap_citta"`
	PIva      string `json:"p_iva"`
	Telefono  string `json:"telefono"`
	Email     string `json:"email"`
	Sito      string `json:"sito"`
}

// Quotation is the aggregate root consumed by the renderers.
type Quotation struct {
	Numero         string      `json:"numero"`
	Data           string      `json:"data"`
	Cliente        ClientInfo  `json:"cliente"`
	Azienda        CompanyInfo `json:"azienda"`
	Posizioni      []Position  `json:"posizioni"`
	IvaPercentuale float64     `json:"iva_percentuale"`
}

// DefaultCompanyInfo returns the issuer identity used when the caller
// does not override it.
func DefaultCompanyInfo() CompanyInfo {
	return CompanyInfo{
		Nome:      "AbitaLab",
		Indirizzo: "Via dell'Innovazione, 1",
		CapCitta:  "20121 Milano (MI)",
		PIva:      "P.Iva: 12345678901",
		Telefono:  "Tel. 02 12345678",
		Email:     "Mail: info@abitalab.it",
		Sito:      "Sito: www.abitalab.it",
	}
}

// NewQuotation returns a quotation pre-populated with defaults
// (company info and the 22% tax rate). Decoding a request payload on
// top of it leaves unspecified fields at their default values.
func NewQuotation() Quotation {
	return Quotation{
		Azienda:        DefaultCompanyInfo(),
		IvaPercentuale: 22.0,
	}
}

// Validate reports whether the quotation carries the minimum fields
// required for rendering.
func (q Quotation) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.Numero, validation.Required),
		validation.Field(&q.Data, validation.Required),
		validation.Field(&q.Cliente),
		validation.Field(&q.Posizioni, validation.Required),
	)
}

// Validate reports whether the client block carries all of its fields.
func (c ClientInfo) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Nome, validation.Required),
		validation.Field(&c.Indirizzo, validation.Required),
		validation.Field(&c.Citta, validation.Required),
		validation.Field(&c.Cantiere, validation.Required),
	)
}
