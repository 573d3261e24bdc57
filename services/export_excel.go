package services

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// GenerateQuoteExcel renders a quotation as an Excel workbook with the
// same content as the PDF: issuer and client blocks, one table per
// position with its subtotal row, and the final totals.
func GenerateQuoteExcel(q Quotation) ([]byte, error) {
	totals := CalcQuoteTotals(q)

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Preventivo"
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	// Column references (A through G).
	columns := []string{"A", "B", "C", "D", "E", "F", "G"}
	lastCol := columns[len(columns)-1]

	widths := []float64{6, 50, 6, 8, 8, 16, 16}
	for i, c := range columns {
		if err := f.SetColWidth(sheetName, c, c, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", c, err)
		}
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#003366"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	itemStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create item style: %w", err)
	}

	boldRightStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 10},
		Alignment: &excelize.Alignment{Horizontal: "right"},
		Border:    thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create bold style: %w", err)
	}

	totalsStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create totals style: %w", err)
	}

	// ── Document head ───────────────────────────────────────────────────

	rowNum := 1
	setMerged := func(value string, style int) error {
		cell := "A" + strconv.Itoa(rowNum)
		if err := f.MergeCell(sheetName, cell, lastCol+strconv.Itoa(rowNum)); err != nil {
			return fmt.Errorf("merge %s: %w", cell, err)
		}
		if err := f.SetCellValue(sheetName, cell, value); err != nil {
			return fmt.Errorf("set %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, style); err != nil {
			return fmt.Errorf("style %s: %w", cell, err)
		}
		rowNum++
		return nil
	}

	headLines := []struct {
		value string
		style int
	}{
		{q.Azienda.Nome, titleStyle},
		{q.Azienda.Indirizzo + " - " + q.Azienda.CapCitta, subtitleStyle},
		{q.Azienda.PIva, subtitleStyle},
		{"", subtitleStyle},
		{"Preventivo N. " + q.Numero + " del " + q.Data, titleStyle},
		{"Spett.le " + q.Cliente.Nome + " - " + q.Cliente.Indirizzo + ", " + q.Cliente.Citta, subtitleStyle},
		{"Cantiere: " + q.Cliente.Cantiere, subtitleStyle},
		{"", subtitleStyle},
	}
	for _, line := range headLines {
		if err := setMerged(line.value, line.style); err != nil {
			return nil, err
		}
	}

	// ── Position tables ─────────────────────────────────────────────────

	headers := []string{"Pos.", "Descrizione", "Pz", "Qtà", "U.M.", "Prezzo", "Totale"}

	for posIdx, pos := range q.Posizioni {
		headerRow := strconv.Itoa(rowNum)
		for i, h := range headers {
			cell := columns[i] + headerRow
			if err := f.SetCellValue(sheetName, cell, h); err != nil {
				return nil, fmt.Errorf("set header %s: %w", cell, err)
			}
		}
		if err := f.SetCellStyle(sheetName, "A"+headerRow, lastCol+headerRow, headerStyle); err != nil {
			return nil, fmt.Errorf("style header row: %w", err)
		}
		rowNum++

		for i, voce := range pos.Voci {
			r := strconv.Itoa(rowNum)
			if i == 0 {
				if err := f.SetCellValue(sheetName, "A"+r, pos.Numero); err != nil {
					return nil, fmt.Errorf("set position number: %w", err)
				}
			}
			values := map[string]any{
				"B": voce.Descrizione,
				"G": FormatEuro(CalcLineTotal(voce)),
			}
			if voce.Pz != nil {
				values["C"] = *voce.Pz
			}
			if voce.Qta != nil {
				values["D"] = FormatNumber(*voce.Qta)
			}
			if voce.Um != "" {
				values["E"] = voce.Um
			}
			if voce.Prezzo != nil {
				values["F"] = FormatEuro(*voce.Prezzo)
			}
			for c, v := range values {
				if err := f.SetCellValue(sheetName, c+r, v); err != nil {
					return nil, fmt.Errorf("set cell %s%s: %w", c, r, err)
				}
			}
			if err := f.SetCellStyle(sheetName, "A"+r, lastCol+r, itemStyle); err != nil {
				return nil, fmt.Errorf("style item row: %w", err)
			}
			rowNum++
		}

		// Position subtotal row: label merged B..F, value in G.
		r := strconv.Itoa(rowNum)
		if err := f.MergeCell(sheetName, "B"+r, "F"+r); err != nil {
			return nil, fmt.Errorf("merge subtotal row: %w", err)
		}
		if err := f.SetCellValue(sheetName, "B"+r, "Totale Posizione"); err != nil {
			return nil, fmt.Errorf("set subtotal label: %w", err)
		}
		if err := f.SetCellValue(sheetName, "G"+r, FormatEuro(totals.PositionTotals[posIdx])); err != nil {
			return nil, fmt.Errorf("set subtotal value: %w", err)
		}
		if err := f.SetCellStyle(sheetName, "A"+r, lastCol+r, boldRightStyle); err != nil {
			return nil, fmt.Errorf("style subtotal row: %w", err)
		}
		rowNum += 2
	}

	// ── Final totals ────────────────────────────────────────────────────

	finalRows := []struct {
		label string
		value string
	}{
		{"Imponibile", FormatEuro(totals.Subtotal)},
		{fmt.Sprintf("IVA %.0f%%", q.IvaPercentuale), FormatEuro(totals.TaxAmount)},
		{"Totale Preventivo", FormatEuro(totals.GrandTotal)},
	}
	for _, fr := range finalRows {
		r := strconv.Itoa(rowNum)
		if err := f.SetCellValue(sheetName, "F"+r, fr.label); err != nil {
			return nil, fmt.Errorf("set totals label: %w", err)
		}
		if err := f.SetCellValue(sheetName, "G"+r, fr.value); err != nil {
			return nil, fmt.Errorf("set totals value: %w", err)
		}
		if err := f.SetCellStyle(sheetName, "F"+r, "G"+r, totalsStyle); err != nil {
			return nil, fmt.Errorf("style totals row: %w", err)
		}
		rowNum++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write excel buffer: %w", err)
	}
	return buf.Bytes(), nil
}

func thinBorders() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "#000000", Style: 1},
		{Type: "right", Color: "#000000", Style: 1},
		{Type: "top", Color: "#000000", Style: 1},
		{Type: "bottom", Color: "#000000", Style: 1},
	}
}
