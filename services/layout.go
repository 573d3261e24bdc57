package services

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// Page geometry in millimeters (A4 portrait). The footer band at the
// bottom of every page is reserved for the page number, so flowed
// content never overlaps it.
const (
	pageMarginLeft   = 15.0
	pageMarginRight  = 15.0
	pageMarginTop    = 15.0
	pageMarginBottom = 10.0

	usableWidth   = 210.0 - pageMarginLeft - pageMarginRight
	footerHeight  = 6.0
	contentHeight = 297.0 - pageMarginTop - pageMarginBottom - footerHeight

	gridCols = 12
	ptToMM   = 25.4 / 72.0
)

// Position-table column widths in grid units. They sum to gridCols.
const (
	colWidthPos   = 1
	colWidthDesc  = 4
	colWidthPz    = 1
	colWidthQta   = 1
	colWidthUm    = 1
	colWidthPrice = 2
	colWidthTotal = 2
)

const tableFontSize = 8.0

type hAlign int

const (
	alignLeft hAlign = iota
	alignCenter
	alignRight
)

type cellBorder int

const (
	borderNone cellBorder = iota
	borderFull
	borderLeft // side edge only, used for the vertical position-label span
	borderTop
	borderBottom
)

type rgb struct{ r, g, b int }

var (
	tableHeaderBg   = rgb{0, 51, 102}
	tableHeaderText = rgb{245, 245, 245}
)

// cellLine is one line of text inside a cell, with its own size and
// weight so a single cell can stack differently styled lines (the
// company block stacks a 16pt name over 9pt detail lines).
type cellLine struct {
	text string
	size float64
	bold bool
}

// layoutCell occupies a number of grid columns inside a row. It either
// holds stacked text lines or an image (the logo).
type layoutCell struct {
	cols   int
	align  hAlign
	border cellBorder
	fill   *rgb
	color  *rgb
	image  []byte
	lines  []cellLine
}

// layoutRow is a horizontal slice of the page with a fixed height.
// A row without cells is a spacer.
type layoutRow struct {
	height float64
	cells  []layoutCell
}

type blockKind int

const (
	blockFlow  blockKind = iota // rows flow onto pages, breaking anywhere
	blockTable                  // rows re-emit the header row after each page break
	blockBreak                  // forced page break
)

// layoutBlock is one unit of the fixed document sequence. Table blocks
// carry the header row that must repeat at the top of every page the
// table spans.
type layoutBlock struct {
	kind   blockKind
	header layoutRow
	rows   []layoutRow
}

// layoutPage is a fully laid-out page: its rows and the height they consume.
type layoutPage struct {
	rows []layoutRow
	used float64
}

func textCell(cols int, text string, size float64, bold bool, align hAlign) layoutCell {
	return layoutCell{
		cols:  cols,
		align: align,
		lines: []cellLine{{text: text, size: size, bold: bold}},
	}
}

func spacerRow(height float64) layoutRow {
	return layoutRow{height: height}
}

// lineHeight is the vertical advance for a text line of the given font
// size, with leading.
func lineHeight(size float64) float64 {
	return size * ptToMM * 1.5
}

// estimateLines approximates how many lines a text wraps into within
// widthMM at the given font size, assuming an average glyph width of
// half an em (Helvetica body text).
func estimateLines(text string, widthMM, size float64) int {
	if text == "" {
		return 1
	}
	charWidth := size * 0.5 * ptToMM
	perLine := int(widthMM / charWidth)
	if perLine < 1 {
		perLine = 1
	}
	runes := utf8.RuneCountInString(text)
	lines := (runes + perLine - 1) / perLine
	if lines < 1 {
		lines = 1
	}
	return lines
}

// colWidthMM converts grid columns to millimeters of usable width.
func colWidthMM(cols int) float64 {
	return usableWidth * float64(cols) / float64(gridCols)
}

// buildQuoteLayout assembles the fixed block sequence of a quotation
// document: header, info block, intro sentence, one table per
// position, totals summary, signature, page break, legal text.
// A nil logo selects the text fallback in the header.
func buildQuoteLayout(q Quotation, totals QuoteTotals, logo []byte) []layoutBlock {
	blocks := []layoutBlock{
		headerBlock(q.Azienda, logo),
		infoBlock(q),
		introBlock(),
	}
	for i, pos := range q.Posizioni {
		blocks = append(blocks, positionTable(pos, totals.PositionTotals[i]))
		blocks = append(blocks, layoutBlock{kind: blockFlow, rows: []layoutRow{spacerRow(5)}})
	}
	blocks = append(blocks,
		totalsBlock(q.IvaPercentuale, totals),
		signatureBlock(),
		layoutBlock{kind: blockBreak},
		legalBlock(),
	)
	return blocks
}

// headerBlock lays out the logo (or the bold company-name fallback) on
// the left and the stacked company identity lines on the right.
func headerBlock(az CompanyInfo, logo []byte) layoutBlock {
	var left layoutCell
	if logo != nil {
		left = layoutCell{cols: 5, image: logo}
	} else {
		left = textCell(5, az.Nome, 16, true, alignCenter)
	}

	right := layoutCell{
		cols:  7,
		align: alignLeft,
		lines: []cellLine{
			{text: az.Nome, size: 16, bold: true},
			{text: az.Indirizzo, size: 9},
			{text: az.CapCitta, size: 9},
			{text: az.PIva, size: 9},
			{text: az.Telefono, size: 9},
			{text: az.Email, size: 9},
			{text: az.Sito, size: 9},
		},
	}

	return layoutBlock{kind: blockFlow, rows: []layoutRow{
		{height: 34, cells: []layoutCell{left, right}},
		spacerRow(8),
	}}
}

// infoBlock lays out date, quote number and site label on the left and
// the client address block on the right.
func infoBlock(q Quotation) layoutBlock {
	left := layoutCell{
		cols:  6,
		align: alignLeft,
		lines: []cellLine{
			{text: "Data: " + q.Data, size: 10},
			{text: ""},
			{text: "Preventivo N. " + q.Numero, size: 10, bold: true},
			{text: ""},
			{text: "Cantiere: " + q.Cliente.Cantiere, size: 10},
		},
	}
	right := layoutCell{
		cols:  6,
		align: alignLeft,
		lines: []cellLine{
			{text: "Spett.le", size: 10},
			{text: q.Cliente.Nome, size: 10, bold: true},
			{text: q.Cliente.Indirizzo, size: 10},
			{text: q.Cliente.Citta, size: 10},
		},
	}
	return layoutBlock{kind: blockFlow, rows: []layoutRow{
		{height: 30, cells: []layoutCell{left, right}},
		spacerRow(8),
	}}
}

func introBlock() layoutBlock {
	const intro = "RingraziandoVi per la gentile richiesta, siamo a sottoporre alla Vostra attenzione la nostra migliore offerta:"
	h := float64(estimateLines(intro, usableWidth, 10))*lineHeight(10) + 2
	return layoutBlock{kind: blockFlow, rows: []layoutRow{
		{height: h, cells: []layoutCell{textCell(gridCols, intro, 10, false, alignLeft)}},
		spacerRow(4),
	}}
}

// positionTable builds the repeating header row and the item rows of
// one position, closed by the synthetic bold "Totale Posizione" row.
// The position-number cell is rendered once and continued downward
// with side-only borders, which reads as a vertical span; with a
// single item there is nothing to span.
func positionTable(pos Position, posTotal float64) layoutBlock {
	header := tableHeaderRow()

	var rows []layoutRow
	for i, voce := range pos.Voci {
		rows = append(rows, itemRow(pos.Numero, i == 0, voce))
	}

	rows = append(rows, layoutRow{height: 6, cells: []layoutCell{
		{cols: colWidthPos, border: borderFull},
		bordered(textCell(gridCols-colWidthPos-colWidthTotal, "Totale Posizione", tableFontSize, true, alignRight)),
		bordered(textCell(colWidthTotal, FormatEuro(posTotal), tableFontSize, true, alignRight)),
	}})

	return layoutBlock{kind: blockTable, header: header, rows: rows}
}

func tableHeaderRow() layoutRow {
	headers := []struct {
		label string
		cols  int
	}{
		{"Pos.", colWidthPos},
		{"Descrizione", colWidthDesc},
		{"Pz", colWidthPz},
		{"Qtà", colWidthQta},
		{"U.M.", colWidthUm},
		{"Prezzo", colWidthPrice},
		{"Totale", colWidthTotal},
	}

	cells := make([]layoutCell, 0, len(headers))
	for _, h := range headers {
		c := textCell(h.cols, h.label, tableFontSize, true, alignCenter)
		c.border = borderFull
		c.fill = &tableHeaderBg
		c.color = &tableHeaderText
		cells = append(cells, c)
	}
	return layoutRow{height: 6, cells: cells}
}

func itemRow(posNumber int, first bool, voce LineItem) layoutRow {
	descLines := estimateLines(voce.Descrizione, colWidthMM(colWidthDesc)-2, tableFontSize)
	height := float64(descLines)*lineHeight(tableFontSize) + 2.5
	if height < 6 {
		height = 6
	}

	posCell := layoutCell{cols: colWidthPos, align: alignCenter, border: borderLeft}
	if first {
		posCell = textCell(colWidthPos, strconv.Itoa(posNumber), tableFontSize, true, alignCenter)
		posCell.border = borderFull
	}

	pz := ""
	if voce.Pz != nil {
		pz = strconv.Itoa(*voce.Pz)
	}
	qta := ""
	if voce.Qta != nil {
		qta = FormatNumber(*voce.Qta)
	}
	prezzo := ""
	if voce.Prezzo != nil {
		prezzo = FormatEuro(*voce.Prezzo)
	}

	cells := []layoutCell{
		posCell,
		bordered(textCell(colWidthDesc, voce.Descrizione, tableFontSize, false, alignLeft)),
		bordered(textCell(colWidthPz, pz, tableFontSize, false, alignCenter)),
		bordered(textCell(colWidthQta, qta, tableFontSize, false, alignCenter)),
		bordered(textCell(colWidthUm, voce.Um, tableFontSize, false, alignCenter)),
		bordered(textCell(colWidthPrice, prezzo, tableFontSize, false, alignRight)),
		bordered(textCell(colWidthTotal, FormatEuro(CalcLineTotal(voce)), tableFontSize, false, alignRight)),
	}
	return layoutRow{height: height, cells: cells}
}

func bordered(c layoutCell) layoutCell {
	c.border = borderFull
	return c
}

// totalsBlock renders imponibile, tax (labelled with the whole-number
// percentage) and the bold grand total with a rule above it.
func totalsBlock(taxPct float64, totals QuoteTotals) layoutBlock {
	summaryRow := func(label, value string, bold bool, border cellBorder) layoutRow {
		labelCell := textCell(gridCols-colWidthTotal-colWidthPrice, label, 10, bold, alignRight)
		valueCell := textCell(colWidthTotal+colWidthPrice, value, 10, true, alignRight)
		labelCell.border = border
		valueCell.border = border
		return layoutRow{height: 7, cells: []layoutCell{labelCell, valueCell}}
	}

	taxLabel := fmt.Sprintf("IVA %.0f%%", taxPct)
	return layoutBlock{kind: blockFlow, rows: []layoutRow{
		spacerRow(4),
		summaryRow("Imponibile", FormatEuro(totals.Subtotal), false, borderBottom),
		summaryRow(taxLabel, FormatEuro(totals.TaxAmount), false, borderBottom),
		summaryRow("Totale Preventivo", FormatEuro(totals.GrandTotal), true, borderTop),
	}}
}

func signatureBlock() layoutBlock {
	prompt := textCell(gridCols, "Timbro e Firma del Cliente per Accettazione", 10, false, alignCenter)
	line := layoutCell{cols: 4, border: borderBottom}
	return layoutBlock{kind: blockFlow, rows: []layoutRow{
		spacerRow(16),
		{height: 6, cells: []layoutCell{prompt}},
		spacerRow(4),
		{height: 5, cells: []layoutCell{{cols: 4}, line, {cols: 4}}},
	}}
}

// legalBlock renders the fixed boilerplate: validity, payment terms,
// delivery terms, exclusions and the data-protection notice.
func legalBlock() layoutBlock {
	paragraphs := []struct {
		text  string
		title bool
	}{
		{"Condizioni Generali", true},
		{"Validità dell'offerta: La presente offerta è valida per 30 giorni dalla data di emissione.", false},
		{"Condizioni di pagamento: Le modalità di pagamento saranno concordate in fase di contratto definitivo.", false},
		{"Tempi di consegna: I tempi di consegna sono indicativi e verranno confermati al momento dell'ordine definitivo.", false},
		{"Note: Eventuali opere non esplicitamente menzionate in questo preventivo sono da considerarsi escluse.", false},
		{"", false},
		{"Trattamento dei dati personali", true},
		{"Ai sensi del Reg. UE n. 679/2016 (GDPR), i dati personali forniti saranno trattati per le finalità connesse all'esecuzione del presente rapporto pre-contrattuale e contrattuale.", false},
	}

	var rows []layoutRow
	for _, p := range paragraphs {
		if p.text == "" {
			rows = append(rows, spacerRow(8))
			continue
		}
		h := float64(estimateLines(p.text, usableWidth, 8))*lineHeight(8) + 1.5
		rows = append(rows, layoutRow{
			height: h,
			cells:  []layoutCell{textCell(gridCols, p.text, 8, p.title, alignLeft)},
		})
	}
	return layoutBlock{kind: blockFlow, rows: rows}
}

// paginate distributes blocks onto pages of the given usable height.
// Table blocks keep their header row attached to the first item row
// and re-emit it at the top of every page they continue onto.
func paginate(blocks []layoutBlock, usable float64) []layoutPage {
	var pages []layoutPage
	var cur layoutPage

	breakPage := func() {
		pages = append(pages, cur)
		cur = layoutPage{}
	}
	fits := func(h float64) bool {
		return cur.used+h <= usable
	}
	add := func(r layoutRow) {
		cur.rows = append(cur.rows, r)
		cur.used += r.height
	}

	for _, b := range blocks {
		switch b.kind {
		case blockBreak:
			breakPage()
		case blockFlow:
			for _, r := range b.rows {
				if !fits(r.height) {
					breakPage()
				}
				add(r)
			}
		case blockTable:
			need := b.header.height
			if len(b.rows) > 0 {
				need += b.rows[0].height
			}
			if !fits(need) {
				breakPage()
			}
			add(b.header)
			for _, r := range b.rows {
				if !fits(r.height) {
					breakPage()
					add(b.header)
				}
				add(r)
			}
		}
	}
	pages = append(pages, cur)
	return pages
}

// stampPageNumbers is the second layout pass: only after pagination is
// the total page count known, so each buffered page is padded to full
// height and closed with its right-aligned "Pagina X di N" footer.
func stampPageNumbers(pages []layoutPage, usable float64) []layoutPage {
	total := len(pages)
	for i := range pages {
		if gap := usable - pages[i].used; gap > 0 {
			pages[i].rows = append(pages[i].rows, spacerRow(gap))
		}
		footer := layoutRow{
			height: footerHeight,
			cells: []layoutCell{
				textCell(gridCols, fmt.Sprintf("Pagina %d di %d", i+1, total), 8, false, alignRight),
			},
		}
		pages[i].rows = append(pages[i].rows, footer)
		pages[i].used = usable + footerHeight
	}
	return pages
}
