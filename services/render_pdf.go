package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateQuotePDF renders a quotation into PDF bytes. Totals are
// recomputed from the quotation on every call. The layout engine
// paginates the document first; only then, with the page count known,
// are the "Pagina X di N" footers stamped and the buffered pages
// emitted, one explicit maroto page per laid-out page.
// A nil logo selects the text fallback in the header.
func GenerateQuotePDF(q Quotation, logo []byte) ([]byte, error) {
	totals := CalcQuoteTotals(q)

	pages := paginate(buildQuoteLayout(q, totals, logo), contentHeight)
	pages = stampPageNumbers(pages, contentHeight)

	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(pageMarginLeft).
		WithTopMargin(pageMarginTop).
		WithRightMargin(pageMarginRight).
		WithBottomMargin(pageMarginBottom).
		Build()

	m := maroto.New(cfg)

	for _, p := range pages {
		mp := page.New()
		for _, r := range p.rows {
			mp.Add(buildRow(r))
		}
		m.AddPages(mp)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate quotation pdf: %w", err)
	}
	return doc.GetBytes(), nil
}

func buildRow(r layoutRow) core.Row {
	mr := row.New(r.height)
	if len(r.cells) == 0 {
		return mr
	}
	cols := make([]core.Col, 0, len(r.cells))
	for _, c := range r.cells {
		cols = append(cols, buildCol(c))
	}
	return mr.Add(cols...)
}

func buildCol(c layoutCell) core.Col {
	mc := col.New(c.cols)

	if c.image != nil {
		mc.Add(image.NewFromBytes(c.image, extension.Png, props.Rect{
			Center:  true,
			Percent: 90,
		}))
	} else {
		top := 1.0
		for _, ln := range c.lines {
			size := ln.size
			if size == 0 {
				size = 10 // blank spacer line inside a cell
			}
			if ln.text != "" {
				tp := textProps(ln, c)
				tp.Top = top
				mc.Add(text.New(ln.text, tp))
			}
			top += lineHeight(size)
		}
	}

	if st := cellStyle(c); st != nil {
		mc = mc.WithStyle(st)
	}
	return mc
}

func textProps(ln cellLine, c layoutCell) props.Text {
	style := fontstyle.Normal
	if ln.bold {
		style = fontstyle.Bold
	}
	return props.Text{
		Size:  ln.size,
		Style: style,
		Align: mapAlign(c.align),
		Color: mapColor(c.color),
	}
}

func mapAlign(a hAlign) align.Type {
	switch a {
	case alignCenter:
		return align.Center
	case alignRight:
		return align.Right
	default:
		return align.Left
	}
}

func mapColor(c *rgb) *props.Color {
	if c == nil {
		return nil
	}
	return &props.Color{Red: c.r, Green: c.g, Blue: c.b}
}

func cellStyle(c layoutCell) *props.Cell {
	if c.fill == nil && c.border == borderNone {
		return nil
	}

	st := &props.Cell{BackgroundColor: mapColor(c.fill)}
	if c.border != borderNone {
		st.BorderColor = &props.Color{Red: 0, Green: 0, Blue: 0}
		st.BorderThickness = 0.2
		switch c.border {
		case borderFull:
			st.BorderType = border.Full
		case borderLeft:
			st.BorderType = border.Left
		case borderTop:
			st.BorderType = border.Top
		case borderBottom:
			st.BorderType = border.Bottom
		}
	}
	return st
}
