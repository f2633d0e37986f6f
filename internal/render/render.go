// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render lays out the extracted chapters as a paginated PDF: title
// page, table of contents, one numbered chapter per source file, and page
// footers. Page numbers for the table of contents are unknown until the
// content is measured, so the document is laid out twice with identical
// geometry: the first pass records the page each chapter header lands on,
// the second pass renders the table of contents with the resolved numbers.
package render

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/pdiddy/tcdoc/internal/highlight"
	"github.com/pdiddy/tcdoc/pkg/types"
)

// Layout is the resolved page geometry of a rendered document.
type Layout struct {
	// Entries holds one ToC row per chapter with the page its header
	// appears on.
	Entries []types.TOCEntry
	// Pages is the total page count.
	Pages int
}

// Document renders the chapters to a PDF at outPath and returns the
// resolved layout. An unwritable destination yields an error wrapping
// types.ErrWriteOutput; nothing is written in that case.
func Document(chapters []types.Chapter, cfg types.RenderConfig, outPath string) (Layout, error) {
	keywords := highlight.DefaultKeywords()
	if len(cfg.Keywords) > 0 {
		keywords = highlight.NewSet(cfg.Keywords)
	}
	genDate := time.Now().Format("2006-01-02")

	measured, layout := build(chapters, cfg, keywords, genDate, nil)
	if err := measured.Error(); err != nil {
		return Layout{}, fmt.Errorf("measuring layout: %w", err)
	}

	final, layout := build(chapters, cfg, keywords, genDate, layout.Entries)

	var buf bytes.Buffer
	if err := final.Output(&buf); err != nil {
		return Layout{}, fmt.Errorf("rendering PDF: %w", err)
	}
	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		return Layout{}, fmt.Errorf("%w: %s: %v", types.ErrWriteOutput, outPath, err)
	}
	return layout, nil
}

// build lays out the full document once. When resolved is nil the ToC page
// numbers are left blank (measuring pass); the row geometry is the same
// either way, so both passes paginate identically.
func build(chapters []types.Chapter, cfg types.RenderConfig, keywords map[string]bool, genDate string, resolved []types.TOCEntry) (*gofpdf.Fpdf, Layout) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetTitle(cfg.Title, true)
	pdf.SetCreator("tcdoc", true)
	pdf.SetMargins(cfg.MarginMM, cfg.MarginMM, cfg.MarginMM)
	pdf.SetAutoPageBreak(true, cfg.MarginMM)
	pdf.AliasNbPages("")

	meta := fmt.Sprintf("tcdoc, generated %s", genDate)
	pdf.SetFooterFunc(func() {
		if pdf.PageNo() == 1 {
			return
		}
		pdf.SetY(-15)
		pdf.SetFont(cfg.HeadingFont, "", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 10, tr(meta), "", 0, "L", false, 0, "")
		pdf.SetY(-15)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	text := cfg.Theme.Text

	// Title page.
	pdf.AddPage()
	pdf.SetY(80)
	pdf.SetFont(cfg.HeadingFont, "B", 24)
	pdf.SetTextColor(text.R, text.G, text.B)
	pdf.CellFormat(0, 12, tr(cfg.Title), "", 1, "C", false, 0, "")
	pdf.Ln(8)
	pdf.SetFont(cfg.HeadingFont, "", 11)
	pdf.CellFormat(0, 6, tr("Generated on "+genDate), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Source files: %d", len(chapters)), "", 1, "C", false, 0, "")

	// Table of contents.
	pdf.AddPage()
	pdf.SetFont(cfg.HeadingFont, "B", 14)
	pdf.CellFormat(0, 8, "Table of Contents", "", 1, "L", false, 0, "")
	pdf.Ln(4)
	pageW, _ := pdf.GetPageSize()
	titleW := pageW - 2*cfg.MarginMM - 14
	for i, ch := range chapters {
		page := ""
		if resolved != nil {
			page = strconv.Itoa(resolved[i].Page)
		}
		pdf.SetFont(cfg.HeadingFont, "", 10)
		pdf.CellFormat(titleW, 6, tr(fmt.Sprintf("%d  %s", ch.Number, ch.Title)), "", 0, "L", false, 0, "")
		pdf.CellFormat(14, 6, page, "", 1, "R", false, 0, "")
	}

	// Chapters.
	entries := make([]types.TOCEntry, len(chapters))
	lineHt := cfg.CodeFontSize * 0.5
	for i, ch := range chapters {
		pdf.AddPage()
		entries[i] = types.TOCEntry{Number: ch.Number, Title: ch.Title, Page: pdf.PageNo()}

		pdf.SetFont(cfg.HeadingFont, "B", 14)
		pdf.SetTextColor(text.R, text.G, text.B)
		pdf.CellFormat(0, 8, tr(fmt.Sprintf("%d  %s", ch.Number, ch.Title)), "", 1, "L", false, 0, "")
		if ch.Folder != "" {
			pdf.SetFont(cfg.HeadingFont, "I", 9)
			pdf.SetTextColor(128, 128, 128)
			pdf.CellFormat(0, 5, tr(ch.Folder), "", 1, "L", false, 0, "")
		}

		for _, sec := range ch.Sections {
			pdf.Ln(3)
			pdf.SetFont(cfg.HeadingFont, "B", 11)
			pdf.SetTextColor(text.R, text.G, text.B)
			pdf.CellFormat(0, 6, tr(sec.Label), "", 1, "L", false, 0, "")
			pdf.SetFont(cfg.CodeFont, "", cfg.CodeFontSize)
			for _, line := range sec.Lines {
				if strings.TrimSpace(line) == "" {
					pdf.Ln(lineHt)
					continue
				}
				for _, span := range highlight.Line(line, keywords) {
					c := colorFor(span.Style, cfg.Theme)
					pdf.SetTextColor(c.R, c.G, c.B)
					pdf.Write(lineHt, tr(span.Text))
				}
				pdf.Ln(lineHt)
			}
		}
	}

	return pdf, Layout{Entries: entries, Pages: pdf.PageCount()}
}

// colorFor maps a span style to its theme color.
func colorFor(style highlight.Style, theme types.Theme) types.RGB {
	switch style {
	case highlight.StyleKeyword:
		return theme.Keyword
	case highlight.StyleComment:
		return theme.Comment
	default:
		return theme.Text
	}
}
