// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs the discover, extract, and render stages for one
// documentation build. Single-threaded, synchronous, no retries: each file
// is read, processed, and released before the next begins.
package pipeline

import (
	"errors"
	"fmt"
	"io"

	"github.com/pdiddy/tcdoc/internal/discover"
	"github.com/pdiddy/tcdoc/internal/extract"
	"github.com/pdiddy/tcdoc/internal/render"
	"github.com/pdiddy/tcdoc/pkg/types"
)

// Result holds the outcome of one run.
type Result struct {
	// Rendered is the number of chapters in the output document.
	Rendered int
	// Skipped is the number of malformed files excluded from the output.
	Skipped int
	// SkippedFiles lists the excluded files, in discovery order.
	SkippedFiles []string
	// Pages is the output document's page count.
	Pages int
}

// Total returns the number of supported files considered.
func (r Result) Total() int {
	return r.Rendered + r.Skipped
}

// HasSkips reports whether any file was excluded from the output.
func (r Result) HasSkips() bool {
	return r.Skipped > 0
}

// Run builds the PDF at outPath from every supported file under inputDir,
// writing per-file status lines and a final summary to w. A malformed file
// produces a warning and is skipped; the run continues. Missing input or
// an unwritable output aborts with the corresponding sentinel error.
func Run(cfg types.Config, inputDir, outPath string, w io.Writer) (Result, error) {
	var res Result

	if err := render.ApplyThemeFile(&cfg.Render); err != nil {
		return res, err
	}

	files, err := discover.Files(inputDir)
	if err != nil {
		return res, err
	}

	var chapters []types.Chapter
	for _, src := range files {
		ch, err := extract.File(src, cfg.Extract)
		if err != nil {
			if errors.Is(err, types.ErrMalformedInput) {
				fmt.Fprintf(w, "skipped: %s (%v)\n", src.RelPath, err)
				res.Skipped++
				res.SkippedFiles = append(res.SkippedFiles, src.RelPath)
				continue
			}
			return res, err
		}
		ch.Number = len(chapters) + 1
		chapters = append(chapters, ch)
		fmt.Fprintf(w, "extracted: %s\n", src.RelPath)
	}

	layout, err := render.Document(chapters, cfg.Render, outPath)
	if err != nil {
		return res, err
	}
	res.Rendered = len(chapters)
	res.Pages = layout.Pages

	fmt.Fprintf(w, "\nGenerated %s: %d chapters, %d pages\n", outPath, res.Rendered, res.Pages)
	if res.HasSkips() {
		fmt.Fprintf(w, "Skipped %d malformed file(s):\n", res.Skipped)
		for _, f := range res.SkippedFiles {
			fmt.Fprintf(w, "  %s\n", f)
		}
	}
	return res, nil
}
