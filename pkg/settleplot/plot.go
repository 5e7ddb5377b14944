package settleplot

import (
	"fmt"
	"path/filepath"

	"github.com/ukaji3/settleplot-go/pkg/settleplot/chart"
	"github.com/ukaji3/settleplot-go/pkg/settleplot/models"
	"github.com/ukaji3/settleplot-go/pkg/settleplot/parser"
	"github.com/xuri/excelize/v2"
)

// Plot renders every sheet of the workbook at input as one page of a PDF
// written to output. Sheets are processed in tab order and the first failing
// sheet aborts the run; output is only written once all pages are drawn.
func Plot(input, output string, opts Options) (*models.Report, error) {
	opts = opts.withDefaults()
	log := opts.logger()

	f, err := excelize.OpenFile(input)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	doc, sheets, err := render(f, opts)
	if err != nil {
		return nil, err
	}

	if err := doc.Save(output); err != nil {
		return nil, fmt.Errorf("write %s: %w", output, err)
	}
	log.Infof("wrote %d page(s) to %s", doc.Pages(), output)

	return &models.Report{
		Input:  filepath.Base(input),
		Output: output,
		Sheets: sheets,
	}, nil
}

// render draws one page per sheet into a new document.
func render(f *excelize.File, opts Options) (*chart.Document, []string, error) {
	log := opts.logger()
	doc := chart.NewDocument(opts.Style.Width, opts.Style.Height)

	sheetList := parser.SheetNames(f)
	for _, sheetName := range sheetList {
		table, err := parser.LoadTable(f, sheetName, opts.DateLayout)
		if err != nil {
			return nil, nil, NewSheetError(sheetName, "load", err)
		}
		series := Derive(table)
		log.Debugf("sheet %q: %d rows, %d days", sheetName, series.Len(), series.Days[series.Len()-1])

		c, err := chart.Build(series, opts.Style)
		if err != nil {
			return nil, nil, NewSheetError(sheetName, "render", err)
		}
		doc.AddPage(c)
	}

	return doc, sheetList, nil
}
