package settleplot

import (
	"errors"
	"fmt"

	"github.com/ukaji3/settleplot-go/pkg/settleplot/parser"
)

// ErrNoWorkbooks indicates the scanned directory holds no candidate workbook.
var ErrNoWorkbooks = errors.New("no workbooks found")

// ErrInvalidChoice indicates the menu selection is not a listed number.
var ErrInvalidChoice = errors.New("invalid choice")

// Data errors returned while loading a sheet, wrapped in a SheetError.
var (
	ErrMissingColumn = parser.ErrMissingColumn
	ErrInvalidDate   = parser.ErrInvalidDate
	ErrInvalidNumber = parser.ErrInvalidNumber
	ErrNoRows        = parser.ErrNoRows
)

// SheetError represents an error while processing one sheet.
type SheetError struct {
	Sheet string
	Stage string // "load", "render"
	Err   error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("sheet %q (%s): %v", e.Sheet, e.Stage, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// NewSheetError creates a new SheetError.
func NewSheetError(sheet, stage string, err error) *SheetError {
	return &SheetError{
		Sheet: sheet,
		Stage: stage,
		Err:   err,
	}
}
