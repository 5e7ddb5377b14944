// Package settleplot renders settlement-monitoring workbooks to PDF charts.
package settleplot

import (
	"github.com/ukaji3/settleplot-go/pkg/settleplot/chart"
	"github.com/ukaji3/settleplot-go/pkg/settleplot/parser"
)

const (
	// DefaultExtension is the suffix of candidate workbooks.
	DefaultExtension = ".xlsx"
	// DefaultPrefix is prepended to the input base name to form the output name.
	DefaultPrefix = "Plot_"
)

// Logger receives progress messages. It is satisfied by internal/logger.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Infof(string, ...any)  {}

// Options configures plotting behavior.
type Options struct {
	// Extension is the workbook file suffix looked for by FindWorkbooks.
	Extension string
	// Prefix is prepended to the output file name.
	Prefix string
	// DateLayout is the time layout of the date column.
	DateLayout string
	// Style controls page size, colours and label placement.
	Style chart.Style
	// Logger receives progress messages. If nil, nothing is logged.
	Logger Logger
}

// DefaultOptions returns default plotting options.
func DefaultOptions() Options {
	return Options{
		Extension:  DefaultExtension,
		Prefix:     DefaultPrefix,
		DateLayout: parser.DefaultDateLayout,
		Style:      chart.DefaultStyle(),
	}
}

func (o Options) logger() Logger {
	if o.Logger == nil {
		return nopLogger{}
	}
	return o.Logger
}

// withDefaults fills unset fields from DefaultOptions.
func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.Extension == "" {
		o.Extension = def.Extension
	}
	if o.DateLayout == "" {
		o.DateLayout = def.DateLayout
	}
	if o.Style.Width <= 0 || o.Style.Height <= 0 {
		o.Style.Width, o.Style.Height = def.Style.Width, def.Style.Height
	}
	if o.Style.HeightColor == nil {
		o.Style.HeightColor = def.Style.HeightColor
	}
	if o.Style.SettlementColor == nil {
		o.Style.SettlementColor = def.Style.SettlementColor
	}
	return o
}
