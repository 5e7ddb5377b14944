// Package parser reads settlement measurements from Excel workbooks.
package parser

import "errors"

// ErrMissingColumn indicates a required header is absent from a sheet.
var ErrMissingColumn = errors.New("missing required column")

// ErrInvalidDate indicates a date cell does not match the configured layout.
var ErrInvalidDate = errors.New("invalid date")

// ErrInvalidNumber indicates a numeric cell could not be parsed.
var ErrInvalidNumber = errors.New("invalid number")

// ErrNoRows indicates a sheet has a header but no measurements.
var ErrNoRows = errors.New("no measurement rows")
