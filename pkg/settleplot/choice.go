package settleplot

import (
	"path/filepath"
	"strconv"
	"strings"
)

// ParseChoice validates a 1-based menu selection among n entries and returns
// the 0-based index. Only plain decimal digits are accepted.
func ParseChoice(input string, n int) (int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, ErrInvalidChoice
	}
	for _, r := range input {
		if r < '0' || r > '9' {
			return 0, ErrInvalidChoice
		}
	}

	choice, err := strconv.Atoi(input)
	if err != nil || choice < 1 || choice > n {
		return 0, ErrInvalidChoice
	}
	return choice - 1, nil
}

// OutputName derives the PDF name for a workbook: prefix + base name + ".pdf".
func OutputName(input, prefix string) string {
	base := filepath.Base(input)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return prefix + base + ".pdf"
}
