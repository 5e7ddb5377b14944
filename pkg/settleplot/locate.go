package settleplot

import (
	"os"
	"strings"
)

// lockPrefix marks the owner files Excel leaves next to open workbooks.
const lockPrefix = "~$"

// FindWorkbooks lists the files directly inside dir whose name ends with
// extension, in directory listing order. Subdirectories are not searched.
func FindWorkbooks(dir, extension string) ([]string, error) {
	if extension == "" {
		extension = DefaultExtension
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, lockPrefix) {
			continue
		}
		if strings.HasSuffix(name, extension) {
			files = append(files, name)
		}
	}
	return files, nil
}
