package extractions

import (
	"path/filepath"
	"strings"
)

// AllowedExtension reports whether the file name carries an allowlisted
// extension, case-insensitively. Names without an extension are rejected.
func AllowedExtension(name string, allowed map[string]struct{}) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if ext == "" {
		return false
	}
	_, ok := allowed[ext]
	return ok
}
