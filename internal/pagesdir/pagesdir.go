// Package pagesdir locates the content pages root under a working directory.
package pagesdir

import (
	"os"
	"path/filepath"

	"github.com/pagemill/pagemill/internal/errors"
)

// Conventional pages locations, probed in priority order.
var candidates = []string{"pages", filepath.Join("src", "pages")}

// Locate returns the first conventional pages directory under dir.
//
// The probe runs once per loader invocation, before any recursion begins.
// When neither location exists the returned error names both probed paths.
func Locate(dir string) (string, error) {
	probed := make([]string, 0, len(candidates))
	for _, c := range candidates {
		p := filepath.Join(dir, c)
		probed = append(probed, p)
		info, err := os.Stat(p)
		if err == nil && info.IsDir() {
			return p, nil
		}
	}
	return "", errors.NoPagesDirectory(probed)
}
