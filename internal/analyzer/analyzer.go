// Package analyzer inspects the localized sibling files of one content file
// to decide whether the generated router entry needs server-side or
// static-generation wiring.
package analyzer

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pagemill/pagemill/internal/errors"
	"github.com/pagemill/pagemill/internal/locale"
)

// Extensions recognized for localized route groups: content files plus the
// companion script/data files that may carry data-fetching hooks.
var groupExtensions = []string{".md", ".mdx", ".js", ".jsx", ".ts", ".tsx", ".json"}

// LocalizedEntry describes one locale variant of the current file's logical
// group. Computed fresh per invocation; never cached.
type LocalizedEntry struct {
	Name   string `json:"name"`
	Locale string `json:"locale"`
	SSR    bool   `json:"ssr"`
	SSG    bool   `json:"ssg"`
}

// Result aggregates a locale group: per-file entries in directory listing
// order, the OR of their capability flags, and the index of the default
// locale's entry (0 when no entry matches the default locale).
type Result struct {
	SSR          bool
	SSG          bool
	Files        []LocalizedEntry
	DefaultIndex int
}

var (
	ssgExportRe = regexp.MustCompile(`(?m)^export .*getStaticProps`)
	ssrExportRe = regexp.MustCompile(`(?m)^export .*getServerSideProps`)
)

// detectHookExports textually scans content for line-anchored exports of the
// static-generation and server-side-rendering hooks.
//
// This is not correct: a commented-out or string-embedded export at the start
// of a line misfires, and fixing that would need a real tokenizer. Downstream
// code generation relies on purely syntactic detection, so the heuristic is
// the contract.
func detectHookExports(content []byte) (ssg, ssr bool) {
	return ssgExportRe.Match(content), ssrExportRe.Match(content)
}

// Analyze scans the siblings of currentFilePath sharing its logical base name
// but differing by locale tag.
func Analyze(currentFilePath, defaultLocale string) (*Result, error) {
	dir := filepath.Dir(currentFilePath)
	fileName := filepath.Base(currentFilePath)

	tag, _ := locale.FromFileName(fileName)
	base := locale.StripTag(strings.TrimSuffix(fileName, filepath.Ext(fileName)), tag)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.ListFailed(dir, err)
	}

	groupRe := groupFileRe(base)
	res := &Result{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		m := groupRe.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		content, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, errors.ReadFailed(filepath.Join(dir, e.Name()), err)
		}
		ssg, ssr := detectHookExports(content)
		if m[1] == defaultLocale {
			res.DefaultIndex = len(res.Files)
		}
		res.Files = append(res.Files, LocalizedEntry{
			Name:   e.Name(),
			Locale: m[1],
			SSG:    ssg,
			SSR:    ssr,
		})
		res.SSG = res.SSG || ssg
		res.SSR = res.SSR || ssr
	}
	return res, nil
}

// groupFileRe matches `<base>.<locale-tag>.<ext>` for the supported
// extensions, capturing the locale tag.
func groupFileRe(base string) *regexp.Regexp {
	exts := make([]string, len(groupExtensions))
	for i, e := range groupExtensions {
		exts[i] = regexp.QuoteMeta(strings.TrimPrefix(e, "."))
	}
	return regexp.MustCompile(
		`^` + regexp.QuoteMeta(base) + `\.([A-Za-z-]+)\.(?:` + strings.Join(exts, "|") + `)$`)
}
