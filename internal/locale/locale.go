// Package locale classifies locale tags embedded in content file names and
// validates configured locale lists.
package locale

import (
	"regexp"

	"golang.org/x/text/language"

	"github.com/pagemill/pagemill/internal/errors"
)

// fileNameRe matches `<base>.<tag>.<ext>` where the tag is letters and
// hyphens. Plain `<base>.<ext>` names carry no locale.
var fileNameRe = regexp.MustCompile(`\.([A-Za-z-]+)\.[^.]+$`)

// FromFileName extracts the locale tag embedded in a file name.
//
// "getting-started.zh-CN.mdx" yields ("zh-CN", true); "getting-started.mdx"
// and "meta.json" yield ("", false). Pure and total: never fails.
func FromFileName(name string) (string, bool) {
	m := fileNameRe.FindStringSubmatch(name)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// StripTag removes a trailing ".<tag>" locale segment from an
// extension-stripped base name. If tag is empty, base is returned unchanged.
func StripTag(base, tag string) string {
	if tag == "" {
		return base
	}
	suffix := "." + tag
	if len(base) > len(suffix) && base[len(base)-len(suffix):] == suffix {
		return base[:len(base)-len(suffix)]
	}
	return base
}

// Canonical validates a locale tag and returns its canonical BCP 47 form.
func Canonical(tag string) (string, error) {
	parsed, err := language.Parse(tag)
	if err != nil {
		return "", errors.LocaleInvalid(tag, err)
	}
	return parsed.String(), nil
}

// BestMatch picks the configured locale best matching the requested tag,
// falling back to the first configured locale when nothing matches.
func BestMatch(configured []string, requested string) string {
	if len(configured) == 0 {
		return ""
	}
	tags := make([]language.Tag, 0, len(configured))
	originals := make([]string, 0, len(configured))
	for _, c := range configured {
		t, err := language.Parse(c)
		if err != nil {
			continue
		}
		tags = append(tags, t)
		originals = append(originals, c)
	}
	if len(tags) == 0 {
		return configured[0]
	}
	matcher := language.NewMatcher(tags)
	want, err := language.Parse(requested)
	if err != nil {
		return originals[0]
	}
	_, idx, _ := matcher.Match(want)
	return originals[idx]
}
