package pagemap

import "regexp"

// MetaFileName is the canonical node name for directory metadata, regardless
// of which localized file supplied it.
const MetaFileName = "meta.json"

var metaFileRe = regexp.MustCompile(`^meta(?:\.([A-Za-z-]+))?\.json$`)

// MatchMetaFile reports whether name is a directory meta file
// (`meta.json` or `meta.<locale-tag>.json`) and returns its locale tag.
func MatchMetaFile(name string) (localeTag string, ok bool) {
	m := metaFileRe.FindStringSubmatch(name)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// metaPick selects one directory level's effective metadata (dirMeta).
//
// Precedence is explicit rather than a listing-order accident: a meta file
// whose locale equals the active locale always overrides a localeless one;
// among equally ranked files the last listed wins. When no active locale is
// known, localeless files are the exact match and localized files are ignored.
type metaPick struct {
	data map[string]any
	rank int
}

func (p *metaPick) consider(m *Meta, activeLocale string) {
	var rank int
	switch {
	case m.Locale == activeLocale:
		rank = 2
	case m.Locale == "":
		rank = 1
	default:
		return
	}
	if rank >= p.rank {
		p.data = m.Data
		p.rank = rank
	}
}

func (p *metaPick) picked() bool { return p.rank > 0 }

// resolveTitle looks name up in a level's dirMeta. Values are either title
// strings or structured objects carrying a "title" field; anything else, or a
// lookup miss, falls back to the raw name.
func resolveTitle(meta map[string]any, name string) string {
	v, ok := meta[name]
	if !ok {
		return name
	}
	switch t := v.(type) {
	case string:
		return t
	case map[string]any:
		if s, ok := t["title"].(string); ok {
			return s
		}
	}
	return name
}
