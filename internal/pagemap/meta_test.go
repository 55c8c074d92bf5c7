package pagemap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatchMetaFile(t *testing.T) {
	tag, ok := MatchMetaFile("meta.json")
	require.True(t, ok)
	require.Empty(t, tag)

	tag, ok = MatchMetaFile("meta.fr.json")
	require.True(t, ok)
	require.Equal(t, "fr", tag)

	tag, ok = MatchMetaFile("meta.zh-CN.json")
	require.True(t, ok)
	require.Equal(t, "zh-CN", tag)

	_, ok = MatchMetaFile("metadata.json")
	require.False(t, ok)

	_, ok = MatchMetaFile("meta.v2.json")
	require.False(t, ok)

	_, ok = MatchMetaFile("meta.fr.yaml")
	require.False(t, ok)
}

func TestMetaPick_LocalizedOverridesLocaleless(t *testing.T) {
	var p metaPick
	p.consider(&Meta{Name: MetaFileName, Data: map[string]any{"a": "plain"}}, "fr")
	p.consider(&Meta{Name: MetaFileName, Locale: "fr", Data: map[string]any{"a": "fr"}}, "fr")
	// A later localeless file must not displace the localized pick.
	p.consider(&Meta{Name: MetaFileName, Data: map[string]any{"a": "plain2"}}, "fr")

	require.True(t, p.picked())
	require.Equal(t, "fr", p.data["a"])
}

func TestMetaPick_LastListedWinsWithinRank(t *testing.T) {
	var p metaPick
	p.consider(&Meta{Name: MetaFileName, Data: map[string]any{"a": "first"}}, "")
	p.consider(&Meta{Name: MetaFileName, Data: map[string]any{"a": "second"}}, "")

	require.Equal(t, "second", p.data["a"])
}

func TestMetaPick_ForeignLocaleIgnored(t *testing.T) {
	var p metaPick
	p.consider(&Meta{Name: MetaFileName, Locale: "de", Data: map[string]any{"a": "de"}}, "fr")

	require.False(t, p.picked())
}

func TestResolveTitle(t *testing.T) {
	meta := map[string]any{
		"intro":    "Introduction",
		"advanced": map[string]any{"title": "Advanced Topics", "hidden": true},
		"weird":    42,
	}

	require.Equal(t, "Introduction", resolveTitle(meta, "intro"))
	require.Equal(t, "Advanced Topics", resolveTitle(meta, "advanced"))
	require.Equal(t, "weird", resolveTitle(meta, "weird"))
	require.Equal(t, "missing", resolveTitle(meta, "missing"))
}
