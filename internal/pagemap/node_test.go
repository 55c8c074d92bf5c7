package pagemap

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPageJSON_OmitsEmptyLocaleAndFrontMatter(t *testing.T) {
	raw, err := json.Marshal(&Page{Name: "intro", Route: "/docs/intro"})
	require.NoError(t, err)
	require.JSONEq(t, `{"kind":"page","name":"intro","route":"/docs/intro"}`, string(raw))
}

func TestPageJSON_IncludesLocaleAndFrontMatter(t *testing.T) {
	p := &Page{Name: "intro", Route: "/docs/intro", Locale: "fr", FrontMatter: map[string]any{"title": "Intro"}}
	raw, err := json.Marshal(p)
	require.NoError(t, err)
	require.JSONEq(t, `{"kind":"page","name":"intro","route":"/docs/intro","locale":"fr","frontMatter":{"title":"Intro"}}`, string(raw))
}

func TestFolderJSON_NestsChildren(t *testing.T) {
	f := &Folder{Name: "docs", Route: "/docs", Children: []Node{
		&Page{Name: "intro", Route: "/docs/intro"},
	}}
	raw, err := json.Marshal(f)
	require.NoError(t, err)
	require.JSONEq(t, `{"kind":"folder","name":"docs","route":"/docs","children":[{"kind":"page","name":"intro","route":"/docs/intro"}]}`, string(raw))
}

func TestMetaJSON_CarriesDataAndLocale(t *testing.T) {
	m := &Meta{Name: MetaFileName, Locale: "fr", Data: map[string]any{"intro": "Introduction"}}
	raw, err := json.Marshal(m)
	require.NoError(t, err)
	require.JSONEq(t, `{"kind":"meta","name":"meta.json","meta":{"intro":"Introduction"},"locale":"fr"}`, string(raw))
}
