package pagemap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterByLocale_PicksTargetVariant(t *testing.T) {
	nodes := []Node{
		&Page{Name: "page", Route: "/page", Locale: "en"},
		&Page{Name: "page", Route: "/page", Locale: "fr"},
	}

	out := FilterByLocale(nodes, "fr", "en")
	require.Len(t, out, 1)
	require.Equal(t, "fr", out[0].(*Page).Locale)
}

func TestFilterByLocale_FallsBackToDefaultThenLocaleless(t *testing.T) {
	nodes := []Node{
		&Page{Name: "a", Route: "/a", Locale: "en"},
		&Page{Name: "b", Route: "/b"},
	}

	out := FilterByLocale(nodes, "fr", "en")
	require.Len(t, out, 2)
	require.Equal(t, "en", out[0].(*Page).Locale)
	require.Empty(t, out[1].(*Page).Locale)
}

func TestFilterByLocale_DropsForeignLocaleOnlyPages(t *testing.T) {
	nodes := []Node{
		&Page{Name: "only-de", Route: "/only-de", Locale: "de"},
	}

	out := FilterByLocale(nodes, "fr", "en")
	require.Empty(t, out)
}

func TestFilterByLocale_AtMostOneMetaSurvives(t *testing.T) {
	nodes := []Node{
		&Meta{Name: MetaFileName, Data: map[string]any{"a": "plain"}},
		&Meta{Name: MetaFileName, Locale: "fr", Data: map[string]any{"a": "fr"}},
		&Meta{Name: MetaFileName, Locale: "de", Data: map[string]any{"a": "de"}},
	}

	out := FilterByLocale(nodes, "fr", "en")
	require.Len(t, out, 1)
	require.Equal(t, "fr", out[0].(*Meta).Locale)
}

func TestFilterByLocale_RecursesAndPrunesEmptyFolders(t *testing.T) {
	nodes := []Node{
		&Folder{Name: "docs", Route: "/docs", Children: []Node{
			&Page{Name: "intro", Route: "/docs/intro", Locale: "fr"},
			&Page{Name: "intro", Route: "/docs/intro", Locale: "en"},
		}},
		&Folder{Name: "only-de", Route: "/only-de", Children: []Node{
			&Page{Name: "x", Route: "/only-de/x", Locale: "de"},
		}},
	}

	out := FilterByLocale(nodes, "fr", "en")
	require.Len(t, out, 1)

	folder := out[0].(*Folder)
	require.Equal(t, "/docs", folder.Route)
	require.Len(t, folder.Children, 1)
	require.Equal(t, "fr", folder.Children[0].(*Page).Locale)
}

func TestFilterByLocale_PreservesListingOrder(t *testing.T) {
	nodes := []Node{
		&Page{Name: "b", Route: "/b", Locale: "fr"},
		&Page{Name: "a", Route: "/a", Locale: "fr"},
		&Page{Name: "a", Route: "/a", Locale: "en"},
	}

	out := FilterByLocale(nodes, "fr", "en")
	require.Len(t, out, 2)
	require.Equal(t, "b", out[0].NodeName())
	require.Equal(t, "a", out[1].NodeName())
}

func TestFilterByLocale_DoesNotMutateInput(t *testing.T) {
	inner := []Node{
		&Page{Name: "x", Route: "/docs/x", Locale: "de"},
		&Page{Name: "x", Route: "/docs/x", Locale: "fr"},
	}
	nodes := []Node{&Folder{Name: "docs", Route: "/docs", Children: inner}}

	_ = FilterByLocale(nodes, "fr", "en")
	require.Len(t, nodes[0].(*Folder).Children, 2)
}
