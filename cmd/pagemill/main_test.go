package main

import (
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/require"
)

func parseCLI(t *testing.T, args ...string) string {
	t.Helper()
	var cli = CLI
	parser, err := kong.New(&cli)
	require.NoError(t, err)
	kctx, err := parser.Parse(args)
	require.NoError(t, err)
	return kctx.Command()
}

func TestCLI_CommandGrammar(t *testing.T) {
	require.Equal(t, "build", parseCLI(t, "build"))
	require.Equal(t, "map <file>", parseCLI(t, "map", "pages/index.mdx"))
	require.Equal(t, "analyze <file>", parseCLI(t, "analyze", "pages/page.en.mdx"))
	require.Equal(t, "watch", parseCLI(t, "watch", "--reindex", "5m"))
}

func TestCLI_Defaults(t *testing.T) {
	var cli = CLI
	parser, err := kong.New(&cli)
	require.NoError(t, err)
	_, err = parser.Parse([]string{"build"})
	require.NoError(t, err)

	require.Equal(t, "pagemill.yaml", cli.Config)
	require.Equal(t, ".", cli.Dir)
	require.False(t, cli.Verbose)
}
