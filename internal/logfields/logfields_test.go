package logfields

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAttrsUseCanonicalKeys(t *testing.T) {
	require.Equal(t, KeyPath, Path("/pages/index.mdx").Key)
	require.Equal(t, KeyRoute, Route("/docs/intro").Key)
	require.Equal(t, KeyLocale, Locale("en").Key)
	require.Equal(t, KeyPages, Pages(3).Key)
}

func TestError_NilProducesEmptyValue(t *testing.T) {
	attr := Error(nil)
	require.Equal(t, KeyError, attr.Key)
	require.Equal(t, "", attr.Value.String())

	attr = Error(errors.New("boom"))
	require.Equal(t, "boom", attr.Value.String())
}
