package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestError_IncludesCategoryAndSeverity(t *testing.T) {
	err := New(CategoryParse, SeverityFatal, "malformed meta file")

	require.Contains(t, err.Error(), "parse")
	require.Contains(t, err.Error(), "fatal")
	require.Contains(t, err.Error(), "malformed meta file")
}

func TestError_PathContextAppearsInMessage(t *testing.T) {
	err := MetaParse("/pages/docs/meta.json", stderrors.New("unexpected end of input"))

	require.Contains(t, err.Error(), "/pages/docs/meta.json")
	require.Contains(t, err.Error(), "unexpected end of input")
}

func TestWrap_UnwrapsToCause(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(cause, CategoryFileSystem, SeverityFatal, "read failed")

	require.True(t, stderrors.Is(err, cause))
}

func TestIsCategory(t *testing.T) {
	err := NoPagesDirectory([]string{"pages", "src/pages"})

	require.True(t, IsCategory(err, CategoryConfig))
	require.False(t, IsCategory(err, CategoryParse))
	require.False(t, IsCategory(stderrors.New("plain"), CategoryConfig))
}
