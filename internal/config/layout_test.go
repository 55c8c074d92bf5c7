package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidate_MissingLayoutImportIsFatal(t *testing.T) {
	cfg := Defaults()
	cfg.LayoutImport = ""

	err := cfg.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "no theme layout module configured")
}
