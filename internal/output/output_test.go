package output

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	require.Equal(t, FormatTable, f)

	f, err = ParseFormat("json")
	require.NoError(t, err)
	require.Equal(t, FormatJSON, f)

	_, err = ParseFormat("xml")
	require.Error(t, err)
}

func TestJSON(t *testing.T) {
	s, err := JSON(map[string]int{"answer": 42})
	require.NoError(t, err)
	require.Contains(t, s, `"answer": 42`)
}
