package errors

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSuggestSimilar_FindsCloseMatch(t *testing.T) {
	got := SuggestSimilar("improt", []string{"import", "export", "print"})
	require.NotEmpty(t, got)
	require.Equal(t, "import", got[0].Value)
}

func TestSuggestSimilar_SkipsExactMatch(t *testing.T) {
	got := SuggestSimilar("import", []string{"import"})
	require.Empty(t, got)
}

func TestSuggestSimilar_EmptyInputs(t *testing.T) {
	require.Nil(t, SuggestSimilar("", []string{"import"}))
	require.Nil(t, SuggestSimilar("import", nil))
}

func TestSuggestSimilar_LimitsToMaxSuggestions(t *testing.T) {
	got := SuggestSimilar("cat", []string{"bat", "hat", "mat", "rat", "cot"})
	require.LessOrEqual(t, len(got), MaxSuggestions)
}

func TestFormatSuggestions(t *testing.T) {
	require.Equal(t, "", FormatSuggestions(nil))
	require.Equal(t, "Did you mean 'import'?", FormatSuggestions([]Suggestion{{Value: "import"}}))
	require.Equal(t,
		"Did you mean one of: 'import', 'export'?",
		FormatSuggestions([]Suggestion{{Value: "import"}, {Value: "export"}}),
	)
}
