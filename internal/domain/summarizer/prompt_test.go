package summarizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildPromptLayout(t *testing.T) {
	got := BuildPrompt("Hello world", StyleBullet)

	require.Equal(t, instructions[StyleBullet]+"\n\nTranscript:\nHello world\n\nSummary:", got)
}

func TestBuildPromptUnknownStyleFallsBackToConcise(t *testing.T) {
	concise := BuildPrompt("text", StyleConcise)

	for _, style := range []Style{"", "haiku", "COMPLETE"} {
		require.Equal(t, concise, BuildPrompt("text", style), "style %q", style)
	}
}

func TestBuildPromptIsDeterministic(t *testing.T) {
	for style := range instructions {
		require.Equal(t, BuildPrompt("same", style), BuildPrompt("same", style))
	}
}

func TestCompleteTemplateSections(t *testing.T) {
	prompt := BuildPrompt("t", StyleComplete)

	for _, section := range []string{"Title (H2)", "Overview", "Speakers", "Key Insights", "(5 or more)", "Notable Quotes", "Key Takeaways", "Markdown"} {
		require.True(t, strings.Contains(prompt, section), "missing %q", section)
	}
}

func TestStyleValid(t *testing.T) {
	require.True(t, StyleConcise.Valid())
	require.True(t, StyleDetailed.Valid())
	require.True(t, StyleBullet.Valid())
	require.True(t, StyleComplete.Valid())
	require.False(t, Style("").Valid())
	require.False(t, Style("short").Valid())
}
