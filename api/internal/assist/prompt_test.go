package assist

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPromptHint(t *testing.T) {
	got, err := BuildPrompt(IntentHint, ProblemQuery{Title: "Two Sum", Description: "Given an array..."})
	require.NoError(t, err)

	want := "You're a helpful assistant that only gives high-quality, beginner-friendly HINTS (no code or full solution)." +
		"\n\nProblem Title: Two Sum\nDescription:\nGiven an array..." +
		"\n\nGive a helpful hint or strategy to approach the problem."
	assert.Equal(t, want, got)
}

func TestBuildPromptSolution(t *testing.T) {
	got, err := BuildPrompt(IntentSolution, ProblemQuery{Title: "Two Sum", Description: "Given an array..."})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, "You're a helpful assistant that only gives high-quality, beginner-friendly SOLUTIONS (no code or full solution)."))
	assert.Contains(t, got, "Problem Title: Two Sum")
	assert.Contains(t, got, "Description:\nGiven an array...")
	assert.True(t, strings.HasSuffix(got, "\n\nGive a helpful solution or strategy to approach the problem."))
}

func TestBuildPromptDeterministic(t *testing.T) {
	q := ProblemQuery{Title: "LRU Cache", Description: "Design a data structure..."}
	for _, intent := range []Intent{IntentHint, IntentSolution} {
		a, err := BuildPrompt(intent, q)
		require.NoError(t, err)
		b, err := BuildPrompt(intent, q)
		require.NoError(t, err)
		assert.Equal(t, a, b, intent)
	}
}

func TestBuildPromptVerbatim(t *testing.T) {
	tests := []struct {
		name string
		q    ProblemQuery
	}{
		{name: "empty", q: ProblemQuery{}},
		{name: "newlines", q: ProblemQuery{Title: "A\nB", Description: "line1\n\nline2\r\n"}},
		{name: "quotes and braces", q: ProblemQuery{Title: `"quoted" {title}`, Description: `%s %d {} \n`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildPrompt(IntentHint, tt.q)
			require.NoError(t, err)
			assert.Contains(t, got, "Problem Title: "+tt.q.Title+"\nDescription:\n"+tt.q.Description+"\n\n")
		})
	}
}

func TestBuildPromptUnknownIntent(t *testing.T) {
	_, err := BuildPrompt(Intent("answer"), ProblemQuery{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"answer"`)
}
