package assist

import (
	"fmt"
	"strings"
)

// Intent selects which kind of help the model is asked for.
type Intent string

const (
	IntentHint     Intent = "hint"
	IntentSolution Intent = "solution"
)

func (i Intent) String() string { return string(i) }

type template struct {
	instruction string
	closing     string
}

var templates = map[Intent]template{
	IntentHint: {
		instruction: "You're a helpful assistant that only gives high-quality, beginner-friendly HINTS (no code or full solution).",
		closing:     "Give a helpful hint or strategy to approach the problem.",
	},
	IntentSolution: {
		instruction: "You're a helpful assistant that only gives high-quality, beginner-friendly SOLUTIONS (no code or full solution).",
		closing:     "Give a helpful solution or strategy to approach the problem.",
	},
}

// ProblemQuery is the problem as scraped by the client. Empty fields are
// allowed and passed through untouched.
type ProblemQuery struct {
	Title       string
	Description string
}

// BuildPrompt renders the prompt for intent. Title and description are
// embedded verbatim.
func BuildPrompt(intent Intent, q ProblemQuery) (string, error) {
	t, ok := templates[intent]
	if !ok {
		return "", fmt.Errorf("unknown intent %q", string(intent))
	}
	var sb strings.Builder
	sb.Grow(len(t.instruction) + len(t.closing) + len(q.Title) + len(q.Description) + 48)
	sb.WriteString(t.instruction)
	sb.WriteString("\n\nProblem Title: ")
	sb.WriteString(q.Title)
	sb.WriteString("\nDescription:\n")
	sb.WriteString(q.Description)
	sb.WriteString("\n\n")
	sb.WriteString(t.closing)
	return sb.String(), nil
}
