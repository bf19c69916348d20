package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Model is fixed; callers cannot pick another one.
const Model = "gemini-2.0-flash"

var ErrEmptyResponse = errors.New("gemini: response has no text part")

// contentGenerator is satisfied by *genai.GenerativeModel.
type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

type Engine struct {
	model  string
	client *genai.Client
	gm     contentGenerator
}

// New dials the Gemini API once. The returned Engine keeps the client for
// the process lifetime and is never mutated afterwards.
func New(ctx context.Context, apiKey string) (*Engine, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("GEMINI_API_KEY is empty")
	}
	cl, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: new client: %w", err)
	}
	return &Engine{
		model:  Model,
		client: cl,
		gm:     cl.GenerativeModel(Model),
	}, nil
}

func (e *Engine) Name() string     { return "gemini" }
func (e *Engine) GetModel() string { return e.model }

// Generate sends prompt as a single text part with the model's default
// generation config. Provider errors are returned as is; their text is what
// clients see.
func (e *Engine) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := e.gm.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	return responseText(resp)
}

func (e *Engine) Close() error {
	if e.client == nil {
		return nil
	}
	return e.client.Close()
}

// responseText joins the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", ErrEmptyResponse
	}
	if len(resp.Candidates) == 0 {
		if pf := resp.PromptFeedback; pf != nil && pf.BlockReason != genai.BlockReasonUnspecified {
			return "", fmt.Errorf("gemini: prompt blocked: %s", pf.BlockReason)
		}
		return "", ErrEmptyResponse
	}
	c := resp.Candidates[0]
	if c == nil || c.Content == nil {
		return "", ErrEmptyResponse
	}
	var sb strings.Builder
	found := false
	for _, p := range c.Content.Parts {
		if t, ok := p.(genai.Text); ok {
			sb.WriteString(string(t))
			found = true
		}
	}
	if !found {
		return "", ErrEmptyResponse
	}
	return sb.String(), nil
}
