package assist

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/apex/log"

	"hint-relay/api/internal/llm"
	"hint-relay/api/internal/metrics"
)

const genericFailure = "model request failed"

// Result is the outcome of one Ask. Exactly one of Text and Failure is set.
type Result struct {
	Intent  Intent
	Text    string
	Failure string
}

func (r Result) OK() bool { return r.Failure == "" }

func success(intent Intent, text string) Result {
	return Result{Intent: intent, Text: strings.TrimSpace(text)}
}

func failure(intent Intent, msg string) Result {
	if strings.TrimSpace(msg) == "" {
		msg = genericFailure
	}
	return Result{Intent: intent, Failure: msg}
}

type Assistant struct {
	engine  llm.Engine
	timeout time.Duration
}

// New returns an Assistant backed by engine. A zero timeout leaves the model
// call bounded only by the caller's context.
func New(engine llm.Engine, timeout time.Duration) *Assistant {
	return &Assistant{engine: engine, timeout: timeout}
}

// Ask builds the prompt for intent and makes exactly one model call. Model
// errors, timeouts and panics come back as a failed Result, never as an error.
func (a *Assistant) Ask(ctx context.Context, intent Intent, q ProblemQuery) (res Result) {
	prompt, err := BuildPrompt(intent, q)
	if err != nil {
		return failure(intent, err.Error())
	}

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			res = failure(intent, fmt.Sprint(r))
		}
		metrics.ModelDuration.WithLabelValues(intent.String()).Observe(time.Since(start).Seconds())
		outcome := "ok"
		if !res.OK() {
			outcome = "error"
			log.WithFields(log.Fields{
				"intent": intent,
				"engine": a.engine.Name(),
				"model":  a.engine.GetModel(),
			}).Errorf("model call failed: %s", res.Failure)
		}
		metrics.AssistTotal.WithLabelValues(intent.String(), outcome).Inc()
	}()

	text, err := a.engine.Generate(ctx, prompt)
	if err != nil {
		return failure(intent, err.Error())
	}
	return success(intent, text)
}
