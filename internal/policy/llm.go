package policy

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/fit-scorer/internal/llm"
	"github.com/jonathan/fit-scorer/internal/prompts"
	"github.com/jonathan/fit-scorer/internal/types"
)

// maxBatch bounds how many fragments go into one prompt
const maxBatch = 40

// LLMClassifier asks a model to label fragments and falls back to rules for anything it
// cannot answer. Model output can vary between runs, so it is not deterministic.
type LLMClassifier struct {
	client   llm.Client
	fallback *RuleClassifier
	logger   *zap.Logger
}

// NewLLMClassifier creates a model-backed classifier
func NewLLMClassifier(client llm.Client, fallback *RuleClassifier, logger *zap.Logger) *LLMClassifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LLMClassifier{client: client, fallback: fallback, logger: logger}
}

type classifyResponse struct {
	Priorities []string `json:"priorities"`
}

// Classify implements Classifier. Model failures never surface; affected fragments use the rules.
func (c *LLMClassifier) Classify(ctx context.Context, fragments []string) ([]types.Priority, error) {
	out := make([]types.Priority, len(fragments))
	for start := 0; start < len(fragments); start += maxBatch {
		end := min(start+maxBatch, len(fragments))
		batch := fragments[start:end]

		labels, err := c.classifyBatch(ctx, batch)
		if err != nil {
			c.logger.Warn("model classification failed, using rules",
				zap.Int("fragments", len(batch)),
				zap.Error(err))
		}
		for i, f := range batch {
			if labels != nil && labels[i] != nil {
				out[start+i] = *labels[i]
				continue
			}
			out[start+i] = c.fallback.ClassifyOne(f)
		}
	}
	return out, nil
}

// classifyBatch returns one entry per fragment; nil entries were not answered usably
func (c *LLMClassifier) classifyBatch(ctx context.Context, batch []string) ([]*types.Priority, error) {
	if c.client == nil {
		return nil, &ClassifierError{Message: "no model client configured"}
	}
	encoded, err := json.Marshal(batch)
	if err != nil {
		return nil, &ClassifierError{Message: "failed to encode fragments", Cause: err}
	}
	prompt, err := prompts.Render("classification.json", "classify-priorities", map[string]any{
		"Count":     len(batch),
		"Fragments": string(encoded),
	})
	if err != nil {
		return nil, &ClassifierError{Message: "failed to build prompt", Cause: err}
	}

	resp, err := c.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return nil, &ClassifierError{Message: "model call failed", Cause: err}
	}

	var parsed classifyResponse
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(resp)), &parsed); err != nil {
		return nil, &ClassifierError{Message: "failed to parse model response", Cause: err}
	}
	if len(parsed.Priorities) != len(batch) {
		return nil, &ClassifierError{Message: fmt.Sprintf("model returned %d labels for %d fragments", len(parsed.Priorities), len(batch))}
	}

	labels := make([]*types.Priority, len(batch))
	for i, raw := range parsed.Priorities {
		p := types.Priority(raw)
		if raw == "" || p.Valid() {
			labels[i] = &p
		}
	}
	return labels, nil
}

// Deterministic implements Classifier
func (c *LLMClassifier) Deterministic() bool {
	return false
}
