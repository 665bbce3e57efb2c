// Package predictor supplies the attribute vector the synthesiser ranks
// its candidate pools by. The boundary here is a single vector-in/vector-out
// call, not a multi-method RPC surface, so it is modelled as plain JSON
// over HTTP rather than the teacher's protobuf/gRPC stack.
package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/HiroakiMikami/deep-coder/internal/attribute"
	"github.com/HiroakiMikami/deep-coder/internal/config"
	"github.com/HiroakiMikami/deep-coder/internal/errs"
	"github.com/HiroakiMikami/deep-coder/internal/interp"
)

// AttributePredictor maps a set of examples to the attribute vector the
// synthesiser should search with.
type AttributePredictor interface {
	Predict(ctx context.Context, examples []interp.Example) (attribute.Attribute, error)
}

// StaticPredictor always returns the same Attribute, regardless of
// examples. Useful for tests and for a harness running DFS/sort-and-add
// without a trained model available.
type StaticPredictor struct {
	Attribute attribute.Attribute
}

func (p StaticPredictor) Predict(context.Context, []interp.Example) (attribute.Attribute, error) {
	return p.Attribute, nil
}

// HTTPPredictor calls a remote predictor endpoint over plain JSON: it
// POSTs the examples' textual form and expects a flat float64 array of
// config.AttributeVectorLength entries back.
type HTTPPredictor struct {
	Endpoint string
	Client   *http.Client
}

// NewHTTPPredictor returns an HTTPPredictor with a 10-second default
// client timeout.
func NewHTTPPredictor(endpoint string) *HTTPPredictor {
	return &HTTPPredictor{Endpoint: endpoint, Client: &http.Client{Timeout: 10 * time.Second}}
}

type predictRequest struct {
	Examples []exampleJSON `json:"examples"`
}

type exampleJSON struct {
	Input  []string `json:"input"`
	Output string   `json:"output"`
}

type predictResponse struct {
	Vector []float64 `json:"vector"`
}

func (p *HTTPPredictor) Predict(ctx context.Context, examples []interp.Example) (attribute.Attribute, error) {
	req := predictRequest{Examples: make([]exampleJSON, len(examples))}
	for i, e := range examples {
		in := make([]string, len(e.Input))
		for j, v := range e.Input {
			in[j] = v.String()
		}
		req.Examples[i] = exampleJSON{Input: in, Output: e.Output.String()}
	}
	body, err := json.Marshal(req)
	if err != nil {
		return attribute.Attribute{}, fmt.Errorf("encoding predictor request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.Endpoint, bytes.NewReader(body))
	if err != nil {
		return attribute.Attribute{}, fmt.Errorf("%w: %v", errs.ErrPredictorUnavailable, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.Client.Do(httpReq)
	if err != nil {
		return attribute.Attribute{}, fmt.Errorf("%w: %v", errs.ErrPredictorUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return attribute.Attribute{}, fmt.Errorf("%w: status %d", errs.ErrPredictorUnavailable, resp.StatusCode)
	}

	var out predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return attribute.Attribute{}, fmt.Errorf("%w: decoding response: %v", errs.ErrPredictorUnavailable, err)
	}
	if len(out.Vector) != config.AttributeVectorLength {
		return attribute.Attribute{}, fmt.Errorf("%w: vector has length %d, want %d", errs.ErrPredictorUnavailable, len(out.Vector), config.AttributeVectorLength)
	}
	return attribute.FromVector(out.Vector), nil
}
