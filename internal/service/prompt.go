// 프롬프트 중계 비즈니스 로직 정의
//
// 처리 흐름:
//  1. 요청 body(JSON)에서 prompt 추출 (없으면 빈 문자열)
//  2. 고정 샘플링 파라미터와 함께 모델 payload 생성
//  3. 모델 호출 (동기)
//  4. 응답에서 generations[0].text 추출

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/kube-rca/prompt-relay/internal/config"
	"github.com/kube-rca/prompt-relay/internal/logx"
	"github.com/kube-rca/prompt-relay/internal/metrics"
	"github.com/kube-rca/prompt-relay/internal/model"
)

var (
	ErrMalformedRequest        = errors.New("malformed request")
	ErrEndpointInvocation      = errors.New("endpoint invocation failure")
	ErrUnexpectedResponseShape = errors.New("unexpected response shape")
)

type ModelClient interface {
	Invoke(ctx context.Context, body []byte) ([]byte, error)
	ModelID() string
}

type PromptService struct {
	client   ModelClient
	sampling config.SamplingConfig
}

func NewPromptService(client ModelClient, sampling config.SamplingConfig) *PromptService {
	return &PromptService{client: client, sampling: sampling}
}

// Relay runs one prompt through the model and returns the first generation.
func (s *PromptService) Relay(ctx context.Context, body string) (string, error) {
	modelID := s.client.ModelID()

	prompt, err := ParsePrompt(body)
	if err != nil {
		metrics.RecordRequest(modelID, metrics.OutcomeMalformedRequest)
		return "", err
	}
	logx.Log.Info().Str("prompt", prompt).Msg("prompt received")

	payload, err := BuildPayload(prompt, s.sampling)
	if err != nil {
		metrics.RecordRequest(modelID, metrics.OutcomeMalformedRequest)
		return "", err
	}

	start := time.Now()
	raw, err := s.client.Invoke(ctx, payload)
	metrics.ObserveInvoke(modelID, time.Since(start))
	if err != nil {
		metrics.RecordRequest(modelID, metrics.OutcomeEndpointFailure)
		return "", fmt.Errorf("%w: %v", ErrEndpointInvocation, err)
	}

	text, err := ExtractGeneration(raw)
	if err != nil {
		metrics.RecordRequest(modelID, metrics.OutcomeUnexpectedResponse)
		return "", err
	}

	logx.Log.Info().Str("model", modelID).Str("response", text).Msg("generation received")
	metrics.RecordRequest(modelID, metrics.OutcomeSuccess)
	return text, nil
}

// ParsePrompt decodes a JSON object body and returns its "prompt" value.
// A missing or null prompt yields "".
func ParsePrompt(body string) (string, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(body), &fields); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedRequest, err)
	}
	if fields == nil {
		return "", fmt.Errorf("%w: body is not a JSON object", ErrMalformedRequest)
	}

	raw, ok := fields["prompt"]
	if !ok {
		return "", nil
	}
	var prompt *string
	if err := json.Unmarshal(raw, &prompt); err != nil {
		return "", fmt.Errorf("%w: prompt must be a string", ErrMalformedRequest)
	}
	if prompt == nil {
		return "", nil
	}
	return *prompt, nil
}

func BuildPayload(prompt string, sampling config.SamplingConfig) ([]byte, error) {
	payload, err := json.Marshal(model.GenerationRequest{
		Prompt:      prompt,
		Temperature: sampling.Temperature,
		P:           sampling.TopP,
		K:           sampling.TopK,
		MaxTokens:   sampling.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal generation request: %w", err)
	}
	return payload, nil
}

// ExtractGeneration returns generations[0].text from a model response body.
func ExtractGeneration(body []byte) (string, error) {
	var resp model.GenerationResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnexpectedResponseShape, err)
	}
	if len(resp.Generations) == 0 {
		return "", fmt.Errorf("%w: no generations", ErrUnexpectedResponseShape)
	}
	if resp.Generations[0].Text == nil {
		return "", fmt.Errorf("%w: generations[0].text missing", ErrUnexpectedResponseShape)
	}
	return *resp.Generations[0].Text, nil
}

// EncodeText renders text as a JSON string literal without HTML escaping.
func EncodeText(text string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(text); err != nil {
		return "", err
	}
	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}
