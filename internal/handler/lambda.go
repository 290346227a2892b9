package handler

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/kube-rca/prompt-relay/internal/logx"
	"github.com/kube-rca/prompt-relay/internal/service"
)

// LambdaHandler serves API Gateway proxy events.
// Errors are returned to the runtime as-is; API Gateway answers with its own
// generic error in that case.
type LambdaHandler struct {
	svc *service.PromptService
}

func NewLambdaHandler(svc *service.PromptService) *LambdaHandler {
	return &LambdaHandler{svc: svc}
}

func (h *LambdaHandler) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger := logx.Log.With().Str("request_id", requestIDFromLambda(ctx, event)).Logger()
	logger.Debug().Str("path", event.Path).Str("method", event.HTTPMethod).Str("body", event.Body).Msg("event received")

	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return events.APIGatewayProxyResponse{}, fmt.Errorf("%w: invalid base64 body: %v", service.ErrMalformedRequest, err)
		}
		body = string(decoded)
	}

	text, err := h.svc.Relay(ctx, body)
	if err != nil {
		logger.Error().Err(err).Msg("relay failed")
		return events.APIGatewayProxyResponse{}, err
	}

	encoded, err := service.EncodeText(text)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       encoded,
	}, nil
}

func requestIDFromLambda(ctx context.Context, event events.APIGatewayProxyRequest) string {
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		return lc.AwsRequestID
	}
	return event.RequestContext.RequestID
}
