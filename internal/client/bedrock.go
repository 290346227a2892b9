// Bedrock Runtime InvokeModel 호출 클라이언트
//
// 자격 증명과 리전은 실행 환경(Lambda 실행 역할, AWS_REGION 등)에서 가져온다.
//
// 환경변수:
//   - BEDROCK_REGION: 리전 강제 지정 (선택)
//   - BEDROCK_MODEL_ID: 호출할 모델 (기본값 cohere.command-light-text-v14)

package client

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/kube-rca/prompt-relay/internal/config"
)

const jsonContentType = "application/json"

// RuntimeAPI abstracts the Bedrock InvokeModel call for testing.
type RuntimeAPI interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

// BedrockClient holds no per-request state and is shared across invocations.
type BedrockClient struct {
	api     RuntimeAPI
	modelID string
}

func NewBedrockClient(ctx context.Context, cfg config.BedrockConfig) (*BedrockClient, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}
	return NewBedrockClientWithAPI(bedrockruntime.NewFromConfig(awsCfg), cfg.ModelID), nil
}

func NewBedrockClientWithAPI(api RuntimeAPI, modelID string) *BedrockClient {
	if modelID == "" {
		modelID = config.DefaultModelID
	}
	return &BedrockClient{api: api, modelID: modelID}
}

func (c *BedrockClient) ModelID() string {
	return c.modelID
}

// Invoke sends body to the model and returns the raw response body.
func (c *BedrockClient) Invoke(ctx context.Context, body []byte) ([]byte, error) {
	out, err := c.api.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(c.modelID),
		ContentType: aws.String(jsonContentType),
		Accept:      aws.String(jsonContentType),
		Body:        body,
	})
	if err != nil {
		return nil, fmt.Errorf("invoke model %s: %w", c.modelID, err)
	}
	if out == nil {
		return nil, fmt.Errorf("invoke model %s: empty output", c.modelID)
	}
	return out.Body, nil
}
