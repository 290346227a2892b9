package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/kube-rca/prompt-relay/internal/logx"
)

const (
	DefaultModelID     = "cohere.command-light-text-v14"
	DefaultTemperature = 0.9
	DefaultTopP        = 0.75
	DefaultTopK        = 0
	DefaultMaxTokens   = 100
)

type Config struct {
	Server  ServerConfig
	Bedrock BedrockConfig
	Log     LogConfig
}

type ServerConfig struct {
	Port           string
	AllowedOrigins []string
	// Lambda 런타임에서 실행 중인지 여부 (AWS_LAMBDA_FUNCTION_NAME)
	LambdaFunction string
}

type BedrockConfig struct {
	Region   string
	ModelID  string
	Sampling SamplingConfig
}

// SamplingConfig holds the fixed generation parameters sent with every
// invocation. They come from the deployment environment only, never from the
// request.
type SamplingConfig struct {
	Temperature float64
	TopP        float64
	TopK        int
	MaxTokens   int
}

type LogConfig struct {
	Level string
}

func DefaultSampling() SamplingConfig {
	return SamplingConfig{
		Temperature: DefaultTemperature,
		TopP:        DefaultTopP,
		TopK:        DefaultTopK,
		MaxTokens:   DefaultMaxTokens,
	}
}

func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:           getenv("PORT", "8080"),
			AllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
			LambdaFunction: os.Getenv("AWS_LAMBDA_FUNCTION_NAME"),
		},
		Bedrock: BedrockConfig{
			Region:  getenv("BEDROCK_REGION", os.Getenv("AWS_REGION")),
			ModelID: getenv("BEDROCK_MODEL_ID", DefaultModelID),
			Sampling: SamplingConfig{
				Temperature: getenvFloat("BEDROCK_TEMPERATURE", DefaultTemperature),
				TopP:        getenvFloat("BEDROCK_TOP_P", DefaultTopP),
				TopK:        getenvInt("BEDROCK_TOP_K", DefaultTopK),
				MaxTokens:   getenvInt("BEDROCK_MAX_TOKENS", DefaultMaxTokens),
			},
		},
		Log: LogConfig{
			Level: getenv("LOG_LEVEL", "info"),
		},
	}
}

// IsLambda reports whether the process was started by the Lambda runtime.
func (c ServerConfig) IsLambda() bool {
	return c.LambdaFunction != ""
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getenvFloat(key string, fallback float64) float64 {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
	if err != nil {
		logx.Log.Warn().Str("key", key).Str("value", val).Float64("default", fallback).Msg("invalid number, using default")
		return fallback
	}
	return f
}

func getenvInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		logx.Log.Warn().Str("key", key).Str("value", val).Int("default", fallback).Msg("invalid integer, using default")
		return fallback
	}
	return n
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
