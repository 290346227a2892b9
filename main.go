package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/joho/godotenv"
	"github.com/kube-rca/prompt-relay/internal/client"
	"github.com/kube-rca/prompt-relay/internal/config"
	"github.com/kube-rca/prompt-relay/internal/handler"
	"github.com/kube-rca/prompt-relay/internal/logx"
	"github.com/kube-rca/prompt-relay/internal/metrics"
	"github.com/kube-rca/prompt-relay/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	// 로컬 실행 시 .env 사용 (없으면 무시)
	_ = godotenv.Load()

	cfg := config.Load()
	logx.Configure(cfg.Log.Level, !cfg.Server.IsLambda())

	// Bedrock 클라이언트는 프로세스당 한 번만 생성해서 재사용
	bedrock, err := client.NewBedrockClient(context.Background(), cfg.Bedrock)
	if err != nil {
		logx.Log.Fatal().Err(err).Msg("init bedrock client")
	}
	svc := service.NewPromptService(bedrock, cfg.Bedrock.Sampling)

	if cfg.Server.IsLambda() {
		logx.Log.Info().Str("function", cfg.Server.LambdaFunction).Str("model", bedrock.ModelID()).Msg("starting lambda handler")
		lambda.Start(handler.NewLambdaHandler(svc).Handle)
		return
	}

	reg := prometheus.NewRegistry()
	metrics.Register(reg)
	router := handler.NewRouter(handler.NewPromptHandler(svc), cfg.Server.AllowedOrigins, reg)

	logx.Log.Info().Str("port", cfg.Server.Port).Str("model", bedrock.ModelID()).Msg("starting local server")
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		logx.Log.Fatal().Err(err).Msg("server exited")
	}
}
