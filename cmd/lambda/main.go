package main

import (
	"context"
	"log"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"trivia-backend/infrastructure/config"
	"trivia-backend/infrastructure/di"
)

var (
	chiLambda     *chiadapter.ChiLambdaV2
	container     *di.Container
	coldStart     = true
	coldStartTime time.Time
)

func init() {
	coldStartTime = time.Now()

	if !config.IsLambda() {
		log.Fatal("Not running inside AWS Lambda, use cmd/api to serve locally")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// The container lives for the whole execution environment, so its cleanup is never run
	container, _, err = di.InitializeContainer(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	chiRouter, ok := container.Router.Setup().(*chi.Mux)
	if !ok {
		log.Fatal("Failed to cast handler to chi.Mux")
	}
	chiLambda = chiadapter.NewV2(chiRouter)

	container.Logger.Info("Lambda cold start completed", zap.Duration("duration", time.Since(coldStartTime)))
}

// Handler is the Lambda function handler
func Handler(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	// API Gateway's id wins over a generated one
	if req.RequestContext.RequestID != "" {
		if req.Headers == nil {
			req.Headers = make(map[string]string)
		}
		if _, ok := req.Headers["x-request-id"]; !ok {
			req.Headers["x-request-id"] = req.RequestContext.RequestID
		}
	}

	resp, err := chiLambda.ProxyWithContextV2(ctx, req)

	if resp.Headers == nil {
		resp.Headers = make(map[string]string)
	}
	if coldStart {
		resp.Headers["X-Cold-Start"] = "true"
		coldStart = false
	} else {
		resp.Headers["X-Cold-Start"] = "false"
	}

	container.Logger.Info("Lambda response",
		zap.String("method", req.RequestContext.HTTP.Method),
		zap.String("path", req.RequestContext.HTTP.Path),
		zap.String("request_id", req.RequestContext.RequestID),
		zap.Int("status_code", resp.StatusCode),
		zap.String("stage", req.RequestContext.Stage),
	)

	return resp, err
}

func main() {
	lambda.Start(Handler)
}
