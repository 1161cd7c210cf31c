package main

import (
	"context"
	"net/http"
	"strings"

	"orders-api/internal/handlers"
	"orders-api/pkg/lambda"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
)

const apiPath = "/api/orders"

func handler(ctx context.Context, event events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	manager := lambda.GetConnectionManager()
	container, err := manager.GetContainer(ctx)
	if err != nil {
		return events.APIGatewayV2HTTPResponse{
			StatusCode: http.StatusInternalServerError,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       `{"error": "Internal server error"}`,
		}, nil
	}

	req, err := lambda.FromAPIGatewayV2(event)
	if err != nil {
		container.Logger.WithError(err).Error("Failed to convert gateway event")
		return events.APIGatewayV2HTTPResponse{
			StatusCode: http.StatusBadRequest,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       `{"error": "Invalid request body"}`,
		}, nil
	}

	container.Logger.WithFields(map[string]interface{}{
		"method": req.Method,
		"path":   req.Path,
	}).Info("Received request")

	orderHandler := handlers.NewOrderHandler(container.OrderService)

	// Route the request
	var resp *lambda.Response
	switch {
	case req.Method == http.MethodPost && req.Path == apiPath:
		resp, err = orderHandler.HandleCreate(ctx, req)
	case req.Method == http.MethodGet && orderID(req) != "":
		resp, err = orderHandler.HandleGet(ctx, req)
	case req.Method == http.MethodDelete && orderID(req) != "":
		resp, err = orderHandler.HandleDelete(ctx, req)
	default:
		resp = &lambda.Response{
			StatusCode: http.StatusNotFound,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       []byte(`{"error": "Not found"}`),
		}
	}

	if err != nil {
		container.Logger.WithError(err).Error("Handler failed")
		return events.APIGatewayV2HTTPResponse{
			StatusCode: http.StatusInternalServerError,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       `{"error": "Internal server error"}`,
		}, nil
	}

	return lambda.ToAPIGatewayV2(resp), nil
}

// orderID extracts the order ID from path parameters or the raw path
func orderID(req *lambda.Request) string {
	if id := req.PathParams["id"]; id != "" {
		return id
	}

	if strings.HasPrefix(req.Path, apiPath+"/") {
		id := strings.TrimPrefix(req.Path, apiPath+"/")
		if id != "" && !strings.Contains(id, "/") {
			if req.PathParams == nil {
				req.PathParams = map[string]string{}
			}
			req.PathParams["id"] = id
			return id
		}
	}

	return ""
}

func main() {
	awslambda.Start(handler)
}
