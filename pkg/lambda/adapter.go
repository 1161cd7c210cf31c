package lambda

import (
	"encoding/base64"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
)

// FromAPIGatewayV2 converts an API Gateway HTTP API (v2) event into a
// generic request. Base64-encoded bodies are decoded.
func FromAPIGatewayV2(event events.APIGatewayV2HTTPRequest) (*Request, error) {
	body := []byte(event.Body)
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(event.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to decode request body: %w", err)
		}
		body = decoded
	}

	return &Request{
		Method:      event.RequestContext.HTTP.Method,
		Path:        event.RawPath,
		Headers:     event.Headers,
		QueryParams: event.QueryStringParameters,
		Body:        body,
		PathParams:  event.PathParameters,
	}, nil
}

// ToAPIGatewayV2 converts a generic response into an API Gateway HTTP API
// (v2) response
func ToAPIGatewayV2(resp *Response) events.APIGatewayV2HTTPResponse {
	headers := resp.Headers
	if headers == nil {
		headers = map[string]string{"Content-Type": "application/json"}
	}

	return events.APIGatewayV2HTTPResponse{
		StatusCode: resp.StatusCode,
		Headers:    headers,
		Body:       string(resp.Body),
	}
}
