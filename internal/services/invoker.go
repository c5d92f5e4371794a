package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/aws"
	lambdaclient "github.com/aws/aws-sdk-go-v2/service/lambda"
	lambdatypes "github.com/aws/aws-sdk-go-v2/service/lambda/types"
)

// LambdaAPI is the subset of the Lambda client used by FunctionInvoker
type LambdaAPI interface {
	Invoke(ctx context.Context, params *lambdaclient.InvokeInput, optFns ...func(*lambdaclient.Options)) (*lambdaclient.InvokeOutput, error)
}

// FunctionInvoker calls deployed API Gateway proxy functions directly
type FunctionInvoker struct {
	client LambdaAPI
}

// NewFunctionInvoker creates an invoker using the given Lambda client
func NewFunctionInvoker(client LambdaAPI) *FunctionInvoker {
	return &FunctionInvoker{client: client}
}

// InvokeProxy sends request to the named function synchronously and decodes
// the proxy response it returns
func (f *FunctionInvoker) InvokeProxy(ctx context.Context, functionName string, request events.APIGatewayProxyRequest) (*events.APIGatewayProxyResponse, error) {
	payload, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	out, err := f.client.Invoke(ctx, &lambdaclient.InvokeInput{
		FunctionName:   aws.String(functionName),
		InvocationType: lambdatypes.InvocationTypeRequestResponse,
		Payload:        payload,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to invoke %s: %w", functionName, err)
	}

	if out.FunctionError != nil {
		return nil, fmt.Errorf("function %s failed (%s): %s", functionName, aws.ToString(out.FunctionError), string(out.Payload))
	}

	var response events.APIGatewayProxyResponse
	if err := json.Unmarshal(out.Payload, &response); err != nil {
		return nil, fmt.Errorf("failed to decode response from %s: %w", functionName, err)
	}

	return &response, nil
}
