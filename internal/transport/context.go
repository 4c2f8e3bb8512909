package transport

import "context"

type ctxKey string

const operationKey ctxKey = "graphql_operation"

// WithOperation stores the GraphQL operation name of the current request.
func WithOperation(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, operationKey, name)
}

// OperationFrom returns the operation name, or "" for anonymous operations.
func OperationFrom(ctx context.Context) string {
	name, _ := ctx.Value(operationKey).(string)
	return name
}
