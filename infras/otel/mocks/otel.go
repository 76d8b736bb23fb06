// Package mocks provides no-op tracing doubles for service and handler tests.
package mocks

import (
	"context"

	"frontdesk/infras/otel"
)

type noopOtel struct{}

func (noopOtel) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, NewScope()
}

func NewOtel() otel.Otel {
	return noopOtel{}
}
