package common

import (
	"go.uber.org/zap"

	"hc-bulk/internal/commands"
)

// ServiceOptions defines common options for application construction
type ServiceOptions struct {
	Logger     *zap.Logger
	Invocation *commands.Invocation
}

// Option defines a service option modifier
type Option func(*ServiceOptions)

func WithLogger(logger *zap.Logger) Option {
	return func(o *ServiceOptions) {
		o.Logger = logger
	}
}

func WithInvocation(inv *commands.Invocation) Option {
	return func(o *ServiceOptions) {
		o.Invocation = inv
	}
}
