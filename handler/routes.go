package handler

import (
	"github.com/oxplot/lambdafy-greeter/internal/server"
)

func NewSQSRoute(handler *SQSHandler) server.HttpHandlerResult {
	return server.AsHttpHandler(SQSPath, handler)
}

// NewGreetingRoute matches every path not claimed by another route.
func NewGreetingRoute(handler *GreetingHandler) server.HttpHandlerResult {
	return server.AsHttpHandler("/", handler)
}
