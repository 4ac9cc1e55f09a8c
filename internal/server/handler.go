package server

import (
	"net/http"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"go.uber.org/fx"
)

type HttpHandler struct {
	Name    string
	Handler http.Handler
}

type HttpHandlerResult struct {
	fx.Out

	Handler *HttpHandler `group:"handlers"`
}

func AsHttpHandler(
	name string,
	handler http.Handler,
) HttpHandlerResult {
	return HttpHandlerResult{
		Handler: &HttpHandler{
			Name:    name,
			Handler: handler,
		},
	}
}

// NewMux registers the handlers on a fresh mux and wraps it
// so panics are reported to sentry before being re-raised.
func NewMux(handlers []*HttpHandler) http.Handler {
	mux := http.NewServeMux()

	for _, handler := range handlers {
		mux.Handle(handler.Name, handler.Handler)
	}

	return sentryhttp.New(sentryhttp.Options{Repanic: true}).Handle(mux)
}
