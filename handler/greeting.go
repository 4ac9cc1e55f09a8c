package handler

import (
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Greeting is the body returned for every request outside the
// special lambdafy paths.
const Greeting = "Greetings from lambdafy.\n"

type GreetingHandlerParams struct {
	fx.In

	Log *zap.Logger
}

func NewGreetingHandler(params GreetingHandlerParams) *GreetingHandler {
	return &GreetingHandler{
		log: params.Log,
	}
}

type GreetingHandler struct {
	log *zap.Logger
}

func (h *GreetingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.log.Info("received HTTP request",
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
	)

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write([]byte(Greeting)); err != nil {
		h.log.Debug("failed to write response", zap.Error(err))
	}
}
