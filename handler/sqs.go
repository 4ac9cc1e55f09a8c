package handler

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// SQSPath receives SQS message bodies forwarded by the lambdafy proxy.
const SQSPath = "/_lambdafy/sqs"

type SQSHandlerParams struct {
	fx.In

	Log *zap.Logger
}

func NewSQSHandler(params SQSHandlerParams) *SQSHandler {
	return &SQSHandler{
		log: params.Log,
	}
}

// SQSHandler logs the message body and acknowledges it
// with an empty 200 response.
type SQSHandler struct {
	log *zap.Logger
}

func (h *SQSHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	length := contentLength(r.Header)

	body, err := io.ReadAll(io.LimitReader(r.Body, length))
	if err != nil {
		h.log.Debug("failed to read body", zap.Error(err))
	}

	h.log.Info("received SQS message",
		zap.String("body", strings.ToValidUTF8(string(body), "\uFFFD")),
	)

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
}

// contentLength returns the declared body length, or zero
// if the header is missing or not a non-negative integer.
// net/http rejects malformed lengths before a handler runs, so the
// fallback only applies to requests built in-process, e.g. by the lambda proxy.
func contentLength(header http.Header) int64 {
	n, err := strconv.ParseInt(header.Get("Content-Length"), 10, 64)
	if err != nil || n < 0 {
		return 0
	}

	return n
}
