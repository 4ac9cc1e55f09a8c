package lambda

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/core"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/oxplot/lambdafy-greeter/handler"
	"github.com/oxplot/lambdafy-greeter/internal/server"
)

var ErrUnsupportedEvent = errors.New("unsupported lambda event")

// LambdaHandlerParams represents the parameters required for
// the Lambda handler.
type LambdaHandlerParams struct {
	fx.In

	// Config is the configuration for the Lambda handler.
	Config Config

	// Handlers is a slice of HTTP handlers grouped together.
	Handlers []*server.HttpHandler `group:"handlers"`

	// Context is the context for the Lambda handler.
	Context context.Context

	// Logger is the logger for the Lambda handler.
	Logger *zap.Logger
}

// proxyFunc forwards a raw HTTP event to the route mux.
type proxyFunc func(context.Context, json.RawMessage) (any, error)

// LambdaHandler serves lambda events with the same routes as the
// standalone server. HTTP events are proxied according to the configured
// ProxySource; SQS events are posted record by record to the SQS route.
type LambdaHandler struct {
	config Config
	ctx    context.Context
	cancel context.CancelFunc
	mux    http.Handler
	proxy  proxyFunc
	log    *zap.Logger
}

// NewLambdaHandler creates a new instance of LambdaHandler
// with the given parameters.
func NewLambdaHandler(params LambdaHandlerParams) (*LambdaHandler, error) {
	ctx, cancel := context.WithCancel(params.Context)

	h := &LambdaHandler{
		config: params.Config,
		ctx:    ctx,
		cancel: cancel,
		mux:    server.NewMux(params.Handlers),
		log:    params.Logger,
	}

	proxy, err := h.getProxyFunction()
	if err != nil {
		cancel()
		return nil, err
	}

	h.proxy = proxy

	return h, nil
}

// NewLifecycleHandler creates a new instance of LambdaHandler
// with the given parameters and attaches lifecycle hooks to
// start and stop the handler.
func NewLifecycleHandler(params LambdaHandlerParams, lc fx.Lifecycle) (*LambdaHandler, error) {
	h, err := NewLambdaHandler(params)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			h.Start()
			return nil
		},
		OnStop: func(context.Context) error {
			h.Shutdown()
			return nil
		},
	})

	return h, nil
}

// Start starts the AWS Lambda runtime client in a new goroutine.
func (s *LambdaHandler) Start() {
	s.log.Debug("using lambda event proxy", zap.Stringer("proxy_source", s.config.ProxySource))

	go lambda.StartWithOptions(s.Handle, lambda.WithContext(s.ctx))
}

// Shutdown cancels the execution of the LambdaHandler.
func (s *LambdaHandler) Shutdown() {
	s.cancel()
}

// Handle dispatches a raw lambda event by its shape.
func (s *LambdaHandler) Handle(ctx context.Context, payload json.RawMessage) (any, error) {
	var probe struct {
		Records json.RawMessage `json:"Records"`
	}
	if err := json.Unmarshal(payload, &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedEvent, err)
	}

	if probe.Records != nil {
		var evt events.SQSEvent
		if err := json.Unmarshal(payload, &evt); err != nil {
			return nil, fmt.Errorf("failed to decode SQS event: %w", err)
		}

		return s.HandleSQS(ctx, evt), nil
	}

	return s.proxy(ctx, payload)
}

// HandleSQS posts every record to the SQS route concurrently. Records
// not acknowledged with a 2xx status are reported as batch item failures,
// which makes SQS redeliver them.
func (s *LambdaHandler) HandleSQS(ctx context.Context, evt events.SQSEvent) events.SQSEventResponse {
	var (
		mu       sync.Mutex
		response = events.SQSEventResponse{
			BatchItemFailures: []events.SQSBatchItemFailure{},
		}
	)

	var g errgroup.Group

	for _, record := range evt.Records {
		g.Go(func() error {
			if err := s.forwardSQSMessage(ctx, record); err != nil {
				s.log.Error("failed to process SQS message",
					zap.String("message_id", record.MessageId),
					zap.Error(err),
				)

				mu.Lock()
				response.BatchItemFailures = append(response.BatchItemFailures, events.SQSBatchItemFailure{
					ItemIdentifier: record.MessageId,
				})
				mu.Unlock()
			}
			return nil
		})
	}

	_ = g.Wait()

	return response
}

func (s *LambdaHandler) forwardSQSMessage(ctx context.Context, record events.SQSMessage) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, handler.SQSPath, strings.NewReader(record.Body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Length", strconv.Itoa(len(record.Body)))

	w := core.NewProxyResponseWriter()
	s.mux.ServeHTTP(w, req)

	res, err := w.GetProxyResponse()
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d: %s", res.StatusCode, res.Body)
	}

	return nil
}

// getProxyFunction returns the appropriate proxy function
// based on the configured ProxySource.
func (s *LambdaHandler) getProxyFunction() (proxyFunc, error) {
	switch s.config.ProxySource {
	case ProxySourceApiGatewayV1:
		return adaptProxy(httpadapter.New(s.mux).ProxyWithContext), nil
	case ProxySourceApiGatewayV2:
		return adaptProxy(httpadapter.NewV2(s.mux).ProxyWithContext), nil
	case ProxySourceAlb:
		return adaptProxy(httpadapter.NewALB(s.mux).ProxyWithContext), nil
	default:
		return nil, fmt.Errorf("invalid proxy source: %s", s.config.ProxySource)
	}
}

func adaptProxy[E, R any](fn func(context.Context, E) (R, error)) proxyFunc {
	return func(ctx context.Context, payload json.RawMessage) (any, error) {
		var evt E
		if err := json.Unmarshal(payload, &evt); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedEvent, err)
		}

		return fn(ctx, evt)
	}
}
