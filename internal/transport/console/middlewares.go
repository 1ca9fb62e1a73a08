package console

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

type command func(ctx context.Context) error

// withTrace puts a fresh sampled span context into ctx so every log line of
// one command shares a trace ID.
func withTrace(ctx context.Context) context.Context {
	traceID := trace.TraceID(uuid.New())

	var spanID trace.SpanID

	spanUUID := uuid.New()
	copy(spanID[:], spanUUID[:len(spanID)])

	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	})

	return trace.ContextWithSpanContext(ctx, sc)
}

func (s *Session) loggerMiddleware(name string) func(next command) command {
	return func(next command) command {
		return func(ctx context.Context) error {
			start := time.Now().UTC()

			if sc := trace.SpanContextFromContext(ctx); !sc.IsValid() {
				ctx = withTrace(ctx)
			}

			err := next(ctx)

			var traceID string

			if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
				traceID = sc.TraceID().String()
			}

			s.l.LogInfo(
				"type: command, name: %s, traceID: %s, latency: %s, failed: %t",
				name,
				traceID,
				time.Since(start),
				err != nil,
			)

			return err
		}
	}
}

func (s *Session) recoverMiddleware() func(next command) command {
	return func(next command) command {
		return func(ctx context.Context) (err error) {
			defer func() {
				if re := recover(); re != nil {
					var ok bool

					err, ok = re.(error)
					if !ok {
						err = fmt.Errorf("%v: %w", re, ErrPanic)
					}

					s.l.LogErrorf("type: panic, error: %v\n", err)
				}
			}()

			return next(ctx)
		}
	}
}

func (s *Session) applyMiddlewares(c command, middlewares ...func(command) command) command {
	for _, middleware := range middlewares {
		c = middleware(c)
	}

	return c
}
