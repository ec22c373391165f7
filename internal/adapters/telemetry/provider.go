package telemetry

import (
	"context"
	"io"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Setup installs a global TracerProvider. When summary is non-nil, finished spans
// are reported to it through a SummaryProcessor; otherwise spans are recorded and
// dropped. The returned function shuts the provider down.
func Setup(summary io.Writer) func(context.Context) error {
	var opts []sdktrace.TracerProviderOption
	if summary != nil {
		opts = append(opts, sdktrace.WithSpanProcessor(NewSummaryProcessor(summary)))
	}

	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)

	return tp.Shutdown
}
