package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/honeycombio/honeycomb-opentelemetry-go"
	"github.com/honeycombio/otel-config-go/otelconfig"
	log "github.com/sirupsen/logrus"
)

var GlobalTracer = otel.Tracer("liftcycle-backend")
var GlobalWorkoutGenTracer = otel.Tracer("liftcycle-workoutgen")

// EndSpanWithErrCheck ends the span, recording the error on it if non-nil.
func EndSpanWithErrCheck(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// HoneycombSetup configures the OpenTelemetry SDK via the honeycomb distro.
// The returned shutdown function must be called on service teardown.
// Endpoint and API key come from the standard OTEL_* / HONEYCOMB_* env vars.
func HoneycombSetup(tracingEnabled bool, serviceName string, rdb *redis.Client) (shutdown func(), err error) {
	if !tracingEnabled {
		log.Debugln("tracing disabled, otel sdk not configured")
		return func() {}, nil
	}

	bsp := honeycomb.NewBaggageSpanProcessor()
	otelShutdown, err := otelconfig.ConfigureOpenTelemetry(
		otelconfig.WithSpanProcessor(bsp),
		otelconfig.WithServiceName(serviceName),
	)
	if err != nil {
		return nil, err
	}

	if rdb != nil {
		rdb.AddHook(redisotel.NewTracingHook())
	}

	log.Debugln("honeycomb otel sdk configured")
	return otelShutdown, nil
}
