package observability

import (
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	siteotel "github.com/tsolutions/site/internal/platform/otel"
	"github.com/tsolutions/site/internal/services/site/platform/httpx"
)

// Tracing starts a server span per request, continuing any incoming trace.
// The span is named after the matched route once routing has run.
func Tracing() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			ctx, span := siteotel.Tracer().Start(ctx, r.Method+" "+r.URL.Path,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.request.method", r.Method),
					attribute.String("url.path", r.URL.Path),
				),
			)
			defer span.End()

			rec := &statusRecorder{ResponseWriter: w}
			r = r.WithContext(ctx)
			next.ServeHTTP(rec, r)

			route := routePattern(r)
			span.SetName(r.Method + " " + route)
			span.SetAttributes(
				attribute.String("http.route", route),
				attribute.Int("http.response.status_code", rec.code()),
				attribute.String("site.request_id", httpx.RequestIDOf(r)),
			)
			if rec.code() >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(rec.code()))
			}
		})
	}
}
