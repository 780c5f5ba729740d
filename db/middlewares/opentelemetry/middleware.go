package opentelemetry

import (
	"context"

	"github.com/coderi421/routemgr/db"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/coderi421/routemgr/db/middlewares/opentelemetry"

type MiddlewareBuilder struct {
	Tracer trace.Tracer
}

func (m MiddlewareBuilder) Build() db.Middleware {
	if m.Tracer == nil {
		m.Tracer = otel.GetTracerProvider().Tracer(instrumentationName)
	}
	return func(next db.Handler) db.Handler {
		return func(ctx context.Context, qc *db.QueryContext) *db.QueryResult {
			spanName := qc.Type
			if qc.Table != "" {
				spanName = qc.Type + " " + qc.Table
			}
			ctx, span := m.Tracer.Start(ctx, spanName, trace.WithSpanKind(trace.SpanKindClient))
			defer span.End()

			if qc.Dialect != nil {
				span.SetAttributes(attribute.String("db.system", qc.Dialect.Name()))
			}
			span.SetAttributes(attribute.String("db.operation", qc.Type))
			if qc.Table != "" {
				span.SetAttributes(attribute.String("db.sql.table", qc.Table))
			}
			if qc.Query != nil {
				span.SetAttributes(attribute.String("db.statement", qc.Query.SQL))
			}

			res := next(ctx, qc)
			if res.Err != nil {
				span.RecordError(res.Err)
				span.SetStatus(codes.Error, res.Err.Error())
			}
			return res
		}
	}
}
