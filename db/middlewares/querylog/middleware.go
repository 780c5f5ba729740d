package querylog

import (
	"context"
	"time"

	"github.com/coderi421/routemgr/db"
	"github.com/rs/zerolog"
)

type MiddlewareBuilder struct {
	logger        zerolog.Logger
	logArgs       bool
	slowThreshold time.Duration
}

func NewBuilder(logger zerolog.Logger) *MiddlewareBuilder {
	return &MiddlewareBuilder{
		logger: logger,
	}
}

// LogArgs 是否把参数也打印出来，参数里可能有敏感数据，默认不打印
func (m *MiddlewareBuilder) LogArgs(b bool) *MiddlewareBuilder {
	m.logArgs = b
	return m
}

// SlowThreshold logs statements slower than d at warn level. Zero disables it.
func (m *MiddlewareBuilder) SlowThreshold(d time.Duration) *MiddlewareBuilder {
	m.slowThreshold = d
	return m
}

func (m *MiddlewareBuilder) Build() db.Middleware {
	return func(next db.Handler) db.Handler {
		return func(ctx context.Context, qc *db.QueryContext) *db.QueryResult {
			start := time.Now()
			res := next(ctx, qc)
			elapsed := time.Since(start)

			var evt *zerolog.Event
			switch {
			case res.Err != nil:
				evt = m.logger.Error().Err(res.Err)
			case m.slowThreshold > 0 && elapsed > m.slowThreshold:
				evt = m.logger.Warn().Bool("slow", true)
			default:
				evt = m.logger.Debug()
			}

			evt = evt.Str("type", qc.Type).
				Str("table", qc.Table).
				Dur("elapsed", elapsed)
			if qc.Query != nil {
				evt = evt.Str("sql", qc.Query.SQL)
				if m.logArgs {
					evt = evt.Interface("args", qc.Query.Args)
				}
			}
			evt.Msg("query")
			return res
		}
	}
}
