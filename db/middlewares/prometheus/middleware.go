package prometheus

import (
	"context"
	"time"

	"github.com/coderi421/routemgr/db"
	"github.com/prometheus/client_golang/prometheus"
)

type MiddlewareBuilder struct {
	Namespace string
	Subsystem string
	Name      string
	Help      string
	// Registerer 默认为 prometheus.DefaultRegisterer
	Registerer prometheus.Registerer
}

func (m MiddlewareBuilder) Build() db.Middleware {
	vector := prometheus.NewSummaryVec(prometheus.SummaryOpts{
		Name:      m.Name,
		Subsystem: m.Subsystem,
		Namespace: m.Namespace,
		Help:      m.Help,
		Objectives: map[float64]float64{
			0.5:   0.01,
			0.75:  0.01,
			0.90:  0.01,
			0.99:  0.001,  // 99 线
			0.999: 0.0001, // 999 线
		},
	}, []string{"type", "table", "status"})

	reg := m.Registerer
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(vector)

	return func(next db.Handler) db.Handler {
		return func(ctx context.Context, qc *db.QueryContext) *db.QueryResult {
			startTime := time.Now()
			res := next(ctx, qc)

			table := qc.Table
			if table == "" {
				table = "unknown"
			}
			status := "ok"
			if res.Err != nil {
				status = "error"
			}
			// 单位是微秒，单条语句基本都在毫秒以下
			vector.WithLabelValues(qc.Type, table, status).
				Observe(float64(time.Since(startTime).Microseconds()))
			return res
		}
	}
}
