// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// MetricsBuilder 统计 HTTP 接口的响应时间和调用次数
type MetricsBuilder struct {
	Namespace  string
	Subsystem  string
	registerer prometheus.Registerer
}

func NewMetricsBuilder(namespace, subsystem string) *MetricsBuilder {
	return &MetricsBuilder{
		Namespace:  namespace,
		Subsystem:  subsystem,
		registerer: prometheus.DefaultRegisterer,
	}
}

func (b *MetricsBuilder) Registerer(r prometheus.Registerer) *MetricsBuilder {
	b.registerer = r
	return b
}

func (b *MetricsBuilder) Build() gin.HandlerFunc {
	labels := []string{"method", "path", "status_code"}
	duration := prometheus.NewSummaryVec(prometheus.SummaryOpts{
		Namespace: b.Namespace,
		Subsystem: b.Subsystem,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request duration in seconds",
		Objectives: map[float64]float64{
			0.5:  0.05,
			0.9:  0.01,
			0.99: 0.001,
		},
	}, labels)
	total := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: b.Namespace,
		Subsystem: b.Subsystem,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests",
	}, labels)
	// 正在处理的请求数量
	inflight := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: b.Namespace,
		Subsystem: b.Subsystem,
		Name:      "http_requests_in_flight",
		Help:      "Number of HTTP requests being served",
	})
	b.registerer.MustRegister(duration, total, inflight)

	return func(ctx *gin.Context) {
		start := time.Now()
		inflight.Inc()
		defer func() {
			inflight.Dec()
			path := ctx.FullPath()
			if path == "" {
				// 没有匹配上路由的统一归类，避免 label 爆炸
				path = "unknown"
			}
			lvs := []string{ctx.Request.Method, path, strconv.Itoa(ctx.Writer.Status())}
			duration.WithLabelValues(lvs...).Observe(time.Since(start).Seconds())
			total.WithLabelValues(lvs...).Inc()
		}()
		ctx.Next()
	}
}
