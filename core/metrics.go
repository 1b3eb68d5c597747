// SPDX-License-Identifier: MIT

package core

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var meter = otel.Meter("semgraph.core")

// Adjacency cache instruments.
var (
	cacheHits     metric.Int64Counter
	cacheRebuilds metric.Int64Counter

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics creates the instruments once. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		cacheHits, err = meter.Int64Counter(
			"semgraph_adjacency_cache_hits_total",
			metric.WithDescription("Adjacency requests served from the cache"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		cacheRebuilds, err = meter.Int64Counter(
			"semgraph_adjacency_rebuilds_total",
			metric.WithDescription("Adjacency maps built from the current edges"),
		)
		if err != nil {
			metricsErr = err
		}
	})

	return metricsErr
}

func recordAdjacency(hit bool, key adjacencyKey) {
	if initMetrics() != nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.Bool("directed", key.directed),
		attribute.Bool("reversed", key.reversed),
		attribute.Bool("stochastic", key.stochastic),
	)
	if hit {
		cacheHits.Add(context.Background(), 1, attrs)
		return
	}
	cacheRebuilds.Add(context.Background(), 1, attrs)
}
