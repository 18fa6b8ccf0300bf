package catalog

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	LoadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_loads_total",
		Help: "Catalog loads by kind and terminal status",
	}, []string{"kind", "status"})

	LoadDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "catalog_load_duration_seconds",
		Help:    "Time from enumeration to publication of a catalog",
		Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"kind"})

	AssetsPublished = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "catalog_assets_published",
		Help:    "Number of assets published per catalog load",
		Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
	}, []string{"kind"})

	// Reasons: "resolve_error" (item failed to resolve) and "unpaired"
	// (a video without its thumbnail or the reverse).
	AssetsDropped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_assets_dropped_total",
		Help: "Assets withheld from a published catalog",
	}, []string{"kind", "reason"})
)
