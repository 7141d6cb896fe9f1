package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ziadkadry99/abbrtip/internal/site"
)

// metrics are registered on a per-server registry so several servers can
// coexist in one process.
type metrics struct {
	registry      *prometheus.Registry
	builds        *prometheus.CounterVec
	buildDuration prometheus.Histogram
	pages         prometheus.Gauge
	markers       prometheus.Gauge
	abbreviations prometheus.Gauge
	reloadClients prometheus.Gauge
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		builds: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "abbrtip_builds_total",
				Help: "Site builds by result",
			},
			[]string{"result"},
		),
		buildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "abbrtip_build_duration_seconds",
			Help:    "Duration of full site builds",
			Buckets: prometheus.DefBuckets,
		}),
		pages: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "abbrtip_pages",
			Help: "Pages rendered by the last successful build",
		}),
		markers: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "abbrtip_markers",
			Help: "Tooltip markers written by the last successful build",
		}),
		abbreviations: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "abbrtip_abbreviations",
			Help: "Abbreviations loaded by the last successful build",
		}),
		reloadClients: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "abbrtip_livereload_clients",
			Help: "Connected live reload clients",
		}),
	}
	m.registry.MustRegister(m.builds, m.buildDuration, m.pages, m.markers, m.abbreviations, m.reloadClients)
	return m
}

func (m *metrics) record(man *site.Manifest) {
	m.pages.Set(float64(len(man.Pages)))
	m.markers.Set(float64(man.TotalMarkers))
	m.abbreviations.Set(float64(len(man.Abbreviations)))
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
