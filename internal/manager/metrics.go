package manager

import "github.com/prometheus/client_golang/prometheus"

var (
	engineTransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sonard",
			Subsystem: "engine",
			Name:      "transitions_total",
			Help:      "State transitions applied by the session loop",
		},
		[]string{"op"},
	)

	displayedEvents = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "sonard",
			Subsystem: "engine",
			Name:      "displayed_events",
			Help:      "Events in the current displayed sequence",
		},
	)

	carouselFramesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "sonard",
			Subsystem: "carousel",
			Name:      "frames_total",
			Help:      "Carousel frames that moved the offset",
		},
	)

	catalogLoadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sonard",
			Subsystem: "catalog",
			Name:      "loads_total",
			Help:      "Catalog loads by supplier and result",
		},
		[]string{"source", "result"},
	)
)

func init() {
	prometheus.MustRegister(engineTransitionsTotal, displayedEvents, carouselFramesTotal, catalogLoadsTotal)
}
