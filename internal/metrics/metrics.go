// Package metrics exposes Prometheus instrumentation for dispatch
// descriptor construction and device lifecycles.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CallContextsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "slangpy_call_contexts_total",
		Help: "Total number of call contexts constructed, by call mode",
	}, []string{"mode"})

	CallShapeDims = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "slangpy_call_shape_dims",
		Help:    "Dimension count of valid call shapes",
		Buckets: []float64{0, 1, 2, 3, 4, 5, 6, 8},
	})

	CallShapeElements = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "slangpy_call_shape_elements",
		Help:    "Element count of concrete call shapes",
		Buckets: []float64{1, 64, 1024, 16384, 262144, 1048576, 16777216},
	})

	DeviceOpensTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "slangpy_device_opens_total",
		Help: "Total number of device opens, by device kind",
	}, []string{"kind"})

	DeviceClosesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "slangpy_device_closes_total",
		Help: "Total number of device releases, by device kind",
	}, []string{"kind"})

	DevicesActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "slangpy_devices_active",
		Help: "Number of currently open devices",
	})
)

// RecordCallContext counts a constructed call context by mode name.
func RecordCallContext(mode string) {
	CallContextsTotal.WithLabelValues(mode).Inc()
}

// RecordCallShape observes the dimension count of a valid call shape.
// elements is the element count for concrete shapes and negative
// otherwise; negative values are not observed.
func RecordCallShape(ndim, elements int) {
	CallShapeDims.Observe(float64(ndim))
	if elements >= 0 {
		CallShapeElements.Observe(float64(elements))
	}
}

// RecordDeviceOpen counts a device open by kind name.
func RecordDeviceOpen(kind string) {
	DeviceOpensTotal.WithLabelValues(kind).Inc()
	DevicesActive.Inc()
}

// RecordDeviceClose counts a device release by kind name.
func RecordDeviceClose(kind string) {
	DeviceClosesTotal.WithLabelValues(kind).Inc()
	DevicesActive.Dec()
}
