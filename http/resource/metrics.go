package resource

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/xy-planning-network/rest/http/negotiate"
)

var negotiations = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "rest_negotiations_total",
		Help: "Resource requests by how negotiating their representation ended and the media type chosen.",
	},
	[]string{"outcome", "type"},
)

func observe(o negotiate.Outcome, mediaType string) {
	negotiations.WithLabelValues(o.String(), mediaType).Inc()
}
