package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Prometheus collectors for the metrics sidecar. The snapshot Monitor
// feeds the ops websocket; these feed scrapes.
var (
	PageAssemblies = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "takeoutpages_page_assemblies_total",
			Help: "Restaurant pages assembled, by template key.",
		},
		[]string{"template"},
	)

	MockMenuFallbacks = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "takeoutpages_mock_menu_fallbacks_total",
			Help: "Pages rendered with generated demo menus because no real menu was on file.",
		},
	)

	UpstreamErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "takeoutpages_upstream_errors_total",
			Help: "Failed calls to the data API, by endpoint group.",
		},
		[]string{"endpoint"},
	)

	OrdersPlaced = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "takeoutpages_orders_placed_total",
			Help: "Orders successfully created through the storefront.",
		},
	)
)

func init() {
	prometheus.MustRegister(PageAssemblies, MockMenuFallbacks, UpstreamErrors, OrdersPlaced)
}
