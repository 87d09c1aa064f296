package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ShipmentsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tms_shipments_created_total",
		Help: "Shipments created.",
	})
	ShipmentsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tms_shipments_deleted_total",
		Help: "Shipments deleted together with their boxes and history.",
	})
	StatusChanges = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tms_status_changes_total",
		Help: "Shipment status changes by target status.",
	}, []string{"status"})
	BoxesAdded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tms_boxes_added_total",
		Help: "Boxes added to shipments.",
	})
	BoxesRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tms_boxes_rejected_total",
		Help: "Boxes rejected because the code already exists on the shipment.",
	})
	CatalogRefreshes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_refresh_total",
		Help: "Catalog refreshes.",
	})
)

// Handler serves the default registry in Prometheus text format.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
