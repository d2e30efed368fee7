package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"fridgekeeper/internal/models"
)

// Metrics holds the prometheus collectors exposed on the metrics port.
type Metrics struct {
	Actions       *prometheus.CounterVec
	InventorySize prometheus.Gauge
	ExpiredItems  prometheus.Gauge
}

// New registers the collectors on the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fridgekeeper_actions_total",
			Help: "Number of state actions dispatched, by action.",
		}, []string{"action"}),
		InventorySize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "fridgekeeper_inventory_items",
			Help: "Number of food items currently tracked.",
		}),
		ExpiredItems: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "fridgekeeper_expired_items",
			Help: "Number of tracked food items past their expiry date.",
		}),
	}
	reg.MustRegister(m.Actions, m.InventorySize, m.ExpiredItems)
	return m
}

// ObserveInventory updates the inventory gauges from the current list.
func (m *Metrics) ObserveInventory(items []models.FoodItem, now time.Time) {
	expired := 0
	for _, item := range items {
		if models.ExpiryStatus(item, now) == models.ExpiryExpired {
			expired++
		}
	}
	m.InventorySize.Set(float64(len(items)))
	m.ExpiredItems.Set(float64(expired))
}
