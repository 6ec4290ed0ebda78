package ledger

import "github.com/prometheus/client_golang/prometheus"

var operationsCreated = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "ledger_operations_created_total",
		Help: "How many operations were created, partitioned by kind and sign.",
	},
	[]string{"kind", "sign"},
)

var plannedCopied = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "ledger_planned_copied_total",
		Help: "How many planned operations were created by copying them to another step.",
	},
)

// Collectors returns the Prometheus collectors of the ledger so that
// they can be registered with the registry that is exposed.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		operationsCreated,
		plannedCopied,
	}
}
