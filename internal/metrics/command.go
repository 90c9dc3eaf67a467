package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var commandsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "legacytx",
	Subsystem: "command",
	Name:      "handled_total",
	Help:      "Count of wallet commands by name and outcome.",
}, []string{"command", "status"})

// ObserveCommand records the outcome of handling one command. An empty name is recorded as "unknown".
func ObserveCommand(name string, err error) {
	if name == "" {
		name = "unknown"
	}
	commandsTotal.WithLabelValues(name, statusOf(err)).Inc()
}
