package telemetry

import "github.com/prometheus/client_golang/prometheus"

// Metrics collects the counters and gauges a running node exposes: spends,
// rewards, difficulty, and UTXO set size, rather than peer/network/mempool-byte
// counters a networkless ledger has no use for.
type Metrics struct {
	SpendsTotal      prometheus.Counter
	SpendErrorsTotal *prometheus.CounterVec
	RewardsIssued    prometheus.Counter
	RewardsWasted    prometheus.Counter
	CurrentDifficulty prometheus.Gauge
	UTXOSetSize      prometheus.Gauge
}

// NewMetrics registers and returns the node's metric set against reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		SpendsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "utxod_spends_total",
			Help: "Total number of spend dispatches that applied successfully.",
		}),
		SpendErrorsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "utxod_spend_errors_total",
			Help: "Total number of rejected spend dispatches, by error kind.",
		}, []string{"kind"}),
		RewardsIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "utxod_rewards_issued_total",
			Help: "Total number of blocks whose reward was successfully issued.",
		}),
		RewardsWasted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "utxod_rewards_wasted_total",
			Help: "Total number of blocks with no resolvable author.",
		}),
		CurrentDifficulty: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "utxod_current_difficulty",
			Help: "Current network difficulty, truncated to float64.",
		}),
		UTXOSetSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "utxod_utxo_set_size",
			Help: "Number of live outputs in the UTXO set.",
		}),
	}

	reg.MustRegister(
		m.SpendsTotal,
		m.SpendErrorsTotal,
		m.RewardsIssued,
		m.RewardsWasted,
		m.CurrentDifficulty,
		m.UTXOSetSize,
	)
	return m
}
