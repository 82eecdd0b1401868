// Package metrics exposes prometheus instrumentation for the battle service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// BattleMetrics holds the counters the orchestrator reports into.
type BattleMetrics struct {
	BattlesStarted     prometheus.Counter
	BattlesCompleted   *prometheus.CounterVec
	TurnsResolved      prometheus.Counter
	SettlementFailures prometheus.Counter
}

// New registers the battle counters on the given registerer.
func New(reg prometheus.Registerer) *BattleMetrics {
	factory := promauto.With(reg)

	return &BattleMetrics{
		BattlesStarted: factory.NewCounter(prometheus.CounterOpts{
			Name: "battles_started_total",
			Help: "Number of battles started.",
		}),
		BattlesCompleted: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "battles_completed_total",
			Help: "Number of battles completed, by result.",
		}, []string{"result"}),
		TurnsResolved: factory.NewCounter(prometheus.CounterOpts{
			Name: "battle_turns_resolved_total",
			Help: "Number of battle turns resolved.",
		}),
		SettlementFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "battle_settlement_failures_total",
			Help: "Number of reward settlements that failed and were left to retry.",
		}),
	}
}
