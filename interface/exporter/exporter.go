package exporter

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	METRIC_ERROR_COUNT        = "error_count"
	METRIC_CRANK_CYCLE_COUNT  = "crank_cycle_count"
	METRIC_CLAIMED_TOTAL      = "claimed_quote_total"
	METRIC_DISTRIBUTED_TOTAL  = "distributed_to_investors_total"
	METRIC_CREATOR_PAID_TOTAL = "creator_paid_total"
	METRIC_DAYS_CLOSED_COUNT  = "days_closed_count"
)

var (
	counters map[string]prometheus.Counter
)

func Init() {

	// --- Static Metrics: the metrics which are not depended on running configuration

	// Create metric spaces
	counters = make(map[string]prometheus.Counter)

	register := func(name, help string) {
		counter := prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "honoraryfee",
			Subsystem: "crank",
			Name:      name,
			Help:      help,
		})
		prometheus.MustRegister(counter)
		counters[name] = counter
	}

	register(METRIC_ERROR_COUNT, "Counts crank errors")
	register(METRIC_CRANK_CYCLE_COUNT, "Counts crank cycles started")
	register(METRIC_CLAIMED_TOTAL, "Total quote amount claimed from honorary positions")
	register(METRIC_DISTRIBUTED_TOTAL, "Total quote amount distributed to investors")
	register(METRIC_CREATOR_PAID_TOTAL, "Total quote amount paid to creator accounts")
	register(METRIC_DAYS_CLOSED_COUNT, "Number of distribution windows fully settled")
}

func GetCounter(name string) prometheus.Counter {
	return counters[name]
}

func IncErrorCount() {
	counters[METRIC_ERROR_COUNT].Inc()
}

func IncCrankCycle() {
	counters[METRIC_CRANK_CYCLE_COUNT].Inc()
}

func AddClaimed(amount uint64) {
	counters[METRIC_CLAIMED_TOTAL].Add(float64(amount))
}

func AddDistributed(amount uint64) {
	counters[METRIC_DISTRIBUTED_TOTAL].Add(float64(amount))
}

func AddCreatorPaid(amount uint64) {
	counters[METRIC_CREATOR_PAID_TOTAL].Add(float64(amount))
}

func IncDaysClosed() {
	counters[METRIC_DAYS_CLOSED_COUNT].Inc()
}
