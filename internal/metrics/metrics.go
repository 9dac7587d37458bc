package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the settlement collectors. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	depositsTotal            *prometheus.CounterVec
	withdrawalsTotal         *prometheus.CounterVec
	adminActionsTotal        *prometheus.CounterVec
	webhookEventsTotal       *prometheus.CounterVec
	providerCallDuration     *prometheus.HistogramVec
	balanceUpdateFailures    prometheus.Counter
	stuckEntries             *prometheus.GaugeVec
	rateLimitRejectionsTotal *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		depositsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "wallet",
				Subsystem: "settlement",
				Name:      "deposits_total",
				Help:      "Deposit settlement attempts partitioned by result.",
			},
			[]string{"result"},
		),
		withdrawalsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "wallet",
				Subsystem: "settlement",
				Name:      "withdrawals_total",
				Help:      "Withdrawal requests partitioned by result.",
			},
			[]string{"result"},
		),
		adminActionsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "wallet",
				Subsystem: "settlement",
				Name:      "admin_actions_total",
				Help:      "Withdrawal approve/reject actions partitioned by action and result.",
			},
			[]string{"action", "result"},
		),
		webhookEventsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "wallet",
				Subsystem: "webhook",
				Name:      "events_total",
				Help:      "Inbound provider webhook events partitioned by outcome.",
			},
			[]string{"outcome"},
		),
		providerCallDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "wallet",
				Subsystem: "provider",
				Name:      "verification_duration_seconds",
				Help:      "Latency of provider verification calls partitioned by result.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"result"},
		),
		balanceUpdateFailures: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: "wallet",
				Subsystem: "settlement",
				Name:      "balance_update_failures_total",
				Help:      "Entries frozen in FAILED_BALANCE_UPDATE. Every increment needs operator remediation.",
			},
		),
		stuckEntries: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "wallet",
				Subsystem: "ledger",
				Name:      "stuck_entries",
				Help:      "Entries found by the last audit run partitioned by status.",
			},
			[]string{"status"},
		),
		rateLimitRejectionsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "wallet",
				Subsystem: "http",
				Name:      "rate_limit_rejections_total",
				Help:      "Requests rejected by the shared rate limiter partitioned by route.",
			},
			[]string{"route"},
		),
	}
}

func (m *Metrics) Deposit(result string) {
	if m == nil {
		return
	}
	m.depositsTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) Withdrawal(result string) {
	if m == nil {
		return
	}
	m.withdrawalsTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) AdminAction(action, result string) {
	if m == nil {
		return
	}
	m.adminActionsTotal.WithLabelValues(action, result).Inc()
}

func (m *Metrics) WebhookEvent(outcome string) {
	if m == nil {
		return
	}
	m.webhookEventsTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ProviderCall(result string, d time.Duration) {
	if m == nil {
		return
	}
	m.providerCallDuration.WithLabelValues(result).Observe(d.Seconds())
}

func (m *Metrics) BalanceUpdateFailed() {
	if m == nil {
		return
	}
	m.balanceUpdateFailures.Inc()
}

func (m *Metrics) SetStuckEntries(status string, n int) {
	if m == nil {
		return
	}
	m.stuckEntries.WithLabelValues(status).Set(float64(n))
}

func (m *Metrics) RateLimited(route string) {
	if m == nil {
		return
	}
	m.rateLimitRejectionsTotal.WithLabelValues(route).Inc()
}
