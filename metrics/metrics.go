package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "laundry_orders_created_total",
		Help: "Total number of laundry orders successfully created.",
	})

	ProgressTicksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "laundry_progress_ticks_total",
		Help: "Total number of order progress updates applied.",
	})

	LostItemReportsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "laundry_lost_item_reports_total",
		Help: "Total number of lost-item reports filed.",
	})

	ComplaintsSubmittedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "laundry_complaints_submitted_total",
		Help: "Total number of complaints submitted.",
	})

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "laundry_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)
)
