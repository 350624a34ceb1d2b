package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PagesFetched tracks successfully retrieved result pages per tribunal
	PagesFetched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "datajud_pages_fetched_total",
			Help: "Total number of search result pages fetched",
		},
		[]string{"tribunal"},
	)

	// SearchErrors tracks search calls that failed past the retry budget
	SearchErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "datajud_search_errors_total",
			Help: "Total number of search calls that exhausted retries",
		},
		[]string{"tribunal"},
	)

	// RetryAttempts tracks retried search requests per tribunal
	RetryAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "datajud_retry_attempts_total",
			Help: "Total number of retried search requests",
		},
		[]string{"tribunal"},
	)

	// CasesFound tracks retained case records per tribunal
	CasesFound = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "datajud_cases_found_total",
			Help: "Total number of case records retained after filtering",
		},
		[]string{"tribunal"},
	)
)
