package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	billsEncoded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "qrbill_bills_encoded_total",
		Help: "Number of bills successfully encoded into payload text.",
	})

	billsDecoded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "qrbill_payloads_decoded_total",
		Help: "Number of payloads successfully decoded back into bills.",
	})

	validationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "qrbill_validation_failures_total",
		Help: "Number of requests rejected by the field validator.",
	})
)
