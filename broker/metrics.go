package broker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var recordsProduced = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "records_produced_total",
		Help: "The total number of records appended per topic",
	},
	[]string{"topic"},
)

var recordsFetched = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "records_fetched_total",
		Help: "The total number of records served to fetch requests per topic",
	},
	[]string{"topic"},
)

var subscriberDropped = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "subscriber_dropped_total",
		Help: "The total number of records dropped for slow subscribers",
	},
)
