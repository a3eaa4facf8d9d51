package topicgate

import "github.com/prometheus/client_golang/prometheus"

var requestCounter = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "requests_total",
		Help: "The total number of handled requests by path, method and status code",
	},
	[]string{"path", "method", "code"},
)
