package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Request outcomes
const (
	OutcomeOK      = "ok"
	OutcomeCreated = "created"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

var (
	// Submissions counts submission requests by outcome
	Submissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "newsitems",
		Name:      "submissions_total",
		Help:      "News item submissions by outcome.",
	}, []string{"outcome"})

	// Listings counts listing requests by whether the scan succeeded
	Listings = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "newsitems",
		Name:      "listings_total",
		Help:      "News item listing requests by outcome.",
	}, []string{"outcome"})

	// ListedItems observes how many items each listing returned
	ListedItems = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "newsitems",
		Name:      "listed_items",
		Help:      "Number of news items returned per listing.",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
	})
)
