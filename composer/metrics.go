package composer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheSaves = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "essentialfeed_cache_saves_total",
		Help: "The total number of cache writes issued by the caching decorators",
	}, []string{"cache"})

	cacheSaveFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "essentialfeed_cache_save_failures_total",
		Help: "The total number of cache writes that failed and were dropped",
	}, []string{"cache"})

	fallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "essentialfeed_fallbacks_total",
		Help: "Number of times a primary loader failed and the fallback was used",
	}, []string{"loader"})
)
