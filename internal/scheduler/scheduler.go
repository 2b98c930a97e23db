package scheduler

import (
	"log"
	"time"

	"github.com/vishalgodara/Iota-Financing-Solutions/internal/catalog"
	"github.com/vishalgodara/Iota-Financing-Solutions/internal/config"
)

// warmSearches are the category filters the showroom page requests on load.
var warmSearches = []struct{ category, keyword string }{
	{"all", ""},
	{"suv", ""},
	{"sedan", ""},
	{"truck", ""},
	{"hybrid", ""},
	{"electric", ""},
}

// WarmCatalogCache primes the search cache with the common showroom queries.
func WarmCatalogCache() {
	start := time.Now()
	for _, q := range warmSearches {
		catalog.SearchCached(q.category, q.keyword, true)
	}
	log.Printf("[SCHEDULER] catalog cache warmed: %d queries in %v", len(warmSearches), time.Since(start).Round(time.Millisecond))
}

// Start launches the nightly cache warm loop. It warms once at startup and
// then on the configured interval.
func Start() {
	cfg := config.GetSchedulerConfig()
	if !cfg.CacheWarm.Enabled {
		log.Println("[SCHEDULER] cache warm disabled")
		return
	}

	WarmCatalogCache()

	go func() {
		ticker := time.NewTicker(cfg.CacheWarm.Interval)
		defer ticker.Stop()
		for range ticker.C {
			WarmCatalogCache()
		}
	}()

	log.Printf("[SCHEDULER] cache warm every %v", cfg.CacheWarm.Interval)
}
