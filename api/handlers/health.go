// ABOUTME: Liveness endpoint for the Huma API
// ABOUTME: Reports the entry counts and outcome counters of each cache

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"twitch-vod-rss/core/ttlcache"
)

// CacheReporter is implemented by components backed by a TTL cache
type CacheReporter interface {
	CacheReport() ttlcache.Report
}

// CacheHealth is the per-cache section of the health response
type CacheHealth struct {
	Name       string  `json:"name" example:"channel"`
	TTLSeconds float64 `json:"ttlSeconds" example:"600"`
	Entries    int     `json:"entries" doc:"Unexpired entries"`
	Hits       uint64  `json:"hits"`
	Misses     uint64  `json:"misses"`
	Coalesced  uint64  `json:"coalesced" doc:"Callers that awaited an in-flight computation"`
	Failures   uint64  `json:"failures"`
}

// HealthOutput is the liveness response
type HealthOutput struct {
	Body struct {
		Status string        `json:"status" example:"ok"`
		Caches []CacheHealth `json:"caches"`
	}
}

// RegisterHealthRoutes registers the liveness check and cache report
func RegisterHealthRoutes(api huma.API, caches ...CacheReporter) {
	huma.Register(api, huma.Operation{
		OperationID: "healthz",
		Method:      http.MethodGet,
		Path:        "/healthz",
		Summary:     "Liveness check",
		Tags:        []string{"Health"},
	}, func(ctx context.Context, _ *struct{}) (*HealthOutput, error) {
		out := &HealthOutput{}
		out.Body.Status = "ok"
		out.Body.Caches = make([]CacheHealth, 0, len(caches))
		for _, c := range caches {
			r := c.CacheReport()
			out.Body.Caches = append(out.Body.Caches, CacheHealth{
				Name:       r.Name,
				TTLSeconds: r.TTL.Seconds(),
				Entries:    r.Entries,
				Hits:       r.Hits,
				Misses:     r.Misses,
				Coalesced:  r.Coalesced,
				Failures:   r.Failures,
			})
		}
		return out, nil
	})
}
