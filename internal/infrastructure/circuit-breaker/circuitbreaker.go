package circuitbreaker

import (
	"github.com/sony/gobreaker/v2"

	"github.com/planeta-guru/storefront-service/pkg/httpclient"
)

// CreateCircuitBreaker guards the upstream storefront API: after three or
// more requests with a failure ratio of 60% the breaker opens. Only timeouts,
// transport failures, and 5xx responses count as failures; a 4xx the upstream
// answered itself is a working upstream.
func CreateCircuitBreaker(name string) *gobreaker.CircuitBreaker[[]byte] {
	var st gobreaker.Settings
	st.Name = name
	st.ReadyToTrip = func(counts gobreaker.Counts) bool {
		failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
		return counts.Requests >= 3 && failureRatio >= 0.6
	}
	st.IsSuccessful = httpclient.IsSuccessful

	cb := gobreaker.NewCircuitBreaker[[]byte](st)

	return cb
}
