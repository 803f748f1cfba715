// Package modrinth provides a client for the Modrinth REST API.
//
// The client is built for batch publishing: many independent operations
// run concurrently against a shared, server-enforced rate limit. Three
// pieces cooperate to make that safe:
//
//   - A rate-limit tracker fed by the X-Ratelimit-* headers of every
//     response. Requests block in wait() once the advertised quota is
//     exhausted; the tracker resets optimistically before sleeping so
//     queued workers do not pile up redundant sleeps.
//   - Worker-exclusive HTTP sessions. Each session owns a single pooled
//     connection and retries transient statuses (429, 500, 502, 503, 504)
//     with exponential backoff before the caller ever sees them.
//   - A single request chokepoint, do(), through which every typed
//     operation flows: URL composition, capacity wait, dispatch, header
//     observation and error classification all happen in one place.
//
// # Error Handling
//
// A response with a failure status becomes an *APIError carrying the
// status code and the parsed error body:
//
//	if apiErr := modrinth.AsAPIError(err); apiErr != nil {
//		if apiErr.IsNotFound() {
//			// Handle missing project
//		}
//	}
//
// Any other error means the request could not be completed at all after
// the transport's retry budget.
//
// # Batch Execution
//
// RunAll runs independent work items on a bounded worker pool and returns
// their outcomes positionally aligned with the input:
//
//	items := []modrinth.WorkItem[*modrinth.Project]{
//		func() (*modrinth.Project, error) { return client.GetProject(ctx, "a") },
//		func() (*modrinth.Project, error) { return client.GetProject(ctx, "b") },
//	}
//	results, err := modrinth.RunAll(ctx, items, modrinth.DefaultMaxParallel)
//
// One failing item does not stop the others; inspect the result slice for
// per-item detail.
package modrinth
