// Package http implements the HTTP transport of the demo search service.
//
// It exposes the server-sent events search endpoint, the version and
// health endpoints, and the middleware around them: panic recovery,
// request tracing, access logging and CORS. Search requests are delegated
// to [service.SearchService]; every phase it emits is written to the client
// as one `data:` message.
package http
