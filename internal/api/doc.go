// Package api provides an HTTP client for the awards backend REST API.
//
// # Overview
//
// The backend manages three entity types: the single About Us entry,
// sponsors, and award nominees. Each has the same four operations (list,
// create, update, delete) under /api/<entity>, but the wire shapes differ
// per entity and the client preserves them exactly.
//
// # Files
//
//   - client.go: transport, request encoding, error decoding
//   - types.go: entity structs mirroring the backend schema
//   - errors.go: the error taxonomy and UserMessage
//   - upload.go: local image files attached to multipart requests
//   - aboutus.go, sponsors.go, nominees.go: per-entity operations
//   - stores.go: narrow interfaces consumed by the panels
//
// # Client Usage
//
//	client, err := api.NewClient("http://localhost:5000", 10*time.Second)
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//
//	sponsors, err := client.ListSponsors(ctx)
//	if err != nil {
//		log.Printf("sponsor fetch failed: %v", err)
//	}
//
// An empty base URL is accepted by NewClient. Every operation on such a
// client returns a ConfigError without touching the network, so the UI can
// start and explain what is missing.
//
// # Wire Formats
//
//	Entity    List                  Create                      Update
//	AboutUs   {data:[...]}          multipart -> {data:{...}}   multipart -> {data:{...}}
//	Sponsor   [...]                 multipart, logos repeated   JSON without logos
//	Nominee   [...]                 JSON, body may be empty     JSON
//
// A 2xx About Us write without a data field is reported as a NetworkError
// ("unexpected response format: missing data").
//
// # Error Handling
//
// Every failure is one of:
//
//   - *ConfigError: no base URL configured
//   - *ValidationError: a client-side rule failed, no request was sent
//   - *NetworkError: transport failure or an undecodable response body
//   - *APIError: the server answered with status >= 400
//
// Use errors.As to classify and UserMessage to get operator-facing text.
// UserMessage prefers the server's JSON "message" field verbatim. There are
// no retries: one failed attempt is surfaced immediately.
//
// # Request Handling
//
// All requests:
//   - Use context for cancellation and timeout control
//   - Set Accept: application/json
//   - Include User-Agent: podium/0.1
//   - Carry a fresh X-Request-ID, also available through RequestID(err)
package api
