package itunes

// Package itunes implements the iTunes Search API client: request URL
// construction, the HTTP round trip, response decoding with the minimum
// result policy, and artwork URL de-duplication.
