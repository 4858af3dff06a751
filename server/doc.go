// Package server exposes maze generation and solving over HTTP with gin.
//
// Routes, relative to the configured base URL:
//
//	GET /v1/maze?height=21&width=21&seed=7&frames=true
//	GET /v1/health
//
// A maze response carries a fresh UUID, the carved maze, the solved grid and
// the path. With frames=true it also carries the recorded search frames,
// intermediate ones capped per request. Invalid dimensions yield 400.
package server
