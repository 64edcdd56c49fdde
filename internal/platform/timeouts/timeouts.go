// Package timeouts defines shared timeout constants used across the site.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// StorePing caps the connectivity check performed when a store opens.
const StorePing = 5 * time.Second

// SessionBackend caps a single round trip to a remote session backend.
const SessionBackend = 2 * time.Second
