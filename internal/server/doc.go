// Package server runs the local threat-cache daemon's HTTP transport.
//
// It owns the server lifecycle: startup, OS signal handling, and graceful
// shutdown.
package server
