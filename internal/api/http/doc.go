// Package http provides REST handlers for service discovery and tool
// execution.
package http
