// Package monitoring provides Prometheus metrics for the HTTP surface,
// tool invocations and sandbox rejections.
package monitoring
