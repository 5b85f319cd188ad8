// Package metrics records explorer command outcomes in a private Prometheus
// registry and samples Go runtime memory statistics for the demo's timing
// section.
package metrics
