// Package metrics records configuration load outcomes. The Prometheus
// implementation can be exported as a node-exporter textfile for CI jobs.
package metrics
