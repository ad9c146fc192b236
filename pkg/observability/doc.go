/*
Package observability provides tools for monitoring the Wasteland engine.

It turns engine lifecycle hooks into structured log records and Prometheus
metrics (walk counts, step totals, durations) without coupling the core
walker to either.
*/
package observability
