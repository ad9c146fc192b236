/*
Package ports defines the driven ports (interfaces) for the Wasteland engine.

These interfaces decouple the core walker from external implementations, allowing
the engine to read maps from various sources and to cache reports in various
storage backends.

# Key Interfaces

  - MapLoader: Responsible for producing a parsed Map (e.g., from a file or memory).
  - ReportStore: Responsible for persisting and loading solved Reports.
  - MapSolver: Answers a Query for a Map supplied per call (used by the HTTP and MCP adapters).
*/
package ports
