// Package planner is the top-level orchestrator: it drives one flyer-route
// generation request end to end — geometry, road ingest (via the supplied
// provider), density estimation, partitioning, and per-zone routing — and
// stores the finished Job under a generated id for later retrieval.
package planner
