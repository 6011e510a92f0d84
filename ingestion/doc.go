// Package ingestion builds the FAQ index.
//
// The Pipeline embeds every FAQ question in fixed-size batches on a worker
// pool, retries failed batches with exponential backoff, normalizes the
// resulting vectors and, when a vector repository is configured, reuses
// vectors computed by earlier builds for unchanged questions.
package ingestion
