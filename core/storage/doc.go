// Package storage archives run reports in S3-compatible object storage.
//
// It wraps the MinIO Go client behind the small Client interface so the archive step can
// be tested with the mocks package. Archiving is optional and disabled by default; nothing
// is ever read back, a run never depends on stored state.
package storage
