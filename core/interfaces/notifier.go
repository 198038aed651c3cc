// ABOUTME: Notifier interface for reporting dropped records to a monitoring channel
// ABOUTME: Stands in for an external alerting system; implementations may be no-ops

package interfaces

import "context"

// Notifier receives reports about raw records that failed validation and
// were dropped from the pipeline. Dropping is not an error, so the report
// is fire-and-forget: implementations must not fail the pipeline.
type Notifier interface {
	// NotifyInvalidRecord reports a single dropped record. missingFields
	// lists the required fields that were absent; reason carries any
	// additional detail such as an unparseable timestamp.
	NotifyInvalidRecord(ctx context.Context, missingFields []string, reason string)
}
