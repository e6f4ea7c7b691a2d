// Package printjob provides the PrintJob aggregate, the archived result of one label
// generation request.
//
// The package includes:
//   - PrintJob: The aggregate root holding the rendered document and what it was rendered from
//
// Key business rules:
//   - A job always has a valid identifier and a non-empty rendered document
//   - The decomposition is stored by its numeric code, which must be positive
//   - Every archived package number consists of decimal digits only
//   - A job is immutable once created; it can only be restored from persistence or purged
package printjob
