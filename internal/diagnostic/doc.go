// Package diagnostic provides the structured errors and warnings reported by
// template validation, mapping validation, and the auto-mapper.
//
// Key capabilities:
//   - Line-addressed diagnostics for template and XML checks
//   - Stable codes for each kind of problem
//   - Splitting mixed lists into errors and warnings
//   - Joining error diagnostics into a single Go error for CLI exit status
package diagnostic
