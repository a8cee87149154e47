package scheduling

import "fmt"

// InvalidIntervalError reports a malformed date, time or duration. The API
// layer surfaces it as a client error.
type InvalidIntervalError struct {
	Field  string
	Reason string
}

func (e *InvalidIntervalError) Error() string {
	return fmt.Sprintf("invalid interval: %s %s", e.Field, e.Reason)
}

// RepositoryUnavailableError wraps a failed or timed-out read against the
// appointment store, working-hours store or staff roster. It is fatal to the
// request and must never be treated as "no conflict" or "available".
type RepositoryUnavailableError struct {
	Op  string
	Err error
}

func (e *RepositoryUnavailableError) Error() string {
	return fmt.Sprintf("repository unavailable: %s: %v", e.Op, e.Err)
}

func (e *RepositoryUnavailableError) Unwrap() error {
	return e.Err
}

// TenantMismatchError reports a candidate that references a different tenant
// than the requester's. Such requests are always rejected outright.
type TenantMismatchError struct {
	Want string
	Got  string
}

func (e *TenantMismatchError) Error() string {
	return fmt.Sprintf("tenant mismatch: candidate belongs to %q, request is for %q", e.Got, e.Want)
}
