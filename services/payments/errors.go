package payments

import "fmt"

// AuthError indicates missing or rejected gateway credentials. Callers must
// not retry more than once per request without fresh configuration.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("gateway authentication failed: %s", e.Reason)
}

// GatewayError is a non-success response code from the payment gateway,
// carrying the gateway's own description.
type GatewayError struct {
	Code        string
	Description string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway error %s: %s", e.Code, e.Description)
}

// NetworkError is a transport failure talking to the gateway, including
// non-JSON responses and request timeouts.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// NotFoundError indicates an unknown transaction or payout identifier
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// StateConflictError indicates an operation attempted against a record that
// is not in the required precondition state.
type StateConflictError struct {
	Resource string
	ID       string
	Current  string
	Required string
}

func (e *StateConflictError) Error() string {
	return fmt.Sprintf("%s %s is %s, requires %s", e.Resource, e.ID, e.Current, e.Required)
}
