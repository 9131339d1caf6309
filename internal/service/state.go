package service

import (
	"finance_tracker/internal/domain"
	"finance_tracker/internal/schema"
)

// Status is the outcome of a form operation
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
	// StatusUnauthenticated is reported when no user session is present, so
	// callers can redirect to login instead of showing a generic failure.
	StatusUnauthenticated Status = "unauthenticated"
)

// State is the uniform result envelope returned by every form operation.
// The zero value (empty Status) is the pre-call state only; the service never
// returns it.
type State struct {
	Status  Status              `json:"status"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
	Data    *domain.Account     `json:"data,omitempty"`
}

func success(message string, account *domain.Account) State {
	return State{Status: StatusSuccess, Message: message, Data: account}
}

func failure(message string, errors schema.FieldErrors) State {
	return State{Status: StatusError, Message: message, Errors: errors}
}

func unauthenticated() State {
	return State{Status: StatusUnauthenticated, Message: "Authentication failed."}
}

func unexpected() State {
	return State{Status: StatusError, Message: "Unexpected error occurred."}
}
