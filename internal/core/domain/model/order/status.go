package order

import (
	"fmt"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Created ──> Confirmed ──> InDelivery ──> Delivered
//	   │            │             │
//	   └────────────┴─────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal. Cancellation is the only transition
// with an enforced guard; administrative status changes go through
// Order.ChangeStatus, which is intentionally permissive.
//
// Status is a value object that provides string representations for
// persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when an order is first placed.
	// Orders in this status are still collecting line items.
	Created

	// Confirmed indicates the customer has confirmed the order.
	Confirmed

	// InDelivery indicates the order has left the restaurant and is in transit.
	InDelivery

	// Delivered indicates the order reached the customer.
	// This is a terminal state; delivered orders cannot be cancelled.
	Delivered

	// Cancelled indicates the order was cancelled before delivery.
	// This is a terminal state; re-cancellation is rejected.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Created:    "Created",
		Confirmed:  "Confirmed",
		InDelivery: "InDelivery",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:    "Created",
		Confirmed:  "Confirmed",
		InDelivery: "InDelivery",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

// StatusFromString parses a status name into a Status value.
// Matching is case-insensitive ("CONFIRMED" and "Confirmed" are equivalent).
// Returns an error for unrecognized names.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if strings.EqualFold(name, s) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Created, Confirmed, InDelivery, Delivered, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements the fmt.Stringer interface and is safe to call on any
// Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status ends the order lifecycle.
// Terminal orders accept no further item mutation, confirmation, or
// cancellation.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// ValidateCancel checks if the status allows cancellation without performing
// the transition.
//
// Invalid statuses for cancellation:
//   - Delivered (the order already reached the customer)
//   - Cancelled (re-cancellation is rejected)
//
// Returns nil if cancellation is allowed from the current status, or an
// InvalidStateError naming the offending order otherwise.
func (s Status) ValidateCancel(orderID kernel.UUID) error {
	if s == Delivered {
		return errs.NewInvalidStateError("cannot cancel a delivered order", orderID.String())
	}
	if s == Cancelled {
		return errs.NewInvalidStateError("order already cancelled", orderID.String())
	}
	return nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Created -> Cancelled
//   - Confirmed -> Cancelled
//   - InDelivery -> Cancelled
//
// Invalid transitions:
//   - Delivered -> Cancelled (cannot cancel a delivered order)
//   - Cancelled -> Cancelled (order already cancelled)
//
// Returns:
//   - (Cancelled, nil) on valid transition
//   - (0, error) if cancellation is not allowed from the current status
//
// This method is used by Order.Cancel() to enforce the cancellation guard.
func (s Status) Cancel(orderID kernel.UUID) (Status, error) {
	if err := s.ValidateCancel(orderID); err != nil {
		return 0, err
	}

	return Cancelled, nil
}
