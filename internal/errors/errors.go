// Package errors provides custom error types for domain-specific errors.
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors
var (
	ErrNoTrades      = errors.New("no trades supplied")
	ErrInvalidInput  = errors.New("invalid input")
	ErrConfigInvalid = errors.New("invalid configuration")
	ErrDataNotFound  = errors.New("data not found")
)

// ValidationError represents a validation error.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s (%v): %s", e.Field, e.Value, e.Message)
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// TradeDataError represents a problem with a raw trade record.
type TradeDataError struct {
	TradeID string
	Field   string
	Message string
	Err     error
}

func (e *TradeDataError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("trade data error [%s] %s: %s: %v", e.TradeID, e.Field, e.Message, e.Err)
	}
	return fmt.Sprintf("trade data error [%s] %s: %s", e.TradeID, e.Field, e.Message)
}

func (e *TradeDataError) Unwrap() error {
	return e.Err
}

// NewTradeDataError creates a new TradeDataError.
func NewTradeDataError(tradeID, field, message string, err error) *TradeDataError {
	return &TradeDataError{
		TradeID: tradeID,
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
