package errors

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedAlgorithm - the version/algorithm pair is not supported for signing
	ErrUnsupportedAlgorithm = errors.New("unsupported signing algorithm")
	// ErrSignatureMismatch - the presented signature did not match the recomputed one
	ErrSignatureMismatch = errors.New("signature mismatch")
	// ErrApprovalHashMismatch - the entity drifted since the approval was granted
	ErrApprovalHashMismatch = errors.New("approval hash mismatch")
	// ErrInsufficientApprovers - the action was attempted before the approver threshold was met
	ErrInsufficientApprovers = errors.New("insufficient approvers")
	// ErrIneligibleApprover - the user is not permitted to approve this entity
	ErrIneligibleApprover = errors.New("ineligible approver")
	// ErrReplayedApprovalClaim - the approval claim was already consumed
	ErrReplayedApprovalClaim = errors.New("approval claim already consumed")
	// ErrInvalidClaim - the approval claim failed boundary validation
	ErrInvalidClaim = errors.New("invalid approval claim")
	// ErrInvalidTransition - the requested approval state transition is not allowed
	ErrInvalidTransition = errors.New("invalid approval state transition")
)

// ErrorBundle creates a new response error
type ErrorBundle struct {
	cause   error
	message string
	data    interface{}
}

// New creates a new response error
func New(cause error, message string, data interface{}) error {
	return &ErrorBundle{
		cause,
		message,
		data,
	}
}

// Data from error origin
func (e ErrorBundle) Data() interface{} {
	return e.data
}

// Cause returns the associated cause
func (e ErrorBundle) Cause() error {
	return e.cause
}

// Unwrap returns the associated cause
func (e ErrorBundle) Unwrap() error {
	return e.cause
}

// Error turns into an error
func (e ErrorBundle) Error() string {
	return e.message
}

// DataToString returns string representation of data
func (e ErrorBundle) DataToString() string {
	if e.data == nil {
		return "no error bundle data"
	}
	b, err := json.Marshal(e.data)
	if err != nil {
		return fmt.Sprintf("error retrieving error bundle data %s", err.Error())
	}
	return string(b)
}

// Wrap wraps an error
func Wrap(cause error, message string) error {
	return &ErrorBundle{
		cause:   cause,
		message: message,
		data:    nil,
	}
}

// MultiError - allows for multiple errors, not necessarily chained
type MultiError struct {
	Errs []error
}

// Append - append new errors to this multierror
func (me *MultiError) Append(err ...error) {
	if me.Errs == nil {
		me.Errs = []error{}
	}
	me.Errs = append(me.Errs, err...)
}

// Count - get the number of errors contained herein
func (me *MultiError) Count() int {
	return len(me.Errs)
}

type wErrs struct {
	err   error
	cause error
}

func (we *wErrs) Error() string {
	var result string
	if we.err != nil {
		result = we.err.Error()
	}
	if we.cause != nil {
		result += ": " + we.cause.Error()
	}
	return result
}

// Is - implement interface{ Is(error) bool } for equality check
func (we *wErrs) Is(err error) bool {
	return err == we.err
}

// As - implement interface{ As(target interface{}) bool } for equality check
func (we *wErrs) As(target interface{}) bool {
	return errors.As(we.err, target)
}

// Unwrap - implement unwrap interface to get the cause
func (we *wErrs) Unwrap() error {
	return we.cause
}

// Unwrap - implement Unwrap for unwrapping sub errors
func (me *MultiError) Unwrap() error {
	var errs []error
	// iterate over all the errors and wrapped errors
	// make a list so we can put them in wErr nodes
	for _, v := range me.Errs {
		vv := v
		for {
			errs = append(errs, vv)
			// unwrap until cant
			err := errors.Unwrap(vv)
			if err == nil {
				break
			}
			vv = err
		}
	}

	var root *wErrs
	var last *wErrs
	for _, err := range errs {
		node := &wErrs{err: err}
		if root == nil {
			root = node
			last = node
			continue
		}
		last.cause = node
		last = node
	}
	if root == nil {
		return nil
	}
	return root
}

// Error - implement Error interface
func (me *MultiError) Error() string {
	var errText string
	for _, err := range me.Errs {
		if errText == "" {
			errText = err.Error()
		} else {
			errText += "; " + err.Error()
		}
	}
	return errText
}
