package app

import "errors"

// InvalidRequestError is special error type returned when any request params are invalid
type InvalidRequestError string

// Error implements error interface
func (e InvalidRequestError) Error() string {
	return string(e)
}

// IsInvalidRequest tells that this error is 'invalid request'.
// Returns always true.
func (InvalidRequestError) IsInvalidRequest() bool {
	return true
}

// IsInvalidRequestError checks if given error is caused by invalid request
func IsInvalidRequestError(err error) bool {
	var target InvalidRequestError
	return causeAs(err, &target)
}

// ScheduledForLaterError is returned when requested data is not available yet,
// but fetching it was scheduled.
type ScheduledForLaterError string

// Error implements error interface
func (e ScheduledForLaterError) Error() string {
	return string(e)
}

// IsScheduledForLaterError checks if given error means that data will be available later.
func IsScheduledForLaterError(err error) bool {
	var target ScheduledForLaterError
	return causeAs(err, &target)
}

// TooManyRequestsError is returned when backend calls exceed the allowed rate.
type TooManyRequestsError string

// Error implements error interface
func (e TooManyRequestsError) Error() string {
	return string(e)
}

// IsTooManyRequestsError checks if given error is caused by exceeded rate limit.
func IsTooManyRequestsError(err error) bool {
	var target TooManyRequestsError
	return causeAs(err, &target)
}

// causeAs unwraps both pkg/errors and fmt %w chains.
func causeAs(err error, target interface{}) bool {
	if err == nil {
		return false
	}
	return errors.As(err, target)
}
