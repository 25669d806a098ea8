// Copyright (c) 2014-2015 The bitbind developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcjson

import "fmt"

// ErrorCode identifies a kind of error.  These error codes are NOT used for
// JSON-RPC response errors the daemon sends back.
type ErrorCode int

// These constants are used to identify a specific Error.
const (
	// ErrDuplicateMethod indicates a command with the specified method
	// already exists.
	ErrDuplicateMethod ErrorCode = iota

	// ErrInvalidType indicates a type was passed that is not the required
	// type.
	ErrInvalidType

	// ErrUnregisteredMethod indicates a method was specified that has not
	// been registered.
	ErrUnregisteredMethod

	// ErrMalformedInput indicates the provided data is not well-formed
	// JSON.
	ErrMalformedInput

	// ErrTypeMismatch indicates the JSON value for a declared field
	// conflicts with the type of the associated struct field.  The
	// description includes the path of the offending field.
	ErrTypeMismatch

	// numErrorCodes is the maximum error code number used in tests.
	numErrorCodes
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrDuplicateMethod:    "ErrDuplicateMethod",
	ErrInvalidType:        "ErrInvalidType",
	ErrUnregisteredMethod: "ErrUnregisteredMethod",
	ErrMalformedInput:     "ErrMalformedInput",
	ErrTypeMismatch:       "ErrTypeMismatch",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// Error identifies a general error.  This differs from an RPCError in that
// this error typically is used more by the consumers of the package as
// opposed to the RPCErrors which are intended to be returned by the daemon.
//
// The caller can use type assertions to determine the specific error and
// access the ErrorCode field.
type Error struct {
	ErrorCode   ErrorCode // Describes the kind of error
	Description string    // Human readable description of the issue
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// makeError creates an Error given a set of arguments.
func makeError(c ErrorCode, desc string) Error {
	return Error{ErrorCode: c, Description: desc}
}
