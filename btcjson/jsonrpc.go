// Copyright (c) 2014-2015 The bitbind developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcjson

import (
	"encoding/json"
	"fmt"
)

// RPCVersion is a type to indicate RPC versions.
type RPCVersion string

const (
	// version 1 of rpc
	RpcVersion1 RPCVersion = RPCVersion("1.0")
	// version 2 of rpc
	RpcVersion2 RPCVersion = RPCVersion("2.0")
)

var validRpcVersions = []RPCVersion{RpcVersion1, RpcVersion2}

// IsValid returns whether the rpc version is a known version.
func (r RPCVersion) IsValid() bool {
	for _, version := range validRpcVersions {
		if version == r {
			return true
		}
	}
	return false
}

// String casts the rpc version to a string.
func (r RPCVersion) String() string {
	return string(r)
}

// RPCErrorCode represents an error code to be used as a part of an RPCError
// which is in turn used in a JSON-RPC Response object.
//
// A specific type is used to help ensure the wrong errors aren't used.
type RPCErrorCode int

// RPCError represents an error returned by the daemon as a part of a JSON-RPC
// Response object.  A response that carries a non-nil RPCError is still a
// successfully decoded response.  It is the caller's responsibility to check
// for it, typically via the Err method on Response.
type RPCError struct {
	Code    RPCErrorCode `json:"code"`
	Message string       `json:"message"`
}

// Guarantee RPCError satisfies the builtin error interface.
var _, _ error = RPCError{}, (*RPCError)(nil)

// Error returns a string describing the RPC error.  This satisfies the
// builtin error interface.
func (e RPCError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// NewRPCError constructs and returns a new JSON-RPC error that is suitable
// for use in a JSON-RPC Response object.
func NewRPCError(code RPCErrorCode, message string) *RPCError {
	return &RPCError{
		Code:    code,
		Message: message,
	}
}

// IsValidIDType checks that the ID field (which can go in any of the JSON-RPC
// requests, responses, or notifications) is valid.  JSON-RPC 1.0 allows any
// valid JSON type.  JSON-RPC 2.0 (which bitcoind follows for some parts) only
// allows string, number, or null, so this function restricts the allowed types
// to that list.  This function is only provided in case the caller is manually
// marshalling for some reason.  The functions which accept an ID in this
// package already call this function to ensure the provided id is valid.
func IsValidIDType(id interface{}) bool {
	switch id.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64,
		json.Number,
		string,
		nil:
		return true
	default:
		return false
	}
}

// Request is a type for raw JSON-RPC 1.0 requests.  The Method field
// identifies the remote operation being invoked and in turn the shape of the
// result the daemon will send back.
type Request struct {
	Jsonrpc RPCVersion        `json:"jsonrpc"`
	Method  string            `json:"method"`
	Params  []json.RawMessage `json:"params"`
	ID      interface{}       `json:"id"`
}

// UnmarshalJSON is a custom unmarshal func for the Request struct.  The param
// field defaults to an empty json.RawMessage array when it is omitted by the
// request or nil if the supplied value is invalid.
func (request *Request) UnmarshalJSON(b []byte) error {
	// Step 1: Create a type alias of the original struct.
	type Alias Request

	// Step 2: Create an anonymous struct with raw replacements for the
	// special fields.
	aux := &struct {
		Jsonrpc string        `json:"jsonrpc"`
		Params  []interface{} `json:"params"`
		*Alias
	}{
		Alias: (*Alias)(request),
	}

	// Step 3: Unmarshal the data into the anonymous struct.
	err := json.Unmarshal(b, &aux)
	if err != nil {
		return err
	}

	// Step 4: Convert the raw fields to the desired types.

	version := RPCVersion(aux.Jsonrpc)
	if version.IsValid() {
		request.Jsonrpc = version
	}

	rawParams := make([]json.RawMessage, 0, len(aux.Params))
	for _, param := range aux.Params {
		marshalledParam, err := json.Marshal(param)
		if err != nil {
			return err
		}
		rawParams = append(rawParams, json.RawMessage(marshalledParam))
	}
	request.Params = rawParams

	return nil
}

// NewRequest returns a new JSON-RPC request object given the provided rpc
// version, id, method, and parameters.  The parameters are marshalled into a
// json.RawMessage for the Params field of the returned request object.
func NewRequest(rpcVersion RPCVersion, id interface{}, method string, params []interface{}) (*Request, error) {
	// default to JSON-RPC 1.0 if RPC type is not specified
	if !rpcVersion.IsValid() {
		str := fmt.Sprintf("rpcversion '%s' is invalid", rpcVersion)
		return nil, makeError(ErrInvalidType, str)
	}

	if !IsValidIDType(id) {
		str := fmt.Sprintf("the id of type '%T' is invalid", id)
		return nil, makeError(ErrInvalidType, str)
	}

	rawParams := make([]json.RawMessage, 0, len(params))
	for _, param := range params {
		marshalledParam, err := json.Marshal(param)
		if err != nil {
			return nil, err
		}
		rawParams = append(rawParams, json.RawMessage(marshalledParam))
	}

	return &Request{
		Jsonrpc: rpcVersion,
		ID:      id,
		Method:  method,
		Params:  rawParams,
	}, nil
}

// Response is the general form of a JSON-RPC response as the daemon sends it.
// The Result field holds a pointer to the result variant registered for the
// method the response answers, or nil when the result was JSON null.  The ID
// field is nil when the response carried no id at all; numeric ids are kept
// as json.Number so re-encoding reproduces the original literal.
//
// Any top-level fields beyond result, error, and id end up in OtherFields.
// A fully modeled response leaves OtherFields empty.
type Response struct {
	Result interface{}
	Error  *RPCError
	ID     *interface{}

	OtherFields OtherFields
}

// Err returns the RPCError the daemon reported, or nil for a successful
// response.  Decoding a response with a non-null error field is not itself a
// decode failure; callers check this method explicitly.
func (r *Response) Err() error {
	if r.Error != nil {
		return r.Error
	}
	return nil
}
