// Copyright (c) 2014-2015 The bitbind developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcjson

import (
	"fmt"
	"reflect"
	"sort"
	"sync"
)

// These fields are used to map the registered methods to the type of the
// result each produces.
var (
	registerLock       sync.RWMutex
	methodToResultType = make(map[string]reflect.Type)
)

// RegisterResult registers the result shape the daemon returns for a
// successful invocation of the provided method.  The prototype must be a nil
// pointer to the concrete type, for example:
//
//	RegisterResult("getinfo", (*InfoResult)(nil))
//	RegisterResult("listunspent", (*[]ListUnspentResult)(nil))
//
// This package automatically registers results for all supported methods via
// init functions, so this is only needed for callers that extend the package
// with daemon-specific methods.
func RegisterResult(method string, prototype interface{}) error {
	registerLock.Lock()
	defer registerLock.Unlock()

	if method == "" {
		return makeError(ErrInvalidType, "method may not be empty")
	}
	if _, ok := methodToResultType[method]; ok {
		str := fmt.Sprintf("method %q is already registered", method)
		return makeError(ErrDuplicateMethod, str)
	}

	rtp := reflect.TypeOf(prototype)
	if rtp == nil || rtp.Kind() != reflect.Ptr {
		str := fmt.Sprintf("result prototype for method %q must be a "+
			"pointer (got %T)", method, prototype)
		return makeError(ErrInvalidType, str)
	}

	methodToResultType[method] = rtp.Elem()
	return nil
}

// MustRegisterResult performs the same function as RegisterResult except it
// panics if there is an error.  This should only be called from package init
// functions.
func MustRegisterResult(method string, prototype interface{}) {
	if err := RegisterResult(method, prototype); err != nil {
		panic(fmt.Sprintf("failed to register result for method %q: %v",
			method, err))
	}
}

// RegisteredMethods returns a sorted list of methods for all registered
// results.
func RegisteredMethods() []string {
	registerLock.RLock()
	defer registerLock.RUnlock()

	methods := make([]string, 0, len(methodToResultType))
	for k := range methodToResultType {
		methods = append(methods, k)
	}
	sort.Strings(methods)
	return methods
}

// resultType returns the registered result type for the provided method.
func resultType(method string) (reflect.Type, error) {
	registerLock.RLock()
	rt, ok := methodToResultType[method]
	registerLock.RUnlock()
	if !ok {
		str := fmt.Sprintf("no result registered for method %q", method)
		return nil, makeError(ErrUnregisteredMethod, str)
	}
	return rt, nil
}
