// Copyright (c) 2014-2015 The bitbind developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcjson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
)

// OtherFields is the open bucket that captures response fields which have no
// matching declared struct field.  Every result variant and the response
// envelope carry one.  It is only ever populated by the decoder; a response
// that is fully modeled leaves every bucket empty, and the conformance tests
// treat a non-empty bucket as a signal that a field declaration is missing.
//
// Values are decoded with json.Number for numeric literals so that
// re-encoding a non-empty bucket reproduces the original text.  Key order is
// not preserved; buckets re-encode with sorted keys.
type OtherFields map[string]interface{}

var (
	otherFieldsType = reflect.TypeOf(OtherFields(nil))
	marshalerType   = reflect.TypeOf((*json.Marshaler)(nil)).Elem()
	unmarshalerType = reflect.TypeOf((*json.Unmarshaler)(nil)).Elem()

	nullLiteral = []byte("null")
)

// fieldInfo describes one declared field of a result struct: the wire name
// from its json tag, the index path to reach it (embedded structs flatten
// into the parent, so paths can be more than one element deep), and whether
// the field is omitted when empty.
type fieldInfo struct {
	name      string
	index     []int
	omitEmpty bool
}

// structFields holds the decoded tag information for a struct type.  The
// list is in declaration order with embedded struct fields spliced in place,
// which is also the wire order every result type declares.
type structFields struct {
	list     []fieldInfo
	byName   map[string]int
	catchAll []int
}

var fieldCache sync.Map // reflect.Type -> *structFields

func cachedFields(t reflect.Type) *structFields {
	if f, ok := fieldCache.Load(t); ok {
		return f.(*structFields)
	}
	sf := &structFields{byName: make(map[string]int)}
	addFields(sf, t, nil)
	f, _ := fieldCache.LoadOrStore(t, sf)
	return f.(*structFields)
}

func addFields(sf *structFields, t reflect.Type, index []int) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		idx := make([]int, 0, len(index)+1)
		idx = append(append(idx, index...), i)

		// A field of type OtherFields is the catch-all bucket.  Only
		// the outermost one on a type is active so that flattened
		// sub-objects cannot claim fields that belong to the parent.
		if f.Type == otherFieldsType {
			if sf.catchAll == nil || len(idx) < len(sf.catchAll) {
				sf.catchAll = idx
			}
			continue
		}

		tag := f.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, opts := parseTag(tag)

		// Embedded structs without an explicit name flatten into the
		// parent object, mirroring how the daemon emits them.
		if f.Anonymous && f.Type.Kind() == reflect.Struct && name == "" {
			addFields(sf, f.Type, idx)
			continue
		}
		if f.PkgPath != "" {
			continue
		}
		if name == "" {
			name = f.Name
		}
		if _, dup := sf.byName[name]; dup {
			continue
		}
		sf.byName[name] = len(sf.list)
		sf.list = append(sf.list, fieldInfo{
			name:      name,
			index:     idx,
			omitEmpty: opts["omitempty"],
		})
	}
}

func parseTag(tag string) (string, map[string]bool) {
	parts := strings.Split(tag, ",")
	opts := make(map[string]bool, len(parts))
	for _, p := range parts[1:] {
		opts[p] = true
	}
	return parts[0], opts
}

// decodeError converts errors raised by the underlying JSON machinery into
// the typed errors of this package, attaching the path of the offending
// field.
func decodeError(path string, err error) error {
	switch err.(type) {
	case Error:
		return err
	case *json.UnmarshalTypeError:
		str := fmt.Sprintf("%s: %v", path, err)
		return makeError(ErrTypeMismatch, str)
	default:
		str := fmt.Sprintf("%s: %v", path, err)
		return makeError(ErrMalformedInput, str)
	}
}

// decodeAny decodes raw JSON into an untyped value while keeping numeric
// literals as json.Number so their original text survives re-encoding.
func decodeAny(raw []byte) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// UnmarshalResult decodes a result payload into the provided value, which
// must be a non-nil pointer.  Declared fields are matched by their json tag
// names, embedded structs are matched as if their fields were part of the
// parent object, and any field with no match lands in the value's
// OtherFields bucket rather than causing an error.
//
// The returned error is an Error with ErrMalformedInput for syntactically
// invalid JSON and ErrTypeMismatch when a value conflicts with the declared
// field type; the description carries the field path.
func UnmarshalResult(data []byte, v interface{}) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		str := fmt.Sprintf("result target must be a non-nil pointer "+
			"(got %T)", v)
		return makeError(ErrInvalidType, str)
	}
	return decodeValue(data, rv.Elem(), "result")
}

func decodeValue(raw []byte, rv reflect.Value, path string) error {
	if bytes.Equal(bytes.TrimSpace(raw), nullLiteral) {
		rv.Set(reflect.Zero(rv.Type()))
		return nil
	}

	// Types with their own unmarshaller (Amount, json.RawMessage, tuple
	// encodings) take precedence over the generic walk.
	if rv.CanAddr() && rv.Addr().Type().Implements(unmarshalerType) {
		err := json.Unmarshal(raw, rv.Addr().Interface())
		if err != nil {
			// Custom unmarshallers are leaves and don't know
			// where they sit in the result, so attach the path
			// here.
			if jerr, ok := err.(Error); ok {
				jerr.Description = path + ": " + jerr.Description
				return jerr
			}
			return decodeError(path, err)
		}
		return nil
	}

	switch rv.Kind() {
	case reflect.Ptr:
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		return decodeValue(raw, rv.Elem(), path)

	case reflect.Struct:
		return decodeStruct(raw, rv, path)

	case reflect.Slice:
		var raws []json.RawMessage
		if err := json.Unmarshal(raw, &raws); err != nil {
			return decodeError(path, err)
		}
		slice := reflect.MakeSlice(rv.Type(), len(raws), len(raws))
		for i, elem := range raws {
			elemPath := fmt.Sprintf("%s[%d]", path, i)
			if err := decodeValue(elem, slice.Index(i), elemPath); err != nil {
				return err
			}
		}
		rv.Set(slice)
		return nil

	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			str := fmt.Sprintf("%s: map results require string keys "+
				"(got %s)", path, rv.Type().Key())
			return makeError(ErrInvalidType, str)
		}
		var raws map[string]json.RawMessage
		if err := json.Unmarshal(raw, &raws); err != nil {
			return decodeError(path, err)
		}
		m := reflect.MakeMapWithSize(rv.Type(), len(raws))
		for k, elem := range raws {
			ev := reflect.New(rv.Type().Elem()).Elem()
			if err := decodeValue(elem, ev, path+"."+k); err != nil {
				return err
			}
			m.SetMapIndex(reflect.ValueOf(k).Convert(rv.Type().Key()), ev)
		}
		rv.Set(m)
		return nil

	case reflect.Interface:
		if rv.NumMethod() != 0 {
			str := fmt.Sprintf("%s: cannot decode into non-empty "+
				"interface %s", path, rv.Type())
			return makeError(ErrInvalidType, str)
		}
		v, err := decodeAny(raw)
		if err != nil {
			return decodeError(path, err)
		}
		rv.Set(reflect.ValueOf(v))
		return nil

	default:
		if err := json.Unmarshal(raw, rv.Addr().Interface()); err != nil {
			return decodeError(path, err)
		}
		return nil
	}
}

func decodeStruct(raw []byte, rv reflect.Value, path string) error {
	var raws map[string]json.RawMessage
	if err := json.Unmarshal(raw, &raws); err != nil {
		return decodeError(path, err)
	}

	sf := cachedFields(rv.Type())
	for _, fi := range sf.list {
		fieldRaw, ok := raws[fi.name]
		if !ok {
			continue
		}
		delete(raws, fi.name)
		fv := rv.FieldByIndex(fi.index)
		if err := decodeValue(fieldRaw, fv, path+"."+fi.name); err != nil {
			return err
		}
	}

	if len(raws) == 0 {
		return nil
	}
	if sf.catchAll == nil {
		for k := range raws {
			log.Debugf("no declared field for %q at %s on %s; "+
				"value ignored", k, path, rv.Type())
		}
		return nil
	}
	bucket := make(OtherFields, len(raws))
	for k, fieldRaw := range raws {
		v, err := decodeAny(fieldRaw)
		if err != nil {
			return decodeError(path+"."+k, err)
		}
		log.Debugf("no declared field for %q at %s on %s; routed to "+
			"catch-all", k, path, rv.Type())
		bucket[k] = v
	}
	rv.FieldByIndex(sf.catchAll).Set(reflect.ValueOf(bucket))
	return nil
}

// MarshalResult encodes a result payload to compact JSON with fields in the
// declared wire order.  Optional fields that are absent are omitted entirely
// rather than emitted as null or a default, so a value produced by
// UnmarshalResult re-encodes to the exact document it came from (map-valued
// results excepted, which normalize to sorted key order).
func MarshalResult(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeValue(&buf, reflect.ValueOf(v)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// marshalCompact encodes v with the standard library but without the HTML
// escaping json.Marshal applies, since the daemon's output is compared
// byte-for-byte.
func marshalCompact(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func encodeValue(buf *bytes.Buffer, rv reflect.Value) error {
	if !rv.IsValid() {
		buf.Write(nullLiteral)
		return nil
	}

	if rv.Type().Implements(marshalerType) {
		if rv.Kind() == reflect.Ptr && rv.IsNil() {
			buf.Write(nullLiteral)
			return nil
		}
		b, err := marshalCompact(rv.Interface())
		if err != nil {
			return err
		}
		buf.Write(b)
		return nil
	}
	if rv.CanAddr() && rv.Addr().Type().Implements(marshalerType) {
		b, err := marshalCompact(rv.Addr().Interface())
		if err != nil {
			return err
		}
		buf.Write(b)
		return nil
	}

	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			buf.Write(nullLiteral)
			return nil
		}
		return encodeValue(buf, rv.Elem())

	case reflect.Struct:
		return encodeStruct(buf, rv)

	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			buf.Write(nullLiteral)
			return nil
		}
		buf.WriteByte('[')
		for i := 0; i < rv.Len(); i++ {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeValue(buf, rv.Index(i)); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil

	case reflect.Map:
		if rv.IsNil() {
			buf.Write(nullLiteral)
			return nil
		}
		if rv.Type().Key().Kind() != reflect.String {
			str := fmt.Sprintf("map results require string keys "+
				"(got %s)", rv.Type().Key())
			return makeError(ErrInvalidType, str)
		}
		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		buf.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeKey(buf, k); err != nil {
				return err
			}
			kv := rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key()))
			if err := encodeValue(buf, kv); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil

	default:
		b, err := marshalCompact(rv.Interface())
		if err != nil {
			return err
		}
		buf.Write(b)
		return nil
	}
}

func encodeStruct(buf *bytes.Buffer, rv reflect.Value) error {
	sf := cachedFields(rv.Type())
	buf.WriteByte('{')
	first := true
	for _, fi := range sf.list {
		fv := rv.FieldByIndex(fi.index)
		if fi.omitEmpty && isEmptyValue(fv) {
			continue
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		if err := writeKey(buf, fi.name); err != nil {
			return err
		}
		if err := encodeValue(buf, fv); err != nil {
			return err
		}
	}

	// The catch-all is normally empty.  When it isn't, its entries encode
	// after every declared field in sorted order so nothing is lost, and
	// only the outermost bucket encodes so flattened sub-objects cannot
	// duplicate entries.
	if sf.catchAll != nil {
		bucket, _ := rv.FieldByIndex(sf.catchAll).Interface().(OtherFields)
		keys := make([]string, 0, len(bucket))
		for k := range bucket {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if !first {
				buf.WriteByte(',')
			}
			first = false
			if err := writeKey(buf, k); err != nil {
				return err
			}
			if err := encodeValue(buf, reflect.ValueOf(bucket[k])); err != nil {
				return err
			}
		}
	}
	buf.WriteByte('}')
	return nil
}

func writeKey(buf *bytes.Buffer, name string) error {
	b, err := marshalCompact(name)
	if err != nil {
		return err
	}
	buf.Write(b)
	buf.WriteByte(':')
	return nil
}

func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Ptr:
		return v.IsNil()
	}
	return false
}

// DecodeResponse unmarshals a full JSON-RPC response envelope for the given
// method.  The result payload decodes into a new instance of the result type
// registered for the method; undeclared top-level fields land in the
// envelope's OtherFields.  A response whose error field is non-null decodes
// successfully with the error carried on the returned Response.
func DecodeResponse(method string, data []byte) (*Response, error) {
	rt, err := resultType(method)
	if err != nil {
		return nil, err
	}

	var raws map[string]json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, decodeError("response", err)
	}

	resp := &Response{}
	if raw, ok := raws["result"]; ok {
		delete(raws, "result")
		if !bytes.Equal(raw, nullLiteral) {
			rvp := reflect.New(rt)
			if err := decodeValue(raw, rvp.Elem(), "result"); err != nil {
				return nil, err
			}
			resp.Result = rvp.Interface()
		}
	}
	if raw, ok := raws["error"]; ok {
		delete(raws, "error")
		if !bytes.Equal(raw, nullLiteral) {
			rpcErr := &RPCError{}
			rv := reflect.ValueOf(rpcErr).Elem()
			if err := decodeValue(raw, rv, "error"); err != nil {
				return nil, err
			}
			resp.Error = rpcErr
		}
	}
	if raw, ok := raws["id"]; ok {
		delete(raws, "id")
		var id interface{}
		if !bytes.Equal(raw, nullLiteral) {
			id, err = decodeAny(raw)
			if err != nil {
				return nil, decodeError("id", err)
			}
		}
		resp.ID = &id
	}
	if len(raws) > 0 {
		resp.OtherFields = make(OtherFields, len(raws))
		for k, raw := range raws {
			v, err := decodeAny(raw)
			if err != nil {
				return nil, decodeError(k, err)
			}
			log.Debugf("no declared envelope field for %q; routed "+
				"to catch-all", k)
			resp.OtherFields[k] = v
		}
	}
	return resp, nil
}

// EncodeResponse marshals a response envelope back to its wire form: result,
// error, and id in that order, followed by any catch-all fields.  The result
// and error fields always encode (as null when absent) since the daemon
// always sends both; id encodes only when the decoded envelope carried one.
func EncodeResponse(resp *Response) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"result":`)
	if resp.Result == nil {
		buf.Write(nullLiteral)
	} else if err := encodeValue(&buf, reflect.ValueOf(resp.Result)); err != nil {
		return nil, err
	}
	buf.WriteString(`,"error":`)
	if resp.Error == nil {
		buf.Write(nullLiteral)
	} else if err := encodeValue(&buf, reflect.ValueOf(resp.Error)); err != nil {
		return nil, err
	}
	if resp.ID != nil {
		buf.WriteString(`,"id":`)
		if *resp.ID == nil {
			buf.Write(nullLiteral)
		} else {
			b, err := marshalCompact(*resp.ID)
			if err != nil {
				return nil, err
			}
			buf.Write(b)
		}
	}
	if len(resp.OtherFields) > 0 {
		keys := make([]string, 0, len(resp.OtherFields))
		for k := range resp.OtherFields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			buf.WriteByte(',')
			if err := writeKey(&buf, k); err != nil {
				return nil, err
			}
			err := encodeValue(&buf, reflect.ValueOf(resp.OtherFields[k]))
			if err != nil {
				return nil, err
			}
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
