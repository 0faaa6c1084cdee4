package validator

import (
	"reflect"
	"sort"
)

// Supported transaction request fields
const (
	FieldTo       = "to"
	FieldValue    = "value"
	FieldData     = "data"
	FieldNonce    = "nonce"
	FieldGasLimit = "gasLimit"
	FieldGasPrice = "gasPrice"
	FieldFrom     = "from"
)

var supportedFields = map[string]struct{}{
	FieldTo:       {},
	FieldValue:    {},
	FieldData:     {},
	FieldNonce:    {},
	FieldGasLimit: {},
	FieldGasPrice: {},
	FieldFrom:     {},
}

// TransactionRequest is an unsigned transfer described as a field name to value mapping
type TransactionRequest map[string]interface{}

// With returns a copy of the request having the provided field set to value. The receiver is not modified
func (tr TransactionRequest) With(field string, value interface{}) TransactionRequest {
	result := tr.Clone()
	result[field] = value

	return result
}

// Without returns a copy of the request without the provided field
func (tr TransactionRequest) Without(field string) TransactionRequest {
	result := tr.Clone()
	delete(result, field)

	return result
}

// Clone returns a shallow copy of the request
func (tr TransactionRequest) Clone() TransactionRequest {
	result := make(TransactionRequest, len(tr)+1)
	for key, value := range tr {
		result[key] = value
	}

	return result
}

// Has returns true if the field is present and holds a non-nil value. Nil pointers count as absent
func (tr TransactionRequest) Has(field string) bool {
	value, ok := tr[field]
	if !ok || value == nil {
		return false
	}

	rv := reflect.ValueOf(value)
	return rv.Kind() != reflect.Ptr || !rv.IsNil()
}

// Fields returns the sorted field names of the request
func (tr TransactionRequest) Fields() []string {
	fields := make([]string, 0, len(tr))
	for key := range tr {
		fields = append(fields, key)
	}
	sort.Strings(fields)

	return fields
}

// SupportedFields returns the sorted list of field names a transaction request may contain
func SupportedFields() []string {
	fields := make([]string, 0, len(supportedFields))
	for key := range supportedFields {
		fields = append(fields, key)
	}
	sort.Strings(fields)

	return fields
}

// IsSupportedField returns true if the name is part of the supported field set
func IsSupportedField(name string) bool {
	_, ok := supportedFields[name]
	return ok
}
