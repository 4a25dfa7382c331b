// Package validation checks form payloads before they reach the store.
//
// Each endpoint has a typed request struct and an explicit validate function.
// Validation stops at the first violated constraint, checked in field order.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/mcnijman/go-emailaddress"
)

const (
	MsgInvalidRequest  = "Invalid request"
	MsgValidationError = "Validation error"
	MsgInvalidEmail    = "Invalid email address"
)

// FieldError describes the first constraint a payload violated.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// PublicMessage is the text returned to the client.
func (e *FieldError) PublicMessage() string {
	if e.Message == "" {
		return MsgValidationError
	}
	return e.Message
}

// Decode reads one JSON object from r into dst, a pointer to a request struct.
// Keys must match the struct's json names exactly and appear once. Unknown
// fields, trailing data and empty bodies are rejected.
func Decode(r io.Reader, dst interface{}) *FieldError {
	fields, err := objectFields(r)
	if err != nil {
		return &FieldError{Message: MsgInvalidRequest}
	}

	known := jsonNames(dst)
	seen := make(map[string]struct{}, len(fields))
	clean := make(map[string]json.RawMessage, len(fields))
	for _, f := range fields {
		_, dup := seen[f.key]
		if _, ok := known[f.key]; !ok || dup {
			return &FieldError{Field: f.key, Message: fmt.Sprintf("Unrecognized field %q", f.key)}
		}
		seen[f.key] = struct{}{}
		clean[f.key] = f.value
	}

	data, err := json.Marshal(clean)
	if err != nil {
		return &FieldError{Message: MsgInvalidRequest}
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return &FieldError{Message: MsgInvalidRequest}
	}
	return nil
}

type rawField struct {
	key   string
	value json.RawMessage
}

// objectFields tokenizes a single top-level object, keeping every key in
// order so repeated keys stay visible.
func objectFields(r io.Reader) ([]rawField, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("body is not a JSON object")
	}

	var fields []rawField
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, errors.New("object key is not a string")
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		fields = append(fields, rawField{key: key, value: value})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("trailing data after JSON object")
	}
	return fields, nil
}

// jsonNames lists the exact json key of every exported field of the struct
// dst points to.
func jsonNames(dst interface{}) map[string]struct{} {
	names := make(map[string]struct{})
	t := reflect.TypeOf(dst)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return names
	}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = field.Name
		}
		names[name] = struct{}{}
	}
	return names
}

func requireString(field, value, message string) *FieldError {
	if strings.TrimSpace(value) == "" {
		return &FieldError{Field: field, Message: message}
	}
	return nil
}

func maxLength(field, value string, limit int, message string) *FieldError {
	if utf8.RuneCountInString(value) > limit {
		return &FieldError{Field: field, Message: message}
	}
	return nil
}

// validEmail returns the normalized address or an error for malformed input.
func validEmail(field, value string) (string, *FieldError) {
	value = strings.TrimSpace(value)
	// Parse accepts an empty string and then slices on the missing '@'
	if !strings.Contains(value, "@") {
		return "", &FieldError{Field: field, Message: MsgInvalidEmail}
	}

	email, err := emailaddress.Parse(value)
	if err != nil || !hasAlphaTLD(email.Domain) {
		return "", &FieldError{Field: field, Message: MsgInvalidEmail}
	}
	return email.String(), nil
}

// hasAlphaTLD requires a dotted domain ending in at least two letters, so
// addresses such as a@localhost, a@b.c and a@example.123 are refused.
func hasAlphaTLD(domain string) bool {
	idx := strings.LastIndex(domain, ".")
	if idx <= 0 {
		return false
	}
	tld := domain[idx+1:]
	if len(tld) < 2 {
		return false
	}
	for _, r := range tld {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
