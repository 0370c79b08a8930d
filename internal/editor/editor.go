// Package editor implements the section editing operations of the CV builder.
// Every operation takes the current slice of a section and returns a new
// slice; inputs are never mutated in place, and rows that are not touched by
// an operation are carried over unchanged.
package editor

import "fmt"

// row is any section entity addressed by a stable identifier.
type row interface {
	RowID() string
}

// findRow returns the index of the row with the given id, or -1.
func findRow[T row](list []T, id string) int {
	for i, r := range list {
		if r.RowID() == id {
			return i
		}
	}
	return -1
}

// appendRow returns a new slice with r appended at end-of-list.
func appendRow[T row](list []T, r T) []T {
	out := make([]T, 0, len(list)+1)
	out = append(out, list...)
	return append(out, r)
}

// removeRow returns a new slice with the matching row excluded. Removing an
// absent id yields the input unchanged; relative order is preserved.
func removeRow[T row](list []T, id string) []T {
	i := findRow(list, id)
	if i < 0 {
		return list
	}
	out := make([]T, 0, len(list)-1)
	out = append(out, list[:i]...)
	return append(out, list[i+1:]...)
}

// replaceRow returns a new slice where only the row at index i differs.
func replaceRow[T row](list []T, i int, r T) []T {
	out := make([]T, len(list))
	copy(out, list)
	out[i] = r
	return out
}

// asString coerces a JSON-decoded field value to a string.
func asString(field string, value any) (string, error) {
	if value == nil {
		return "", nil
	}
	s, ok := value.(string)
	if !ok {
		return "", &BadValueError{Field: field, Message: fmt.Sprintf("expected string, got %T", value)}
	}
	return s, nil
}

// asBool coerces a JSON-decoded field value to a bool.
func asBool(field string, value any) (bool, error) {
	b, ok := value.(bool)
	if !ok {
		return false, &BadValueError{Field: field, Message: fmt.Sprintf("expected bool, got %T", value)}
	}
	return b, nil
}

// asStringSlice coerces a JSON-decoded field value to a []string.
// JSON arrays decode as []any, so both forms are accepted.
func asStringSlice(field string, value any) ([]string, error) {
	switch v := value.(type) {
	case nil:
		return []string{}, nil
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, &BadValueError{Field: field, Message: fmt.Sprintf("expected string element, got %T", item)}
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, &BadValueError{Field: field, Message: fmt.Sprintf("expected string list, got %T", value)}
	}
}
