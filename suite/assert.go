package suite

import (
	"fmt"
	"reflect"
	"regexp"
)

// Equals passes when expected and actual are deeply equal.
func Equals(expected, actual interface{}) error {
	if reflect.DeepEqual(expected, actual) {
		return nil
	}
	return fmt.Errorf("expected %v, got %v", expected, actual)
}

// Nil passes when v is nil, including typed nil pointers, maps,
// slices, channels, and funcs.
func Nil(v interface{}) error {
	if isNil(v) {
		return nil
	}
	return fmt.Errorf("expected nil, got %v", v)
}

// NotNil passes when v is non-nil.
func NotNil(v interface{}) error {
	if !isNil(v) {
		return nil
	}
	return fmt.Errorf("expected a value, got nil")
}

// Raises passes when fn panics.
func Raises(fn func()) (err error) {
	defer func() {
		if recover() != nil {
			err = nil
		}
	}()
	fn()
	return fmt.Errorf("expected a panic, got none")
}

// Matches passes when s matches the regular expression pattern. A bad
// pattern is reported as a failure too.
func Matches(pattern, s string) error {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("bad pattern %q: %v", pattern, err)
	}
	if re.MatchString(s) {
		return nil
	}
	return fmt.Errorf("expected %q to match %q", s, pattern)
}

func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
