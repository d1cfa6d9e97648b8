// Package jsonx holds JSON types with lenient decoding rules.
//
// Int and Float accept either a JSON number or a string holding one, so
// {"price": 9.5} and {"price": "9.5"} decode the same. Both encode as JSON
// strings.
package jsonx

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
)

type Int int64

func (n *Int) UnmarshalJSON(data []byte) error {
	raw, ok, err := numberText(data)
	if err != nil || !ok {
		return err
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("jsonx: invalid integer %s", data)
	}

	*n = Int(v)
	return nil
}

func (n Int) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(n.String())), nil
}

func (n Int) String() string {
	return strconv.FormatInt(int64(n), 10)
}

type Float float64

func (f *Float) UnmarshalJSON(data []byte) error {
	raw, ok, err := numberText(data)
	if err != nil || !ok {
		return err
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("jsonx: invalid number %s", data)
	}

	*f = Float(v)
	return nil
}

func (f Float) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(f.String())), nil
}

func (f Float) String() string {
	return strconv.FormatFloat(float64(f), 'f', -1, 64)
}

// ParseInt and ParseFloat read form input with the same rules as decoding.
func ParseInt(s string) (Int, error) {
	var n Int
	err := n.UnmarshalJSON([]byte(strconv.Quote(strings.TrimSpace(s))))
	return n, err
}

func ParseFloat(s string) (Float, error) {
	var f Float
	err := f.UnmarshalJSON([]byte(strconv.Quote(strings.TrimSpace(s))))
	return f, err
}

// numberText unwraps data to the bare numeric literal. ok is false for null.
func numberText(data []byte) (string, bool, error) {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return "", false, nil
	}

	if len(data) > 0 && data[0] == '"' {
		s, err := strconv.Unquote(string(data))
		if err != nil {
			return "", false, fmt.Errorf("jsonx: invalid string %s", data)
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return "", false, fmt.Errorf("jsonx: empty numeric string")
		}
		return s, true, nil
	}

	return string(data), true, nil
}
