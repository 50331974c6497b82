package sm2

import (
	"encoding"
	"encoding/json"
	"fmt"
	"strings"
)

// Response is the learner's assessment of how well a card was recalled.
type Response int

const (
	Hard Response = iota + 1 // Recalled with significant difficulty.
	Good                     // Recalled with some effort.
	Easy                     // Recalled effortlessly.
)

// Responses lists every valid Response in ascending order.
var Responses = [...]Response{Hard, Good, Easy}

var (
	responseNames  = [...]string{Hard: "Hard", Good: "Good", Easy: "Easy"}
	responseByName = map[string]Response{
		"hard": Hard,
		"good": Good,
		"easy": Easy,
	}
)

// Compile-time interface checks.
var (
	_ fmt.Stringer             = Response(0)
	_ json.Marshaler           = Response(0)
	_ json.Unmarshaler         = (*Response)(nil)
	_ encoding.TextMarshaler   = Response(0)
	_ encoding.TextUnmarshaler = (*Response)(nil)
)

// String returns the name of the response ("Hard", "Good", "Easy").
// For invalid values it returns "Response(n)".
func (r Response) String() string {
	if r.IsValid() {
		return responseNames[r]
	}
	return fmt.Sprintf("Response(%d)", int(r))
}

// IsValid reports whether r is one of Hard, Good or Easy.
func (r Response) IsValid() bool {
	return r >= Hard && r <= Easy
}

// ParseResponse returns the Response named by s, ignoring case.
func ParseResponse(s string) (Response, error) {
	v, ok := responseByName[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidResponse, s)
	}
	return v, nil
}

// MarshalText implements encoding.TextMarshaler.
func (r Response) MarshalText() ([]byte, error) {
	if !r.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidResponse, int(r))
	}
	return []byte(responseNames[r]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Response) UnmarshalText(text []byte) error {
	v, err := ParseResponse(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// MarshalJSON implements json.Marshaler. Response serializes as a JSON string.
func (r Response) MarshalJSON() ([]byte, error) {
	text, err := r.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON implements json.Unmarshaler. Expects a JSON string.
func (r *Response) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidResponse, data)
	}
	return r.UnmarshalText([]byte(s))
}
