package protocol

import (
	"encoding/json"
	"fmt"
)

// Result is the success-or-error union carried in every response. On the
// wire it is externally tagged, matching the reference controller format:
//
//	{"Ok": <value>}  or  {"Err": "<message>"}
type Result struct {
	value  json.RawMessage
	errMsg string
	ok     bool
}

// Ok builds a success result from any JSON-marshalable value. A marshal
// failure is converted into an error result rather than propagated.
func Ok(v any) Result {
	data, err := json.Marshal(v)
	if err != nil {
		return Errf("encode result: %v", err)
	}
	return Result{value: data, ok: true}
}

// OkRaw builds a success result from pre-encoded JSON.
func OkRaw(raw json.RawMessage) Result {
	return Result{value: raw, ok: true}
}

// Err builds an error result.
func Err(msg string) Result {
	return Result{errMsg: msg}
}

// Errf builds an error result from a format string.
func Errf(format string, a ...any) Result {
	return Result{errMsg: fmt.Sprintf(format, a...)}
}

// IsOK reports whether the result is a success.
func (r Result) IsOK() bool { return r.ok }

// Value returns the success payload, nil for error results.
func (r Result) Value() json.RawMessage {
	if !r.ok {
		return nil
	}
	return r.value
}

// ErrMsg returns the error message, empty for success results.
func (r Result) ErrMsg() string { return r.errMsg }

// Decode unmarshals the success payload into v, or returns the carried
// error for error results.
func (r Result) Decode(v any) error {
	if !r.ok {
		return fmt.Errorf("%s", r.errMsg)
	}
	return json.Unmarshal(r.value, v)
}

// MarshalJSON encodes the externally tagged union.
func (r Result) MarshalJSON() ([]byte, error) {
	if r.ok {
		value := r.value
		if len(value) == 0 {
			value = json.RawMessage("null")
		}
		return json.Marshal(map[string]json.RawMessage{"Ok": value})
	}
	return json.Marshal(map[string]string{"Err": r.errMsg})
}

// UnmarshalJSON decodes the externally tagged union. Exactly one of the
// "Ok" or "Err" keys must be present.
func (r *Result) UnmarshalJSON(data []byte) error {
	var tagged struct {
		Ok  *json.RawMessage `json:"Ok"`
		Err *string          `json:"Err"`
	}
	if err := json.Unmarshal(data, &tagged); err != nil {
		return err
	}
	switch {
	case tagged.Ok != nil:
		*r = Result{value: *tagged.Ok, ok: true}
	case tagged.Err != nil:
		*r = Result{errMsg: *tagged.Err}
	default:
		return fmt.Errorf("result has neither Ok nor Err key")
	}
	return nil
}
