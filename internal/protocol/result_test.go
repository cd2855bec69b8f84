package protocol

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestResult_MarshalOk(t *testing.T) {
	r := Ok(map[string]bool{"success": true})
	data, err := json.Marshal(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"Ok":{"success":true}}` {
		t.Errorf("unexpected encoding: %s", data)
	}
}

func TestResult_MarshalErr(t *testing.T) {
	r := Err("No active window")
	data, err := json.Marshal(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"Err":"No active window"}` {
		t.Errorf("unexpected encoding: %s", data)
	}
}

func TestResult_UnmarshalOk(t *testing.T) {
	var r Result
	if err := json.Unmarshal([]byte(`{"Ok":{"dispatched":false}}`), &r); err != nil {
		t.Fatal(err)
	}
	if !r.IsOK() {
		t.Fatal("expected Ok result")
	}
	var payload KeyResult
	if err := r.Decode(&payload); err != nil {
		t.Fatal(err)
	}
	if payload.Dispatched {
		t.Error("dispatched should be false")
	}
}

func TestResult_UnmarshalErr(t *testing.T) {
	var r Result
	if err := json.Unmarshal([]byte(`{"Err":"Request timeout"}`), &r); err != nil {
		t.Fatal(err)
	}
	if r.IsOK() {
		t.Fatal("expected Err result")
	}
	if r.ErrMsg() != "Request timeout" {
		t.Errorf("got %q", r.ErrMsg())
	}
}

func TestResult_UnmarshalNeitherKey(t *testing.T) {
	var r Result
	if err := json.Unmarshal([]byte(`{"Maybe":1}`), &r); err == nil {
		t.Fatal("expected error for object without Ok or Err")
	}
}

func TestResult_DecodeErrPropagates(t *testing.T) {
	r := Err("Element not found: foo")
	var v any
	err := r.Decode(&v)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "Element not found: foo") {
		t.Errorf("got %v", err)
	}
}

func TestResponse_IDReflected(t *testing.T) {
	resp := Response{ID: "req-42", Result: Ok(nil)}
	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatal(err)
	}

	var decoded Response
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.ID != "req-42" {
		t.Errorf("id: got %q, want req-42", decoded.ID)
	}
	if !decoded.Result.IsOK() {
		t.Error("expected Ok result")
	}
}
