package protocol

import (
	"bytes"
	"testing"
)

func TestDecodeRequest(t *testing.T) {
	req, err := DecodeRequest([]byte(`{"id":"1","method":"get_windows"}`))
	if err != nil {
		t.Fatal(err)
	}
	if req.ID != "1" || req.Method != MethodGetWindows {
		t.Errorf("got %+v", req)
	}
}

func TestDecodeRequest_Malformed(t *testing.T) {
	if _, err := DecodeRequest([]byte(`{"id":`)); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestWriteLine_NewlineTerminated(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteLine(&buf, Request{ID: "1", Method: "get_logs"}); err != nil {
		t.Fatal(err)
	}
	got := buf.Bytes()
	if got[len(got)-1] != '\n' {
		t.Error("frame should be newline-terminated")
	}
	if bytes.Count(got, []byte("\n")) != 1 {
		t.Errorf("frame should contain exactly one newline: %q", got)
	}
}
