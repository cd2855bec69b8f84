package host

import "testing"

func TestParseMouseButton_Valid(t *testing.T) {
	tests := []struct {
		input string
		want  MouseButton
	}{
		{"left", MouseLeft},
		{"Left", MouseLeft},
		{"LEFT", MouseLeft},
		{"", MouseLeft},
		{"right", MouseRight},
		{"Right", MouseRight},
		{"middle", MouseMiddle},
		{"Middle", MouseMiddle},
	}
	for _, tt := range tests {
		got, err := ParseMouseButton(tt.input)
		if err != nil {
			t.Errorf("ParseMouseButton(%q): %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParseMouseButton(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestParseMouseButton_Invalid(t *testing.T) {
	_, err := ParseMouseButton("invalid")
	if err == nil {
		t.Error("ParseMouseButton(\"invalid\") should fail")
	}
}

func TestMouseButton_String(t *testing.T) {
	tests := []struct {
		button MouseButton
		want   string
	}{
		{MouseLeft, "left"},
		{MouseRight, "right"},
		{MouseMiddle, "middle"},
	}
	for _, tt := range tests {
		if got := tt.button.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.button, got, tt.want)
		}
	}
}
