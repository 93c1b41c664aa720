package prompt

import (
	"bytes"
	"strings"
	"testing"
)

func TestConfirm_NonInteractive(t *testing.T) {
	c := Confirmer{
		In:            bytes.NewBufferString("y\n"),
		IsInteractive: func() bool { return false },
	}
	ok, err := c.Confirm("Reset settings?", false)
	if err == nil {
		t.Fatalf("expected error for non-interactive confirm, got ok=%v", ok)
	}
}

func TestConfirm_Force(t *testing.T) {
	c := Confirmer{
		In:            bytes.NewBufferString("n\n"),
		IsInteractive: func() bool { return false },
	}
	ok, err := c.Confirm("Reset settings?", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("expected ok=true for forced confirm")
	}
}

func TestConfirm_Interactive(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"y", true},
	}
	for _, tc := range tests {
		var out bytes.Buffer
		c := Confirmer{
			In:            bytes.NewBufferString(tc.input),
			Out:           &out,
			IsInteractive: func() bool { return true },
		}
		ok, err := c.Confirm("Reset settings?", false)
		if err != nil {
			t.Fatalf("input %q: unexpected error: %v", tc.input, err)
		}
		if ok != tc.want {
			t.Fatalf("input %q: ok = %v, want %v", tc.input, ok, tc.want)
		}
		if !strings.Contains(out.String(), "Reset settings? (y/n)") {
			t.Fatalf("prompt not written: %q", out.String())
		}
	}
}
