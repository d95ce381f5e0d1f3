package router

import "testing"

func TestParseCallback(t *testing.T) {
	tests := []struct {
		raw, key, payload string
	}{
		{raw: "\fpick_month|2025-01", key: "pick_month", payload: "2025-01"},
		{raw: "\fsummary_all", key: "summary_all", payload: ""},
		{raw: "del_shift|a|b", key: "del_shift", payload: "a|b"},
		{raw: "", key: "", payload: ""},
	}
	for _, tc := range tests {
		key, payload := ParseCallback(tc.raw)
		if key != tc.key || payload != tc.payload {
			t.Fatalf("%q: expected (%q, %q), got (%q, %q)", tc.raw, tc.key, tc.payload, key, payload)
		}
	}
}
