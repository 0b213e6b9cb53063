package k8s

import "testing"

func TestConvertCPU(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"500000000n", "500.0m"},
		{"1500000n", "1.5m"},
		{"250000u", "250.0m"},
		{"250m", "250m"},
		{"0n", "0.0m"},
		{"2", "2"},         // unsuffixed cores pass through
		{"N/A", "N/A"},     // unrecognized passes through
		{"abcn", "abcn"},   // unparseable number passes through
		{"", ""},
	}

	for _, tt := range tests {
		if got := ConvertCPU(tt.in); got != tt.want {
			t.Errorf("ConvertCPU(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestConvertMemory(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1024Ki", "1.0 MB"},
		{"524288Ki", "512.0 MB"},
		{"256Mi", "256 MB"},
		{"2Gi", "2048 MB"},
		{"1.5Gi", "1536 MB"},
		{"2000K", "2.0 MB"},
		{"128M", "128 MB"},
		{"12345", "12345"},   // unsuffixed passes through
		{"3Ti", "3Ti"},       // unrecognized suffix passes through
		{"xyzKi", "xyzKi"},   // unparseable number passes through
		{"", ""},
	}

	for _, tt := range tests {
		if got := ConvertMemory(tt.in); got != tt.want {
			t.Errorf("ConvertMemory(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
