package soc

import (
	"errors"
	"testing"
)

func TestForVendor(t *testing.T) {
	tests := []struct {
		name    string
		vendor  string
		wantErr bool
	}{
		{name: "known vendor", vendor: "qualcomm"},
		{name: "case-insensitive key", vendor: "Qualcomm"},
		{name: "unknown vendor", vendor: "acme", wantErr: true},
		{name: "empty vendor", vendor: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ForVendor(tt.vendor)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if !errors.Is(err, ErrUnknownVendor) {
					t.Errorf("error should wrap ErrUnknownVendor, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ForVendor(%q) error = %v", tt.vendor, err)
			}
			if c.Vendor() != "qualcomm" {
				t.Errorf("Vendor() = %q, want qualcomm", c.Vendor())
			}
		})
	}
}

func TestVendors(t *testing.T) {
	vendors := Vendors()
	if len(vendors) == 0 {
		t.Fatal("expected at least one vendor")
	}
	found := false
	for _, v := range vendors {
		if v == "qualcomm" {
			found = true
		}
	}
	if !found {
		t.Error("expected qualcomm in vendor list")
	}
}
