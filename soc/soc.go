// Package soc provides static catalogs of accelerator SoC models keyed by
// vendor. Membership is fixed at build time; callers that only need the
// visible names should depend on the Source interface rather than a
// concrete catalog.
package soc

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Model is one named SoC constant in a vendor catalog.
type Model struct {
	// Name is the exported identifier, e.g. "SM8350".
	Name string

	// ID is the vendor's numeric value for the model. Opaque; callers
	// must not interpret it.
	ID int

	// Marketing is the consumer-facing name, when one exists.
	Marketing string
}

// Source is an enumeration-like collaborator exposing its public member
// names. Names must be stable across calls for an unmodified source.
type Source interface {
	Names() []string
}

// ErrUnknownVendor is returned when no catalog exists for a vendor key.
var ErrUnknownVendor = errors.New("unknown vendor")

// vendors maps lowercase vendor keys to their catalogs.
var vendors = map[string]*Catalog{
	"qualcomm": qualcomm,
}

// ForVendor resolves a vendor key (case-insensitive) to its catalog.
func ForVendor(vendor string) (*Catalog, error) {
	c, ok := vendors[strings.ToLower(vendor)]
	if !ok {
		return nil, fmt.Errorf("resolve vendor %q: %w", vendor, ErrUnknownVendor)
	}
	return c, nil
}

// Vendors returns the known vendor keys in lexicographic order.
func Vendors() []string {
	keys := make([]string, 0, len(vendors))
	for k := range vendors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// qualcomm mirrors the membership shape of the Qualcomm AI Engine target
// enumeration. Values are illustrative, not a claim about any toolkit
// release.
var qualcomm = mustCatalog("qualcomm",
	Model{Name: "SDM660", ID: 660, Marketing: "Snapdragon 660"},
	Model{Name: "SC7280", ID: 35, Marketing: "Snapdragon 7c+ Gen 3"},
	Model{Name: "SA8255", ID: 52},
	Model{Name: "SA8295", ID: 39, Marketing: "Snapdragon Ride SA8295P"},
	Model{Name: "SM8350", ID: 30, Marketing: "Snapdragon 888"},
	Model{Name: "SM8450", ID: 36, Marketing: "Snapdragon 8 Gen 1"},
	Model{Name: "SM8475", ID: 42, Marketing: "Snapdragon 8+ Gen 1"},
	Model{Name: "SM8550", ID: 43, Marketing: "Snapdragon 8 Gen 2"},
	Model{Name: "SM8650", ID: 57, Marketing: "Snapdragon 8 Gen 3"},
	Model{Name: "SM8750", ID: 69, Marketing: "Snapdragon 8 Elite"},
)
