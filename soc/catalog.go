package soc

import (
	"fmt"
	"strings"
)

// Catalog is an ordered, read-only collection of SoC models for one vendor.
// Order is the declaration order of the vendor table and is stable across
// calls; callers should not attach meaning to it beyond stability.
type Catalog struct {
	vendor string
	models []Model
	byName map[string]Model
}

// NewCatalog builds a catalog from the given models. Every model must have
// a non-empty name that does not start with an underscore; names must be
// unique within the catalog.
func NewCatalog(vendor string, models ...Model) (*Catalog, error) {
	if vendor == "" {
		return nil, fmt.Errorf("catalog vendor is required")
	}
	byName := make(map[string]Model, len(models))
	for _, m := range models {
		if m.Name == "" {
			return nil, fmt.Errorf("catalog %s: model with empty name", vendor)
		}
		if strings.HasPrefix(m.Name, "_") {
			return nil, fmt.Errorf("catalog %s: model %s: names must not start with underscore", vendor, m.Name)
		}
		if _, dup := byName[m.Name]; dup {
			return nil, fmt.Errorf("catalog %s: duplicate model %s", vendor, m.Name)
		}
		byName[m.Name] = m
	}
	return &Catalog{
		vendor: vendor,
		models: append([]Model(nil), models...),
		byName: byName,
	}, nil
}

// mustCatalog is for the built-in vendor tables, which are validated at
// package init.
func mustCatalog(vendor string, models ...Model) *Catalog {
	c, err := NewCatalog(vendor, models...)
	if err != nil {
		panic(err)
	}
	return c
}

// Vendor returns the vendor key this catalog belongs to.
func (c *Catalog) Vendor() string {
	return c.vendor
}

// Names returns every public member name in catalog order. The returned
// slice is a copy; mutating it does not affect the catalog.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.models))
	for i, m := range c.models {
		names[i] = m.Name
	}
	return names
}

// Lookup returns the model with the given exact name.
func (c *Catalog) Lookup(name string) (Model, bool) {
	m, ok := c.byName[name]
	return m, ok
}

// Len returns the number of models in the catalog.
func (c *Catalog) Len() int {
	return len(c.models)
}
