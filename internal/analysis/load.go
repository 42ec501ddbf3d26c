// SPDX-License-Identifier: AGPL-3.0-or-later

package analysis

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads and decodes an analysis document from path.
// A missing or unparsable file is a fatal input error. Absent optional keys
// are normalized to empty slices so composition never needs nil checks.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading analysis document: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing analysis document %s: %w", path, err)
	}

	doc.normalize()
	return &doc, nil
}

// normalize replaces the nil slices left by absent JSON keys.
func (d *Document) normalize() {
	if d.Controllers == nil {
		d.Controllers = []Controller{}
	}
	if d.DTOs == nil {
		d.DTOs = []string{}
	}
	if d.Validations == nil {
		d.Validations = []string{}
	}
	if d.Exceptions == nil {
		d.Exceptions = []string{}
	}
	for i := range d.Controllers {
		c := &d.Controllers[i]
		if c.Endpoints == nil {
			c.Endpoints = []Endpoint{}
		}
		for j := range c.Endpoints {
			if c.Endpoints[j].ServiceCalls == nil {
				c.Endpoints[j].ServiceCalls = []string{}
			}
		}
	}
}
