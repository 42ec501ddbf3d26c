// SPDX-License-Identifier: AGPL-3.0-or-later

// Package analysis defines the API analysis document consumed by the
// generation pipeline and the loader that reads it from disk.
package analysis

// Document is the root of an API analysis: the controllers discovered in a
// service plus the document-global validation and exception labels.
// Every key is optional in the source JSON; absent keys decode to empty
// sequences, never to an error.
type Document struct {
	Controllers []Controller `json:"controllers"`
	DTOs        []string     `json:"dtos"`
	Validations []string     `json:"validations"`
	Exceptions  []string     `json:"exceptions"`
}

// Controller groups the endpoints exposed under one controller name.
// The name doubles as a path-safe identifier for derived artifacts.
type Controller struct {
	Name      string     `json:"name"`
	Endpoints []Endpoint `json:"endpoints"`
}

// Endpoint is a single callable operation plus the downstream service calls
// specific to it.
type Endpoint struct {
	Name         string   `json:"name"`
	ServiceCalls []string `json:"service_calls"`
}

// EndpointCount returns the total number of endpoints across all controllers.
func (d *Document) EndpointCount() int {
	n := 0
	for _, c := range d.Controllers {
		n += len(c.Endpoints)
	}
	return n
}
