// Package mapping parses dotted property paths and property sheets.
//
// A property sheet is an ordered list of path/value assignments read from a
// YAML or TOML document. Nested mappings and tables flatten into dotted
// paths, so the two sheets below are equivalent:
//
//	customer:
//	  name: Alice
//	  address.city: Berlin
//	total: "12.50"
//
//	total = "12.50"
//	[customer]
//	name = "Alice"
//	address.city = "Berlin"
//
// Assignments keep document order for YAML and key order for TOML.
//
// # Path Syntax
//
// Paths are property names separated by dots: "name", "customer.name",
// "customer.address.city". Segments must not be empty.
package mapping
