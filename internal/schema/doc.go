// Package schema defines the YAML definition format for keyed enumerations
// and its loading, defaulting, and validation logic.
//
// A definition file declares a target package and a list of enums, each enum
// being an ordered list of (variant name, canonical key) pairs:
//
//	version: "1"
//	package: colors
//	enums:
//	  - name: Color
//	    values:
//	      - name: Red
//	        key: red
//	      - name: Green
//	        key: green
//
// Declaration order is significant: generated const blocks, key listings,
// and diagnostics all follow it.
package schema
