// SPDX-License-Identifier: MPL-2.0

// Package cueutil decodes CUE documents against an embedded schema.
//
// Every CUE file fop reads (the user configuration and module manifests)
// goes through the same flow:
//
//  1. Compile the embedded schema and look up its root definition
//  2. Compile the user data and unify it with that definition
//  3. Validate and decode into a Go value
//
// # Usage
//
//	//go:embed manifest_schema.cue
//	var schema []byte
//
//	m, err := cueutil.Decode[Manifest](schema, "#Manifest", data,
//	    cueutil.WithFilename("module.cue"),
//	    cueutil.WithConcrete(true),
//	)
//
// Errors carry the JSON path of the offending field, e.g.
// "config.cue: shop.root: invalid value "" (does not satisfy !="")".
package cueutil
