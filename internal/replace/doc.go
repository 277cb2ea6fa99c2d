// SPDX-License-Identifier: MPL-2.0

// Package replace builds the ordered search → replace table used to rename a
// module, and applies it to text in a single non-recursive pass.
//
// Table order is load-bearing: the preview shown to the user and the
// substitution pass both iterate it, and a later Set for an existing key
// overwrites the value while keeping the key's original position.
package replace
