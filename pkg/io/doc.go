// Package io reads input trees and writes composed scenes.
//
// # Input Formats
//
// A tree is a nested object with a name and optional children. The same
// shape is accepted in three encodings, selected by file extension in
// [Import] or explicitly in [Read]:
//
// JSON (.json):
//
//	{"name": "Eve", "children": [{"name": "Cain"}, {"name": "Seth"}]}
//
// YAML (.yaml, .yml):
//
//	name: Eve
//	children:
//	  - name: Cain
//	  - name: Seth
//
// TOML (.toml):
//
//	name = "Eve"
//	[[children]]
//	name = "Cain"
//	[[children]]
//	name = "Seth"
//
// Decoding does not validate tree shape; cycles cannot be expressed in these
// formats, and empty documents are reported as errors. Structural validation
// happens in package hierarchy.
//
// # Scene Export
//
// [WriteScene] encodes a scene.Scene as indented JSON: the arrowhead marker,
// positioned nodes, and links with their path data and arrowhead placement.
// The output is intended for external renderers and snapshot tests.
package io
