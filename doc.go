// Package valtree provides:
//
// - Composable validation rules for semi-structured configuration data
// - A name-keyed rule registry (New/MustNew) with self-registering rule kinds
// - Path-qualified diagnostics ([/path/to/field] message) via Errors
// - JSON Schema synthesis for every rule tree (Rule.Schema)
//
// Design policy:
// - Keep the rule engine in the root package; put tooling under internal/
//   and the CLI under cmd/valtree.
// - Data-validation failures are collected diagnostics, never Go errors;
//   schema-authoring mistakes panic at construction time.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	root := valtree.MustNew("root")
//	series := root.Accept("dict").(*valtree.Dict)
//	series.Accept("text", valtree.Key("path"), valtree.Required())
//	series.Accept("interval", valtree.Key("timeframe"))
//
//	if !root.Validate(data) {
//		for _, msg := range root.Errors().Messages() {
//			fmt.Println(msg)
//		}
//	}
//	doc := root.Schema()
package valtree
