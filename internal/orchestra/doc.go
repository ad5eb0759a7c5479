// Package orchestra provides the read-only dictionary model consumed by the
// generator, and loaders for FIX Orchestra repository files.
//
// # Model
//
// A Model holds fields keyed by tag, code sets keyed by name, reusable
// components and repeating groups keyed by id, and messages in declaration
// order. A field whose type names a code set is enumerated; any other type is
// a base datatype with no enumerated values.
//
// MessageFields flattens a message's member tree into field usages:
//
//   - a field reference is emitted at the current depth
//   - a component reference inlines the component's members at the same depth
//   - a group reference emits the group's NumInGroup field at the current
//     depth, then the group's members one level deeper
//
// # Formats
//
// LoadFile accepts Orchestra XML (.xml) and the equivalent YAML (.yaml, .yml):
//
//	name: FIX.4.4
//	version: FIX.4.4
//	codeSets:
//	  - name: SideCodeSet
//	    type: char
//	    codes:
//	      - {name: Buy, value: "1"}
//	fields:
//	  - id: 54
//	    name: Side
//	    type: SideCodeSet
//	    synopsis: Side of order
//	    pedigree: {added: FIX.2.7}
//	groups:
//	  - id: 2071
//	    name: NoPartyIDs
//	    numInGroup: 453
//	    members:
//	      - field: 448
//	messages:
//	  - name: NewOrderSingle
//	    msgType: D
//	    category: SingleGeneralOrderHandling
//	    members:
//	      - {field: 11, presence: required}
//	      - {group: 2071}
//
// The model is built once by a loader and must not be modified while a
// generator reads it.
package orchestra
