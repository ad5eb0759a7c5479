package orchestra

import (
	"fixdict-generator/dictionary"
)

// Pedigree is the version lifecycle of a definition. A nil entry is absent.
type Pedigree struct {
	Added        *string
	AddedEP      *string
	Updated      *string
	UpdatedEP    *string
	Deprecated   *string
	DeprecatedEP *string
}

// Field is a protocol field.
type Field struct {
	ID       int
	Name     string
	Type     string
	Synopsis string
	Pedigree Pedigree
}

// Code is one enumerated value of a code set.
type Code struct {
	ID       int
	Name     string
	Value    string
	Synopsis string
	Pedigree Pedigree
}

// CodeSet is the ordered set of legal values of a field type.
type CodeSet struct {
	ID       int
	Name     string
	Type     string
	Synopsis string
	Codes    []Code
}

// RefKind is the kind of definition a member reference points at.
type RefKind int

const (
	_ RefKind = iota

	RefField
	RefComponent
	RefGroup
)

// String returns the orchestra element name of the reference kind.
func (k RefKind) String() string {
	switch k {
	case RefField:
		return "fieldRef"
	case RefComponent:
		return "componentRef"
	case RefGroup:
		return "groupRef"
	default:
		return "unknownRef"
	}
}

// Ref is a member of a message, component or group.
type Ref struct {
	Kind     RefKind
	ID       int
	Presence dictionary.Presence
}

// Component is a reusable block of members inlined where referenced.
type Component struct {
	ID       int
	Name     string
	Category string
	Members  []Ref
}

// Group is a repeating group. NumInGroup is the tag of its count field.
type Group struct {
	ID         int
	Name       string
	Category   string
	NumInGroup int
	Members    []Ref
}

// Message is a protocol message.
type Message struct {
	ID       int
	Name     string
	MsgType  string
	Category string
	Synopsis string
	Pedigree Pedigree
	Members  []Ref
}

// MessageFieldUsage is one flattened field usage of a message.
type MessageFieldUsage struct {
	Field    *Field
	Presence dictionary.Presence
	Depth    int
}
