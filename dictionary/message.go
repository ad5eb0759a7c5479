package dictionary

// MessageField is one field usage within a message, in dictionary order.
// Depth is 0 for top-level fields and increases by one per repeating group.
type MessageField struct {
	Field    VersionField
	Presence Presence
	Depth    int
}

// Message describes a message of one protocol version.
type Message interface {
	Name() string
	MsgType() string
	Category() string
	Synopsis() string
	Pedigree() Pedigree
	Fields() []MessageField
}
