package dictionary

// FieldCollection holds every field of a protocol version.
//
// Fields are stored densely: position 0 is InvalidField and positions 1..N
// hold the defined fields in ascending tag order. The sparse lookup table is
// indexed by raw tag and yields the dense position, or 0 for tags with no
// field, so resolving a tag is two index operations.
type FieldCollection struct {
	fields []VersionField
	lookup []uint16
}

// NewFieldCollection wraps a dense field list and its sparse lookup table.
// Both slices are retained and must not be modified afterwards.
func NewFieldCollection(fields []VersionField, lookup []uint16) *FieldCollection {
	return &FieldCollection{fields: fields, lookup: lookup}
}

// Get returns the field with tag, or InvalidField when the tag is undefined.
func (c *FieldCollection) Get(tag uint32) VersionField {
	if uint64(tag) >= uint64(len(c.lookup)) {
		return c.fields[0]
	}

	return c.fields[c.lookup[tag]]
}

// TryGet returns the field with tag and whether it is defined.
func (c *FieldCollection) TryGet(tag uint32) (VersionField, bool) {
	field := c.Get(tag)
	return field, field.IsValid()
}

// Len returns the number of dense entries, including the placeholder.
func (c *FieldCollection) Len() int {
	return len(c.fields)
}

// At returns the field at dense position i.
func (c *FieldCollection) At(i int) VersionField {
	return c.fields[i]
}

// All returns the dense list, placeholder first. The slice is shared.
func (c *FieldCollection) All() []VersionField {
	return c.fields
}

// MaxTag returns the highest tag covered by the lookup table.
func (c *FieldCollection) MaxTag() uint32 {
	if len(c.lookup) == 0 {
		return 0
	}

	return uint32(len(c.lookup) - 1)
}

// MessageCollection holds every message of a protocol version in dictionary
// order, indexed by name and by msg type.
type MessageCollection struct {
	messages  []Message
	byName    map[string]Message
	byMsgType map[string]Message
}

// NewMessageCollection indexes messages. When two messages share a name or
// msg type the first one wins.
func NewMessageCollection(messages []Message) *MessageCollection {
	c := &MessageCollection{
		messages:  messages,
		byName:    make(map[string]Message, len(messages)),
		byMsgType: make(map[string]Message, len(messages)),
	}

	for _, m := range messages {
		if _, ok := c.byName[m.Name()]; !ok {
			c.byName[m.Name()] = m
		}

		if _, ok := c.byMsgType[m.MsgType()]; !ok {
			c.byMsgType[m.MsgType()] = m
		}
	}

	return c
}

// All returns the messages in dictionary order. The slice is shared.
func (c *MessageCollection) All() []Message {
	return c.messages
}

// Len returns the number of messages.
func (c *MessageCollection) Len() int {
	return len(c.messages)
}

// ByName returns the message called name.
func (c *MessageCollection) ByName(name string) (Message, bool) {
	m, ok := c.byName[name]
	return m, ok
}

// ByMsgType returns the message whose MsgType(35) value is msgType.
func (c *MessageCollection) ByMsgType(msgType string) (Message, bool) {
	m, ok := c.byMsgType[msgType]
	return m, ok
}

// Orchestration is the entry point of a generated protocol version.
type Orchestration interface {
	Name() string
	Fields() *FieldCollection
	Messages() *MessageCollection
}
