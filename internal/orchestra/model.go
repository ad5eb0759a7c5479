package orchestra

import (
	"fmt"
	"slices"
)

// Model is an in-memory FIX dictionary.
type Model struct {
	// Name is the repository name, e.g. "FIX.4.4".
	Name string
	// Version is the repository version, e.g. "FIX.5.0SP2_EP258".
	Version string

	FieldsByTag map[int]*Field
	CodeSets    map[string]*CodeSet
	Components  map[int]*Component
	Groups      map[int]*Group
	// Messages are in declaration order.
	Messages []*Message

	fieldsByName   map[string]*Field
	messagesByName map[string]*Message
}

// New returns an empty model.
func New(name, version string) *Model {
	return &Model{
		Name:           name,
		Version:        version,
		FieldsByTag:    make(map[int]*Field),
		CodeSets:       make(map[string]*CodeSet),
		Components:     make(map[int]*Component),
		Groups:         make(map[int]*Group),
		fieldsByName:   make(map[string]*Field),
		messagesByName: make(map[string]*Message),
	}
}

// AddField adds a field. Tags must be positive and tags and names unique.
func (m *Model) AddField(f *Field) error {
	if f.ID < 1 {
		return fmt.Errorf("field %s has tag %d: %w", f.Name, f.ID, ErrInvalidTag)
	}

	if existing, ok := m.FieldsByTag[f.ID]; ok {
		return fmt.Errorf("tag %d used by %s and %s: %w", f.ID, existing.Name, f.Name, ErrDuplicate)
	}

	if _, ok := m.fieldsByName[f.Name]; ok {
		return fmt.Errorf("field name %s: %w", f.Name, ErrDuplicate)
	}

	m.FieldsByTag[f.ID] = f
	m.fieldsByName[f.Name] = f

	return nil
}

// AddCodeSet adds a code set keyed by its name.
func (m *Model) AddCodeSet(cs *CodeSet) error {
	if _, ok := m.CodeSets[cs.Name]; ok {
		return fmt.Errorf("code set %s: %w", cs.Name, ErrDuplicate)
	}

	m.CodeSets[cs.Name] = cs

	return nil
}

// AddComponent adds a component keyed by id.
func (m *Model) AddComponent(c *Component) error {
	if _, ok := m.Components[c.ID]; ok {
		return fmt.Errorf("component %d (%s): %w", c.ID, c.Name, ErrDuplicate)
	}

	m.Components[c.ID] = c

	return nil
}

// AddGroup adds a repeating group keyed by id.
func (m *Model) AddGroup(g *Group) error {
	if _, ok := m.Groups[g.ID]; ok {
		return fmt.Errorf("group %d (%s): %w", g.ID, g.Name, ErrDuplicate)
	}

	m.Groups[g.ID] = g

	return nil
}

// AddMessage appends a message. Names must be unique.
func (m *Model) AddMessage(msg *Message) error {
	if _, ok := m.messagesByName[msg.Name]; ok {
		return fmt.Errorf("message %s: %w", msg.Name, ErrDuplicate)
	}

	m.Messages = append(m.Messages, msg)
	m.messagesByName[msg.Name] = msg

	return nil
}

// Field returns the field with tag.
func (m *Model) Field(tag int) (*Field, bool) {
	f, ok := m.FieldsByTag[tag]
	return f, ok
}

// FieldByName returns the field called name.
func (m *Model) FieldByName(name string) (*Field, bool) {
	f, ok := m.fieldsByName[name]
	return f, ok
}

// Message returns the message called name.
func (m *Model) Message(name string) (*Message, bool) {
	msg, ok := m.messagesByName[name]
	return msg, ok
}

// CodeSet resolves a field type to its code set. Base datatypes have none.
func (m *Model) CodeSet(typeName string) (*CodeSet, bool) {
	cs, ok := m.CodeSets[typeName]
	return cs, ok
}

// SortedFields returns all fields ascending by tag.
func (m *Model) SortedFields() []*Field {
	fields := make([]*Field, 0, len(m.FieldsByTag))
	for _, f := range m.FieldsByTag {
		fields = append(fields, f)
	}

	slices.SortFunc(fields, func(a, b *Field) int { return a.ID - b.ID })

	return fields
}

type blockKey struct {
	kind RefKind
	id   int
}

// MessageFields flattens the members of msg into field usages in document
// order, annotated with their repeating-group depth.
func (m *Model) MessageFields(msg *Message) ([]MessageFieldUsage, error) {
	var usages []MessageFieldUsage

	visiting := make(map[blockKey]bool)
	if err := m.flatten(msg.Members, 0, visiting, &usages); err != nil {
		return nil, fmt.Errorf("message %s: %w", msg.Name, err)
	}

	return usages, nil
}

func (m *Model) flatten(refs []Ref, depth int, visiting map[blockKey]bool, out *[]MessageFieldUsage) error {
	for _, ref := range refs {
		switch ref.Kind {
		case RefField:
			f, ok := m.FieldsByTag[ref.ID]
			if !ok {
				return fmt.Errorf("field %d: %w", ref.ID, ErrDanglingRef)
			}

			*out = append(*out, MessageFieldUsage{Field: f, Presence: ref.Presence, Depth: depth})

		case RefComponent:
			c, ok := m.Components[ref.ID]
			if !ok {
				return fmt.Errorf("component %d: %w", ref.ID, ErrDanglingRef)
			}

			key := blockKey{RefComponent, c.ID}
			if visiting[key] {
				return fmt.Errorf("component %s: %w", c.Name, ErrCycle)
			}

			visiting[key] = true
			if err := m.flatten(c.Members, depth, visiting, out); err != nil {
				return fmt.Errorf("component %s: %w", c.Name, err)
			}
			delete(visiting, key)

		case RefGroup:
			g, ok := m.Groups[ref.ID]
			if !ok {
				return fmt.Errorf("group %d: %w", ref.ID, ErrDanglingRef)
			}

			key := blockKey{RefGroup, g.ID}
			if visiting[key] {
				return fmt.Errorf("group %s: %w", g.Name, ErrCycle)
			}

			if g.NumInGroup != 0 {
				f, ok := m.FieldsByTag[g.NumInGroup]
				if !ok {
					return fmt.Errorf("group %s count field %d: %w", g.Name, g.NumInGroup, ErrDanglingRef)
				}

				*out = append(*out, MessageFieldUsage{Field: f, Presence: ref.Presence, Depth: depth})
			}

			visiting[key] = true
			if err := m.flatten(g.Members, depth+1, visiting, out); err != nil {
				return fmt.Errorf("group %s: %w", g.Name, err)
			}
			delete(visiting, key)

		default:
			return fmt.Errorf("%s %d: %w", ref.Kind, ref.ID, ErrInvalidRef)
		}
	}

	return nil
}
