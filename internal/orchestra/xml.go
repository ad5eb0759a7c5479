package orchestra

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Orchestra repository XML. Elements are matched by local name so the fixr
// namespace prefix does not matter.

type xmlPedigree struct {
	Added        *string `xml:"added,attr"`
	AddedEP      *string `xml:"addedEP,attr"`
	Updated      *string `xml:"updated,attr"`
	UpdatedEP    *string `xml:"updatedEP,attr"`
	Deprecated   *string `xml:"deprecated,attr"`
	DeprecatedEP *string `xml:"deprecatedEP,attr"`
}

func (p xmlPedigree) model() Pedigree {
	return Pedigree{
		Added:        optional(p.Added),
		AddedEP:      optional(p.AddedEP),
		Updated:      optional(p.Updated),
		UpdatedEP:    optional(p.UpdatedEP),
		Deprecated:   optional(p.Deprecated),
		DeprecatedEP: optional(p.DeprecatedEP),
	}
}

type xmlDocumentation struct {
	Purpose string `xml:"purpose,attr"`
	Text    string `xml:",chardata"`
}

type xmlAnnotation struct {
	Documentation []xmlDocumentation `xml:"documentation"`
}

func (a xmlAnnotation) synopsis() string {
	for _, d := range a.Documentation {
		if strings.EqualFold(d.Purpose, "SYNOPSIS") {
			return strings.TrimSpace(d.Text)
		}
	}

	return ""
}

type xmlCode struct {
	ID    int    `xml:"id,attr"`
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
	xmlPedigree
	Annotation xmlAnnotation `xml:"annotation"`
}

type xmlCodeSet struct {
	ID         int           `xml:"id,attr"`
	Name       string        `xml:"name,attr"`
	Type       string        `xml:"type,attr"`
	Codes      []xmlCode     `xml:"code"`
	Annotation xmlAnnotation `xml:"annotation"`
}

type xmlField struct {
	ID   int    `xml:"id,attr"`
	Name string `xml:"name,attr"`
	Type string `xml:"type,attr"`
	xmlPedigree
	Annotation xmlAnnotation `xml:"annotation"`
}

type xmlRef struct {
	Kind     RefKind `xml:"-"`
	ID       int     `xml:"id,attr"`
	Presence string  `xml:"presence,attr"`
}

var refKinds = map[string]RefKind{
	"fieldRef":     RefField,
	"componentRef": RefComponent,
	"groupRef":     RefGroup,
}

// xmlMembers keeps fieldRef, componentRef and groupRef children in document
// order; encoding/xml would otherwise split them by element name.
type xmlMembers []xmlRef

func (m *xmlMembers) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return decodeMembers(d, func(t xml.StartElement) (bool, error) {
		kind, ok := refKinds[t.Name.Local]
		if !ok {
			return false, nil
		}

		var ref xmlRef
		if err := d.DecodeElement(&ref, &t); err != nil {
			return true, err
		}

		ref.Kind = kind
		*m = append(*m, ref)

		return true, nil
	})
}

// xmlBlock is a component or group: attributes plus ordered members.
type xmlBlock struct {
	ID         int
	Name       string
	Category   string
	NumInGroup int
	Members    xmlMembers
}

func (b *xmlBlock) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "id":
			id, err := strconv.Atoi(attr.Value)
			if err != nil {
				return fmt.Errorf("%s id %q: %w", start.Name.Local, attr.Value, err)
			}

			b.ID = id
		case "name":
			b.Name = attr.Value
		case "category":
			b.Category = attr.Value
		}
	}

	return decodeMembers(d, func(t xml.StartElement) (bool, error) {
		if t.Name.Local == "numInGroup" {
			var ref xmlRef
			if err := d.DecodeElement(&ref, &t); err != nil {
				return true, err
			}

			b.NumInGroup = ref.ID

			return true, nil
		}

		kind, ok := refKinds[t.Name.Local]
		if !ok {
			return false, nil
		}

		var ref xmlRef
		if err := d.DecodeElement(&ref, &t); err != nil {
			return true, err
		}

		ref.Kind = kind
		b.Members = append(b.Members, ref)

		return true, nil
	})
}

// decodeMembers walks the children of the current element. Children the
// handler does not consume are skipped.
func decodeMembers(d *xml.Decoder, handle func(xml.StartElement) (bool, error)) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			consumed, err := handle(t)
			if err != nil {
				return err
			}

			if consumed {
				continue
			}

			if err := d.Skip(); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

type xmlMessage struct {
	ID       int    `xml:"id,attr"`
	Name     string `xml:"name,attr"`
	MsgType  string `xml:"msgType,attr"`
	Category string `xml:"category,attr"`
	xmlPedigree
	Structure  xmlMembers    `xml:"structure"`
	Annotation xmlAnnotation `xml:"annotation"`
}

type xmlRepository struct {
	XMLName    xml.Name     `xml:"repository"`
	Name       string       `xml:"name,attr"`
	Version    string       `xml:"version,attr"`
	CodeSets   []xmlCodeSet `xml:"codeSets>codeSet"`
	Fields     []xmlField   `xml:"fields>field"`
	Components []xmlBlock   `xml:"components>component"`
	Groups     []xmlBlock   `xml:"groups>group"`
	Messages   []xmlMessage `xml:"messages>message"`
}

// ParseXML parses a FIX Orchestra repository document.
func ParseXML(data []byte) (*Model, error) {
	var repo xmlRepository

	dec := xml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&repo); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("failed to parse orchestration XML: empty document")
		}

		return nil, fmt.Errorf("failed to parse orchestration XML: %w", err)
	}

	m := New(repo.Name, repo.Version)

	for _, xcs := range repo.CodeSets {
		cs := &CodeSet{
			ID:       xcs.ID,
			Name:     xcs.Name,
			Type:     xcs.Type,
			Synopsis: xcs.Annotation.synopsis(),
		}

		for _, xc := range xcs.Codes {
			cs.Codes = append(cs.Codes, Code{
				ID:       xc.ID,
				Name:     xc.Name,
				Value:    xc.Value,
				Synopsis: xc.Annotation.synopsis(),
				Pedigree: xc.xmlPedigree.model(),
			})
		}

		if err := m.AddCodeSet(cs); err != nil {
			return nil, err
		}
	}

	for _, xf := range repo.Fields {
		err := m.AddField(&Field{
			ID:       xf.ID,
			Name:     xf.Name,
			Type:     xf.Type,
			Synopsis: xf.Annotation.synopsis(),
			Pedigree: xf.xmlPedigree.model(),
		})
		if err != nil {
			return nil, err
		}
	}

	for _, xb := range repo.Components {
		members, err := xmlRefs(xb.Members)
		if err != nil {
			return nil, fmt.Errorf("component %s: %w", xb.Name, err)
		}

		c := &Component{ID: xb.ID, Name: xb.Name, Category: xb.Category, Members: members}
		if err := m.AddComponent(c); err != nil {
			return nil, err
		}
	}

	for _, xb := range repo.Groups {
		members, err := xmlRefs(xb.Members)
		if err != nil {
			return nil, fmt.Errorf("group %s: %w", xb.Name, err)
		}

		g := &Group{ID: xb.ID, Name: xb.Name, Category: xb.Category, NumInGroup: xb.NumInGroup, Members: members}
		if err := m.AddGroup(g); err != nil {
			return nil, err
		}
	}

	for _, xm := range repo.Messages {
		members, err := xmlRefs(xm.Structure)
		if err != nil {
			return nil, fmt.Errorf("message %s: %w", xm.Name, err)
		}

		err = m.AddMessage(&Message{
			ID:       xm.ID,
			Name:     xm.Name,
			MsgType:  xm.MsgType,
			Category: xm.Category,
			Synopsis: xm.Annotation.synopsis(),
			Pedigree: xm.xmlPedigree.model(),
			Members:  members,
		})
		if err != nil {
			return nil, err
		}
	}

	return m, nil
}

func xmlRefs(members xmlMembers) ([]Ref, error) {
	refs := make([]Ref, 0, len(members))

	for _, xr := range members {
		presence, err := parsePresence(xr.Presence)
		if err != nil {
			return nil, fmt.Errorf("%s %d: %w", xr.Kind, xr.ID, err)
		}

		refs = append(refs, Ref{Kind: xr.Kind, ID: xr.ID, Presence: presence})
	}

	return refs, nil
}
