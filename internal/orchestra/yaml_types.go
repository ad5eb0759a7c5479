package orchestra

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type yamlPedigree struct {
	Added        *string `yaml:"added,omitempty"`
	AddedEP      *string `yaml:"addedEP,omitempty"`
	Updated      *string `yaml:"updated,omitempty"`
	UpdatedEP    *string `yaml:"updatedEP,omitempty"`
	Deprecated   *string `yaml:"deprecated,omitempty"`
	DeprecatedEP *string `yaml:"deprecatedEP,omitempty"`
}

func (p yamlPedigree) model() Pedigree {
	return Pedigree{
		Added:        optional(p.Added),
		AddedEP:      optional(p.AddedEP),
		Updated:      optional(p.Updated),
		UpdatedEP:    optional(p.UpdatedEP),
		Deprecated:   optional(p.Deprecated),
		DeprecatedEP: optional(p.DeprecatedEP),
	}
}

type yamlCode struct {
	ID       int          `yaml:"id,omitempty"`
	Name     string       `yaml:"name"`
	Value    string       `yaml:"value"`
	Synopsis string       `yaml:"synopsis,omitempty"`
	Pedigree yamlPedigree `yaml:"pedigree,omitempty"`
}

type yamlCodeSet struct {
	ID       int        `yaml:"id,omitempty"`
	Name     string     `yaml:"name"`
	Type     string     `yaml:"type"`
	Synopsis string     `yaml:"synopsis,omitempty"`
	Codes    []yamlCode `yaml:"codes"`
}

type yamlField struct {
	ID       int          `yaml:"id"`
	Name     string       `yaml:"name"`
	Type     string       `yaml:"type"`
	Synopsis string       `yaml:"synopsis,omitempty"`
	Pedigree yamlPedigree `yaml:"pedigree,omitempty"`
}

// yamlRef sets exactly one of Field, Component or Group.
type yamlRef struct {
	Field     int    `yaml:"field,omitempty"`
	Component int    `yaml:"component,omitempty"`
	Group     int    `yaml:"group,omitempty"`
	Presence  string `yaml:"presence,omitempty"`
}

func (r yamlRef) model() (Ref, error) {
	var ref Ref

	set := 0
	if r.Field != 0 {
		ref.Kind, ref.ID = RefField, r.Field
		set++
	}

	if r.Component != 0 {
		ref.Kind, ref.ID = RefComponent, r.Component
		set++
	}

	if r.Group != 0 {
		ref.Kind, ref.ID = RefGroup, r.Group
		set++
	}

	if set != 1 {
		return Ref{}, fmt.Errorf("%+v: %w", r, ErrInvalidRef)
	}

	presence, err := parsePresence(r.Presence)
	if err != nil {
		return Ref{}, fmt.Errorf("%s %d: %w", ref.Kind, ref.ID, err)
	}

	ref.Presence = presence

	return ref, nil
}

type yamlBlock struct {
	ID         int       `yaml:"id"`
	Name       string    `yaml:"name"`
	Category   string    `yaml:"category,omitempty"`
	NumInGroup int       `yaml:"numInGroup,omitempty"`
	Members    []yamlRef `yaml:"members"`
}

type yamlMessage struct {
	ID       int          `yaml:"id,omitempty"`
	Name     string       `yaml:"name"`
	MsgType  string       `yaml:"msgType"`
	Category string       `yaml:"category,omitempty"`
	Synopsis string       `yaml:"synopsis,omitempty"`
	Pedigree yamlPedigree `yaml:"pedigree,omitempty"`
	Members  []yamlRef    `yaml:"members"`
}

type yamlRepository struct {
	Name       string        `yaml:"name"`
	Version    string        `yaml:"version,omitempty"`
	CodeSets   []yamlCodeSet `yaml:"codeSets,omitempty"`
	Fields     []yamlField   `yaml:"fields"`
	Components []yamlBlock   `yaml:"components,omitempty"`
	Groups     []yamlBlock   `yaml:"groups,omitempty"`
	Messages   []yamlMessage `yaml:"messages,omitempty"`
}

// ParseYAML parses a YAML orchestration. Unknown keys are rejected.
func ParseYAML(data []byte) (*Model, error) {
	var repo yamlRepository

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&repo); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("failed to parse orchestration YAML: empty document")
		}

		return nil, fmt.Errorf("failed to parse orchestration YAML: %w", err)
	}

	m := New(repo.Name, repo.Version)

	for _, ycs := range repo.CodeSets {
		cs := &CodeSet{ID: ycs.ID, Name: ycs.Name, Type: ycs.Type, Synopsis: ycs.Synopsis}

		for _, yc := range ycs.Codes {
			cs.Codes = append(cs.Codes, Code{
				ID:       yc.ID,
				Name:     yc.Name,
				Value:    yc.Value,
				Synopsis: yc.Synopsis,
				Pedigree: yc.Pedigree.model(),
			})
		}

		if err := m.AddCodeSet(cs); err != nil {
			return nil, err
		}
	}

	for _, yf := range repo.Fields {
		err := m.AddField(&Field{
			ID:       yf.ID,
			Name:     yf.Name,
			Type:     yf.Type,
			Synopsis: yf.Synopsis,
			Pedigree: yf.Pedigree.model(),
		})
		if err != nil {
			return nil, err
		}
	}

	for _, yb := range repo.Components {
		members, err := yamlRefs(yb.Members)
		if err != nil {
			return nil, fmt.Errorf("component %s: %w", yb.Name, err)
		}

		c := &Component{ID: yb.ID, Name: yb.Name, Category: yb.Category, Members: members}
		if err := m.AddComponent(c); err != nil {
			return nil, err
		}
	}

	for _, yb := range repo.Groups {
		members, err := yamlRefs(yb.Members)
		if err != nil {
			return nil, fmt.Errorf("group %s: %w", yb.Name, err)
		}

		g := &Group{ID: yb.ID, Name: yb.Name, Category: yb.Category, NumInGroup: yb.NumInGroup, Members: members}
		if err := m.AddGroup(g); err != nil {
			return nil, err
		}
	}

	for _, ym := range repo.Messages {
		members, err := yamlRefs(ym.Members)
		if err != nil {
			return nil, fmt.Errorf("message %s: %w", ym.Name, err)
		}

		err = m.AddMessage(&Message{
			ID:       ym.ID,
			Name:     ym.Name,
			MsgType:  ym.MsgType,
			Category: ym.Category,
			Synopsis: ym.Synopsis,
			Pedigree: ym.Pedigree.model(),
			Members:  members,
		})
		if err != nil {
			return nil, err
		}
	}

	return m, nil
}

func yamlRefs(members []yamlRef) ([]Ref, error) {
	refs := make([]Ref, 0, len(members))

	for _, yr := range members {
		ref, err := yr.model()
		if err != nil {
			return nil, err
		}

		refs = append(refs, ref)
	}

	return refs, nil
}
