package gen

import "text/template"

// templateData holds everything rendered into the generated file.
type templateData struct {
	PackageName      string
	Source           string
	ModuleLiteral    string
	DictionaryImport string
	Fields           []fieldData
	Messages         []messageData
	LookupRows       []string

	// ModuleName is sanitised for use in comments.
	ModuleName string
	// DictionaryAlias is set when the import path does not end in "dictionary".
	DictionaryAlias bool
}

// pedigreeData holds one Go expression per pedigree entry.
type pedigreeData struct {
	Added        string
	AddedEP      string
	Updated      string
	UpdatedEP    string
	Deprecated   string
	DeprecatedEP string
}

var fileTemplate = template.Must(template.New("file").Parse(fileLayout + pedigreeBlock + fieldBlock + messageBlock + collectionsBlock))

const fileLayout = `// Code generated by fixdict-generator. DO NOT EDIT.
{{- if .Source}}
// Source: {{.Source}}
{{- end}}

package {{.PackageName}}

import (
	"sync"

	{{if .DictionaryAlias}}dictionary {{end}}"{{.DictionaryImport}}"
)
{{range .Fields}}{{template "field" .}}{{end}}
{{- range .Messages}}{{template "message" .}}{{end}}
{{template "collections" .}}
`

const pedigreeBlock = `{{define "pedigree"}}dictionary.Pedigree{
		Added:        {{.Added}},
		AddedEP:      {{.AddedEP}},
		Updated:      {{.Updated}},
		UpdatedEP:    {{.UpdatedEP}},
		Deprecated:   {{.Deprecated}},
		DeprecatedEP: {{.DeprecatedEP}},
	}{{end}}`

const fieldBlock = `{{define "field"}}
// {{.TypeName}} is field {{.Tag}}.
type {{.TypeName}} struct{}

var _ dictionary.VersionField = {{.TypeName}}{}
{{range .Values}}
var {{.VarName}} = dictionary.FieldValue{Tag: {{.Tag}}, Name: {{.Name}}, Value: {{.Value}}}

// {{.Method}} returns the {{.Field}} value {{.Value}}.
func ({{.Field}}) {{.Method}}() *dictionary.FieldValue { return &{{.VarName}} }
{{end}}
func ({{.TypeName}}) Tag() uint32         { return {{.Tag}} }
func ({{.TypeName}}) Name() string        { return {{.Name}} }
func ({{.TypeName}}) DataType() string    { return {{.DataType}} }
func ({{.TypeName}}) Description() string { return {{.Description}} }
func ({{.TypeName}}) IsValid() bool       { return true }

func ({{.TypeName}}) Pedigree() dictionary.Pedigree {
	return {{template "pedigree" .Pedigree}}
}

var {{.ValuesVar}} = sync.OnceValue(func() []*dictionary.FieldValue {
{{- if .Values}}
	return []*dictionary.FieldValue{
{{- range .Values}}
		&{{.VarName}},
{{- end}}
	}
{{- else}}
	return []*dictionary.FieldValue{}
{{- end}}
})

func ({{.TypeName}}) Values() []*dictionary.FieldValue { return {{.ValuesVar}}() }
{{end}}`

const messageBlock = `{{define "message"}}
// {{.ConstName}} is the MsgType(35) value of {{.TypeName}}.
const {{.ConstName}} = {{.MsgType}}

// {{.TypeName}} is the {{.RawName}} message.
type {{.TypeName}} struct{}

var _ dictionary.Message = {{.TypeName}}{}

func ({{.TypeName}}) Name() string     { return {{.Name}} }
func ({{.TypeName}}) MsgType() string  { return {{.ConstName}} }
func ({{.TypeName}}) Category() string { return {{.Category}} }
func ({{.TypeName}}) Synopsis() string { return {{.Synopsis}} }

func ({{.TypeName}}) Pedigree() dictionary.Pedigree {
	return {{template "pedigree" .Pedigree}}
}

var {{.FieldsVar}} = sync.OnceValue(func() []dictionary.MessageField {
{{- if .Usages}}
	return []dictionary.MessageField{
{{- range .Usages}}
		{Field: {{.FieldType}}{}, Presence: dictionary.{{.Presence}}, Depth: {{.Depth}}},
{{- end}}
	}
{{- else}}
	return []dictionary.MessageField{}
{{- end}}
})

func ({{.TypeName}}) Fields() []dictionary.MessageField { return {{.FieldsVar}}() }
{{end}}`

const collectionsBlock = `{{define "collections"}}
// fieldLookup maps a tag to its position in Fields(); 0 is the placeholder.
var fieldLookup = [...]uint16{
{{- range .LookupRows}}
	{{.}}
{{- end}}
}

var fieldCollection = sync.OnceValue(func() *dictionary.FieldCollection {
	return dictionary.NewFieldCollection([]dictionary.VersionField{
		dictionary.InvalidField{},
{{- range .Fields}}
		{{.TypeName}}{},
{{- end}}
	}, fieldLookup[:])
})

// Fields returns every field of {{.ModuleName}} in tag order, placeholder first.
func Fields() *dictionary.FieldCollection { return fieldCollection() }

var messageCollection = sync.OnceValue(func() *dictionary.MessageCollection {
	return dictionary.NewMessageCollection([]dictionary.Message{
{{- range .Messages}}
		{{.TypeName}}{},
{{- end}}
	})
})

// Messages returns every message of {{.ModuleName}} in dictionary order.
func Messages() *dictionary.MessageCollection { return messageCollection() }

type orchestration struct{}

var _ dictionary.Orchestration = (*orchestration)(nil)

func (*orchestration) Name() string                            { return {{.ModuleLiteral}} }
func (*orchestration) Fields() *dictionary.FieldCollection     { return Fields() }
func (*orchestration) Messages() *dictionary.MessageCollection { return Messages() }

var orchestrationDescriptor = sync.OnceValue(func() *orchestration { return &orchestration{} })

// Orchestration returns the {{.ModuleName}} descriptor.
func Orchestration() dictionary.Orchestration { return orchestrationDescriptor() }
{{end}}`
