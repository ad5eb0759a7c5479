package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"path/filepath"
	"strconv"

	"fixdict-generator/internal/common"
	"fixdict-generator/internal/diagnostic"
	"fixdict-generator/internal/orchestra"
	"fixdict-generator/internal/sanitize"
)

// DefaultDictionaryImport is the import path of the runtime package the
// generated code implements.
const DefaultDictionaryImport = "fixdict-generator/dictionary"

var (
	// ErrInvalidDictionary is returned when the model cannot be emitted; the
	// generator diagnostics carry the details.
	ErrInvalidDictionary = errors.New("invalid dictionary")

	// ErrTableOverflow is returned when the field count exceeds the range of
	// the generated lookup table.
	ErrTableOverflow = errors.New("lookup table overflow")
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName is the name of the generated package.
	PackageName string
	// ModuleName is the protocol version name reported by Orchestration().Name().
	ModuleName string
	// DictionaryImport is the import path of the dictionary runtime package.
	DictionaryImport string
	// Source is recorded in the header of the generated file, if set.
	Source string
	// OutputPath is the file the result is written to. It names the
	// generated file and locates the unformatted sidecar on format errors.
	OutputPath string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		PackageName:      "fix",
		ModuleName:       "FIX",
		DictionaryImport: DefaultDictionaryImport,
	}
}

// Generator generates a Go dictionary package from an orchestra model.
type Generator struct {
	config GeneratorConfig
	diags  diagnostic.Diagnostics
	// idents maps each top-level identifier to the definition declaring it.
	idents map[string]string
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the base name of the file (e.g., "fix44.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Diagnostics returns the diagnostics of the last Generate call.
func (g *Generator) Diagnostics() *diagnostic.Diagnostics {
	return &g.diags
}

// Generate renders the model as one Go source file. The model is only read.
// Output depends on nothing but the model and the configuration, so equal
// inputs give byte-identical files.
func (g *Generator) Generate(m *orchestra.Model) (*GeneratedFile, error) {
	g.diags = diagnostic.Diagnostics{}
	g.idents = make(map[string]string)

	if err := g.checkConfig(); err != nil {
		return nil, err
	}

	data := &templateData{
		PackageName:      g.config.PackageName,
		Source:           sanitize.Literal(g.config.Source),
		ModuleName:       sanitize.Literal(g.config.ModuleName),
		ModuleLiteral:    strconv.Quote(g.config.ModuleName),
		DictionaryImport: g.config.DictionaryImport,
		DictionaryAlias:  common.PkgAlias(g.config.DictionaryImport) != "dictionary",
	}

	g.declareAccessors()

	fields := m.SortedFields()

	rows, err := g.buildLookup(fields)
	if err != nil {
		return nil, err
	}

	data.LookupRows = rows

	fieldTypes := make(map[int]string, len(fields))

	for _, f := range fields {
		fd, ok := g.buildField(m, f)
		if !ok {
			continue
		}

		fieldTypes[f.ID] = fd.TypeName
		data.Fields = append(data.Fields, fd)
	}

	for _, msg := range m.Messages {
		md, ok := g.buildMessage(m, msg, fieldTypes)
		if !ok {
			continue
		}

		data.Messages = append(data.Messages, md)
	}

	if g.diags.HasErrors() {
		return nil, fmt.Errorf("generating %s: %w: %w", g.config.ModuleName, ErrInvalidDictionary, g.diags.Error())
	}

	return g.render(data)
}

func (g *Generator) checkConfig() error {
	var diags diagnostic.Diagnostics

	if !token.IsIdentifier(g.config.PackageName) {
		diags.AddError(diagnostic.CodeInvalidConfig,
			fmt.Sprintf("%q is not a valid package name", g.config.PackageName), "config", "PackageName")
	}

	if g.config.DictionaryImport == "" {
		diags.AddError(diagnostic.CodeInvalidConfig,
			"dictionary import path is empty", "config", "DictionaryImport")
	}

	g.diags.Merge(diags)

	if diags.HasErrors() {
		return fmt.Errorf("invalid generator config: %w", diags.Error())
	}

	return nil
}

func (g *Generator) filename() string {
	if g.config.OutputPath != "" {
		return filepath.Base(g.config.OutputPath)
	}

	return g.config.PackageName + ".go"
}

func (g *Generator) render(data *templateData) (*GeneratedFile, error) {
	filename := g.filename()

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if g.config.OutputPath != "" {
			_ = writeDebugUnformatted(filepath.Dir(g.config.OutputPath), filename, buf.Bytes())
		}

		return &GeneratedFile{
			Filename: filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w", err)
	}

	return &GeneratedFile{
		Filename: filename,
		Content:  formatted,
	}, nil
}
