package gen

import (
	"bytes"
	"go/types"
	"os"
	"path/filepath"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixdict-generator/dictionary"
	"fixdict-generator/internal/diagnostic"
	"fixdict-generator/internal/orchestra"
)

func TestGenerator_Generate_Layout(t *testing.T) {
	t.Parallel()

	gen := NewGenerator(testConfig())
	file, err := gen.Generate(newTestModel(t))
	require.NoError(t, err)

	assert.Equal(t, "test1.go", file.Filename)

	content := string(file.Content)
	assert.Contains(t, content, "// Code generated by fixdict-generator. DO NOT EDIT.")
	assert.Contains(t, content, "package test1")
	assert.Contains(t, content, `"fixdict-generator/dictionary"`)
	assert.NotContains(t, content, `dictionary "fixdict-generator/dictionary"`)

	parsed := parseGenerated(t, file.Content)

	// Fields in tag order, then messages in dictionary order.
	assert.Equal(t, []string{
		"Account", "AdvId", "Side", "PartyID", "NoPartyIDs",
		"NewOrderSingleMessage", "HeartbeatMessage",
		"orchestration",
	}, typeNames(parsed))

	assert.Equal(t,
		[]string{"Buy", "Sell", "Tag", "Name", "DataType", "Description", "IsValid", "Pedigree", "Values"},
		methodNames(parsed, "Side"))
	assert.Equal(t,
		[]string{"Name", "MsgType", "Category", "Synopsis", "Pedigree", "Fields"},
		methodNames(parsed, "NewOrderSingleMessage"))
	assert.Equal(t, []string{"Name", "Fields", "Messages"}, methodNames(parsed, "orchestration"))

	assert.Contains(t, content, `const NewOrderSingleMsgType = "D"`)
	assert.Contains(t, content, `const HeartbeatMsgType = "0"`)
	assert.Contains(t, content, `func Fields() *dictionary.FieldCollection`)
	assert.Contains(t, content, `func Messages() *dictionary.MessageCollection`)
	assert.Contains(t, content, `func Orchestration() dictionary.Orchestration`)
	assert.Contains(t, content, `return "TEST"`)
}

func TestGenerator_Generate_Deterministic(t *testing.T) {
	t.Parallel()

	m, err := orchestra.LoadFile(filepath.Join("..", "orchestra", "testdata", "sample.yaml"))
	require.NoError(t, err)

	first, err := NewGenerator(testConfig()).Generate(m)
	require.NoError(t, err)

	second, err := NewGenerator(testConfig()).Generate(m)
	require.NoError(t, err)

	assert.True(t, bytes.Equal(first.Content, second.Content), "two runs produced different output")

	// Reusing one generator must not leak state between runs.
	gen := NewGenerator(testConfig())
	_, err = gen.Generate(m)
	require.NoError(t, err)

	third, err := gen.Generate(m)
	require.NoError(t, err)
	assert.Equal(t, string(first.Content), string(third.Content))
}

func TestGenerator_Generate_Lookup(t *testing.T) {
	t.Parallel()

	m := orchestra.New("LOOKUP", "")
	for _, f := range []*orchestra.Field{
		{ID: 4, Name: "Four", Type: "int"},
		{ID: 1, Name: "One", Type: "int"},
		{ID: 2, Name: "Two", Type: "int"},
	} {
		require.NoError(t, m.AddField(f))
	}

	file, err := NewGenerator(testConfig()).Generate(m)
	require.NoError(t, err)

	parsed := parseGenerated(t, file.Content)

	if diff := cmp.Diff([]int{0, 1, 2, 0, 3}, lookupValues(t, parsed)); diff != "" {
		t.Errorf("fieldLookup mismatch (-want +got):\n%s", diff)
	}

	var dense []string
	for _, elt := range firstComposite(t, valueSpec(t, parsed, "fieldCollection")) {
		dense = append(dense, types.ExprString(elt))
	}

	assert.Equal(t, []string{"dictionary.InvalidField{}", "One{}", "Two{}", "Four{}"}, dense)
}

func TestGenerator_Generate_LookupRows(t *testing.T) {
	t.Parallel()

	m := orchestra.New("ROWS", "")
	require.NoError(t, m.AddField(&orchestra.Field{ID: 40, Name: "OrdType", Type: "char"}))

	file, err := NewGenerator(testConfig()).Generate(m)
	require.NoError(t, err)

	want := make([]int, 41)
	want[40] = 1

	assert.Equal(t, want, lookupValues(t, parseGenerated(t, file.Content)))
}

func TestGenerator_Generate_EmptyModel(t *testing.T) {
	t.Parallel()

	file, err := NewGenerator(testConfig()).Generate(orchestra.New("EMPTY", ""))
	require.NoError(t, err)

	parsed := parseGenerated(t, file.Content)
	assert.Equal(t, []int{0}, lookupValues(t, parsed))
	assert.Equal(t, []string{"orchestration"}, typeNames(parsed))
}

func TestGenerator_Generate_Values(t *testing.T) {
	t.Parallel()

	gen := NewGenerator(testConfig())
	file, err := gen.Generate(newTestModel(t))
	require.NoError(t, err)

	content := string(file.Content)
	assert.Contains(t, content, `var value_Side_Buy = dictionary.FieldValue{Tag: 54, Name: "Buy", Value: "1"}`)
	assert.Contains(t, content, `var value_Side_Sell = dictionary.FieldValue{Tag: 54, Name: "Sell", Value: "2"}`)
	assert.Contains(t, content, `func (Side) Buy() *dictionary.FieldValue { return &value_Side_Buy }`)

	parsed := parseGenerated(t, file.Content)

	var values []string
	for _, elt := range firstComposite(t, valueSpec(t, parsed, "values_Side")) {
		values = append(values, types.ExprString(elt))
	}

	assert.Equal(t, []string{"&value_Side_Buy", "&value_Side_Sell"}, values)
}

func TestGenerator_Generate_UnresolvedType(t *testing.T) {
	t.Parallel()

	gen := NewGenerator(testConfig())
	file, err := gen.Generate(newTestModel(t))
	require.NoError(t, err)

	parsed := parseGenerated(t, file.Content)
	assert.Empty(t, firstComposite(t, valueSpec(t, parsed, "values_Account")))

	diags := gen.Diagnostics()
	assert.True(t, diags.IsValid())

	var unresolved []string
	for _, d := range diags.Infos {
		if d.Code == diagnostic.CodeUnresolvedType {
			unresolved = append(unresolved, d.Subject)
		}
	}

	assert.ElementsMatch(t,
		[]string{"field Account", "field AdvId", "field PartyID", "field NoPartyIDs"}, unresolved)
}

func TestGenerator_Generate_MessageFields(t *testing.T) {
	t.Parallel()

	file, err := NewGenerator(testConfig()).Generate(newTestModel(t))
	require.NoError(t, err)

	parsed := parseGenerated(t, file.Content)

	want := []string{
		"Account/PresenceRequired/0",
		"Side/PresenceRequired/0",
		"NoPartyIDs/PresenceOptional/0",
		"PartyID/PresenceRequired/1",
		"AdvId/PresenceOptional/0",
	}
	if diff := cmp.Diff(want, usages(t, parsed, "fields_NewOrderSingle")); diff != "" {
		t.Errorf("NewOrderSingle fields mismatch (-want +got):\n%s", diff)
	}

	assert.Empty(t, usages(t, parsed, "fields_Heartbeat"))
}

func TestGenerator_Generate_TextAndPedigree(t *testing.T) {
	t.Parallel()

	file, err := NewGenerator(testConfig()).Generate(newTestModel(t))
	require.NoError(t, err)

	content := string(file.Content)
	assert.Contains(t, content, `return "He said 'hi'ok"`)
	assert.Contains(t, content, `return "Order entry"`)
	assert.Contains(t, content, `dictionary.V("FIX.2.7")`)
	assert.Contains(t, content, `dictionary.NoVersion`)
	assert.NotContains(t, content, "→")
}

func TestGenerator_Generate_RenamedCodes(t *testing.T) {
	t.Parallel()

	m := orchestra.New("RENAME", "")
	require.NoError(t, m.AddField(&orchestra.Field{ID: 5, Name: "AdvTransType", Type: "AdvTransTypeCodeSet"}))
	require.NoError(t, m.AddCodeSet(&orchestra.CodeSet{
		Name: "AdvTransTypeCodeSet",
		Codes: []orchestra.Code{
			{Name: "new", Value: "N"},
			{Name: "Name", Value: "C"},
			{Name: "2Way", Value: "R"},
		},
	}))

	gen := NewGenerator(testConfig())
	file, err := gen.Generate(m)
	require.NoError(t, err)

	parsed := parseGenerated(t, file.Content)
	assert.Equal(t,
		[]string{"New", "NameValue", "X2Way", "Tag", "Name", "DataType", "Description", "IsValid", "Pedigree", "Values"},
		methodNames(parsed, "AdvTransType"))

	var paths []string
	for _, d := range gen.Diagnostics().Warnings {
		assert.Equal(t, diagnostic.CodeRenamedCode, d.Code)
		paths = append(paths, d.Path)
	}

	assert.Equal(t, []string{"Name", "2Way"}, paths)
}

func TestGenerator_Generate_Collisions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		build func(t *testing.T, m *orchestra.Model)
		ident string
	}{
		{
			name: "field names",
			build: func(t *testing.T, m *orchestra.Model) {
				t.Helper()
				require.NoError(t, m.AddField(&orchestra.Field{ID: 54, Name: "Side", Type: "char"}))
				require.NoError(t, m.AddField(&orchestra.Field{ID: 55, Name: "Side!", Type: "char"}))
			},
			ident: "Side",
		},
		{
			name: "field shadows accessor",
			build: func(t *testing.T, m *orchestra.Model) {
				t.Helper()
				require.NoError(t, m.AddField(&orchestra.Field{ID: 9, Name: "Fields", Type: "int"}))
			},
			ident: "Fields",
		},
		{
			name: "codes of one field",
			build: func(t *testing.T, m *orchestra.Model) {
				t.Helper()
				require.NoError(t, m.AddField(&orchestra.Field{ID: 54, Name: "Side", Type: "SideCodeSet"}))
				require.NoError(t, m.AddCodeSet(&orchestra.CodeSet{
					Name:  "SideCodeSet",
					Codes: []orchestra.Code{{Name: "Buy", Value: "1"}, {Name: "buy", Value: "B"}},
				}))
			},
			ident: "Buy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := orchestra.New("COLLIDE", "")
			tt.build(t, m)

			gen := NewGenerator(testConfig())
			file, err := gen.Generate(m)
			require.ErrorIs(t, err, ErrInvalidDictionary)
			assert.Nil(t, file)

			require.NotEmpty(t, gen.Diagnostics().Errors)
			d := gen.Diagnostics().Errors[0]
			assert.Equal(t, diagnostic.CodeCollision, d.Code)
			assert.Contains(t, d.Message, tt.ident)
		})
	}
}

func TestGenerator_Generate_InvalidModel(t *testing.T) {
	t.Parallel()

	m := orchestra.New("BROKEN", "")
	require.NoError(t, m.AddField(&orchestra.Field{ID: 1, Name: "Account", Type: "String"}))
	require.NoError(t, m.AddMessage(&orchestra.Message{
		Name: "Dangling", MsgType: "X",
		Members: []orchestra.Ref{{Kind: orchestra.RefComponent, ID: 99, Presence: dictionary.PresenceRequired}},
	}))
	require.NoError(t, m.AddMessage(&orchestra.Message{
		Name: "NoPresence", MsgType: "Y",
		Members: []orchestra.Ref{{Kind: orchestra.RefField, ID: 1}},
	}))

	gen := NewGenerator(testConfig())
	_, err := gen.Generate(m)
	require.ErrorIs(t, err, ErrInvalidDictionary)

	errs := gen.Diagnostics().Errors
	require.Len(t, errs, 2, spew.Sdump(errs))
	assert.Equal(t, "message Dangling", errs[0].Subject)
	assert.Contains(t, errs[0].Message, orchestra.ErrDanglingRef.Error())
	assert.Equal(t, "message NoPresence", errs[1].Subject)
	assert.Equal(t, diagnostic.CodeMessageFields, errs[1].Code)
}

func TestGenerator_Generate_Config(t *testing.T) {
	t.Parallel()

	t.Run("invalid package name", func(t *testing.T) {
		t.Parallel()

		cfg := testConfig()
		cfg.PackageName = "4fix"

		gen := NewGenerator(cfg)
		_, err := gen.Generate(newTestModel(t))
		require.Error(t, err)
		assert.Equal(t, diagnostic.CodeInvalidConfig, gen.Diagnostics().Errors[0].Code)
	})

	t.Run("every config problem is reported", func(t *testing.T) {
		t.Parallel()

		cfg := testConfig()
		cfg.PackageName = "func"
		cfg.DictionaryImport = ""

		gen := NewGenerator(cfg)
		_, err := gen.Generate(newTestModel(t))
		require.Error(t, err)

		errs := gen.Diagnostics().Errors
		require.Len(t, errs, 2, spew.Sdump(errs))
		assert.Equal(t, "PackageName", errs[0].Path)
		assert.Equal(t, "DictionaryImport", errs[1].Path)
		assert.ErrorContains(t, err, "dictionary import path is empty")
	})

	t.Run("aliased dictionary import", func(t *testing.T) {
		t.Parallel()

		cfg := testConfig()
		cfg.DictionaryImport = "example.com/fix/runtime/v2"
		cfg.Source = "dict/FixRepository44.xml"
		cfg.OutputPath = filepath.Join("out", "fix44.go")

		file, err := NewGenerator(cfg).Generate(newTestModel(t))
		require.NoError(t, err)

		content := string(file.Content)
		assert.Equal(t, "fix44.go", file.Filename)
		assert.Contains(t, content, `dictionary "example.com/fix/runtime/v2"`)
		assert.Contains(t, content, "// Source: dict/FixRepository44.xml")
	})
}

func TestGenerator_Generate_SampleOutputParses(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"sample.yaml", "sample.xml"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			m, err := orchestra.LoadFile(filepath.Join("..", "orchestra", "testdata", name))
			require.NoError(t, err)

			file, err := NewGenerator(testConfig()).Generate(m)
			require.NoError(t, err)

			parsed := parseGenerated(t, file.Content)
			assert.Len(t, methodNames(parsed, "orchestration"), 3)
		})
	}
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "fix.go")

	require.NoError(t, WriteFile(&GeneratedFile{Filename: "fix.go", Content: []byte("package fix\n")}, path))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "package fix\n", string(got))

	require.Error(t, WriteFile(nil, path))
}

func TestWriteDebugUnformatted(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, writeDebugUnformatted(dir, "fix.go", []byte("package fix\nfunc {")))

	got, err := os.ReadFile(filepath.Join(dir, "fix.unformatted.go"))
	require.NoError(t, err)
	assert.Equal(t, "package fix\nfunc {", string(got))

	require.NoError(t, writeDebugUnformatted("", "fix.go", nil))
}

func TestGenerator_Generate_MatchesCommittedExample(t *testing.T) {
	t.Parallel()

	dir := filepath.Join("..", "..", "examples", "fixsample")

	m, err := orchestra.LoadFile(filepath.Join(dir, "sample.yaml"))
	require.NoError(t, err)

	cfg := DefaultGeneratorConfig()
	cfg.PackageName = "fixsample"
	cfg.ModuleName = "FIX_4_4"
	cfg.Source = "sample.yaml"

	file, err := NewGenerator(cfg).Generate(m)
	require.NoError(t, err)

	want, err := os.ReadFile(filepath.Join(dir, "fixsample.go"))
	require.NoError(t, err)

	require.Equal(t, string(want), string(file.Content), "run go generate ./examples/fixsample")
}
