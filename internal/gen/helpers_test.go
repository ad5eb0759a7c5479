package gen

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"fixdict-generator/dictionary"
	"fixdict-generator/internal/orchestra"
)

func strPtr(s string) *string { return &s }

// newTestModel builds a small dictionary with a code set, a component and a
// repeating group referenced from one message.
func newTestModel(t *testing.T) *orchestra.Model {
	t.Helper()

	m := orchestra.New("TEST", "TEST.1")

	for _, f := range []*orchestra.Field{
		{ID: 54, Name: "Side", Type: "SideCodeSet", Synopsis: "Side of order", Pedigree: orchestra.Pedigree{
			Added: strPtr("FIX.2.7"),
		}},
		{ID: 1, Name: "Account", Type: "String", Synopsis: "He said \"hi\"\n→ok"},
		{ID: 2, Name: "AdvId", Type: "String"},
		{ID: 453, Name: "NoPartyIDs", Type: "NumInGroup"},
		{ID: 448, Name: "PartyID", Type: "String"},
	} {
		require.NoError(t, m.AddField(f))
	}

	require.NoError(t, m.AddCodeSet(&orchestra.CodeSet{
		Name: "SideCodeSet",
		Type: "char",
		Codes: []orchestra.Code{
			{Name: "Buy", Value: "1"},
			{Name: "Sell", Value: "2"},
		},
	}))
	require.NoError(t, m.AddGroup(&orchestra.Group{
		ID: 1, Name: "Parties", NumInGroup: 453,
		Members: []orchestra.Ref{{Kind: orchestra.RefField, ID: 448, Presence: dictionary.PresenceRequired}},
	}))
	require.NoError(t, m.AddComponent(&orchestra.Component{
		ID: 10, Name: "Header",
		Members: []orchestra.Ref{{Kind: orchestra.RefField, ID: 1, Presence: dictionary.PresenceRequired}},
	}))
	require.NoError(t, m.AddMessage(&orchestra.Message{
		ID: 14, Name: "NewOrderSingle", MsgType: "D", Category: "SingleGeneralOrderHandling",
		Synopsis: "Order entry",
		Members: []orchestra.Ref{
			{Kind: orchestra.RefComponent, ID: 10, Presence: dictionary.PresenceRequired},
			{Kind: orchestra.RefField, ID: 54, Presence: dictionary.PresenceRequired},
			{Kind: orchestra.RefGroup, ID: 1, Presence: dictionary.PresenceOptional},
			{Kind: orchestra.RefField, ID: 2, Presence: dictionary.PresenceOptional},
		},
	}))
	require.NoError(t, m.AddMessage(&orchestra.Message{
		ID: 1, Name: "Heartbeat", MsgType: "0", Category: "Session",
	}))

	return m
}

func testConfig() GeneratorConfig {
	cfg := DefaultGeneratorConfig()
	cfg.PackageName = "test1"
	cfg.ModuleName = "TEST"

	return cfg
}

func parseGenerated(t *testing.T, content []byte) *ast.File {
	t.Helper()

	file, err := parser.ParseFile(token.NewFileSet(), "generated.go", content, parser.ParseComments)
	require.NoError(t, err)

	return file
}

// valueSpec returns the initializer of the package-level variable name.
func valueSpec(t *testing.T, file *ast.File, name string) ast.Expr {
	t.Helper()

	for _, decl := range file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.VAR {
			continue
		}

		for _, spec := range gd.Specs {
			vs := spec.(*ast.ValueSpec)
			for i, ident := range vs.Names {
				if ident.Name == name && i < len(vs.Values) {
					return vs.Values[i]
				}
			}
		}
	}

	require.Failf(t, "variable not found", "no package-level variable %s", name)

	return nil
}

// firstComposite returns the elements of the first composite literal in expr.
func firstComposite(t *testing.T, expr ast.Expr) []ast.Expr {
	t.Helper()

	var lit *ast.CompositeLit

	ast.Inspect(expr, func(n ast.Node) bool {
		if lit != nil {
			return false
		}

		if cl, ok := n.(*ast.CompositeLit); ok {
			lit = cl
			return false
		}

		return true
	})
	require.NotNil(t, lit, "no composite literal")

	return lit.Elts
}

// lookupValues returns the elements of the generated fieldLookup array.
func lookupValues(t *testing.T, file *ast.File) []int {
	t.Helper()

	var out []int

	for _, elt := range firstComposite(t, valueSpec(t, file, "fieldLookup")) {
		lit, ok := elt.(*ast.BasicLit)
		require.True(t, ok)

		n, err := strconv.Atoi(lit.Value)
		require.NoError(t, err)

		out = append(out, n)
	}

	return out
}

// usages renders the records of a generated fields_<Message> list as
// "Field/Presence/Depth".
func usages(t *testing.T, file *ast.File, varName string) []string {
	t.Helper()

	var out []string

	for _, elt := range firstComposite(t, valueSpec(t, file, varName)) {
		rec, ok := elt.(*ast.CompositeLit)
		require.True(t, ok)

		var field, presence, depth string

		for _, kv := range rec.Elts {
			kv := kv.(*ast.KeyValueExpr)
			switch kv.Key.(*ast.Ident).Name {
			case "Field":
				field = kv.Value.(*ast.CompositeLit).Type.(*ast.Ident).Name
			case "Presence":
				presence = kv.Value.(*ast.SelectorExpr).Sel.Name
			case "Depth":
				depth = kv.Value.(*ast.BasicLit).Value
			}
		}

		out = append(out, field+"/"+presence+"/"+depth)
	}

	return out
}

// typeNames returns the declared type names in file order.
func typeNames(file *ast.File) []string {
	var out []string

	for _, decl := range file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}

		for _, spec := range gd.Specs {
			out = append(out, spec.(*ast.TypeSpec).Name.Name)
		}
	}

	return out
}

// methodNames returns the methods declared on recv in file order.
func methodNames(file *ast.File, recv string) []string {
	var out []string

	for _, decl := range file.Decls {
		fd, ok := decl.(*ast.FuncDecl)
		if !ok || fd.Recv == nil {
			continue
		}

		typ := fd.Recv.List[0].Type
		if star, ok := typ.(*ast.StarExpr); ok {
			typ = star.X
		}

		if ident, ok := typ.(*ast.Ident); ok && ident.Name == recv {
			out = append(out, fd.Name.Name)
		}
	}

	return out
}
