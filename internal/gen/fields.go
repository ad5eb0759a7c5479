package gen

import (
	"fmt"
	"strconv"
	"strings"

	"fixdict-generator/internal/diagnostic"
	"fixdict-generator/internal/orchestra"
	"fixdict-generator/internal/sanitize"
)

// fieldData is the template view of one field.
type fieldData struct {
	TypeName    string
	Tag         int
	Name        string
	DataType    string
	Description string
	Pedigree    pedigreeData
	ValuesVar   string
	Values      []valueData
}

// valueData is the template view of one code of a field.
type valueData struct {
	Field   string
	Method  string
	VarName string
	Tag     int
	Name    string
	Value   string
}

// buildField prepares one field for emission. It returns false when the
// field cannot be emitted; the reason is recorded as an error diagnostic.
func (g *Generator) buildField(m *orchestra.Model, f *orchestra.Field) (fieldData, bool) {
	subject := "field " + f.Name

	typeName := exportedIdent(f.Name)
	if typeName == "" {
		g.diags.AddError(diagnostic.CodeInvalidName,
			fmt.Sprintf("name %q has no usable identifier characters", f.Name), subject, "")

		return fieldData{}, false
	}

	data := fieldData{
		TypeName:    typeName,
		Tag:         f.ID,
		Name:        strconv.Quote(f.Name),
		DataType:    strconv.Quote(f.Type),
		Description: literal(f.Synopsis),
		Pedigree:    pedigreeOf(f.Pedigree),
		ValuesVar:   "values_" + typeName,
	}

	g.declare(typeName, subject)
	g.declare(data.ValuesVar, subject)

	cs, ok := m.CodeSet(f.Type)
	if !ok {
		g.diags.AddInfo(diagnostic.CodeUnresolvedType,
			fmt.Sprintf("type %q is not a code set, Values() is empty", f.Type), subject, "")

		return data, true
	}

	methods := make(map[string]string, len(cs.Codes))

	for _, code := range cs.Codes {
		method, reserved := codeMethod(code.Name)

		switch {
		case method == "":
			g.diags.AddError(diagnostic.CodeInvalidName,
				fmt.Sprintf("code name %q has no usable identifier characters", code.Name), subject, code.Name)

			continue
		case reserved:
			g.diags.AddWarning(diagnostic.CodeRenamedCode,
				fmt.Sprintf("accessor renamed to %s to avoid the %s method", method, strings.TrimSuffix(method, "Value")),
				subject, code.Name)
		case method != upperFirst(code.Name):
			g.diags.AddWarning(diagnostic.CodeRenamedCode,
				"accessor renamed to "+method, subject, code.Name)
		}

		if prev, dup := methods[method]; dup {
			g.diags.AddError(diagnostic.CodeCollision,
				fmt.Sprintf("accessor %s is already used by code %q", method, prev), subject, code.Name)

			continue
		}

		methods[method] = code.Name

		v := valueData{
			Field:   typeName,
			Method:  method,
			VarName: "value_" + typeName + "_" + method,
			Tag:     f.ID,
			Name:    strconv.Quote(code.Name),
			Value:   strconv.Quote(code.Value),
		}
		g.declare(v.VarName, subject)

		data.Values = append(data.Values, v)
	}

	return data, true
}

// pedigreeOf renders each pedigree entry as a dictionary.Version expression.
func pedigreeOf(p orchestra.Pedigree) pedigreeData {
	return pedigreeData{
		Added:        versionExpr(p.Added),
		AddedEP:      versionExpr(p.AddedEP),
		Updated:      versionExpr(p.Updated),
		UpdatedEP:    versionExpr(p.UpdatedEP),
		Deprecated:   versionExpr(p.Deprecated),
		DeprecatedEP: versionExpr(p.DeprecatedEP),
	}
}

func versionExpr(v *string) string {
	if v == nil {
		return "dictionary.NoVersion"
	}

	return "dictionary.V(" + strconv.Quote(*v) + ")"
}

// literal returns free text as a sanitised Go string literal.
func literal(s string) string {
	return strconv.Quote(sanitize.Literal(s))
}
