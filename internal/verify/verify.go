package verify

import (
	"errors"
	"fmt"
	"go/types"
	"slices"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedTypes |
	packages.NeedImports |
	packages.NeedDeps

// ErrMissingAccessor is returned when the package lacks one of the
// Fields, Messages or Orchestration functions.
var ErrMissingAccessor = errors.New("missing collection accessor")

var accessors = []string{"Fields", "Messages", "Orchestration"}

// Report summarises a type-checked dictionary package.
type Report struct {
	PkgPath string
	Name    string
	// Fields are the types implementing dictionary.VersionField, sorted.
	Fields []string
	// Messages are the types implementing dictionary.Message, sorted.
	Messages []string
}

// Package loads the package matched by pattern, relative to dir, and checks
// it against the dictionary runtime at dictionaryImport.
func Package(dir, pattern, dictionaryImport string) (*Report, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  dir,
	}

	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	if len(pkgs) != 1 {
		return nil, fmt.Errorf("pattern %s matched %d packages, want 1", pattern, len(pkgs))
	}

	pkg := pkgs[0]

	var errs []error
	for _, e := range pkg.Errors {
		errs = append(errs, e)
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package %s: %w", pkg.PkgPath, errors.Join(errs...))
	}

	dict, ok := pkg.Imports[dictionaryImport]
	if !ok {
		return nil, fmt.Errorf("package %s does not import %s", pkg.PkgPath, dictionaryImport)
	}

	fieldIface, err := lookupInterface(dict.Types, "VersionField")
	if err != nil {
		return nil, err
	}

	messageIface, err := lookupInterface(dict.Types, "Message")
	if err != nil {
		return nil, err
	}

	report := &Report{PkgPath: pkg.PkgPath, Name: pkg.Name}
	scope := pkg.Types.Scope()

	for _, name := range accessors {
		if _, ok := scope.Lookup(name).(*types.Func); !ok {
			return nil, fmt.Errorf("package %s: %s: %w", pkg.PkgPath, name, ErrMissingAccessor)
		}
	}

	// Scope names are sorted, so the report is too.
	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !typeName.Exported() {
			continue
		}

		switch t := typeName.Type(); {
		case types.Implements(t, fieldIface):
			report.Fields = append(report.Fields, name)
		case types.Implements(t, messageIface):
			report.Messages = append(report.Messages, name)
		}
	}

	return report, nil
}

// HasField reports whether typeName is one of the generated field types.
func (r *Report) HasField(typeName string) bool {
	_, found := slices.BinarySearch(r.Fields, typeName)
	return found
}

func lookupInterface(pkg *types.Package, name string) (*types.Interface, error) {
	obj, ok := pkg.Scope().Lookup(name).(*types.TypeName)
	if !ok {
		return nil, fmt.Errorf("%s.%s is not declared", pkg.Path(), name)
	}

	iface, ok := obj.Type().Underlying().(*types.Interface)
	if !ok {
		return nil, fmt.Errorf("%s.%s is not an interface", pkg.Path(), name)
	}

	return iface, nil
}
