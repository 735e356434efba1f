package analyze

import (
	"fmt"
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/packages"

	"keys-generator/internal/common"
	"keys-generator/internal/schema"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo

// Analyzer loads Go packages and extracts keyed-enum declarations.
type Analyzer struct{}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// ScanEnums loads the package matching the given pattern and extracts the
// named enum types into a definition file. The pattern is a standard Go
// package pattern (e.g., "./colors", "keys-generator/examples/severity").
//
// Every extracted enum is marked External: the type and its const block
// already exist, so generation emits methods only.
func (a *Analyzer) ScanEnums(pattern string, typeNames ...string) (*schema.DefFile, error) {
	if len(typeNames) == 0 {
		return nil, fmt.Errorf("no type names given for pattern %s", pattern)
	}

	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to load package %s: %w", pattern, err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	if len(pkgs) != 1 {
		return nil, fmt.Errorf("pattern %s matched %d packages, want exactly 1", pattern, len(pkgs))
	}

	pkg := pkgs[0]

	df := &schema.DefFile{
		Version: "1",
		Package: pkg.Name,
	}

	for _, name := range typeNames {
		enum, err := a.extractEnum(pkg, name)
		if err != nil {
			return nil, fmt.Errorf("failed to extract enum %s: %w", name, err)
		}

		df.Enums = append(df.Enums, *enum)
	}

	return df, nil
}

// extractEnum extracts one enum declaration from a loaded package.
func (a *Analyzer) extractEnum(pkg *packages.Package, name string) (*schema.EnumDef, error) {
	obj := pkg.Types.Scope().Lookup(name)
	if obj == nil {
		return nil, fmt.Errorf("type %s not found in package %s", name, pkg.PkgPath)
	}

	typeName, ok := obj.(*types.TypeName)
	if !ok {
		return nil, fmt.Errorf("%s is not a type name", name)
	}

	basic, ok := typeName.Type().Underlying().(*types.Basic)
	if !ok {
		return nil, fmt.Errorf("type %s is not backed by a basic type", name)
	}

	isString := basic.Info()&types.IsString != 0
	if !isString && basic.Info()&types.IsInteger == 0 {
		return nil, fmt.Errorf("type %s must be backed by an integer or string type, got %s", name, basic)
	}

	enum := &schema.EnumDef{
		Name:         name,
		External:     true,
		StringBacked: isString,
	}

	// Walk const blocks in declaration order; syntax file order matches
	// the package's compile order, so the extracted list is deterministic.
	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.CONST {
				continue
			}

			values, err := a.extractConstBlock(pkg, gen, typeName, isString)
			if err != nil {
				return nil, err
			}

			enum.Values = append(enum.Values, values...)
		}
	}

	if len(enum.Values) == 0 {
		return nil, fmt.Errorf("type %s declares no constants", name)
	}

	enum.Output = enum.DefaultOutput()

	return enum, nil
}

// extractConstBlock extracts the values of one const block that belong to
// the target type. Blank identifiers (the skip-zero idiom) are ignored.
func (a *Analyzer) extractConstBlock(
	pkg *packages.Package,
	gen *ast.GenDecl,
	typeName *types.TypeName,
	isString bool,
) ([]schema.ValueDef, error) {
	var res []schema.ValueDef

	for _, spec := range gen.Specs {
		vspec, ok := spec.(*ast.ValueSpec)
		if !ok {
			continue
		}

		for _, ident := range vspec.Names {
			if ident.Name == "_" {
				continue
			}

			def, ok := pkg.TypesInfo.Defs[ident].(*types.Const)
			if !ok || !types.Identical(def.Type(), typeName.Type()) {
				continue
			}

			key, err := a.canonicalKey(vspec, def, isString)
			if err != nil {
				return nil, err
			}

			res = append(res, schema.ValueDef{
				Name: ident.Name,
				Key:  key,
			})
		}
	}

	return res, nil
}

// canonicalKey resolves the canonical string of one constant: the string
// value for string-backed enums, the line comment for int-backed ones.
func (a *Analyzer) canonicalKey(vspec *ast.ValueSpec, def *types.Const, isString bool) (string, error) {
	if isString {
		return constant.StringVal(def.Val()), nil
	}

	if vspec.Comment == nil {
		return "", fmt.Errorf("constant %s has no line comment to use as canonical key", def.Name())
	}

	comment, ok := common.First(vspec.Comment.List)
	if !ok {
		return "", fmt.Errorf("constant %s has no line comment to use as canonical key", def.Name())
	}

	text := strings.TrimPrefix(comment.Text, "//")

	return strings.TrimSpace(text), nil
}
