package parser

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"go/types"

	"golang.org/x/tools/go/packages"
)

// RuntimePkgPath is the import path of the ptrprint runtime package. A field
// is pointer-valued exactly when its type is Pointer from this package; the
// check is on type identity, never on the spelling of a type name.
const RuntimePkgPath = "github.com/seitarof/ptrprint"

// paddingMarker excludes structural filler fields from generated output.
const paddingMarker = "_pad"

// Parser extracts struct metadata from Go packages.
type Parser interface {
	Parse(pkgPath string, typeName string) (*StructInfo, error)
	ParseRecursive(pkgPath string, typeName string) ([]*StructInfo, error)
}

type parserImpl struct{}

// New returns default parser.
func New() Parser {
	return &parserImpl{}
}

func (p *parserImpl) Parse(pkgPath string, typeName string) (*StructInfo, error) {
	cache := map[string]*packages.Package{}
	return p.parseWithCache(pkgPath, typeName, cache)
}

func (p *parserImpl) parseWithCache(
	pkgPath string,
	typeName string,
	cache map[string]*packages.Package,
) (*StructInfo, error) {
	pkg, err := p.loadPackage(pkgPath, cache)
	if err != nil {
		return nil, err
	}

	if pkg.Types == nil || pkg.Types.Scope() == nil {
		return nil, fmt.Errorf("type info unavailable for package %q", pkgPath)
	}

	obj := pkg.Types.Scope().Lookup(typeName)
	if obj == nil {
		return nil, fmt.Errorf("struct %q not found in package %q", typeName, pkgPath)
	}

	st, ok := extractStructType(obj.Type())
	if !ok {
		return nil, fmt.Errorf("%q in package %q is not a struct type: field-visiting methods can only be generated for structs", typeName, pkgPath)
	}

	dir := ""
	if len(pkg.GoFiles) > 0 {
		dir = filepath.Dir(pkg.GoFiles[0])
	}

	return &StructInfo{
		Name:    typeName,
		PkgPath: pkg.Types.Path(),
		PkgName: pkg.Name,
		Dir:     dir,
		Fields:  collectFields(st),
	}, nil
}

func (p *parserImpl) loadPackage(pkgPath string, cache map[string]*packages.Package) (*packages.Package, error) {
	if cached, ok := cache[pkgPath]; ok {
		return cached, nil
	}

	cfg := &packages.Config{
		Mode: packages.NeedName |
			packages.NeedTypes |
			packages.NeedFiles |
			packages.NeedModule,
	}

	pkgs, err := packages.Load(cfg, pkgPath)
	if err != nil {
		return nil, fmt.Errorf("load package %q: %w", pkgPath, err)
	}
	if packages.PrintErrors(pkgs) > 0 {
		return nil, fmt.Errorf("package %q has compilation errors", pkgPath)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("package %q not found", pkgPath)
	}
	cache[pkgPath] = pkgs[0]
	return pkgs[0], nil
}

// ParseRecursive parses typeName and every struct reachable from it through
// Pointer fields, pointees first. The result order is stable so generated
// files do not churn between runs.
func (p *parserImpl) ParseRecursive(pkgPath string, typeName string) ([]*StructInfo, error) {
	visited := map[string]bool{}
	cache := map[string]*packages.Package{}

	result := []*StructInfo{}
	if err := p.parseRec(pkgPath, typeName, visited, cache, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (p *parserImpl) parseRec(
	pkgPath string,
	typeName string,
	visited map[string]bool,
	cache map[string]*packages.Package,
	result *[]*StructInfo,
) error {
	info, err := p.parseWithCache(pkgPath, typeName, cache)
	if err != nil {
		return err
	}

	key := info.PkgPath + "." + info.Name
	if visited[key] {
		return nil
	}
	visited[key] = true

	for _, f := range info.Fields {
		if f.Pointee == nil {
			continue
		}
		if visited[f.Pointee.PkgPath+"."+f.Pointee.Name] {
			continue
		}
		if err := p.parseRec(f.Pointee.PkgPath, f.Pointee.Name, visited, cache, result); err != nil {
			log.Printf("gen-ptrprint: warning: pointee struct %q not parsed, skipped: %v", f.Pointee.Name, err)
			continue
		}
	}

	*result = append(*result, info)
	return nil
}

// aliasType matches *types.Alias structurally: Alias is the only go/types
// type with an Rhs method, and naming it directly would require go1.22.
type aliasType interface{ Rhs() types.Type }

func extractStructType(t types.Type) (*types.Struct, bool) {
	switch v := t.(type) {
	case aliasType:
		return extractStructType(v.Rhs())
	case *types.Named:
		return extractStructType(v.Underlying())
	case *types.Struct:
		return v, true
	default:
		return nil, false
	}
}

// collectFields keeps declaration order; the printed tree must match the
// struct layout line for line.
func collectFields(st *types.Struct) []FieldInfo {
	fields := make([]FieldInfo, 0, st.NumFields())
	for i := 0; i < st.NumFields(); i++ {
		f := st.Field(i)
		info := FieldInfo{
			Name:      f.Name(),
			TypeLabel: typeLabel(f.Type()),
			IsPadding: strings.Contains(strings.ToLower(f.Name()), paddingMarker),
		}
		if ref, ok := pointeeRef(f.Type()); ok {
			info.IsPointer = true
			info.Pointee = ref
		}
		fields = append(fields, info)
	}
	return fields
}

// pointeeRef reports whether t is ptrprint.Pointer[T] and, if so, which
// struct type T names.
func pointeeRef(t types.Type) (*PointeeRef, bool) {
	named, ok := t.(*types.Named)
	if !ok {
		return nil, false
	}
	obj := named.Obj()
	if obj.Name() != "Pointer" || obj.Pkg() == nil || obj.Pkg().Path() != RuntimePkgPath {
		return nil, false
	}
	args := named.TypeArgs()
	if args == nil || args.Len() != 1 {
		return nil, false
	}
	arg, ok := args.At(0).(*types.Named)
	if !ok || arg.Obj().Pkg() == nil {
		return nil, false
	}
	return &PointeeRef{
		PkgPath: arg.Obj().Pkg().Path(),
		Name:    arg.Obj().Name(),
	}, true
}

// typeLabel renders the short display label used on plain field lines.
func typeLabel(t types.Type) string {
	switch v := t.(type) {
	case aliasType:
		return typeLabel(v.Rhs())
	case *types.Basic:
		return v.Name()
	case *types.Named:
		name := v.Obj().Name()
		if args := v.TypeArgs(); args != nil && args.Len() > 0 {
			parts := make([]string, 0, args.Len())
			for i := 0; i < args.Len(); i++ {
				parts = append(parts, typeLabel(args.At(i)))
			}
			return name + "[" + strings.Join(parts, ", ") + "]"
		}
		return name
	case *types.Pointer:
		return "*" + typeLabel(v.Elem())
	case *types.Slice:
		return "[]" + typeLabel(v.Elem())
	case *types.Array:
		return fmt.Sprintf("[%d]%s", v.Len(), typeLabel(v.Elem()))
	case *types.Map:
		return "map[" + typeLabel(v.Key()) + "]" + typeLabel(v.Elem())
	default:
		return strings.TrimSpace(types.TypeString(t, func(*types.Package) string { return "" }))
	}
}
