// Package param models kernel dispatch parameters as opaque (type, name)
// pairs and provides the qualification transforms applied when a signature is
// specialized for a memory space. Type strings are C++ source text and are
// never parsed or validated here.
package param

import "strings"

// Param is one parameter of a dispatch function signature.
type Param struct {
	Type string
	Name string
}

// List is an ordered parameter list. Order is significant: it must match the
// call-site and declaration order in every generated translation unit.
type List []Param

// Decl renders the full declaration list, one parameter per line, indented
// for splicing between parentheses.
func (l List) Decl() string {
	parts := make([]string, len(l))
	for i, p := range l {
		parts[i] = "\n    " + p.Type + " " + p.Name
	}
	return strings.Join(parts, ",")
}

// Types renders the types-only declaration list.
func (l List) Types() string {
	parts := make([]string, len(l))
	for i, p := range l {
		parts[i] = p.Type
	}
	return strings.Join(parts, ", ")
}

// Args renders the call argument list.
func (l List) Args() string {
	parts := make([]string, len(l))
	for i, p := range l {
		parts[i] = p.Name
	}
	return strings.Join(parts, ", ")
}

// Space is the memory-space token substituted into parameter types. A type
// containing the {Memspace} placeholder yields one variant per space.
type Space struct {
	Title string // substituted for {Memspace}
	Lower string // substituted for {memspace}
}

var (
	Host   = Space{Title: "Host", Lower: "host"}
	Device = Space{Title: "Device", Lower: "device"}
)

// Resolve substitutes the memory-space placeholders in every parameter type
// and applies qualify to the result. The receiver is never modified; a new
// list is returned.
func (l List) Resolve(s Space, qualify func(string) string) List {
	out := make(List, len(l))
	for i, p := range l {
		t := strings.ReplaceAll(p.Type, "{Memspace}", s.Title)
		t = strings.ReplaceAll(t, "{memspace}", s.Lower)
		out[i] = Param{Type: qualify(t), Name: p.Name}
	}
	return out
}

// MakeConst prefixes "const " unless the type already carries it. Idempotent.
func MakeConst(typeName string) string {
	if strings.HasPrefix(typeName, "const ") {
		return typeName
	}
	return "const " + typeName
}

// MakeConstReference qualifies a type for passing into a dispatch function.
// Span views and size_type are already cheap value handles and stay by-value;
// everything else is taken by const reference.
func MakeConstReference(typeName string) string {
	if strings.HasPrefix(typeName, "Span<") || typeName == "size_type" {
		return "const " + typeName
	}
	return "const " + typeName + "&"
}
