package kernel

import "github.com/notargets/trackgen/param"

// Function is a named dispatch function signature. Renderings are derived
// from the current parameter list on every call, never cached.
type Function struct {
	Name   string
	Params param.List
}

// Decl renders the full declaration with one parameter per line.
func (f Function) Decl() string {
	return "void " + f.Name + "(" + f.Params.Decl() + ")"
}

// DeclTypesOnly renders the declaration with parameter types only. Used for
// the inline no-op fallback emitted when no device backend is configured.
func (f Function) DeclTypesOnly() string {
	return "void " + f.Name + "(" + f.Params.Types() + ")"
}
