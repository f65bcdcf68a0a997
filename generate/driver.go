// Package generate renders and writes the matched translation-unit triple for
// one kernel class: interface header, host dispatch, and device dispatch. One
// kernel definition drives all three, so their signatures can never drift
// apart.
package generate

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/notargets/trackgen/kernel"
	"github.com/notargets/trackgen/launchbounds"
	"github.com/notargets/trackgen/param"
)

// ErrUnknownExtension is returned for an extension outside the generated set.
var ErrUnknownExtension = errors.New("unknown output extension")

// Extensions lists the generated file extensions in write order.
var Extensions = []string{"hh", "cc", "cu"}

var templates = map[string]*template.Template{
	"hh": hhTemplate,
	"cc": ccTemplate,
	"cu": cuTemplate,
}

// languages gives the editor modeline tag per extension.
var languages = map[string]string{
	"hh": "C++",
	"cc": "C++",
	"cu": "CUDA",
}

// Driver turns one kernel definition into the three output files. Both fields
// are read-only during generation; a zero Driver is not usable.
type Driver struct {
	Table  kernel.Table
	Bounds launchbounds.Registry
}

// Generate renders and writes {basename}.hh, {basename}.cc, and
// {basename}.cu for one kernel class. All three files are rendered before any
// is written, so a configuration or rendering error leaves no partial file
// set on disk. The first write error aborts the run.
func (d *Driver) Generate(basename, clsname string) error {
	rendered := make(map[string]string, len(Extensions))
	for _, ext := range Extensions {
		text, err := d.Render(clsname, ext, basename+"."+ext)
		if err != nil {
			return err
		}
		rendered[basename+"."+ext] = text
	}
	for _, ext := range Extensions {
		filename := basename + "." + ext
		if err := os.WriteFile(filename, []byte(rendered[filename]), 0644); err != nil {
			return fmt.Errorf("write %s: %w", filename, err)
		}
	}
	return nil
}

// Render produces the text of one output file. filename appears only in the
// file banner and may include a relative path.
func (d *Driver) Render(clsname, ext, filename string) (string, error) {
	tmpl, ok := templates[ext]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownExtension, ext)
	}

	def, err := d.Table.Lookup(clsname)
	if err != nil {
		return "", err
	}

	base := def.Function.Params
	hostFunc := kernel.Function{
		Name:   def.Function.Name,
		Params: base.Resolve(param.Host, param.MakeConstReference),
	}
	deviceFunc := kernel.Function{
		Name:   def.Function.Name,
		Params: base.Resolve(param.Device, param.MakeConstReference),
	}
	// Kernel entry points take every argument by const value in device
	// memory space; the bound-check and launcher construction reuse them.
	kernelParams := base.Resolve(param.Device, param.MakeConst)

	includes := make([]string, len(def.Includes))
	for i, inc := range def.Includes {
		includes[i] = fmt.Sprintf("#include %q", inc)
	}

	ctx := fileContext{
		Top:           fileTop(languages[ext], filename),
		Clsname:       clsname,
		Funcname:      def.Function.Name,
		NumThreads:    def.NumThreads,
		ExtraIncludes: strings.Join(includes, "\n"),
		HostDecl:      hostFunc.Decl(),
		DeviceDecl:    deviceFunc.Decl(),
		DeviceTypes:   deviceFunc.DeclTypesOnly(),
		KernelDecl:    d.kernelDecl(def.Function.Name, kernelParams),
		KernelArgs:    kernelParams.Args(),
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, ctx); err != nil {
		return "", fmt.Errorf("render %s: %w", filename, err)
	}
	return sb.String(), nil
}

// kernelDecl renders the __global__ entry point declaration, suffixing the
// dispatch function name and splicing in the launch-bounds annotation.
func (d *Driver) kernelDecl(funcname string, params param.List) string {
	decl := "__global__ void"
	if lb := d.Bounds.Annotation(funcname); lb != "" {
		decl += " " + lb
	}
	return decl + " " + funcname + "_kernel(" + params.Decl() + ")"
}
