// Package kernel defines the dispatch function model and the table of kernel
// definitions the generator is driven from. The table is the single source of
// truth: every generated translation unit derives its signatures, thread
// counts, and includes from one entry.
package kernel

import (
	"errors"
	"fmt"

	"github.com/notargets/trackgen/param"
)

// Definition ties a dispatch function to the expression giving its thread
// count and the headers its parameter types depend on. Parameter types may
// contain the {Memspace} placeholder resolved per backend at generation time.
type Definition struct {
	Function Function

	// NumThreads is an expression evaluated in the generated code, one
	// thread per logical unit of work.
	NumThreads string

	Includes []string
}

// ErrUnknownClass is returned when a kernel class name is not in the table.
var ErrUnknownClass = errors.New("unknown kernel class")

// Table maps a CamelCase kernel class name to its definition. It is built
// once and treated as read-only by the generation driver.
type Table map[string]Definition

// Lookup resolves a kernel class name. An unrecognized name is a hard
// configuration error.
func (t Table) Lookup(clsname string) (Definition, error) {
	def, ok := t[clsname]
	if !ok {
		return Definition{}, fmt.Errorf("%w %q", ErrUnknownClass, clsname)
	}
	return def, nil
}

// DefaultTable returns the definitions for the track-initialization kernels.
func DefaultTable() Table {
	return Table{
		"InitTracks": {
			Function: Function{
				Name: "init_tracks",
				Params: param.List{
					{Type: "Core{Memspace}Ref", Name: "core_data"},
					{Type: "TrackInitState{Memspace}Ref", Name: "init_data"},
					{Type: "size_type", Name: "num_vacancies"},
				},
			},
			NumThreads: "num_vacancies",
			Includes:   []string{"celeritas/global/CoreTrackData.hh"},
		},
		"LocateAlive": {
			Function: Function{
				Name: "locate_alive",
				Params: param.List{
					{Type: "Core{Memspace}Ref", Name: "core_data"},
					{Type: "TrackInitState{Memspace}Ref", Name: "init_data"},
				},
			},
			NumThreads: "core_data.states.size()",
			Includes:   []string{"celeritas/global/CoreTrackData.hh"},
		},
		"ProcessPrimaries": {
			Function: Function{
				Name: "process_primaries",
				Params: param.List{
					{Type: "Span<const Primary>", Name: "primaries"},
					{Type: "TrackInitState{Memspace}Ref", Name: "init_data"},
				},
			},
			NumThreads: "primaries.size()",
			Includes: []string{
				"corecel/cont/Span.hh",
				"celeritas/phys/Primary.hh",
			},
		},
		"ProcessSecondaries": {
			Function: Function{
				Name: "process_secondaries",
				Params: param.List{
					{Type: "Core{Memspace}Ref", Name: "core_data"},
					{Type: "TrackInitState{Memspace}Ref", Name: "init_data"},
				},
			},
			NumThreads: "core_data.states.size()",
			Includes:   []string{"celeritas/global/CoreTrackData.hh"},
		},
	}
}
