// Package launchbounds maps kernel entry points to the occupancy annotation
// spliced into their __global__ declarations. Bounds come from a built-in
// table of measured values and may be overridden from a YAML file produced by
// an occupancy sweep.
package launchbounds

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Bounds constrains the launch configuration of one kernel.
type Bounds struct {
	MaxThreadsPerBlock int `yaml:"max_threads_per_block"`
	MinBlocksPerMP     int `yaml:"min_blocks_per_mp"`
}

// Registry maps the unsuffixed kernel function name (e.g. "init_tracks") to
// its bounds.
type Registry map[string]Bounds

// Default returns the measured bounds for the track-initialization kernels.
func Default() Registry {
	return Registry{
		"init_tracks":         {MaxThreadsPerBlock: 256},
		"locate_alive":        {MaxThreadsPerBlock: 256},
		"process_primaries":   {MaxThreadsPerBlock: 256},
		"process_secondaries": {MaxThreadsPerBlock: 256},
	}
}

// Load merges a YAML override file into the registry. Entries replace any
// existing bounds for the same kernel name.
func (r Registry) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read launch bounds: %w", err)
	}
	overrides := make(map[string]Bounds)
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return fmt.Errorf("parse launch bounds %s: %w", path, err)
	}
	for name, b := range overrides {
		r[name] = b
	}
	return nil
}

// Annotation renders the __launch_bounds__ token for a kernel. A kernel with
// no registered bounds gets no annotation and the compiler's defaults apply.
func (r Registry) Annotation(name string) string {
	b, ok := r[name]
	if !ok || b.MaxThreadsPerBlock <= 0 {
		return ""
	}
	if b.MinBlocksPerMP > 0 {
		return fmt.Sprintf("__launch_bounds__(%d, %d)",
			b.MaxThreadsPerBlock, b.MinBlocksPerMP)
	}
	return fmt.Sprintf("__launch_bounds__(%d)", b.MaxThreadsPerBlock)
}
