package generate

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/trackgen/kernel"
	"github.com/notargets/trackgen/launchbounds"
)

func newTestDriver() *Driver {
	return &Driver{
		Table:  kernel.DefaultTable(),
		Bounds: launchbounds.Default(),
	}
}

func readGenerated(t *testing.T, basename, ext string) string {
	t.Helper()
	data, err := os.ReadFile(basename + "." + ext)
	require.NoError(t, err)
	return string(data)
}

func TestGenerateProcessPrimaries(t *testing.T) {
	basename := filepath.Join(t.TempDir(), "foo")
	require.NoError(t, newTestDriver().Generate(basename, "ProcessPrimaries"))

	hh := readGenerated(t, basename, "hh")
	cc := readGenerated(t, basename, "cc")
	cu := readGenerated(t, basename, "cu")

	// The span parameter stays by-value while the state ref is taken by
	// const reference.
	assert.Contains(t, hh, "const Span<const Primary> primaries")
	assert.Contains(t, hh, "const TrackInitStateHostRef& init_data")
	assert.Contains(t, hh, "const TrackInitStateDeviceRef& init_data")
	assert.Contains(t, hh, `#include "corecel/cont/Span.hh"`)
	assert.Contains(t, hh, `#include "celeritas/phys/Primary.hh"`)

	assert.Contains(t, cc, "detail::ProcessPrimariesLauncher<MemSpace::host> launch(primaries, init_data);")
	assert.Contains(t, cc, "for (ThreadId::size_type i = 0; i < primaries.size(); ++i)")

	assert.Contains(t, cu, "process_primaries_kernel(")
	assert.Contains(t, cu, "if (!(tid < primaries.size()))")
	assert.Contains(t, cu, "detail::ProcessPrimariesLauncher<MemSpace::device> launch(primaries, init_data);")
	// Kernel entry points receive device-space arguments by const value.
	assert.Contains(t, cu, "const TrackInitStateDeviceRef init_data")
}

func TestGenerateLocateAliveThreadCountVerbatim(t *testing.T) {
	basename := filepath.Join(t.TempDir(), "LocateAlive")
	require.NoError(t, newTestDriver().Generate(basename, "LocateAlive"))

	cc := readGenerated(t, basename, "cc")
	cu := readGenerated(t, basename, "cu")

	assert.Contains(t, cc, "i < core_data.states.size(); ++i")
	assert.Contains(t, cu, "if (!(tid < core_data.states.size()))")
	assert.Contains(t, cu, "core_data.states.size(),")
}

func TestGenerateWritesFullTriple(t *testing.T) {
	dir := t.TempDir()
	basename := filepath.Join(dir, "InitTracks")
	require.NoError(t, newTestDriver().Generate(basename, "InitTracks"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	for _, ext := range Extensions {
		_, err := os.Stat(basename + "." + ext)
		assert.NoError(t, err, "missing %s output", ext)
	}
}

func TestGenerateUnknownClassWritesNothing(t *testing.T) {
	dir := t.TempDir()

	err := newTestDriver().Generate(filepath.Join(dir, "foo"), "ExtendFromPrimaries")
	require.Error(t, err)
	assert.True(t, errors.Is(err, kernel.ErrUnknownClass))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "partial file set written on lookup failure")
}

func TestRenderUnknownExtension(t *testing.T) {
	_, err := newTestDriver().Render("InitTracks", "cpp", "foo.cpp")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownExtension))
}

func TestKernelDeclLaunchBounds(t *testing.T) {
	d := newTestDriver()
	cu, err := d.Render("ProcessPrimaries", "cu", "foo.cu")
	require.NoError(t, err)
	assert.Contains(t, cu, "__global__ void __launch_bounds__(256) process_primaries_kernel(")

	// Without registered bounds the annotation is omitted entirely.
	d.Bounds = launchbounds.Registry{}
	cu, err = d.Render("ProcessPrimaries", "cu", "foo.cu")
	require.NoError(t, err)
	assert.Contains(t, cu, "__global__ void process_primaries_kernel(")
	assert.NotContains(t, cu, "__launch_bounds__")
}

// Golden comparison of everything below the file banner for one host file.
func TestGoldenProcessSecondariesHostSource(t *testing.T) {
	cc, err := newTestDriver().Render("ProcessSecondaries", "cc", "ProcessSecondaries.cc")
	require.NoError(t, err)

	golden := `#include "celeritas/track/detail/ProcessSecondariesLauncher.hh"

#include "corecel/Types.hh"

namespace celeritas
{
namespace generated
{
void process_secondaries(
    const CoreHostRef& core_data,
    const TrackInitStateHostRef& init_data)
{
    detail::ProcessSecondariesLauncher<MemSpace::host> launch(core_data, init_data);
    #pragma omp parallel for
    for (ThreadId::size_type i = 0; i < core_data.states.size(); ++i)
    {
        launch(ThreadId{i});
    }
}

} // namespace generated
} // namespace celeritas
`
	require.True(t, strings.HasSuffix(cc, golden),
		"host source body mismatch:\n%s", cc)
	assert.Contains(t, cc, `//! \file ProcessSecondaries.cc`)
}
