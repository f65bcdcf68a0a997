package generate

import (
	"strings"
	"text/template"
)

// fileContext is the fully-populated data every template renders from. The
// driver fills in every field before rendering; templates hold no logic
// beyond substitution.
type fileContext struct {
	Top           string // file banner comment
	Clsname       string // CamelCase class name, e.g. "ProcessPrimaries"
	Funcname      string // dispatch function name, e.g. "process_primaries"
	NumThreads    string // thread-count expression, evaluated in generated code
	ExtraIncludes string // pre-joined "#include" lines from the definition
	HostDecl      string
	DeviceDecl    string
	DeviceTypes   string // types-only device declaration for the fallback
	KernelDecl    string // annotated __global__ entry point declaration
	KernelArgs    string // call argument list shared by all three files
}

// modeline centers the editor language tag in a 75-column dashed rule,
// matching the banner width of the hand-written framework sources.
func modeline(lang string) string {
	s := "-*-" + lang + "-*-"
	pad := 75 - len(s)
	left := pad / 2
	return strings.Repeat("-", left) + s + strings.Repeat("-", pad-left)
}

// fileTop renders the banner comment for one generated file.
func fileTop(lang, filename string) string {
	return "//" + modeline(lang) + "//\n" +
		"//! \\file " + filename + "\n" +
		"//! \\note Auto-generated by trackgen: DO NOT MODIFY!\n" +
		"//" + strings.Repeat("-", 75) + "//\n"
}

var hhTemplate = template.Must(template.New("hh").Parse(`{{.Top}}#include "corecel/Assert.hh"
#include "corecel/Macros.hh"
#include "celeritas/track/detail/{{.Clsname}}Launcher.hh"
{{.ExtraIncludes}}
#include "celeritas/track/TrackInitData.hh"

namespace celeritas
{
namespace generated
{

{{.HostDecl}};

{{.DeviceDecl}};

#if !CELER_USE_DEVICE
inline {{.DeviceTypes}}
{
    CELER_NOT_CONFIGURED("CUDA or HIP");
}
#endif

} // namespace generated
} // namespace celeritas
`))

var ccTemplate = template.Must(template.New("cc").Parse(`{{.Top}}#include "celeritas/track/detail/{{.Clsname}}Launcher.hh"

#include "corecel/Types.hh"

namespace celeritas
{
namespace generated
{
{{.HostDecl}}
{
    detail::{{.Clsname}}Launcher<MemSpace::host> launch({{.KernelArgs}});
    #pragma omp parallel for
    for (ThreadId::size_type i = 0; i < {{.NumThreads}}; ++i)
    {
        launch(ThreadId{i});
    }
}

} // namespace generated
} // namespace celeritas
`))

var cuTemplate = template.Must(template.New("cu").Parse(`{{.Top}}#include "celeritas/track/detail/{{.Clsname}}Launcher.hh"

#include "corecel/device_runtime_api.h"
#include "corecel/sys/KernelParamCalculator.device.hh"
#include "corecel/sys/Device.hh"

namespace celeritas
{
namespace generated
{
namespace
{
{{.KernelDecl}}
{
    auto tid = KernelParamCalculator::thread_id();
    if (!(tid < {{.NumThreads}}))
        return;

    detail::{{.Clsname}}Launcher<MemSpace::device> launch({{.KernelArgs}});
    launch(tid);
}
} // namespace

{{.DeviceDecl}}
{
    CELER_LAUNCH_KERNEL(
        {{.Funcname}},
        celeritas::device().default_block_size(),
        {{.NumThreads}},
        {{.KernelArgs}});
}

} // namespace generated
} // namespace celeritas
`))
