// Command trackgen generates the matched interface/host/device translation
// units for one track-initialization kernel class:
//
//	trackgen --basename TrackInitAlgorithms --class InitTracks
//
// writes TrackInitAlgorithms.hh, .cc, and .cu next to the basename. An
// unknown class name or a failed write aborts the run before any partial
// triple can reach the build.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/notargets/trackgen/generate"
	"github.com/notargets/trackgen/kernel"
	"github.com/notargets/trackgen/launchbounds"
)

var (
	basename = flag.String("basename", "", "file name (without extension) of the generated files (required)")
	clsname  = flag.String("class", "", "CamelCase name of the kernel class prefix (required)")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("trackgen: ")
	flag.Parse()

	if *basename == "" || *clsname == "" {
		flag.Usage()
		os.Exit(2)
	}

	driver := &generate.Driver{
		Table:  kernel.DefaultTable(),
		Bounds: launchbounds.Default(),
	}
	if err := driver.Generate(*basename, *clsname); err != nil {
		log.Fatal(err)
	}
}
