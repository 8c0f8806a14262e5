// mpiexec.slurm stands in for an MPI launcher in test environments. It prints
// the launcher's usage banner and exits 0 no matter what it is given.
package main

import (
	"io"
	"os"
	"strings"

	_ "embed"
)

var buildstamp, githash string // For versioning, via go build -ldflags "-X main.buildstamp=`date -u '+%Y-%m-%d_%I:%M:%S%p'` -X main.githash=`git rev-parse HEAD`"

//go:embed VERSION
var version string

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run prints the banner to stdout and returns the exit status. Arguments are
// never interpreted; -help, -n and unknown flags all produce the same output.
func run(args []string, stdout io.Writer) int {
	log := GetLogger()
	log.Debug("invoked",
		"version", strings.TrimSpace(version),
		"buildstamp", buildstamp,
		"githash", githash,
		"ignored_args", args)

	if err := usage(stdout); err != nil {
		// A closed pipe on the harness side is not our failure to report.
		log.Warn("usage banner not fully written", "error", err)
	}
	return 0
}
