// Completion: 100% - CLI interface complete, all flags working
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/xyproto/env/v2"
)

// A tiny generator for the VM test fixture files (x86, ARM, x64, simple)

const versionString = "vmgen 1.0.2"

// Architecture type
type Arch int

const (
	ArchUnknown Arch = iota
	ArchX86
	ArchARM
	ArchX86_64
)

func (a Arch) String() string {
	switch a {
	case ArchX86:
		return "x86"
	case ArchARM:
		return "arm"
	case ArchX86_64:
		return "x86_64"
	default:
		return "unknown"
	}
}

// ParseArch parses an architecture string
func ParseArch(s string) (Arch, error) {
	switch strings.ToLower(s) {
	case "x86", "i386", "ia32", "x86-32":
		return ArchX86, nil
	case "arm", "arm32", "armv7", "aarch32":
		return ArchARM, nil
	case "x64", "x86_64", "x86-64", "amd64":
		return ArchX86_64, nil
	default:
		return 0, fmt.Errorf("unsupported architecture: %s (supported: x86, arm, x64)", s)
	}
}

// Global flags for controlling output verbosity
var VerboseMode bool
var QuietMode bool

func main() {
	// VMGEN_DIR provides the default destination; bare invocation still
	// writes into the current working directory
	defaultDir := env.Str("VMGEN_DIR", ".")

	var outputDirFlag = flag.String("o", defaultDir, "destination directory for the payload files")
	var outputDirLongFlag = flag.String("output", defaultDir, "destination directory for the payload files")
	var versionShort = flag.Bool("V", false, "print version information and exit")
	var version = flag.Bool("version", false, "print version information and exit")
	var verbose = flag.Bool("v", env.Bool("VMGEN_VERBOSE"), "verbose mode (trace every emitted byte)")
	var verboseLong = flag.Bool("verbose", env.Bool("VMGEN_VERBOSE"), "verbose mode (trace every emitted byte)")
	var quiet = flag.Bool("q", false, "quiet mode (errors only)")
	var quietLong = flag.Bool("quiet", false, "quiet mode (errors only)")
	var check = flag.Bool("c", false, "read the files back after writing and verify them")
	var checkLong = flag.Bool("check", false, "read the files back after writing and verify them")
	var dryRun = flag.Bool("n", false, "assemble and list payloads without writing files")
	var dryRunLong = flag.Bool("dry-run", false, "assemble and list payloads without writing files")
	var archFlag = flag.String("a", "", "generate only the payload for one architecture (x86, arm, x64)")
	var archLongFlag = flag.String("arch", "", "generate only the payload for one architecture (x86, arm, x64)")
	flag.Parse()

	if *version || *versionShort {
		fmt.Println(versionString)
		os.Exit(0)
	}

	VerboseMode = *verbose || *verboseLong
	QuietMode = *quiet || *quietLong

	// Use whichever output flag was specified (prefer short form if both given)
	outputDir := *outputDirFlag
	if *outputDirLongFlag != defaultDir {
		outputDir = *outputDirLongFlag
	}
	if *outputDirFlag != defaultDir {
		outputDir = *outputDirFlag
	}

	if *dryRun || *dryRunLong {
		total := 0
		for _, p := range BuildAllPayloads() {
			fmt.Printf("%-16s %2d bytes (%s)\n", p.Filename, p.Size(), p.Name)
			total += p.Size()
		}
		fmt.Printf("%-16s %2d bytes\n", "total", total)
		return
	}

	archStr := *archFlag
	if archStr == "" {
		archStr = *archLongFlag
	}

	var payloads []*Payload
	var err error
	if archStr != "" {
		arch, parseErr := ParseArch(archStr)
		if parseErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", parseErr)
			os.Exit(1)
		}
		payloads, err = GenerateOne(outputDir, arch)
	} else {
		payloads, err = GenerateAll(outputDir)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *check || *checkLong {
		if err := VerifyAll(outputDir, payloads); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}
