// Command mtlgen writes a block material library from a YAML palette.
package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/woozymasta/blockmtl"
)

var (
	argPalette  = flag.String("palette", "palette.yaml", "YAML palette file")
	argOut      = flag.String("out", ".", "output directory")
	argName     = flag.String("name", blockmtl.DefaultLibraryName, "material library file name")
	argValidate = flag.Bool("validate", false, "report palette issues before writing")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		color.Red("mtlgen: %v", err)
		os.Exit(1)
	}
}

func run() error {
	pal, err := blockmtl.LoadPalette(*argPalette)
	if err != nil {
		return err
	}
	color.Green("loaded %d materials from %s", pal.Len(), *argPalette)

	if *argValidate {
		for _, is := range blockmtl.ValidatePalette(pal, nil) {
			switch is.Level {
			case blockmtl.IssueError:
				color.Red("%s: %s (%s)", is.Level, is.Message, is.Path)
			case blockmtl.IssueWarning:
				color.Yellow("%s: %s (%s)", is.Level, is.Message, is.Path)
			default:
				color.Cyan("%s: %s (%s)", is.Level, is.Message, is.Path)
			}
		}
	}

	lib := blockmtl.New(pal, &blockmtl.Options{LibraryName: *argName})
	path := filepath.Join(*argOut, lib.LibraryName())
	if err := lib.EncodeFile(path); err != nil {
		return err
	}
	color.Green("wrote %s", path)

	// The geometry writer embeds this header.
	return lib.WriteHeader(os.Stdout)
}
