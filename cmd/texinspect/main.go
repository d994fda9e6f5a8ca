package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"obj-setup/internal/logging"
	"obj-setup/internal/scanner"
	"obj-setup/internal/texture"
)

func main() {
	claim := flag.String("claim", "longest", "Texture claim policy longest or shared")
	probe := flag.Bool("probe", true, "Read image headers")
	verbose := flag.Bool("v", false, "Log probe failures and skipped files")
	flag.Parse()

	level := zapcore.WarnLevel
	if *verbose {
		level = zapcore.DebugLevel
	}
	log := logging.NewWriter(os.Stderr, level)
	defer log.Sync()

	dir := "."
	if flag.NArg() > 0 {
		dir = flag.Arg(0)
	}
	policy, err := texture.ParseClaimPolicy(*claim)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	l, err := scanner.List(dir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	for _, n := range l.Notices {
		log.Warn(n.Message, zap.Stringer("kind", n.Kind))
	}

	var models []string
	for _, m := range l.Models {
		models = append(models, texture.BaseName(m.Name))
	}
	fmt.Printf("Folder: %s (%d models, %d textures, claim=%s)\n", l.Dir, len(models), l.Textures.Len(), policy)

	lib := texture.NewLibrary(*probe, log)
	claimed := make(map[string]bool)
	owned := texture.AssignOwners(models, l.Textures.Files(), policy)
	for _, m := range models {
		fmt.Printf("\n%s\n", m)
		for _, a := range texture.Candidates(m, owned[m]) {
			claimed[a.Path] = true
			img := lib.Load(a.Path)
			info := ""
			switch {
			case img.ProbeErr != nil:
				info = "probe: " + img.ProbeErr.Error()
			case img.Info.Format != "":
				info = fmt.Sprintf("%dx%d %s", img.Info.Width, img.Info.Height, img.Info.Format)
			}
			fmt.Printf("  %-14s %-40s %s\n", a.Role, a.Name, info)
		}
	}

	var orphans []string
	for _, f := range l.Textures.Files() {
		if !claimed[f.Path] {
			orphans = append(orphans, f.Name)
		}
	}
	if len(orphans) > 0 {
		fmt.Printf("\nUnclaimed (%d):\n", len(orphans))
		for _, o := range orphans {
			fmt.Printf("  %s\n", o)
		}
	}
}
