package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/robostack/pystub/pkg/builder"
	"github.com/robostack/pystub/pkg/lockfile"
	"github.com/robostack/pystub/pkg/manifest"
)

var (
	genManifest string
	genOutDir   string
	genLockFile string
	genGoBin    string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Build one launcher stub per script in the manifest",
	Args:  cobra.NoArgs,
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&genManifest, "manifest", manifest.DefaultFile, "wrapper manifest to read")
	generateCmd.Flags().StringVar(&genOutDir, "out", "", "stub output directory (overrides the manifest's out_dir)")
	generateCmd.Flags().StringVar(&genLockFile, "lock", "", "lock file to write (default: wrappers.lock.json next to the manifest)")
	generateCmd.Flags().StringVar(&genGoBin, "go", "go", "go toolchain binary to invoke")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	m, err := manifest.Load(genManifest)
	if err != nil {
		return err
	}

	baseDir := filepath.Dir(genManifest)
	scripts, err := m.Expand(baseDir)
	if err != nil {
		return err
	}

	outDir := genOutDir
	if outDir == "" {
		outDir = filepath.Join(baseDir, m.OutDir)
	}

	b := &builder.Builder{
		GoBin:  genGoBin,
		OutDir: outDir,
		Runner: &builder.RealRunner{},
	}

	lock := &lockfile.Lock{}
	for _, script := range scripts {
		stub, err := b.Build(script)
		if err != nil {
			return err
		}

		digest, err := lockfile.Digest(script)
		if err != nil {
			return fmt.Errorf("digesting %s: %w", script, err)
		}

		lock.Wrappers = append(lock.Wrappers, lockfile.Entry{
			Script: filepath.Base(script),
			Source: script,
			Stub:   stub,
			Digest: digest,
		})
		cmd.Printf("built %s -> %s\n", filepath.Base(script), stub)
	}

	lockPath := genLockFile
	if lockPath == "" {
		lockPath = filepath.Join(baseDir, lockfile.DefaultFile)
	}
	if err := lockfile.Write(lockPath, lock); err != nil {
		return err
	}
	cmd.Printf("wrote %s (%d wrapper(s))\n", lockPath, len(lock.Wrappers))

	return nil
}
