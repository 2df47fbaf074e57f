package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ryanjeffares/compdb-vs/internal/compdb"
	"github.com/ryanjeffares/compdb-vs/internal/config"
	"github.com/ryanjeffares/compdb-vs/internal/output"
	"github.com/ryanjeffares/compdb-vs/internal/tlog"
	"github.com/ryanjeffares/compdb-vs/internal/vsfs"
)

func newGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Scan the build tree and write compile_commands.json",
		RunE:  runGenerate,
	}
	addBuildFlags(cmd)
	cmd.Flags().Bool("skip-headers", false, "Do not generate entries for headers reachable from the sources")
	cmd.Flags().StringP("output", "o", "", "Database location (default <build-dir>/compile_commands.json)")
	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, buildDir, err := resolveOptions(cmd)
	if err != nil {
		return err
	}

	commands, err := GenerateDatabase(vsfs.OS, buildDir, cfg.Configuration, cfg.SkipHeaders)
	if err != nil {
		return err
	}

	outPath := cfg.Output
	if outPath == "" {
		outPath = filepath.Join(buildDir, output.DefaultFileName)
	}
	if err := output.WriteFile(outPath, commands); err != nil {
		return err
	}

	log.Infof("wrote %d entries to %s", len(commands), outPath)
	return nil
}

// GenerateDatabase runs the full pipeline: locate the tlog files for the
// configuration, extract one entry per translation unit, then close over
// the reachable headers unless asked not to.
func GenerateDatabase(fsys vsfs.FS, buildDir, configuration string, skipHeaders bool) ([]compdb.CompileCommand, error) {
	tlogFiles, err := tlog.Find(fsys, buildDir, configuration)
	if err != nil {
		return nil, err
	}
	log.Debugf("found %d tlog files for %s", len(tlogFiles), configuration)

	commands, err := compdb.CreateCompileCommands(fsys, buildDir, tlogFiles)
	if err != nil {
		return nil, err
	}

	if !skipHeaders {
		headers, err := compdb.CreateHeaderCommands(fsys, commands)
		if err != nil {
			return nil, err
		}
		commands = append(commands, headers...)
	}

	return commands, nil
}

func addBuildFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("config", "c", "Debug", "Build configuration to collect logs for")
	cmd.Flags().StringP("build-dir", "b", "build", "Build tree root, relative to the working directory")
}

// resolveOptions merges the optional config file with any flags the user
// set, flags winning, and resolves the build root to an absolute path.
func resolveOptions(cmd *cobra.Command) (*config.Config, string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("failed to resolve working directory: %w", err)
	}

	cfg, err := config.Load(wd)
	if err != nil {
		return nil, "", err
	}

	flags := cmd.Flags()
	if flags.Changed("config") {
		cfg.Configuration, _ = flags.GetString("config")
	}
	if flags.Changed("build-dir") {
		cfg.BuildDir, _ = flags.GetString("build-dir")
	}
	if flags.Changed("skip-headers") {
		cfg.SkipHeaders, _ = flags.GetBool("skip-headers")
	}
	if flags.Changed("output") {
		cfg.Output, _ = flags.GetString("output")
	}

	buildDir := cfg.BuildDir
	if !filepath.IsAbs(buildDir) {
		buildDir = filepath.Join(wd, buildDir)
	}
	return cfg, buildDir, nil
}
