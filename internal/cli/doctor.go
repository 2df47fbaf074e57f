package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ryanjeffares/compdb-vs/internal/compdb"
	"github.com/ryanjeffares/compdb-vs/internal/textenc"
	"github.com/ryanjeffares/compdb-vs/internal/tlog"
	"github.com/ryanjeffares/compdb-vs/internal/vsfs"
)

func newDoctorCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Inspect the build tree and report what generate would consume",
		RunE:  runDoctor,
	}
	addBuildFlags(cmd)
	return cmd
}

func runDoctor(cmd *cobra.Command, args []string) error {
	cfg, buildDir, err := resolveOptions(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "build dir:     %s\n", buildDir)
	fmt.Fprintf(out, "configuration: %s\n", cfg.Configuration)

	tlogFiles, err := tlog.Find(vsfs.OS, buildDir, cfg.Configuration)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "tlog files:    %d\n", len(tlogFiles))

	for _, file := range tlogFiles {
		data, err := vsfs.OS.ReadFile(file)
		if err != nil {
			return fmt.Errorf("%w: failed to open %s: %v", textenc.ErrUnreadableStream, file, err)
		}
		lines := textenc.DecodeLines(data)
		numCommands := 0
		for _, line := range lines {
			if compdb.IsCommandLine(line) {
				numCommands++
			}
		}
		fmt.Fprintf(out, "  %s: %d lines, %d commands\n", file, len(lines), numCommands)
	}

	if len(tlogFiles) == 0 {
		fmt.Fprintln(out, "no compiler invocation logs found; has the project been built with this configuration?")
	}
	return nil
}
