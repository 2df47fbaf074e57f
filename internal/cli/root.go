package cli

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "compdb-vs",
		Short: "Generate a compilation database from Visual Studio build logs",
		Long: `compdb-vs derives a compile_commands.json database from the
CL.command.1.tlog files MSBuild leaves in a build tree, so clangd and
other language servers can analyze projects whose build system does not
emit one itself. Header files reachable from each translation unit get
their own database entries.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Report every log file, command, and header as it is processed")

	rootCmd.AddCommand(newGenerateCommand())
	rootCmd.AddCommand(newDoctorCommand())

	return rootCmd
}
