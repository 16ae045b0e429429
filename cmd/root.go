package cmd

import (
	"errors"
	"os"

	"texpack/pkg/logging"
	"texpack/pkg/pack"
	"texpack/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	outputFlag string
	treeFlag   string
	debugFlag  bool

	rootLogger *zap.Logger
)

// RootCmd is the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:          "texpack <entry>",
	Short:        "Pack LaTeX files into a single .tex file",
	Long:         `Texpack flattens a tree of LaTeX source files linked by \input and \subfile directives into one standalone .tex file, bracketing each inclusion with provenance comments.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := rootLogger
		if debugFlag {
			if dev, err := logging.Setup(true, "texpack", version.Get().Version); err == nil {
				logger = dev
			}
		}

		err := pack.Execute(&pack.Arguments{
			Entry:  args[0],
			Output: outputFlag,
			Tree:   treeFlag,
		}, logger)
		if errors.Is(err, pack.ErrOverwriteDeclined) {
			// Clean abort, distinguished from failures.
			os.Exit(2)
		}
		return err
	},
}

// Execute adds all child commands to the root command and runs it with the
// given logger.
func Execute(logger *zap.Logger) error {
	rootLogger = logger
	return RootCmd.Execute()
}

func init() {
	RootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output .tex file name (default merged_<entry name>)")
	RootCmd.Flags().StringVar(&treeFlag, "tree", "", "Also write the inclusion tree listing to this path")
	RootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug logging")
}
