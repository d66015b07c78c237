package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vdparikh/roman/internal/buildinfo"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type app struct {
	debug bool
	log   *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	cmd := &cobra.Command{
		Use:          "roman",
		Short:        "Convert between integers and Roman numeral digits",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if !a.debug {
				return nil
			}
			l, err := zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			a.log = l
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = a.log.Sync()
		},
	}

	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging to stderr")

	cmd.AddCommand(
		newEncodeCmd(a),
		newDecodeCmd(a),
		newGlyphCmd(a),
		newVersionCmd(),
	)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
		},
	}
}
