package cli

import (
	"github.com/replicatedhq/treeship/pkg/constants"
	"github.com/replicatedhq/treeship/pkg/treeship"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// MaterializeCmd is the root command of treeship-materialize
func MaterializeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "treeship-materialize",
		Short: "Rebuild a manifest's folder tree from a flat download directory",
		Long: `
Recreate the folder hierarchy described by a manifest under a target
directory, copying each file it names out of the flat source directory.
Files the manifest names but the source dir lacks are reported as missing,
and source files the manifest never names are listed at the end.
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := treeship.Get(v)
			if err != nil {
				return err
			}
			ctx, cancel := signalContext()
			defer cancel()
			return t.MaterializeAndMaybeExit(ctx)
		},
	}

	cmd.Flags().String(constants.TargetDirFlag, constants.DefaultTargetDir, "Directory to rebuild the tree in")
	cmd.Flags().Bool(constants.DryRunFlag, false, "Run the whole walk against an in-memory overlay and write nothing")
	cmd.Flags().Bool(constants.OpenFlag, false, "Open the target dir in the file manager when done")

	return withCommonFlags(cmd, v)
}
