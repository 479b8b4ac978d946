package cli

import (
	"github.com/replicatedhq/treeship/pkg/audit"
	"github.com/replicatedhq/treeship/pkg/constants"
	"github.com/replicatedhq/treeship/pkg/treeship"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// AuditCmd is the root command of treeship-audit
func AuditCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "treeship-audit",
		Short: "Compare a manifest with a flat download directory",
		Long: `
Compare the file names listed in a manifest with the files actually present
in a flat source directory, and report which are in both, which were
downloaded but are not in the manifest, and which the manifest names but
were never downloaded.
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := treeship.Get(v)
			if err != nil {
				return err
			}
			ctx, cancel := signalContext()
			defer cancel()
			return t.AuditAndMaybeExit(ctx)
		},
	}

	cmd.Flags().Bool(constants.StrictFlag, false, "Exit non-zero when the manifest and the source dir differ")
	cmd.Flags().StringP(constants.OutputFlag, "o", audit.FormatText, "Report format: text or json")

	return withCommonFlags(cmd, v)
}
