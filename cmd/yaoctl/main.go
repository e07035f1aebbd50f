// Command yaoctl is the external orchestration tool for one Yao
// millionaires-comparison session: it derives instance material, produces
// commitments, walks cut-and-choose, evaluates the chosen instance, and
// prepares dispute packets. It never touches a node or a signer key; node
// endpoint and signer selection are environment concerns left to the
// caller's shell or CI harness.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("yaoctl failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "yaoctl",
		Short: "Off-chain toolkit for one Yao millionaires-comparison session",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if viper.GetBool("verbose") {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}

	root.PersistentFlags().Int("bit-width", 8, "comparator input bit width")
	root.PersistentFlags().Int("n", 10, "cut-and-choose instance count")
	root.PersistentFlags().String("circuit-id", "", "32-byte hex circuit identifier (default: H(\"millionaires-yao-v1\"))")
	root.PersistentFlags().String("master-seed", "", "32-byte hex master seed (default: H(\"master-seed-v1\"))")
	root.PersistentFlags().Bool("verbose", false, "enable debug logging")
	viper.BindPFlags(root.PersistentFlags())

	root.AddCommand(
		newAnchorsCmd(),
		newBundleCmd(),
		newExportCmd(),
		newSubmitCommitmentsCmd(),
		newRevealOpeningsCmd(),
		newRevealLabelsCmd(),
		newChooseCmd(),
		newEvaluateCmd(),
		newDisputeCmd(),
	)
	return root
}
