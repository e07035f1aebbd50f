package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/denysRiman/privacy-preserving-auctions/boundary"
	"github.com/denysRiman/privacy-preserving-auctions/commitment"
	"github.com/denysRiman/privacy-preserving-auctions/session"
)

// newExportCmd renders the full set of N commitment tuples as the
// arbiter-facing submitCommitments() literal. File writing and process
// invocation for actual on-chain submission are left to the caller.
func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Render the N-instance commitment tuple array for submitCommitments",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSessionConfig()
			if err != nil {
				return err
			}

			instances, err := session.BuildInstances(cfg.CircuitID, cfg.MasterSeed, cfg.BitWidth, cfg.N)
			if err != nil {
				return err
			}

			tuples := make([]string, len(instances))
			for i, inst := range instances {
				var blobHash, reserved0, reserved1 [32]byte
				tuple := commitment.Tuple{
					SeedCommit: inst.SeedCommit,
					IHRoot:     inst.IHRoot,
					BlobHash:   blobHash,
					Reserved0:  reserved0,
					Reserved1:  reserved1,
					H1:         inst.H1,
					H0:         inst.H0,
				}
				fields := tuple.Fields()
				tuples[i] = boundary.CommitmentTuple(fields[0], fields[1], fields[2], fields[3], fields[4], fields[5], fields[6])
			}

			log.Info().Int("n", len(tuples)).Msg("exported commitment tuples")
			fmt.Println(boundary.CommitmentTupleList(tuples))
			return nil
		},
	}
}
