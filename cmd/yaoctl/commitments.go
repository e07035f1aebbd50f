package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/denysRiman/privacy-preserving-auctions/boundary"
	"github.com/denysRiman/privacy-preserving-auctions/commitment"
	"github.com/denysRiman/privacy-preserving-auctions/session"
)

// newSubmitCommitmentsCmd renders the submitCommitments(tuple7[N]) payload
// for this session. Actual transaction submission — node endpoint, signer
// key, gas — is the harness's concern; this command only produces the
// calldata-shaped literal.
func newSubmitCommitmentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "submit-commitments",
		Short: "Render the submitCommitments payload for this session's N instances",
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
				tuple := commitment.Tuple{SeedCommit: inst.SeedCommit, IHRoot: inst.IHRoot, H1: inst.H1, H0: inst.H0}
				fields := tuple.Fields()
				tuples[i] = boundary.CommitmentTuple(fields[0], fields[1], fields[2], fields[3], fields[4], fields[5], fields[6])
			}

			log.Info().Int("n", len(tuples)).Msg("submitCommitments payload ready; submission is left to the harness")
			fmt.Printf("submitCommitments%s\n", boundary.Tuple(boundary.CommitmentTupleList(tuples)))
			return nil
		},
	}
}
