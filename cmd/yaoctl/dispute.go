package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/denysRiman/privacy-preserving-auctions/boundary"
	"github.com/denysRiman/privacy-preserving-auctions/session"
)

// newDisputeCmd prepares a disputeGarbledTable payload against the chosen
// instance: the garbler's claimed leaves (read verbatim from the leaf
// flag, 71 bytes each) are recomputed from the seed and compared gate by
// gate. The first mismatch, or an explicit --gate override, becomes the
// gate tuple, canonical leaf, IH proof, and layout proof the arbiter
// needs to settle the challenge.
func newDisputeCmd() *cobra.Command {
	var m int
	var gate int
	var leafHex []string

	cmd := &cobra.Command{
		Use:   "dispute",
		Short: "Prepare a disputeGarbledTable packet against the chosen instance's claimed leaves",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSessionConfig()
			if err != nil {
				return err
			}
			if m < 0 || m >= cfg.N {
				return fmt.Errorf("chosen index %d out of range [0,%d)", m, cfg.N)
			}

			inst, err := session.BuildInstance(cfg.CircuitID, uint64(m), cfg.MasterSeed, cfg.BitWidth)
			if err != nil {
				return err
			}
			if len(leafHex) != len(inst.Layout.Gates) {
				return fmt.Errorf("expected %d claimed leaves, got %d", len(inst.Layout.Gates), len(leafHex))
			}

			claimedLeaves := make([][]byte, len(leafHex))
			for i, h := range leafHex {
				leaf, err := boundary.DecodeLeaf71(h)
				if err != nil {
					return err
				}
				claimedLeaves[i] = leaf
			}

			overrideIndex := -1
			if cmd.Flags().Changed("gate") {
				overrideIndex = gate
			}

			packet, err := session.PrepareDispute(inst.Layout, inst.Seed, claimedLeaves, overrideIndex)
			if err != nil {
				return err
			}

			log.Info().Int("m", m).Uint64("gate", packet.GateIndex).Msg("dispute packet prepared")
			fmt.Printf("gateIndex=%d\n", packet.GateIndex)
			fmt.Printf("gate=%s\n", boundary.DisputeGateTuple(byte(packet.Gate.Op), uint16(packet.Gate.A), uint16(packet.Gate.B), uint16(packet.Gate.C)))
			fmt.Printf("canonicalLeaf=%s\n", boundary.Hex(packet.CanonicalLeaf))
			fmt.Printf("ihProof=%s\n", boundary.Bytes32List(packet.IHProof))
			fmt.Printf("layoutProof=%s\n", boundary.Bytes32List(packet.LayoutProof))
			fmt.Println("// paste into an arbiter-side test fixture:")
			fmt.Printf("v.leafBytes = %s;\n", boundary.SolidityHexLiteral(packet.CanonicalLeaf))
			return nil
		},
	}
	cmd.Flags().IntVar(&m, "m", 0, "chosen instance index")
	cmd.Flags().IntVar(&gate, "gate", 0, "gate index to dispute (default: first mismatch)")
	cmd.Flags().StringSliceVar(&leafHex, "leaf", nil, "claimed leaf bytes (0x-hex, 71 bytes each), one per gate in order")
	return cmd
}
