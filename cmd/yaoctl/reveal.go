package main

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/denysRiman/privacy-preserving-auctions/boundary"
	"github.com/denysRiman/privacy-preserving-auctions/consensus"
	"github.com/denysRiman/privacy-preserving-auctions/session"
)

// newRevealOpeningsCmd reveals every instance's seed except the chosen
// index m, as revealOpenings(uint256[], bytes32[]) expects: two
// equal-length lists of indices and seeds.
func newRevealOpeningsCmd() *cobra.Command {
	var m int

	cmd := &cobra.Command{
		Use:   "reveal-openings",
		Short: "Reveal seeds for every instance except the chosen index m",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSessionConfig()
			if err != nil {
				return err
			}
			if m < 0 || m >= cfg.N {
				return fmt.Errorf("chosen index %d out of range [0,%d)", m, cfg.N)
			}

			opened := session.OpenedIndices(cfg.N, m)
			seeds := make([][32]byte, len(opened))
			for i, idx := range opened {
				seeds[i] = session.DeriveInstanceSeed(cfg.CircuitID, idx, cfg.MasterSeed)
			}

			indexLiterals := make([]string, len(opened))
			for i, idx := range opened {
				indexLiterals[i] = itoa(idx)
			}

			log.Info().Int("opened", len(opened)).Msg("revealOpenings payload ready")
			fmt.Printf("indices=[%s]\n", strings.Join(indexLiterals, ","))
			fmt.Printf("seeds=%s\n", boundary.Bytes32List(seeds))
			return nil
		},
	}
	cmd.Flags().IntVar(&m, "m", 0, "chosen instance index")
	return cmd
}

// newRevealLabelsCmd reveals the garbler's chosen input labels for the
// chosen instance, 16 bytes right-padded to 32 for the bytes32[] transport
// type.
func newRevealLabelsCmd() *cobra.Command {
	var m int
	var value uint64
	var bobSide bool

	cmd := &cobra.Command{
		Use:   "reveal-labels",
		Short: "Reveal the garbler's input labels for a given value on the chosen instance",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSessionConfig()
			if err != nil {
				return err
			}
			if m < 0 || m >= cfg.N {
				return fmt.Errorf("chosen index %d out of range [0,%d)", m, cfg.N)
			}

			seed := session.DeriveInstanceSeed(cfg.CircuitID, uint64(m), cfg.MasterSeed)
			firstWire := uint16(0)
			if bobSide {
				firstWire = uint16(cfg.BitWidth)
			}

			labels := make([][32]byte, cfg.BitWidth)
			for i := 0; i < cfg.BitWidth; i++ {
				bit := uint8((value >> uint(i)) & 1)
				label := consensus.WireLabel(cfg.CircuitID, uint64(m), firstWire+uint16(i), bit, seed)
				var padded [32]byte
				copy(padded[:16], label[:])
				labels[i] = padded
			}

			log.Info().Int("m", m).Bool("bob", bobSide).Msg("revealGarblerLabels payload ready")
			fmt.Println(boundary.Bytes32List(labels))
			return nil
		},
	}
	cmd.Flags().IntVar(&m, "m", 0, "chosen instance index")
	cmd.Flags().Uint64Var(&value, "value", 0, "the party's private integer value")
	cmd.Flags().BoolVar(&bobSide, "bob", false, "reveal Bob's input wires instead of Alice's")
	return cmd
}
