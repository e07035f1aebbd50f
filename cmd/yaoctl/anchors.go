package main

import (
	"os"

	"github.com/markkurossi/tabulate"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/denysRiman/privacy-preserving-auctions/boundary"
	"github.com/denysRiman/privacy-preserving-auctions/session"
)

func newAnchorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "anchors",
		Short: "Garble every instance and print its seed commitment, IH root, and output anchors",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSessionConfig()
			if err != nil {
				return err
			}

			log.Debug().Int("n", cfg.N).Int("bitWidth", cfg.BitWidth).Msg("building instances")
			instances, err := session.BuildInstances(cfg.CircuitID, cfg.MasterSeed, cfg.BitWidth, cfg.N)
			if err != nil {
				return err
			}

			tab := tabulate.New(tabulate.Github)
			tab.Header("Instance")
			tab.Header("SeedCommit")
			tab.Header("IHRoot")
			tab.Header("H0")
			tab.Header("H1")
			for _, inst := range instances {
				row := tab.Row()
				row.Column(itoa(inst.ID))
				row.Column(boundary.Hex32(inst.SeedCommit))
				row.Column(boundary.Hex32(inst.IHRoot))
				row.Column(boundary.Hex32(inst.H0))
				row.Column(boundary.Hex32(inst.H1))
			}
			tab.Print(os.Stdout)
			return nil
		},
	}
}
