package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// newChooseCmd records the evaluator's selection of the instance index m
// to evaluate. choose(uint256) is otherwise a pure on-chain call; this
// command only validates m against N and echoes the calldata shape.
func newChooseCmd() *cobra.Command {
	var m int

	cmd := &cobra.Command{
		Use:   "choose",
		Short: "Propose the evaluator's challenge index m",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSessionConfig()
			if err != nil {
				return err
			}
			if m < 0 || m >= cfg.N {
				return fmt.Errorf("chosen index %d out of range [0,%d)", m, cfg.N)
			}
			log.Info().Int("m", m).Msg("choose payload ready")
			fmt.Printf("choose(%d)\n", m)
			return nil
		},
	}
	cmd.Flags().IntVar(&m, "m", 0, "chosen instance index")
	return cmd
}
