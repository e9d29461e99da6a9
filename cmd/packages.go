package cmd

import (
	"fmt"

	"github.com/abhisek/bilan/internal/pack"
	"github.com/abhisek/bilan/internal/progression"
	"github.com/spf13/cobra"
)

var packagesReduction int

var packagesCmd = &cobra.Command{
	Use:   "packages",
	Short: "List the available assessment packages",
	RunE: func(cmd *cobra.Command, args []string) error {
		if packagesReduction < 0 || packagesReduction > 30 {
			return fmt.Errorf("la reduction doit etre comprise entre 0 et 30")
		}
		for _, p := range pack.All() {
			fmt.Printf("%-12s %s (%dh)", p.ID, p.Name, p.Hours)
			if p.HasEstimates() {
				if packagesReduction > 0 {
					t := progression.AdjustedTargets(&p, packagesReduction)
					fmt.Printf("  ~%d questions (reduit de %d%%)", t.Total, packagesReduction)
				} else {
					fmt.Printf("  ~%d questions", p.TotalEstimate.Target)
				}
			} else {
				fmt.Printf("  questions adaptees")
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	packagesCmd.Flags().IntVar(&packagesReduction, "reduction", 0, "Reduction de profil a appliquer aux estimations (0-30)")
}
