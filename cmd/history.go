package cmd

import (
	"fmt"
	"time"

	"github.com/abhisek/bilan/internal/pack"
	"github.com/abhisek/bilan/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List completed assessments",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return err
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return err
		}
		defer st.Close()

		assessments, err := st.AssessmentRepo().List(cmd.Context(), resolveUserID(cmd))
		if err != nil {
			return err
		}
		if len(assessments) == 0 {
			fmt.Println("Aucun bilan termine.")
			return nil
		}

		for _, a := range assessments {
			name := a.PackageID
			if p, err := pack.Get(a.PackageID); err == nil {
				name = p.Name
			}
			fmt.Printf("%s  %s  %d reponses  %s\n",
				a.CompletedAt.Format("02/01/2006"), name, a.AnswerCount,
				a.Duration.Round(time.Minute))
		}
		return nil
	},
}
