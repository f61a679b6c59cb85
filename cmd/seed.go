package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"superheroes/database"
)

var flagReset bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the database with demo heroes and powers",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, store, err := setup()
		if err != nil {
			return err
		}
		defer closeStore(store)

		result, err := database.Seed(cmd.Context(), store, flagReset)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "seeded %d heroes, %d powers, %d hero powers\n",
			result.Heroes, result.Powers, result.HeroPowers)
		return nil
	},
}

func init() {
	seedCmd.Flags().BoolVar(&flagReset, "reset", false, "delete existing rows before seeding")
}
