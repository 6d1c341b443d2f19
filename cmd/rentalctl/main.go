package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rental_manager/internal/config"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rentalctl",
		Short: "Rental management admin tool",
	}

	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create database tables and default accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			config.InitDB()
			if err := config.Seed(config.DB); err != nil {
				return fmt.Errorf("seeding failed: %w", err)
			}
			fmt.Println("Database initialization complete.")
			fmt.Println("Default admin credentials: admin / admin123 (development only)")
			return nil
		},
	}
}
