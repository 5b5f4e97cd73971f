package main

import (
	"fmt"
	"os"

	"transfleet/cmd"
	"transfleet/internal"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "transfleet",
	Short: "Transformer fleet reporting backend",
}

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the reporting API server",
	RunE: func(c *cobra.Command, args []string) error {
		apiHandler, err := cmd.InitializeDependencies()
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(apiHandler)

		return apiHandler.StartApi(servePort)
	},
}

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Delete rows with missing customer, contract or serial",
	RunE: func(c *cobra.Command, args []string) error {
		apiHandler, err := cmd.InitializeDependencies()
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(apiHandler)

		deleted, err := apiHandler.MaintenanceService.CleanupInvalidRecords()
		if err != nil {
			return err
		}

		fmt.Printf("deleted %d invalid records\n", deleted)
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print fleet power statistics as JSON",
	RunE: func(c *cobra.Command, args []string) error {
		apiHandler, err := cmd.InitializeDependencies()
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(apiHandler)

		internal.Pprint(apiHandler.StatsService.FleetPowerStats())
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 5000, "port to listen on")
	rootCmd.AddCommand(serveCmd, cleanupCmd, statsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
