package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stakeapi/stakeapi-go/internal/config"
)

var initPath string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := initPath
		if path == "" {
			path = config.DefaultPath()
		}
		if err := config.Write(path, cfg); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "wrote %s\n", path)
		return nil
	},
}

func init() {
	initCmd.Flags().StringVar(&initPath, "path", "", "target path (default: "+config.DefaultPath()+")")
	rootCmd.AddCommand(initCmd)
}
