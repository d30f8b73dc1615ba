package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ajitpratap0/colframe/pkg/config"
	"github.com/ajitpratap0/colframe/pkg/errors"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Write or inspect framebench configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "Write the default configuration to a YAML file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "framebench.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.Save(path, config.Default()); err != nil {
				return err
			}
			cmd.Printf("wrote %s\n", path)
			return nil
		},
	})

	var path string
	show := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration after file and environment overrides",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Read(path)
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return errors.Wrap(err, errors.ErrorTypeInternal, "marshal config")
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	show.Flags().StringVarP(&path, "config", "c", "", "Path to a YAML configuration file")
	cmd.AddCommand(show)

	return cmd
}
