package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/evcraddock/carpet/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change the config file",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := loadConfig()
				if err != nil {
					return err
				}
				if isJSON() {
					return printJSON(cmd.OutOrStdout(), cfg)
				}
				data, err := yaml.Marshal(cfg)
				if err != nil {
					return fmt.Errorf("marshaling config: %w", err)
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			},
		},
		&cobra.Command{
			Use:   "set <key> <value>",
			Short: "Set a value in ~/.config/carpet/config.yaml",
			Long:  "Set one of server_url, store, store_path, port, dev_mode or allowed_origins (comma separated). An empty value clears the key.",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := config.Read()
				if err != nil {
					return err
				}
				if err := setConfigValue(&cfg, args[0], args[1]); err != nil {
					return err
				}
				if err := config.Write(cfg); err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", args[0])
				return err
			},
		},
	)

	return cmd
}

func setConfigValue(cfg *config.Config, key, value string) error {
	switch key {
	case "server_url":
		cfg.ServerURL = value
	case "store":
		cfg.Store = value
		if value != "" {
			if err := cfg.Validate(); err != nil {
				return err
			}
		}
	case "store_path":
		cfg.StorePath = value
	case "port":
		if value == "" {
			cfg.Port = 0
			return nil
		}
		port, err := strconv.Atoi(value)
		if err != nil || port <= 0 || port > 65535 {
			return fmt.Errorf("invalid port %q", value)
		}
		cfg.Port = port
	case "dev_mode":
		cfg.DevMode = value == "true"
	case "allowed_origins":
		cfg.AllowedOrigins = nil
		for _, o := range strings.Split(value, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	return nil
}
