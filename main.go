package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lago-project/lago-ansible/inventory"
	"github.com/lago-project/lago-ansible/types"
)

const envPrefix = "LAGO"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "lago-ansible",
		Short:        "Generate an Ansible inventory from a prefix layout",
		Long:         "Reads a prefix layout file describing provisioned VMs and renders an Ansible INI inventory, grouping hosts by the values found at the given spec key paths.",
		SilenceUsage: true,
		RunE:         runRoot,
	}

	cmd.Flags().String("prefix", "", "path to the prefix layout file")
	cmd.Flags().StringSlice("key", nil, "grouping key path, repeatable (default: vm-type, groups, vm-provider)")
	cmd.Flags().String("output", "", "write the inventory to this file instead of stdout")
	cmd.Flags().Bool("validate-key", false, "verify that the prefix SSH identity parses as a private key")
	cmd.Flags().Bool("debug", false, "enable debug logging")

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	for _, name := range []string{"prefix", "key", "output", "validate-key", "debug"} {
		_ = viper.BindPFlag(name, cmd.Flags().Lookup(name))
	}

	return cmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	if viper.GetBool("debug") {
		log.SetLevel(log.DebugLevel)
	}

	layoutPath := viper.GetString("prefix")
	if layoutPath == "" {
		return errors.Errorf("--prefix is required (or set %s_PREFIX)", envPrefix)
	}

	prefix, err := types.LoadPrefix(layoutPath)
	if err != nil {
		return err
	}

	if viper.GetBool("validate-key") {
		if err := prefix.Paths().ValidateSSHIdentity(); err != nil {
			return err
		}
	}

	text := inventory.NewBuilder(prefix).BuildText(viper.GetStringSlice("key"))

	output := viper.GetString("output")
	if output == "" {
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	}
	if err := os.WriteFile(output, []byte(text+"\n"), 0644); err != nil {
		return errors.Wrapf(err, "failed to write inventory to '%s'", output)
	}
	return nil
}
