package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Manage mapping profiles",
	Long: `List and inspect mapping profiles.

Built-in profiles are overlaid with YAML files from $CSV2BIB_PROFILE_DIR
or ~/.csv2bib/profiles.`,
}

var profilesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available profiles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := profileRegistry()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		profiles := registry.List()
		if len(profiles) == 0 {
			fmt.Fprintln(out, "No profiles found")
			return nil
		}

		fmt.Fprintln(out, "Available profiles:")
		for _, name := range profiles {
			profile, _ := registry.Get(name)
			desc := ""
			if profile.Description != "" {
				desc = " - " + profile.Description
			}
			fmt.Fprintf(out, "  %s%s\n", name, desc)
		}

		return nil
	},
}

var profilesShowCmd = &cobra.Command{
	Use:   "show <profile>",
	Short: "Show profile details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profileName := args[0]

		registry, err := profileRegistry()
		if err != nil {
			return err
		}

		profile, ok := registry.Get(profileName)
		if !ok {
			return fmt.Errorf("unknown profile: %s", profileName)
		}

		out, err := yaml.Marshal(profile)
		if err != nil {
			return err
		}

		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func init() {
	profilesCmd.AddCommand(profilesListCmd)
	profilesCmd.AddCommand(profilesShowCmd)
}
