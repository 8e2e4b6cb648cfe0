package cmd

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lehigh-university-libraries/csv2bib/mapping"
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Show the default field mappings",
	Long: `Print the field mappings and verbatim fields added to every conversion
unless --no-defaults is given, in profile YAML form.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, verbatim := mapping.WithDefaults(mapping.Mapping{}, mapping.NewFieldSet())
		profile := mapping.Profile{
			Name:        "defaults",
			Description: "Mappings added unless --no-defaults is given",
			Fields:      m,
			Verbatim:    verbatim.Names(),
		}

		out, err := yaml.Marshal(&profile)
		if err != nil {
			return err
		}

		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}
