package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"vmtemplate-generator/internal/preview"
)

func registerPreviewCmd(parent *cobra.Command, g *globalOptions) {
	parent.AddCommand(&cobra.Command{
		Use:     "preview TEMPLATE_FILE DATA_FILE",
		Short:   "Render a template against sample JSON data",
		Example: `  vmgen preview template.vm data.json`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(args[0])
			if err != nil {
				return err
			}

			data, err := readData(args[1])
			if err != nil {
				return err
			}

			out, err := preview.Render(text, data)
			if err != nil {
				return err
			}

			g.logger.Debug("rendered preview", "bytes", len(out))

			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)

			return err
		},
	})
}
