package cli

import (
	"github.com/spf13/cobra"

	"github.com/omnimesh/wirecheck/internal/cli/render"
	"github.com/omnimesh/wirecheck/internal/usecase"
)

// NewNetworksCmd creates the networks command
func NewNetworksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "networks",
		Short: "List configured networks",
		Long: `List every network wirecheck knows about - the built-in table overlaid
with wirecheck.toml - together with its protocol chain id and endpoint.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListNetworks.Run(cmd.Context(), usecase.ListNetworksParams{})
			if err != nil {
				return err
			}

			renderer := render.NewNetworksRenderer(cmd.OutOrStdout())
			return renderer.Render(result)
		},
	}
}
