package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/ethereum/go-ethereum/common"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/omnimesh/wirecheck/internal/cli/render"
	"github.com/omnimesh/wirecheck/internal/domain"
	"github.com/omnimesh/wirecheck/internal/usecase"
)

// NewMeshCmd creates the mesh command
func NewMeshCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mesh",
		Short: "Reconstruct the wiring mesh of a deployed application",
		Long: `Reconstruct, from live on-chain reads, the effective directional wiring
configuration of a messaging application across the declared networks, and
write it as a single JSON document.

Application addresses come from --addresses / --addresses-file, falling back
to deployment artifacts under the project's deployments directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			networks, _ := cmd.Flags().GetStringSlice("networks")
			name, _ := cmd.Flags().GetString("name")
			pairs, _ := cmd.Flags().GetStringSlice("addresses")
			addressesFile, _ := cmd.Flags().GetString("addresses-file")
			output, _ := cmd.Flags().GetString("output")
			probeFunction, _ := cmd.Flags().GetString("probe-function")

			addresses, err := parseAddresses(pairs, addressesFile)
			if err != nil {
				return err
			}

			if len(networks) == 0 {
				networks, err = confirmAllNetworks(cmd, app.Config.NonInteractive)
				if err != nil {
					return err
				}
			}

			if !app.Config.NonInteractive {
				s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(cmd.ErrOrStderr()))
				s.Suffix = " resolving wiring mesh..."
				s.Start()
				defer s.Stop()
			}

			result, err := app.BuildMesh.Run(cmd.Context(), usecase.BuildMeshParams{
				Networks:      networks,
				Addresses:     addresses,
				AppName:       name,
				ProbeFunction: probeFunction,
				OutputPath:    output,
			})
			if err != nil {
				return err
			}

			renderer := render.NewMeshRenderer(cmd.OutOrStdout())
			return renderer.Render(result)
		},
	}

	cmd.Flags().StringSliceP("networks", "N", nil, "Networks to include (e.g. ethereum,bsc); defaults to all configured")
	cmd.Flags().String("name", "", "Application name, used for annotation and deployment lookups")
	cmd.Flags().StringSlice("addresses", nil, "Explicit application addresses as network=0x… pairs")
	cmd.Flags().String("addresses-file", "", "YAML file mapping network name to application address")
	cmd.Flags().StringP("output", "o", "", "Relative .json path for the mesh document (required)")
	cmd.Flags().String("probe-function", usecase.DefaultProbeFunction, "View function probed per remote (uint16 in, bytes out)")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

// parseAddresses merges --addresses pairs over the --addresses-file map.
func parseAddresses(pairs []string, file string) (map[string]common.Address, error) {
	addresses := make(map[string]common.Address)

	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read addresses file: %w", err)
		}
		var fromFile map[string]string
		if err := yaml.Unmarshal(data, &fromFile); err != nil {
			return nil, fmt.Errorf("malformed addresses file %s: %w", file, err)
		}
		for network, addr := range fromFile {
			if !common.IsHexAddress(addr) {
				return nil, fmt.Errorf("%w for %s in %s: %q", domain.ErrInvalidAddress, network, file, addr)
			}
			addresses[strings.ToLower(network)] = common.HexToAddress(addr)
		}
	}

	for _, pair := range pairs {
		network, addr, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --addresses entry %q, expected network=0x…", pair)
		}
		if !common.IsHexAddress(addr) {
			return nil, fmt.Errorf("%w for %s: %q", domain.ErrInvalidAddress, network, addr)
		}
		addresses[strings.ToLower(network)] = common.HexToAddress(addr)
	}

	return addresses, nil
}

// confirmAllNetworks falls back to every configured network when --networks
// is omitted, asking first unless running non-interactively.
func confirmAllNetworks(cmd *cobra.Command, nonInteractive bool) ([]string, error) {
	app, err := getApp(cmd)
	if err != nil {
		return nil, err
	}

	result, err := app.ListNetworks.Run(cmd.Context(), usecase.ListNetworksParams{})
	if err != nil {
		return nil, err
	}

	var names []string
	for _, network := range result.Networks {
		if network.Error == nil {
			names = append(names, network.Name)
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no usable networks configured; pass --networks or add them to wirecheck.toml")
	}

	if !nonInteractive {
		prompt := promptui.Prompt{
			Label:     fmt.Sprintf("Inspect all %d configured networks (%s)", len(names), strings.Join(names, ", ")),
			IsConfirm: true,
		}
		if _, err := prompt.Run(); err != nil {
			return nil, fmt.Errorf("aborted; pass --networks to select networks explicitly")
		}
	}

	return names, nil
}
