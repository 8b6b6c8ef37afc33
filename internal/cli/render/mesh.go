package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/omnimesh/wirecheck/internal/domain"
	"github.com/omnimesh/wirecheck/internal/usecase"
)

// MeshRenderer renders the assembled mesh as a summary table
type MeshRenderer struct {
	out io.Writer
}

// NewMeshRenderer creates a new mesh renderer
func NewMeshRenderer(out io.Writer) *MeshRenderer {
	return &MeshRenderer{out: out}
}

// Render prints one row per network: effective versions and wired remotes.
// The full document is in the JSON artifact; this is just the overview.
func (r *MeshRenderer) Render(result *usecase.BuildMeshResult) error {
	names := lo.Keys(result.Mesh)
	sort.Strings(names)

	caser := cases.Title(language.English)

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Network", "Send", "Receive", "Wired Remotes"})
	for _, name := range names {
		path := result.Mesh[name]
		remotes := lo.Map(path.RemoteConfigs, func(rc domain.RemoteConfig, _ int) string {
			return rc.RemoteChain
		})
		t.AppendRow(table.Row{
			caser.String(name),
			path.SendVersion,
			path.ReceiveVersion,
			strings.Join(remotes, ", "),
		})
	}
	t.Render()

	fmt.Fprintln(r.out, color.GreenString("✓ mesh written to %s", result.OutputPath))
	return nil
}

var _ Renderer[*usecase.BuildMeshResult] = (*MeshRenderer)(nil)
