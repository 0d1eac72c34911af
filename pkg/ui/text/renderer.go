// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/pelletier/go-toml/v2"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/deploy"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/logwatch"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/paths"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/types"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/ui/view"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case view.ModList:
		return r.renderModList(v)
	case view.ModDetail:
		_, err := fmt.Fprint(r.output, v.Markdown())
		return err
	case *deploy.MoveResult:
		_, err := fmt.Fprintf(r.output, "Moved %s\n  pak:        %s\n  descriptor: %s\n",
			v.SourcePak, v.PakPath, v.DescriptorPath)
		return err
	case paths.Report:
		return r.renderPaths(v)
	case []types.LogWatchConfig:
		return r.renderLogWatches(v)
	case logwatch.Event:
		label := view.SourceLabel(v.DisplayName, v.ConfigID)
		for _, line := range v.Lines {
			if _, err := fmt.Fprintf(r.output, "[%s] %s\n", label, line); err != nil {
				return err
			}
		}
		return nil
	case *types.DeploymentSettings:
		data, err := toml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = r.output.Write(data)
		return err
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) renderModList(list view.ModList) error {
	if len(list.Mods) == 0 {
		_, err := fmt.Fprintf(r.output, "No mods found under %s\n", list.ProjectDir)
		return err
	}

	tw := tabwriter.NewWriter(r.output, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "MOD\tCHUNK\tSTATUS\tACTIONS")
	for _, m := range list.Mods {
		actions := strings.Join(view.ActionNames(m.Actions), ",")
		if actions == "" {
			actions = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", m.Name, view.ChunkText(m.ChunkID), m.Label, actions)
	}
	return tw.Flush()
}

func (r *Renderer) renderPaths(report paths.Report) error {
	tw := tabwriter.NewWriter(r.output, 0, 4, 2, ' ', 0)
	for _, e := range report.Entries {
		p := e.Path
		if p == "" {
			p = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t(%s)\n", e.Name, p, e.Source)
	}
	fmt.Fprintf(tw, "uatPlatform\t%s\t\n", report.UATPlatform)
	return tw.Flush()
}

func (r *Renderer) renderLogWatches(configs []types.LogWatchConfig) error {
	if len(configs) == 0 {
		_, err := fmt.Fprintln(r.output, "No log files are watched")
		return err
	}

	tw := tabwriter.NewWriter(r.output, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tENABLED\tFILE")
	for _, c := range configs {
		fmt.Fprintf(tw, "%s\t%s\t%t\t%s\n", c.ID, c.DisplayName, c.Enabled, c.FilePath)
	}
	return tw.Flush()
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
