// Package terminal provides rich terminal output with colors and tables
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pterm/pterm"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/deploy"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/errors"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/logwatch"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/paths"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/status"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/types"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/ui/markdown"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/ui/styles"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/ui/view"
)

// Renderer provides styled output for interactive terminals
type Renderer struct {
	output   io.Writer
	markdown *markdown.Renderer
}

// New creates a new terminal renderer
func New(output io.Writer) *Renderer {
	return &Renderer{
		output:   output,
		markdown: markdown.New(),
	}
}

// RenderResult renders any result type with styling
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case view.ModList:
		return r.renderModList(v)
	case view.ModDetail:
		return r.write(r.markdown.Render(v.Markdown()))
	case *deploy.MoveResult:
		return r.renderMove(v)
	case paths.Report:
		return r.renderPaths(v)
	case []types.LogWatchConfig:
		return r.renderLogWatches(v)
	case logwatch.Event:
		return r.renderEvent(v)
	case *types.DeploymentSettings:
		data, err := toml.Marshal(v)
		if err != nil {
			return err
		}
		return r.write(string(data))
	default:
		return r.write(fmt.Sprintf("%+v\n", result))
	}
}

func (r *Renderer) write(s string) error {
	_, err := io.WriteString(r.output, s)
	return err
}

func (r *Renderer) table(data pterm.TableData) error {
	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	return r.write(out + "\n")
}

func (r *Renderer) renderModList(list view.ModList) error {
	header := styles.GetStyle("Header").Render("Whiskerwood mods")
	muted := styles.GetStyle("Muted")
	var b strings.Builder
	b.WriteString(header + "\n")
	fmt.Fprintf(&b, "%s %s\n", muted.Render("project:"), styles.GetStyle("Path").Render(list.ProjectDir))
	fmt.Fprintf(&b, "%s %s\n\n", muted.Render("mods:   "), styles.GetStyle("Path").Render(list.ModsDir))
	if err := r.write(b.String()); err != nil {
		return err
	}

	if len(list.Mods) == 0 {
		return r.write(styles.GetStyle("Warning").Render("No mods found") + "\n")
	}

	data := pterm.TableData{{"Mod", "Chunk", "Status", "Actions"}}
	for _, m := range list.Mods {
		data = append(data, []string{
			m.Name,
			styles.GetStyle("ChunkID").Render(view.ChunkText(m.ChunkID)),
			stateText(m),
			actionsText(m.Actions),
		})
	}
	return r.table(data)
}

func stateText(m status.Report) string {
	return styles.ForSeverity(string(m.State.Severity())).Render(m.Label)
}

func actionsText(a status.Actions) string {
	on := styles.GetStyle("ActionOn")
	off := styles.GetStyle("ActionOff")
	mark := func(name string, enabled bool) string {
		if enabled {
			return on.Render(name)
		}
		return off.Render(name)
	}
	return strings.Join([]string{
		mark("move", a.Move),
		mark("remove", a.Remove),
		mark("publish", a.Publish),
	}, " ")
}

func (r *Renderer) renderMove(res *deploy.MoveResult) error {
	path := styles.GetStyle("Path")
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", pterm.Success.Prefix.Text,
		styles.GetStyle("Success").Render(fmt.Sprintf("chunk %d moved", res.ChunkID)))
	fmt.Fprintf(&b, "  from       %s\n", path.Render(res.SourcePak))
	fmt.Fprintf(&b, "  pak        %s\n", path.Render(res.PakPath))
	fmt.Fprintf(&b, "  descriptor %s\n", path.Render(res.DescriptorPath))
	return r.write(b.String())
}

func (r *Renderer) renderPaths(report paths.Report) error {
	muted := styles.GetStyle("Muted")
	data := pterm.TableData{{"Directory", "Path", "Source"}}
	for _, e := range report.Entries {
		p := e.Path
		if p == "" {
			p = muted.Render("unset")
		} else {
			p = styles.GetStyle("Path").Render(p)
		}
		data = append(data, []string{e.Name, p, muted.Render(string(e.Source))})
	}
	data = append(data, []string{"uatPlatform", report.UATPlatform, muted.Render("derived")})
	return r.table(data)
}

func (r *Renderer) renderLogWatches(configs []types.LogWatchConfig) error {
	if len(configs) == 0 {
		return r.write(styles.GetStyle("Muted").Render("No log files are watched") + "\n")
	}

	data := pterm.TableData{{"ID", "Name", "Enabled", "File"}}
	for _, c := range configs {
		enabled := styles.GetStyle("ActionOff").Render("no")
		if c.Enabled {
			enabled = styles.GetStyle("ActionOn").Render("yes")
		}
		data = append(data, []string{c.ID, c.DisplayName, enabled, styles.GetStyle("Path").Render(c.FilePath)})
	}
	return r.table(data)
}

func (r *Renderer) renderEvent(ev logwatch.Event) error {
	label := styles.GetStyle("LogSource").Render("[" + view.SourceLabel(ev.DisplayName, ev.ConfigID) + "]")
	var b strings.Builder
	for _, line := range ev.Lines {
		fmt.Fprintf(&b, "%s %s\n", label, line)
	}
	return r.write(b.String())
}

// RenderError renders an error with its code when one is attached
func (r *Renderer) RenderError(err error) error {
	msg := styles.GetStyle("Error").Render(errors.GetErrorMessage(err))
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		msg = fmt.Sprintf("%s %s", styles.GetStyle("Muted").Render(string(code)), msg)
	}
	return r.write(fmt.Sprintf("%s %s\n", pterm.Error.Prefix.Text, msg))
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	return r.write(styles.GetStyle("Info").Render(msg) + "\n")
}
