// Package view holds the result shapes commands hand to renderers
package view

import (
	"fmt"
	"strings"

	"github.com/zapsharkrs/whiskerwood-modtools/pkg/descriptor"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/status"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/types"
)

// ModList is the dashboard: one evaluated report per mod
type ModList struct {
	ProjectDir string          `json:"projectDir" yaml:"projectDir"`
	ModsDir    string          `json:"modsDir" yaml:"modsDir"`
	Mods       []status.Report `json:"mods" yaml:"mods"`
}

// ModDetail is everything known about one mod
type ModDetail struct {
	Report     status.Report        `json:"status" yaml:"status"`
	Mod        *types.ModDescriptor `json:"mod" yaml:"mod"`
	Descriptor *descriptor.Document `json:"descriptor,omitempty" yaml:"descriptor,omitempty"`
}

// Markdown renders the detail as a markdown document
func (d ModDetail) Markdown() string {
	var b strings.Builder
	r := d.Report

	fmt.Fprintf(&b, "# %s\n\n", r.Name)
	if d.Mod != nil && d.Mod.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", d.Mod.Description)
	}

	fmt.Fprintf(&b, "**Status:** %s\n\n", r.Label)

	b.WriteString("| Field | Value |\n|---|---|\n")
	row := func(k, v string) {
		if v == "" {
			v = "-"
		}
		fmt.Fprintf(&b, "| %s | %s |\n", k, v)
	}
	row("Asset", r.ModID)
	if d.Mod != nil {
		row("Version", d.Mod.Version)
		row("Created by", d.Mod.CreatedBy)
		row("Workshop id", d.Mod.WorkshopID)
		row("Source file", "`"+d.Mod.SourcePath+"`")
	}
	row("Chunk id", ChunkText(r.ChunkID))
	row("Folder", r.DirName)
	row("Mod directory", "`"+r.ModDir+"`")
	if r.SourcePak != "" {
		row("Source pak", "`"+r.SourcePak+"`")
	}
	row("Moved", fmt.Sprintf("%t", r.Moved))

	b.WriteString("\n## Actions\n\n")
	fmt.Fprintf(&b, "- move: %s\n", onOff(r.Actions.Move))
	fmt.Fprintf(&b, "- remove: %s\n", onOff(r.Actions.Remove))
	fmt.Fprintf(&b, "- publish: %s\n", onOff(r.Actions.Publish))

	if d.Descriptor != nil {
		b.WriteString("\n## Deployed descriptor\n\n")
		row := func(k, v string) { fmt.Fprintf(&b, "- %s: %s\n", k, v) }
		row("Name", d.Descriptor.Name)
		row("Version", d.Descriptor.Version)
		if d.Descriptor.SteamAppID != nil {
			row("SteamAppID", fmt.Sprintf("%d", *d.Descriptor.SteamAppID))
		}
		if d.Descriptor.SteamWorkshopID != "" {
			row("SteamWorkshopId", d.Descriptor.SteamWorkshopID)
		}
	}
	return b.String()
}

// ChunkText renders a chunk id, using "-" for none
func ChunkText(id int) string {
	if id <= 0 {
		return "-"
	}
	return fmt.Sprintf("%d", id)
}

func onOff(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}

// ActionNames lists the enabled actions in display order
func ActionNames(a status.Actions) []string {
	var names []string
	if a.Move {
		names = append(names, "move")
	}
	if a.Remove {
		names = append(names, "remove")
	}
	if a.Publish {
		names = append(names, "publish")
	}
	return names
}

// SourceLabel is how a log event names its file
func SourceLabel(displayName, id string) string {
	if displayName != "" {
		return displayName
	}
	return id
}
