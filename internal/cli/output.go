package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/mcptools/mcpconf/pkg/commands"
	"github.com/mcptools/mcpconf/pkg/style"
)

// listing is the serializable form of a ListResult for json/yaml output.
type listing struct {
	Available []string `json:"available" yaml:"available"`
	Active    []string `json:"active" yaml:"active"`
}

// renderListing writes a ListResult in the requested format.
func renderListing(w io.Writer, format string, result *commands.ListResult) error {
	switch format {
	case "plain", "":
		renderPlainListing(w, result)
		return nil
	case "table":
		renderTableListing(w, result)
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(listing{Available: result.Available, Active: result.Active})
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(listing{Available: result.Available, Active: result.Active})
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func renderPlainListing(w io.Writer, result *commands.ListResult) {
	fmt.Fprintln(w, style.Title(MsgListAvailable))
	if len(result.Available) == 0 {
		fmt.Fprintln(w, MsgListEmpty)
	}
	for _, name := range result.Available {
		fmt.Fprintln(w, style.Item(name))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, style.Title(MsgListActive))
	if len(result.Active) == 0 {
		fmt.Fprintln(w, MsgListEmpty)
	}
	for _, name := range result.Active {
		fmt.Fprintln(w, style.Item(name))
	}
}

func renderTableListing(w io.Writer, result *commands.ListResult) {
	active := make(map[string]bool, len(result.Active))
	for _, name := range result.Active {
		active[name] = true
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"NAME", "STATE"})
	for _, name := range result.Available {
		state := "available"
		if active[name] {
			state = "active"
		}
		t.AppendRow(table.Row{name, state})
	}
	// Active entries whose available counterpart was removed externally
	for _, name := range result.Active {
		found := false
		for _, avail := range result.Available {
			if avail == name {
				found = true
				break
			}
		}
		if !found {
			t.AppendRow(table.Row{name, "active (orphaned)"})
		}
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}
