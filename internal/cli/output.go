package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/glorpus-work/pulpctl/pkg/config"
	"github.com/glorpus-work/pulpctl/pkg/errors"
	"gopkg.in/yaml.v3"
)

// render writes v as JSON or YAML when the output format asks for it, otherwise it
// calls text.
func render(w io.Writer, cfg *config.Config, v any, text func(io.Writer) error) error {
	switch cfg.Settings.OutputFormat {
	case "json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(config.YAMLIndent)
		if err := encoder.Encode(v); err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
		return encoder.Close()
	case "text", "":
		return text(w)
	default:
		return errors.ErrInvalidOutputFormatWithDetails(cfg.Settings.OutputFormat)
	}
}

// styles used in text output. Plain when color is off.
type styles struct {
	header  lipgloss.Style
	changed lipgloss.Style
	ok      lipgloss.Style
	failed  lipgloss.Style
	muted   lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{header: plain, changed: plain, ok: plain, failed: plain, muted: plain}
	}
	return styles{
		header:  lipgloss.NewStyle().Bold(true),
		changed: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		ok:      lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		failed:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		muted:   lipgloss.NewStyle().Faint(true),
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
