//go:build !tinygo

package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"spincube/app"
	"spincube/engine/fixtrig"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(16)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	badStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 2)
)

func tableCommand() *cobra.Command {
	var (
		points int
		plot   bool
	)
	cmd := &cobra.Command{
		Use:   "table",
		Short: "print the precomputed sine/cosine table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("points") {
				cfg, err := loadConfig()
				if err != nil {
					return err
				}
				points = cfg.NumPoints
			}
			t := fixtrig.NewTable(points)
			if plot {
				plotTable(t)
				return nil
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(w, "slot\tphase\tsin\tcos\t")
			for a := 0; a < t.Len(); a++ {
				fmt.Fprintf(w, "%d\t%d\t%d\t%d\t\n", a, t.Phase(a), t.Sine(a), t.Cosine(a))
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVar(&points, "points", 0, "table size (default from config)")
	cmd.Flags().BoolVar(&plot, "plot", false, "plot the table instead of listing it")
	return cmd
}

func plotTable(t *fixtrig.Table) {
	sin := make([]float64, t.Len())
	cos := make([]float64, t.Len())
	for a := range sin {
		sin[a] = float64(t.Sine(a)) / fixtrig.One
		cos[a] = float64(t.Cosine(a)) / fixtrig.One
	}
	for _, s := range []struct {
		name string
		data []float64
	}{{"sine", sin}, {"cosine", cos}} {
		fmt.Println(asciigraph.Plot(s.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(s.name+" over "+strconv.Itoa(t.Len())+" slots"),
		))
		fmt.Println()
	}
}

func cycleCommand() *cobra.Command {
	var cycles int
	cmd := &cobra.Command{
		Use:   "cycle",
		Short: "run whole rotation cycles headless and report cache behaviour",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			r, err := app.Simulate(cfg, cycles)
			if err != nil {
				return err
			}
			fmt.Println(renderReport(r))
			if r.Mismatches > 0 {
				return fmt.Errorf("%d replayed frames differ from live projection", r.Mismatches)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&cycles, "cycles", 2, "number of full cycles")
	return cmd
}

func renderReport(r app.Report) string {
	row := func(label, value string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), valueStyle.Render(value))
	}
	replay := okStyle.Render("exact")
	if r.Mismatches > 0 {
		replay = badStyle.Render(fmt.Sprintf("%d mismatches", r.Mismatches))
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render("spincube cycle report"),
		row("points", strconv.Itoa(r.Params.NumPoints)),
		row("step", strconv.Itoa(r.Params.Step)),
		row("ticks", strconv.FormatUint(r.Ticks, 10)),
		row("cycles", strconv.FormatUint(r.Cycles, 10)),
		row("steady after", strconv.FormatUint(r.TicksToSteady, 10)+" ticks"),
		row("cache stored", strconv.Itoa(r.Cache.Stored)),
		row("cache hits", strconv.FormatUint(r.Cache.Hits, 10)),
		row("cache misses", strconv.FormatUint(r.Cache.Misses, 10)),
		row("per frame", r.PerFrame().String()),
		row("replay", replay),
	)
	return boxStyle.Render(body)
}

func configCommand() *cobra.Command {
	var writePath string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration as yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if writePath != "" {
				return cfg.Save(writePath)
			}
			out, err := cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = os.Stdout.Write(out)
			return err
		},
	}
	cmd.Flags().StringVar(&writePath, "write", "", "write the yaml to this file instead of stdout")
	return cmd
}
