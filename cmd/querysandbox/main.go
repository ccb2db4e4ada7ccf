/*
Command querysandbox is an interactive sandbox for CSS selector queries
on widget trees.

Usage:

    querysandbox [flags]                      start the interactive sandbox
    querysandbox query SELECTOR [flags]       run one query and print the report
    querysandbox dot [flags]                  print a playground as a GraphViz diagram

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/npillmayer/querysandbox/config"
	"github.com/npillmayer/querysandbox/dom/domdbg"
	"github.com/npillmayer/querysandbox/sandbox"
	"github.com/npillmayer/querysandbox/widget"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/spf13/cobra"
)

// tracer traces with key 'sandbox.ui'.
func tracer() tracing.Trace {
	return tracing.Select("sandbox.ui")
}

func main() {
	if err := newRootCommand(config.New()).Execute(); err != nil {
		os.Exit(1)
	}
}

var flagKeys = []string{
	config.KeySelector,
	config.KeyPlaygrounds,
	config.KeyStylesheet,
	config.KeyWatch,
	config.KeyColor,
}

func newRootCommand(conf *config.Conf) *cobra.Command {
	var configPath string
	root := &cobra.Command{
		Use:           config.Name,
		Short:         "Interactive sandbox for CSS selector queries on widget trees",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := conf.Load(configPath); err != nil {
				return err
			}
			if err := conf.BindFlags(cmd.Flags(), flagKeys...); err != nil {
				return err
			}
			if err := conf.Validate(); err != nil {
				return err
			}
			setColorProfile(conf.Color())
			return setupTracing(conf)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(conf)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "configuration file")
	pf.String(config.KeyPlaygrounds, "", "YAML file with playground definitions")
	pf.String(config.KeyStylesheet, "", "CSS file replacing the default stylesheet")
	pf.String(config.KeyColor, "auto", "color profile (auto, ascii, ansi, ansi256, truecolor)")
	root.Flags().String(config.KeySelector, config.DefaultSelector, "initial selector")
	root.Flags().Bool(config.KeyWatch, true, "reload the stylesheet file on change")
	root.AddCommand(newQueryCommand(conf), newDotCommand(conf))
	return root
}

func newQueryCommand(conf *config.Conf) *cobra.Command {
	var playground string
	var snapshot bool
	cmd := &cobra.Command{
		Use:   "query SELECTOR",
		Short: "Run a single query and print the report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(conf, cmd.OutOrStdout(), args[0], playground, snapshot)
		},
	}
	cmd.Flags().StringVarP(&playground, "playground", "p", "", "name of the playground to query (default: first)")
	cmd.Flags().BoolVarP(&snapshot, "snapshot", "s", true, "print a tree snapshot")
	return cmd
}

func newDotCommand(conf *config.Conf) *cobra.Command {
	var playground, selector string
	var styled bool
	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Print a playground as a GraphViz diagram",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDot(conf, cmd.OutOrStdout(), playground, selector, styled)
		},
	}
	cmd.Flags().StringVarP(&playground, "playground", "p", "", "name of the playground (default: first)")
	cmd.Flags().StringVar(&selector, "hits", "", "mark the widgets selected by a query")
	cmd.Flags().BoolVar(&styled, "styles", false, "include style properties")
	return cmd
}

// --- Setup -----------------------------------------------------------------

func setupTracing(conf *config.Conf) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(conf, config.KeyTraceLevels, trace2go.ReplaceTracers(true)); err != nil {
		return fmt.Errorf("configuring tracing: %w", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

func setColorProfile(name string) {
	switch name {
	case "ascii":
		lipgloss.SetColorProfile(termenv.Ascii)
	case "ansi":
		lipgloss.SetColorProfile(termenv.ANSI)
	case "ansi256":
		lipgloss.SetColorProfile(termenv.ANSI256)
	case "truecolor":
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
}

func loadScreen(conf *config.Conf) (*widget.Widget, error) {
	if path := conf.Playgrounds(); path != "" {
		return widget.LoadFile(path)
	}
	return widget.DefaultScreen(), nil
}

// controllerFor creates a controller with the named playground activated.
func controllerFor(conf *config.Conf, playground string) (*sandbox.Controller, error) {
	screen, err := loadScreen(conf)
	if err != nil {
		return nil, err
	}
	ctl, err := sandbox.NewController(screen, nil)
	if err != nil {
		return nil, err
	}
	if playground != "" {
		i := ctl.ScopeIndex(playground)
		if i < 0 {
			return nil, fmt.Errorf("no playground named %q", playground)
		}
		ctl.SwitchScope(i)
	}
	return ctl, nil
}

// --- Commands --------------------------------------------------------------

func runInteractive(conf *config.Conf) error {
	ctl, err := controllerFor(conf, "")
	if err != nil {
		return err
	}
	styler, err := sandbox.NewStyler(conf.Stylesheet())
	if err != nil {
		return err
	}
	model := sandbox.New(ctl, styler, nil, conf.Selector())
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if path := styler.Path(); path != "" && conf.Watch() {
		watcher, err := sandbox.WatchStylesheet(path, p.Send)
		if err != nil {
			tracer().Errorf("stylesheet will not be reloaded: %v", err)
		} else {
			defer watcher.Close()
		}
	}
	_, err = p.Run()
	return err
}

func runQuery(conf *config.Conf, w io.Writer, selector, playground string, snapshot bool) error {
	ctl, err := controllerFor(conf, playground)
	if err != nil {
		return err
	}
	rep := ctl.Submit(selector)
	fmt.Fprintf(w, "%s: %s (%s)\n", rep.Scope, selector, rep.Summary())
	fmt.Fprintln(w, rep.String())
	if snapshot {
		fmt.Fprintln(w)
		fmt.Fprint(w, rep.Snapshot)
	}
	if rep.IsError() {
		return fmt.Errorf("query %q failed", selector)
	}
	return nil
}

func runDot(conf *config.Conf, w io.Writer, playground, selector string, styled bool) error {
	ctl, err := controllerFor(conf, playground)
	if err != nil {
		return err
	}
	if selector != "" {
		if rep := ctl.Submit(selector); rep.IsError() {
			return fmt.Errorf("marking hits: %w", rep.Err)
		}
	}
	if !styled {
		return domdbg.ToGraphViz(ctl.Scope(), w, nil, nil)
	}
	styler, err := sandbox.NewStyler(conf.Stylesheet())
	if err != nil {
		return err
	}
	styles, err := styler.Style(ctl.Screen())
	if err != nil {
		return err
	}
	return domdbg.ToGraphViz(ctl.Scope(), w, styles, nil)
}
