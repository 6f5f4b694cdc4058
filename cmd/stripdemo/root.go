package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"stripkit/internal/config"
	"stripkit/internal/selstore"
	"stripkit/internal/strip"
	"stripkit/internal/telemetry"
	"stripkit/internal/ui"
)

const shutdownTimeout = 5 * time.Second

func newRootCmd() *cobra.Command {
	var cfgFile string
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "stripdemo",
		Short: "Browse sections through an animated selectable strip",
		Long: `stripdemo shows a row of sections as a selectable strip with an animated indicator.
Click a tab or use left/right, 1-9, home/end to switch sections. SPC opens the command
menu for changing the layout style, indicator shape and edge while running.

Settings come from flags, STRIPDEMO_* environment variables and $HOME/.stripdemo.toml,
in that order of precedence.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return config.BindFlags(v, cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := config.Load(v, cfgFile)
			if err != nil {
				return err
			}
			return run(cmd.Context(), s)
		},
	}
	cmd.Flags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.stripdemo.toml)")
	config.RegisterFlags(cmd.Flags())
	return cmd
}

func run(ctx context.Context, s config.Settings) error {
	if s.LogFile != "" {
		f, err := tea.LogToFile(s.LogFile, "stripdemo")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		// stray log lines would corrupt the alt screen
		log.SetOutput(io.Discard)
	}

	sections := ui.NewSections(s.Sections)
	cfg, err := config.StripConfig(s, strip.DefaultConfig[ui.Section]())
	if err != nil {
		return err
	}

	opts := ui.Options{
		Sections:   sections,
		Config:     cfg,
		MaxVisible: s.MaxVisible,
	}

	if s.StateDB != "" {
		store, err := selstore.Open(s.StateDB)
		if err != nil {
			return err
		}
		defer store.Close()
		b, err := store.Binding(ui.StripName, 0)
		if err != nil {
			return err
		}
		if b.Get() < 0 || b.Get() >= len(sections) {
			log.Printf("saved section %d out of range, starting at 0", b.Get())
			b.Set(0)
		}
		opts.Selection = b
	}

	rec, err := telemetry.NewOTLPRecorder(ctx)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := rec.Shutdown(sctx); err != nil {
			log.Printf("stripdemo: %v", err)
		}
	}()
	opts.Recorder = rec

	model := ui.NewAppModel(opts)
	p := tea.NewProgram(model.AsTeaModel(),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
