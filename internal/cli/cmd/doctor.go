package cmd

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/dockyard/internal/bootstrap"
	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/editor"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the stored layout of every editor",
	Long: `Doctor loads the stored layout of every editor and reports whether it
is usable. A layout with an unsupported version or a broken tree is rejected
and the editor falls back to its default layout.

Examples:
  dockyard doctor`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	ctx := app.Ctx()
	presets := editor.All()
	checks := make([]styles.DoctorEditorCheck, len(presets))
	timer := bootstrap.NewPhaseTimer()

	g, gctx := errgroup.WithContext(ctx)
	for i, preset := range presets {
		g.Go(func() error {
			started := time.Now()
			defer func() { timer.MarkDuration(string(preset.Kind), time.Since(started)) }()

			check := styles.DoctorEditorCheck{
				Editor:     string(preset.Kind),
				StorageKey: string(preset.StorageKey),
			}

			snap, err := app.Engine.Repo.Get(gctx, preset.StorageKey)
			if err != nil {
				// A broken database is reported per editor, not fatal.
				check.Error = err.Error()
				checks[i] = check
				return nil
			}
			check.Stored = snap != nil

			out := app.Engine.PersistUC.Load(gctx, preset.StorageKey, preset.DefaultLayout())
			check.FromDefault = out.FromDefault
			check.PanelCount = out.State.Root.LeafCount()
			check.FloatingCount = len(out.State.FloatingWindows)
			checks[i] = check
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	timer.Log(ctx, zerolog.DebugLevel)

	report := styles.DoctorReport{
		OverallOK:    true,
		Version:      app.BuildInfo.String(),
		DatabasePath: app.Engine.DatabasePath(),
		ConfigFile:   app.ConfigManager.GetConfigFile(),
		Editors:      checks,
	}
	for _, c := range checks {
		if !c.OK() {
			report.OverallOK = false
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), styles.NewDoctorRenderer(app.Theme).Render(report))
	if !report.OverallOK {
		return fmt.Errorf("doctor found problems")
	}
	return nil
}
