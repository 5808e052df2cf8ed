package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/contsim/internal/compute"
	"github.com/san-kum/contsim/internal/config"
	"github.com/san-kum/contsim/internal/engine"
	"github.com/san-kum/contsim/internal/integrators"
	"github.com/san-kum/contsim/internal/metrics"
	"github.com/san-kum/contsim/internal/sim"
	"github.com/san-kum/contsim/internal/store"
	"github.com/san-kum/contsim/internal/tui"
)

var (
	configFile  string
	preset      string
	dt          float64
	duration    float64
	backendName string
	outPath     string
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(16)
	valStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "contsim",
		Short: "continuity restraint simulation lab",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a scenario and plot its energy trace",
		RunE:  runScenario,
	}
	addScenarioFlags(runCmd)

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "run a scenario and export the results as JSON",
		RunE:  exportScenario,
	}
	addScenarioFlags(exportCmd)
	exportCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run a scenario with a live energy view",
		RunE:  runLive,
	}
	addScenarioFlags(liveCmd)

	backendsCmd := &cobra.Command{
		Use:   "backends",
		Short: "list compute backends",
		RunE:  listBackends,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in scenarios",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(runCmd, exportCmd, liveCmd, backendsCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addScenarioFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "scenario file (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "pair", "built-in scenario")
	cmd.Flags().Float64Var(&dt, "dt", 0, "timestep override")
	cmd.Flags().Float64Var(&duration, "time", 0, "duration override")
	cmd.Flags().StringVar(&backendName, "backend", "", "compute backend override")
}

func loadScenario() (*config.Config, error) {
	var cfg *config.Config
	var err error
	if configFile != "" {
		cfg, err = config.Load(configFile)
	} else {
		cfg, err = config.Preset(preset)
	}
	if err != nil {
		return nil, err
	}
	if dt > 0 {
		cfg.Dt = dt
	}
	if duration > 0 {
		cfg.Duration = duration
	}
	if backendName != "" {
		cfg.Backend = backendName
	}
	return cfg, nil
}

func buildContext(cfg *config.Config) (*engine.Context, error) {
	sys, _, err := cfg.BuildSystem()
	if err != nil {
		return nil, err
	}
	reg := compute.DefaultRegistry()
	backend, err := reg.Lookup(cfg.Backend)
	if err != nil {
		return nil, err
	}
	ctx, err := engine.NewContext(sys, integrators.NewVelocityVerlet(), backend)
	if err != nil {
		return nil, err
	}
	if err := ctx.SetPositions(cfg.InitialPositions()); err != nil {
		return nil, err
	}
	return ctx, nil
}

func runResult(cfg *config.Config) (*sim.Result, *engine.Context, error) {
	ctx, err := buildContext(cfg)
	if err != nil {
		return nil, nil, err
	}
	runner := sim.New(ctx)
	runner.AddMetric(metrics.NewPotentialEnergy())
	runner.AddMetric(metrics.NewEnergyDrift())
	result, err := runner.Run(context.Background(), sim.Config{Dt: cfg.Dt, Duration: cfg.Duration})
	if err != nil {
		return nil, nil, err
	}
	return result, ctx, nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario()
	if err != nil {
		return err
	}
	result, _, err := runResult(cfg)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("contsim — %s", cfg.Name)))
	if len(result.Energies) > 1 {
		graph := asciigraph.Plot(result.Energies,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("potential energy (kJ/mol)"),
		)
		fmt.Println(graph)
	}

	fmt.Println(keyStyle.Render("backend") + valStyle.Render(cfg.Backend))
	fmt.Println(keyStyle.Render("steps") + valStyle.Render(fmt.Sprintf("%d", result.StepsTaken)))
	fmt.Println(keyStyle.Render("final energy") + valStyle.Render(fmt.Sprintf("%.6f kJ/mol", result.Energies[len(result.Energies)-1])))
	for name, value := range result.Metrics {
		fmt.Println(keyStyle.Render(name) + valStyle.Render(fmt.Sprintf("%.6f", value)))
	}
	return nil
}

func exportScenario(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario()
	if err != nil {
		return err
	}
	result, ctx, err := runResult(cfg)
	if err != nil {
		return err
	}
	st, err := ctx.State(engine.WantForces)
	if err != nil {
		return err
	}

	if outPath == "" {
		return store.ExportJSONStdout(cfg.Name, cfg.Backend, cfg.Dt, cfg.Duration, result, st.Forces)
	}
	return store.ExportJSON(outPath, cfg.Name, cfg.Backend, cfg.Dt, cfg.Duration, result, st.Forces)
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario()
	if err != nil {
		return err
	}
	ctx, err := buildContext(cfg)
	if err != nil {
		return err
	}
	program := tea.NewProgram(tui.NewModel(ctx, cfg.Name, cfg.Dt, cfg.Duration))
	_, err = program.Run()
	return err
}

func listBackends(cmd *cobra.Command, args []string) error {
	reg := compute.DefaultRegistry()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tAVAILABLE")
	for _, name := range reg.Names() {
		b, err := reg.Lookup(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%v\n", b.Name(), b.Available())
	}
	return w.Flush()
}
