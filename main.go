package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/openclaw/qrgen/api"
	"github.com/openclaw/qrgen/config"
	"github.com/openclaw/qrgen/qr"
	"github.com/openclaw/qrgen/store"
	"github.com/openclaw/qrgen/theme"
	"github.com/openclaw/qrgen/tui"
	"github.com/openclaw/qrgen/workflow"
)

var version = "v0.1.0"

func main() {
	var configPath string
	root := &cobra.Command{
		Use:          "qrgen",
		Short:        "Generate and download QR codes for web addresses",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to config file")

	// --- serve command -------------------------------------------------------
	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Serve the QR code generator web UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(configPath)
		},
	})

	// --- tui command ---------------------------------------------------------
	root.AddCommand(&cobra.Command{
		Use:   "tui",
		Short: "Run the QR code generator in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(configPath)
		},
	})

	// --- generate command ----------------------------------------------------
	var name, outDir string
	generateCmd := &cobra.Command{
		Use:   "generate [url]",
		Short: "Generate a QR code and optionally save it as <name>.png",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.OutOrStdout(), configPath, args[0], name, outDir)
		},
	}
	generateCmd.Flags().StringVarP(&name, "name", "n", "", "File name to save the PNG under (without extension)")
	generateCmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (defaults to output_dir from config)")
	root.AddCommand(generateCmd)

	// --- history command -----------------------------------------------------
	var limit int
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List saved QR codes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd.OutOrStdout(), configPath, limit)
		},
	}
	historyCmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of entries (defaults to history.limit)")
	root.AddCommand(historyCmd)

	// --- status command ------------------------------------------------------
	var statusAddr string
	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Check a running server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd.OutOrStdout(), statusAddr)
		},
	}
	statusCmd.Flags().StringVar(&statusAddr, "addr", "http://localhost:8556", "Server HTTP address")
	root.AddCommand(statusCmd)

	// --- version command -----------------------------------------------------
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "qrgen %s\n", version)
		},
	})

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// app is the shared wiring of every command that drives the workflow.
type app struct {
	cfg     *config.Config
	log     *slog.Logger
	history *store.History
}

func loadConfig(configPath string) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.EnsureDataDir(); err != nil {
		return nil, fmt.Errorf("ensure data dir: %w", err)
	}
	return cfg, nil
}

func setup(cfg *config.Config, logOut io.Writer) (*app, error) {
	log := newLogger(cfg.LogLevel, logOut)
	slog.SetDefault(log)

	mode, err := theme.ParseMode(cfg.Theme)
	if err != nil {
		return nil, fmt.Errorf("parse theme: %w", err)
	}
	theme.Global.Set(mode)

	a := &app{cfg: cfg, log: log}
	if cfg.History.Enabled {
		a.history, err = store.OpenHistory(cfg.HistoryPath())
		if err != nil {
			return nil, fmt.Errorf("open history: %w", err)
		}
	}
	return a, nil
}

func (a *app) close() {
	if a.history != nil {
		a.history.Close()
	}
}

// controller builds a workflow controller whose saves go to savers and, when
// enabled, the history log.
func (a *app) controller(savers ...workflow.Saver) (*workflow.Controller, error) {
	level, err := qr.ParseLevel(a.cfg.QR.RecoveryLevel)
	if err != nil {
		return nil, fmt.Errorf("parse recovery level: %w", err)
	}
	if a.history != nil {
		savers = append(savers, a.history)
	}
	return workflow.NewController(qr.NewEncoder(a.cfg.QR.Size, level), theme.Global, a.log, savers...), nil
}

func newLogger(level string, out io.Writer) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: logLevel}))
}

// runServe wires the controller into the HTTP server and blocks until a
// shutdown signal arrives.
func runServe(configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	a, err := setup(cfg, os.Stdout)
	if err != nil {
		return err
	}
	defer a.close()

	ctrl, err := a.controller()
	if err != nil {
		return err
	}

	a.log.Info("starting qrgen", "version", version, "port", a.cfg.Port, "data_dir", a.cfg.DataDir, "history", a.cfg.History.Enabled)

	srv := &http.Server{
		Addr: fmt.Sprintf(":%d", a.cfg.Port),
		Handler: api.NewRouter(&api.Server{
			Controller:   ctrl,
			History:      a.history,
			HistoryLimit: a.cfg.History.Limit,
			Log:          a.log,
			Version:      version,
			StartTime:    time.Now(),
		}),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("HTTP server listening", "addr", srv.Addr, "url", fmt.Sprintf("http://localhost:%d/", a.cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	}

	a.log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout.Duration)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.log.Error("HTTP server shutdown error", "error", err)
	}

	a.log.Info("goodbye")
	return nil
}

// runTUI runs the terminal host. Logs go to a file in the data dir so they do
// not draw over the screen.
func runTUI(configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	logFile, err := os.OpenFile(filepath.Join(cfg.DataDir, "qrgen.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()

	a, err := setup(cfg, logFile)
	if err != nil {
		return err
	}
	defer a.close()

	ctrl, err := a.controller(store.Files{Dir: a.cfg.OutputDir})
	if err != nil {
		return err
	}
	return tui.Run(ctrl)
}

// runGenerate submits address and, when name is set, drives the download
// prompt to write <name>.png.
func runGenerate(out io.Writer, configPath, address, name, outDir string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	a, err := setup(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer a.close()

	if outDir == "" {
		outDir = a.cfg.OutputDir
	}
	files := &checkedSaver{Saver: store.Files{Dir: outDir}}
	ctrl, err := a.controller(files)
	if err != nil {
		return err
	}

	ctx := context.Background()
	snap, _ := ctrl.Dispatch(ctx, workflow.Submit{Text: address})
	if snap.Phase != workflow.PhaseGenerated {
		return errors.New(snap.Error)
	}

	if art := ctrl.Artifact(); art != nil {
		fmt.Fprint(out, qr.Text(art.Modules, false))
	}

	if name == "" {
		return nil
	}

	ctrl.Dispatch(ctx, workflow.RequestDownload{})
	snap, _ = ctrl.Dispatch(ctx, workflow.EditFilename{Raw: name})
	if snap.Filename == "" {
		return fmt.Errorf("file name %q has no usable characters (allowed: A-Z a-z 0-9 _ -)", name)
	}
	filename := snap.Filename + ".png"
	if _, cmds := ctrl.Dispatch(ctx, workflow.ConfirmDownload{}); len(cmds) == 0 {
		return fmt.Errorf("download of %s was not committed", filename)
	}
	if files.err != nil {
		return fmt.Errorf("save %s: %w", filename, files.err)
	}

	fmt.Fprintf(out, "saved %s\n", filepath.Join(outDir, filename))
	return nil
}

// checkedSaver remembers the error of the last save. The workflow only logs
// save failures, but a one-shot command has to report them.
type checkedSaver struct {
	workflow.Saver
	err error
}

func (c *checkedSaver) Save(ctx context.Context, artifact *workflow.Artifact, filename string) error {
	c.err = c.Saver.Save(ctx, artifact, filename)
	return c.err
}

func runHistory(out io.Writer, configPath string, limit int) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	a, err := setup(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer a.close()

	if a.history == nil {
		return errors.New("history is disabled in config")
	}
	if limit <= 0 {
		limit = a.cfg.History.Limit
	}

	records, err := a.history.List(context.Background(), limit)
	if err != nil {
		return err
	}
	for _, r := range records {
		saved := time.UnixMilli(r.SavedAt).Format(time.DateTime)
		fmt.Fprintf(out, "%s  %-24s  %s\n", saved, r.Filename, r.Address)
	}
	return nil
}

// runStatus queries the server status endpoint.
func runStatus(out io.Writer, addr string) error {
	resp, err := http.Get(addr + "/status")
	if err != nil {
		return fmt.Errorf("failed to reach server at %s: %w", addr, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read status: %w", err)
	}
	fmt.Fprintln(out, string(body))
	return nil
}
