// partgeom reports part masses and facing-frame bounds from vessel snapshots.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/Faultbox/partgeom/internal/config"
	"github.com/Faultbox/partgeom/internal/logger"
	"github.com/Faultbox/partgeom/internal/report"
	"github.com/Faultbox/partgeom/internal/vessel"
	"github.com/Faultbox/partgeom/pkg/part"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if cfg.Logging.TraceBounds {
		part.SetLogger(logger.Named("part"))
	}

	args := config.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	command, rest := args[0], args[1:]
	switch command {
	case "report":
		err = cmdReport(ctx, cfg, rest, cfg.Report.Format)
	case "obj":
		err = cmdReport(ctx, cfg, rest, report.FormatOBJ)
	case "mass":
		err = cmdMass(ctx, cfg, rest)
	case "bounds":
		err = cmdBounds(ctx, cfg, rest)
	case "config":
		err = cmdConfig(cfg, rest)
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`partgeom - part mass and bounds from vessel snapshots

Usage:
  partgeom [flags] <command> [args]

Commands:
  report <vessel.yaml>     Masses and bounds for every part (-format text|yaml|obj)
  mass <vessel.yaml>       Current, dry and wet mass per part
  bounds <vessel.yaml>     Facing-frame bounds per part
  obj <vessel.yaml>        Bounds as a Wavefront OBJ wireframe
  config [path]            Write the effective config (default: user config dir)

Flags:
  -config PATH    Config file
  -debug          Debug logging with per-mesh bounds tracing
  -format FORMAT  Report format
  -part NAME      Only report the named part
  -workers N      Parallel part reports (0 = one per part)
  -log-file PATH  Also log to a rotating file

Examples:
  partgeom report lander.yaml
  partgeom -format yaml -part pod report lander.yaml
  partgeom obj lander.yaml > lander.obj`)
}

// build loads the snapshot named in args and reports the selected parts.
func build(ctx context.Context, cfg *config.Config, args []string) (*report.Vessel, error) {
	if len(args) < 1 {
		return nil, fmt.Errorf("missing vessel snapshot path")
	}

	v, err := vessel.Load(args[0])
	if err != nil {
		return nil, err
	}
	logger.Info("vessel loaded", zap.String("vessel", v.Name()), zap.Int("parts", v.Len()))

	parts := v.Parts()
	if cfg.Report.Part != "" {
		p, ok := v.Find(cfg.Report.Part)
		if !ok {
			return nil, fmt.Errorf("no part named %q in %s", cfg.Report.Part, args[0])
		}
		parts = []*vessel.Part{p}
	}

	return report.ForVessel(ctx, v.Name(), parts, cfg.Report.Workers)
}

func cmdReport(ctx context.Context, cfg *config.Config, args []string, format string) error {
	r, err := build(ctx, cfg, args)
	if err != nil {
		return err
	}
	return report.Write(os.Stdout, r, format)
}

func cmdMass(ctx context.Context, cfg *config.Config, args []string) error {
	r, err := build(ctx, cfg, args)
	if err != nil {
		return err
	}

	fmt.Printf("%-20s %-5s %10s %10s %10s\n", "PART", "PHYS", "CURRENT", "DRY", "WET")
	for _, p := range r.Parts {
		fmt.Printf("%-20s %-5s %10.4f %10.4f %10.4f\n", p.Name, p.Physics, p.CurrentMass, p.DryMass, p.WetMass)
	}
	fmt.Printf("%-20s %-5s %10.4f %10.4f %10.4f\n", "TOTAL", "", r.CurrentMass, r.DryMass, r.WetMass)
	return nil
}

func cmdBounds(ctx context.Context, cfg *config.Config, args []string) error {
	r, err := build(ctx, cfg, args)
	if err != nil {
		return err
	}

	for _, p := range r.Parts {
		b := p.Bounds
		fmt.Printf("%s (%d meshes)\n", p.Name, p.Meshes)
		fmt.Printf("  center  (%.4f, %.4f, %.4f)\n", b.Center[0], b.Center[1], b.Center[2])
		fmt.Printf("  extents (%.4f, %.4f, %.4f)\n", b.Extents[0], b.Extents[1], b.Extents[2])
	}
	return nil
}

func cmdConfig(cfg *config.Config, args []string) error {
	path := config.DefaultPath()
	if len(args) > 0 {
		path = args[0]
	}
	if err := cfg.SaveTo(path); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}
