package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/xtding233/gacha-sim/cmd/gachasim/expect"
	"github.com/xtding233/gacha-sim/cmd/gachasim/likelihood"
	"github.com/xtding233/gacha-sim/cmd/gachasim/plot"
	"github.com/xtding233/gacha-sim/cmd/gachasim/prompt"
	"github.com/xtding233/gacha-sim/internal/config"
	"github.com/xtding233/gacha-sim/internal/gacha"
)

var (
	cfgDir  string
	profile string
	root    = &cobra.Command{
		Use:          "gachasim",
		Short:        "Estimate draws needed for featured copies on a pity banner",
		SilenceUsage: true,
		RunE:         runInteractive,
	}
)

type paramsCmd func(*cobra.Command, []string, *config.Params) error

var runners = map[config.Mode]paramsCmd{
	config.ModeExpectation: expect.Run,
	config.ModeLikelihood:  likelihood.Run,
	config.ModePlot:        plot.Run,
}

func cmdWrap(cmd *cobra.Command, mode config.Mode, fn paramsCmd) *cobra.Command {
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		o := overrides()
		m := string(mode)
		o.Mode = &m
		p, err := resolve(o)
		if err != nil {
			return err
		}
		return start(cmd, args, p, fn)
	}
	return cmd
}

// runInteractive prompts for the run parameters when no subcommand is given.
func runInteractive(cmd *cobra.Command, args []string) error {
	o := overrides()
	defaults, err := resolve(o)
	if err != nil {
		return err
	}
	if err := prompt.Ask(defaults, &o); err != nil {
		return err
	}
	p, err := resolve(o)
	if err != nil {
		return err
	}
	fn, ok := runners[p.Mode]
	if !ok {
		return fmt.Errorf("%w %q", config.ErrUnknownMode, p.Mode)
	}
	return start(cmd, args, p, fn)
}

func resolve(o config.Overrides) (*config.Params, error) {
	_, p, err := config.NewLoader(cfgDir).Resolve(profile, o)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// start attaches a run logger to the command context and runs fn.
func start(cmd *cobra.Command, args []string, p *config.Params, fn paramsCmd) error {
	if p.Seed == 0 {
		p.Seed = gacha.NewSeed()
	}
	l, err := newLogger(p.Verbose)
	if err != nil {
		return err
	}
	defer l.Sync()
	l = l.With(zap.String("run_id", uuid.NewString()))
	l.Info("run starting",
		zap.String("mode", string(p.Mode)),
		zap.Int("target", p.Target),
		zap.Int("trials", p.Trials),
		zap.Bool("ten_draw", p.TenDraw),
		zap.Uint64("seed", p.Seed),
		zap.String("config_version", p.Version))

	cmd.SetContext(ctxzap.ToContext(cmd.Context(), l))
	return fn(cmd, args, p)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// overrides collects flags and GACHASIM_* env vars that were explicitly set.
func overrides() config.Overrides {
	var o config.Overrides
	if viper.IsSet("target") {
		v := viper.GetInt("target")
		o.Target = &v
	}
	if viper.IsSet("trials") {
		v := viper.GetInt("trials")
		o.Trials = &v
	}
	if viper.IsSet("ten-draw") {
		v := viper.GetBool("ten-draw")
		o.TenDraw = &v
	}
	if viper.IsSet("scan-max") {
		v := viper.GetInt("scan-max")
		o.ScanMax = &v
	}
	if viper.IsSet("workers") {
		v := viper.GetInt("workers")
		o.Workers = &v
	}
	if viper.IsSet("seed") {
		v := viper.GetUint64("seed")
		o.Seed = &v
	}
	if viper.IsSet("verbose") {
		v := viper.GetBool("verbose")
		o.Verbose = &v
	}
	if viper.IsSet("out") {
		v := viper.GetString("out")
		o.OutDir = &v
	}
	return o
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := root.PersistentFlags()
	pf.StringVarP(&cfgDir, "config", "c", "configs", "config directory (default.yaml, profiles/)")
	pf.StringVar(&profile, "profile", "", "profile under <config>/profiles")
	pf.Int("target", config.DefaultTarget, "featured copies wanted")
	pf.Int("trials", config.DefaultTrials, "trials per estimate")
	pf.Bool("ten-draw", config.DefaultTenDraw, "use ten-draws while pity allows")
	pf.Int("scan-max", config.DefaultScanMax, "largest draw budget in the likelihood scan")
	pf.Int("workers", 0, "concurrent workers (0 = one per CPU)")
	pf.Uint64("seed", 0, "run seed (0 = random)")
	pf.BoolP("verbose", "v", false, "log every rare draw")
	pf.String("out", config.DefaultOutDir, "output directory")

	for _, name := range []string{"target", "trials", "ten-draw", "scan-max", "workers", "seed", "verbose", "out"} {
		cobra.CheckErr(viper.BindPFlag(name, pf.Lookup(name)))
	}

	root.AddCommand(cmdWrap(expect.Cmd, config.ModeExpectation, expect.Run))
	root.AddCommand(cmdWrap(likelihood.Cmd, config.ModeLikelihood, likelihood.Run))
	root.AddCommand(cmdWrap(plot.Cmd, config.ModePlot, plot.Run))
}

func initConfig() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		cobra.CheckErr(err)
	}
	viper.SetEnvPrefix("GACHASIM")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := root.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
