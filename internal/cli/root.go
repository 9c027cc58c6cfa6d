// internal/cli/root.go
// CLI nodalctl: kalkulasi IPR/VLP/nodal dari file kasus YAML tanpa server/DB.

package cli

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"nodal-oilgas/internal/config"
	"nodal-oilgas/internal/llm"
	"nodal-oilgas/internal/services"
	"nodal-oilgas/internal/util"
)

// BuildVersion diisi saat ldflags
var BuildVersion = "dev"

type options struct {
	casePath string
	jsonOut  bool
	logLevel string
	method   string
}

// env menyatukan dependency per-eksekusi (dibangun di PersistentPreRunE).
type env struct {
	cfg      *config.Config
	log      *slog.Logger
	kase     config.Case
	analyzer *services.Analyzer
}

func (o *options) load(cmd *cobra.Command) (*env, error) {
	cfg := config.Load()
	log := util.NewLoggerTo(cmd.ErrOrStderr(), "text", o.logLevel)
	kase, err := config.LoadCase(o.casePath)
	if err != nil {
		return nil, err
	}
	if o.method != "" {
		kase.IPR.Method = o.method
		kase.Nodal.Method = o.method
	}
	return &env{cfg: cfg, log: log, kase: kase, analyzer: services.NewAnalyzer(cfg.Analysis, log, nil)}, nil
}

// narrator memakai LLM bila OPENAI_API_KEY ada, selain itu ekstraktif.
func (e *env) narrator() *services.Narrator {
	client, err := llm.New(e.cfg.LLM)
	if err != nil {
		return &services.Narrator{Log: e.log}
	}
	return &services.Narrator{Client: client, Log: e.log}
}

type envKey struct{}

func envFrom(cmd *cobra.Command) *env {
	return cmd.Context().Value(envKey{}).(*env)
}

// NewRootCmd membangun pohon command; dipisah dari Execute agar bisa diuji.
func NewRootCmd() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:           "nodalctl",
		Short:         "IPR / VLP / nodal analysis for oil wells",
		Long:          `Hitung kurva IPR (Darcy, Vogel, Standing, Composite), tabel VLP tubing dan titik operasi nodal dari file kasus YAML.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       BuildVersion,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			e, err := o.load(cmd)
			if err != nil {
				return err
			}
			cmd.SetContext(context.WithValue(cmd.Context(), envKey{}, e))
			return nil
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&o.casePath, "case", "", "file kasus YAML (default: kasus bawaan)")
	pf.BoolVar(&o.jsonOut, "json", false, "output JSON")
	pf.StringVar(&o.logLevel, "log-level", "warn", "debug|info|warn|error")
	pf.StringVar(&o.method, "method", "", "override metode IPR: Darcy|Vogel|Standing|Composite")

	root.AddCommand(
		newIPRCmd(o),
		newProductivityCmd(o),
		newVLPCmd(o),
		newNodalCmd(o),
		newCaseCmd(),
	)
	return root
}

// Execute dipanggil dari cmd/nodalctl.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
