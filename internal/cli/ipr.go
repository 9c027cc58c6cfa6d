// internal/cli/ipr.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newIPRCmd(o *options) *cobra.Command {
	var summaryOnly bool
	cmd := &cobra.Command{
		Use:   "ipr",
		Short: "Kurva IPR dan ringkasan (J, Qb, AOF)",
		RunE: func(cmd *cobra.Command, args []string) error {
			e := envFrom(cmd)
			out := cmd.OutOrStdout()
			if summaryOnly {
				s, err := e.analyzer.IPRSummary(e.kase.IPR)
				if err != nil {
					return err
				}
				if o.jsonOut {
					return writeJSON(out, s)
				}
				printSummary(cmd, s.Method, s.Regime, s.EfficiencyCase, s.J, s.Qb, s.AOF, s.ReferencePwf, s.Qo)
				return nil
			}

			res, err := e.analyzer.IPRCurve(e.kase.IPR)
			if err != nil {
				return err
			}
			if o.jsonOut {
				return writeJSON(out, res)
			}
			s := res.Summary
			printSummary(cmd, s.Method, s.Regime, s.EfficiencyCase, s.J, s.Qb, s.AOF, s.ReferencePwf, s.Qo)
			fmt.Fprintln(out)
			t := newTable(out, "pwf (psia)", "qo (bpd)")
			for _, p := range res.Curve.Samples {
				t.row(p.Pwf, p.Qo)
			}
			if err := t.flush(); err != nil {
				return err
			}
			if bp := res.Curve.BubblePoint; bp != nil {
				fmt.Fprintf(out, "\nbubble point: pb=%.1f psia, Qb=%.2f bpd\n", bp.Pwf, bp.Qo)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&summaryOnly, "summary", false, "hanya ringkasan tanpa tabel kurva")
	return cmd
}

func printSummary(cmd *cobra.Command, method any, regime, effCase string, j float64, qb *float64, aof, ref, qo float64) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "method:      %v\n", method)
	fmt.Fprintf(out, "reservoir:   %s\n", regime)
	fmt.Fprintf(out, "efficiency:  %s\n", effCase)
	fmt.Fprintf(out, "J:           %.4f bpd/psi\n", j)
	if qb != nil {
		fmt.Fprintf(out, "Qb:          %.2f bpd\n", *qb)
	}
	fmt.Fprintf(out, "AOF:         %.2f bpd\n", aof)
	fmt.Fprintf(out, "qo@%.0f:     %.2f bpd\n", ref, qo)
}

func newProductivityCmd(o *options) *cobra.Command {
	var regime string
	cmd := &cobra.Command{
		Use:   "productivity",
		Short: "Indeks produktivitas J dari sifat reservoir",
		RunE: func(cmd *cobra.Command, args []string) error {
			e := envFrom(cmd)
			c := e.kase.Productivity
			if regime != "" {
				c.Regime = regime
			}
			res, err := e.analyzer.Productivity(c)
			if err != nil {
				return err
			}
			if o.jsonOut {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "J (%s): %.4f bpd/psi\n", res.Regime, res.J)
			return nil
		},
	}
	cmd.Flags().StringVar(&regime, "regime", "", "pseudo-steady|steady")
	return cmd
}

// newCaseCmd mencetak kasus bawaan sebagai template YAML untuk --case.
func newCaseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "case",
		Short: "Cetak kasus efektif (YAML) sebagai template --case",
		RunE: func(cmd *cobra.Command, args []string) error {
			e := envFrom(cmd)
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			defer enc.Close()
			return enc.Encode(e.kase)
		},
	}
}
