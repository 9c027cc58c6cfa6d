// internal/cli/nodal.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVLPCmd(o *options) *cobra.Command {
	var grid string
	cmd := &cobra.Command{
		Use:   "vlp",
		Short: "Tabel VLP (outflow) tubing per laju",
		RunE: func(cmd *cobra.Command, args []string) error {
			e := envFrom(cmd)
			c := e.kase.Nodal
			if grid != "" {
				c.Grid = grid
			}
			rows, err := e.analyzer.VLP(c)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if o.jsonOut {
				return writeJSON(out, rows)
			}
			fmt.Fprintf(out, "gradient: %.4f psi/ft\n\n", c.Well().Fluid.Gradient())
			t := newTable(out, "q (bpd)", "THP", "Pgravity", "f", "F (ft)", "Pf", "Pwf")
			for _, r := range rows {
				t.row(r.Q, r.THP, r.Pgravity, fmt.Sprintf("%.5f", r.FrictionFactor), r.FrictionHead, r.FrictionLoss, r.Pwf)
			}
			return t.flush()
		},
	}
	cmd.Flags().StringVar(&grid, "grid", "", "linspace|reference")
	return cmd
}

func newNodalCmd(o *options) *cobra.Command {
	var (
		grid    string
		explain bool
	)
	cmd := &cobra.Command{
		Use:   "nodal",
		Short: "Analisis nodal: IPR vs VLP dan titik operasi",
		RunE: func(cmd *cobra.Command, args []string) error {
			e := envFrom(cmd)
			c := e.kase.Nodal
			if grid != "" {
				c.Grid = grid
			}
			res, err := e.analyzer.Nodal(c)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if o.jsonOut {
				if !explain {
					return writeJSON(out, res)
				}
				ex := e.narrator().Explain(cmd.Context(), res)
				return writeJSON(out, map[string]any{"result": res, "explanation": ex})
			}

			fmt.Fprintf(out, "method: %s, grid: %s (0..%.0f bpd)\n\n", res.Method, res.Grid, res.MaxRate)
			t := newTable(out, "q (bpd)", "Pwf IPR", "Pwf VLP", "Psys")
			for _, p := range res.Curve.Points {
				t.row(p.Q, p.PwfInflow, p.PwfOutflow, p.PSystem)
			}
			if err := t.flush(); err != nil {
				return err
			}
			cl := res.Curve.Closest
			fmt.Fprintf(out, "\nclosest: q=%.2f bpd, pwf=%.2f psia (gap %.2f psi)\n", cl.Q, cl.Pwf, cl.Gap)
			if ip := res.Curve.Intersection; ip != nil {
				fmt.Fprintf(out, "operating point: q=%.2f bpd, pwf=%.2f psia\n", ip.Q, ip.Pwf)
			} else {
				fmt.Fprintln(out, "operating point: none on this grid")
			}
			if explain {
				ex := e.narrator().Explain(cmd.Context(), res)
				fmt.Fprintf(out, "\n[%s] %s\n", ex.Source, ex.Text)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&grid, "grid", "", "linspace|reference")
	cmd.Flags().BoolVar(&explain, "explain", false, "tambahkan narasi hasil")
	return cmd
}
