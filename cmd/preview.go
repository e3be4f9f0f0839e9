package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/abhisek/sprout/internal/engine"
	"github.com/abhisek/sprout/internal/locale"
	"github.com/abhisek/sprout/internal/problem"
	"github.com/abhisek/sprout/internal/ui/components"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print generated problems for a family (no database)",
	Long: `Generate problems for one family and print them with their choices.

This is a stateless developer tool: nothing is saved, but problems within
one run never repeat until the family's space saturates, so it shows the
eviction behavior too.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("family", string(problem.TypeCounting), "Problem family")
	previewCmd.Flags().Int("difficulty", 1, "Difficulty level (1-4)")
	previewCmd.Flags().Int("count", 5, "Number of problems to generate")
	previewCmd.Flags().Bool("metrics", false, "Print engine metrics after the problems")
}

func runPreview(cmd *cobra.Command, args []string) error {
	family, _ := cmd.Flags().GetString("family")
	d, _ := cmd.Flags().GetInt("difficulty")
	count, _ := cmd.Flags().GetInt("count")
	showMetrics, _ := cmd.Flags().GetBool("metrics")

	t := problem.Type(family)
	if !t.Valid() {
		return fmt.Errorf("unknown family %q: must be one of %s", family, familyList())
	}

	reg := prometheus.NewRegistry()
	e := newEngine(reg)
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Family: %s (level %d)\n\n", t.DisplayName(), problem.ClampDifficulty(d))
	for i := 1; i <= count; i++ {
		p, ok := e.GenerateProblem(t, d)
		if !ok {
			fmt.Fprintf(out, "Problem %d: nothing left to generate\n\n", i)
			continue
		}
		fmt.Fprintf(out, "── Problem %d/%d ──\n", i, count)
		printProblem(out, e, p)
	}

	if showMetrics {
		return writeMetrics(out, reg)
	}
	return nil
}

// printProblem writes p's visual, prompt and numbered choices.
func printProblem(w io.Writer, e *engine.Engine, p *problem.Problem) {
	lang := locale.Code(e.Language())
	fmt.Fprintln(w, components.RenderVisual(p.Visual))
	fmt.Fprintln(w, p.Prompt)
	for j, c := range p.Choices {
		mark := " "
		if c.Equal(p.Answer) {
			mark = "*"
		}
		fmt.Fprintf(w, " %s%d) %s\n", mark, j+1, c.Display(lang))
	}
	fmt.Fprintf(w, "   %s\n\n", p.Signature)
}

// writeMetrics dumps reg in the Prometheus text format.
func writeMetrics(w io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}

func familyList() string {
	names := make([]string, 0, len(problem.AllTypes()))
	for _, t := range problem.AllTypes() {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}
