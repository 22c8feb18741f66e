package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/casworth/xsect/pkg/brep"
	"github.com/casworth/xsect/pkg/brep/mem"
	"github.com/casworth/xsect/pkg/engine"
	"github.com/casworth/xsect/pkg/profile"
	"github.com/spf13/cobra"
)

var classifyJSON bool

// partReport is the per-stock output row.
type partReport struct {
	Name           string  `json:"name"`
	Shape          string  `json:"shape"`
	CrossSection   string  `json:"cross_section"`
	WallThickness  float64 `json:"wall_thickness"`
	MaterialLength float64 `json:"material_length"`
	CutLength      float64 `json:"cut_length"`
	Holes          int     `json:"holes"`
}

var classifyCmd = &cobra.Command{
	Use:   "classify <job.lisp>",
	Short: "Classify the cross-section of every stock body in a job script",
	Long: `Evaluate a stock-definition script and classify each registered body.

The script registers bodies with (stock "name" ...) forms, for example:

  (stock "frame-rail"
    (rect-tube :width 4 :height 2 :wall 0.125 :length 12))

  (stock "bushing"
    (drill (round-tube :od 2 :wall 0.25 :length 10) :dia 0.5 :at 5))

Cut length is the aggregate length of the cut-perimeter and hole edges.
A part the classifier cannot place is reported as unclassified, not as
an error.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		job, evalErrs, err := engine.NewEngine().Evaluate(string(src))
		if err != nil {
			return fmt.Errorf("evaluating %s: %w", args[0], err)
		}
		if len(evalErrs) > 0 {
			for _, e := range evalErrs {
				fmt.Fprintf(os.Stderr, "%s: %s\n", args[0], e.Error())
			}
			return fmt.Errorf("%d error(s) in job script", len(evalErrs))
		}

		reports := make([]partReport, 0, len(job.Stocks))
		for _, st := range job.Stocks {
			// One session per body: measurement sessions are not shared.
			sess := mem.NewSession()
			res := profile.NewFaceSet(sess, st.Body).Classify()

			machined := append([]brep.Edge(nil), res.CutEdges...)
			machined = append(machined, res.HoleEdges...)

			shape := res.Shape.String()
			if res.Shape == profile.ShapeNone {
				shape = "unclassified"
			}
			reports = append(reports, partReport{
				Name:           st.Name,
				Shape:          shape,
				CrossSection:   res.CrossSection,
				WallThickness:  res.WallThickness,
				MaterialLength: res.MaterialLength,
				CutLength:      sess.TotalLength(machined),
				Holes:          res.HoleCount,
			})
		}

		if classifyJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(reports)
		}

		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tSHAPE\tSECTION\tWALL\tLENGTH\tCUT\tHOLES")
		for _, r := range reports {
			fmt.Fprintf(w, "%s\t%s\t%s\t%.4g\t%.4g\t%.4g\t%d\n",
				r.Name, r.Shape, r.CrossSection, r.WallThickness,
				r.MaterialLength, r.CutLength, r.Holes)
		}
		return w.Flush()
	},
}

func init() {
	classifyCmd.Flags().BoolVar(&classifyJSON, "json", false, "emit results as JSON")
	rootCmd.AddCommand(classifyCmd)
}
