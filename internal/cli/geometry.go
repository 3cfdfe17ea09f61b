package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/edward-ap/stepslider/internal/geometry"
	"github.com/edward-ap/stepslider/internal/preview"
	"github.com/edward-ap/stepslider/internal/ui"
)

// geometryReport is the --json output of the geometry command.
type geometryReport struct {
	Anchor         string  `json:"anchor"`
	Value          int     `json:"value"`
	StepCount      int     `json:"stepCount"`
	TrackWidth     float64 `json:"trackWidth"`
	TrackDrawWidth float64 `json:"trackDrawWidth"`
	OptionWidth    float64 `json:"optionWidth"`
	TailWidth      float64 `json:"tailWidth"`
	TailDrawWidth  float64 `json:"tailDrawWidth"`
	TailOffset     float64 `json:"tailOffset"`
}

type geometryOpts struct {
	options   int
	labels    []string
	width     float64
	anchor    string
	value     int
	tailColor string
	asJSON    bool
	preview   bool
	columns   int
}

func newGeometryCmd() *cobra.Command {
	var opts geometryOpts

	cmd := &cobra.Command{
		Use:   "geometry",
		Short: "Print the layout of a slider",
		Example: `  stepslider geometry --options 5 --value 2
  stepslider geometry --labels poor,ok,good --anchor center --preview`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGeometry(cmd, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.options, "options", "n", 5, "number of options (ignored when --labels is set)")
	cmd.Flags().StringSliceVar(&opts.labels, "labels", nil, "comma separated option labels")
	cmd.Flags().Float64VarP(&opts.width, "width", "w", geometry.DefaultTotalWidth, "total slider width")
	cmd.Flags().StringVarP(&opts.anchor, "anchor", "a", ui.DefaultAnchor, "tail anchor: left or center")
	cmd.Flags().IntVar(&opts.value, "value", 0, "selected step index")
	cmd.Flags().StringVar(&opts.tailColor, "tail-color", ui.DefaultTailColor, "tail color for --preview")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print JSON")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "draw the slider in the terminal")
	cmd.Flags().IntVar(&opts.columns, "columns", 60, "terminal columns used by --preview")
	return cmd
}

func runGeometry(cmd *cobra.Command, opts geometryOpts) error {
	logger := loggerFromContext(cmd.Context())

	labels := opts.labels
	if labels == nil {
		if opts.options < 0 {
			return fmt.Errorf("--options must not be negative, got %d", opts.options)
		}
		labels = make([]string, opts.options)
		for i := range labels {
			labels[i] = strconv.Itoa(i + 1)
		}
	}

	props, err := ui.Props{
		Options:       labels,
		Value:         opts.value,
		Anchor:        opts.anchor,
		TailColor:     opts.tailColor,
		Width:         opts.width,
		OnValueChange: func(int) {},
	}.Resolve()
	if err != nil {
		return err
	}

	g := geometry.Compute(props.GeometryConfig(), opts.value)
	if opts.value < 0 || opts.value > g.StepCount {
		logger.Warn("value outside the slider range; layout is not clamped", "value", opts.value, "steps", g.StepCount)
	}
	logger.Debug("computed geometry", "geometry", fmt.Sprintf("%+v", g))

	out := cmd.OutOrStdout()
	report := geometryReport{
		Anchor:         props.Anchor.String(),
		Value:          opts.value,
		StepCount:      g.StepCount,
		TrackWidth:     g.TrackWidth,
		TrackDrawWidth: g.TrackDrawWidth(),
		OptionWidth:    g.OptionWidth,
		TailWidth:      g.TailWidth,
		TailDrawWidth:  g.TailDrawWidth(),
		TailOffset:     g.TailOffset,
	}
	if opts.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	} else {
		writeReport(out, report)
	}

	if opts.preview {
		fmt.Fprintln(out)
		fmt.Fprintln(out, preview.Render(props, opts.value, opts.columns))
	}
	return nil
}

func writeReport(w io.Writer, r geometryReport) {
	fmt.Fprintf(w, "anchor:        %s\n", r.Anchor)
	fmt.Fprintf(w, "value:         %d of %d steps\n", r.Value, r.StepCount)
	fmt.Fprintf(w, "track width:   %g (drawn %g)\n", r.TrackWidth, r.TrackDrawWidth)
	fmt.Fprintf(w, "option width:  %g\n", r.OptionWidth)
	fmt.Fprintf(w, "tail width:    %g (drawn %g)\n", r.TailWidth, r.TailDrawWidth)
	fmt.Fprintf(w, "tail offset:   %g\n", r.TailOffset)
}
