package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"sonard/internal/catalog"
	"sonard/internal/discovery"
	"sonard/pkg/types"
)

type queryOptions struct {
	tags       []string
	query      string
	transcript string
	selects    []string
	output     string
}

func newQueryCmd(opts *Options) *cobra.Command {
	qo := &queryOptions{}
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Evaluate filters and selection against a catalog and print the view",
		Example: `  sonard query --tag energetic
  sonard query --q music -o json
  sonard query --select 3 --catalog ./events.toml`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			switch qo.output {
			case "table", "json":
				return nil
			}
			return fmt.Errorf("--output must be table or json, got %q", qo.output)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			sup, err := buildSupplier(opts.Config, opts.Logger)
			if err != nil {
				return err
			}
			events, err := sup.Load(cmd.Context())
			if err != nil {
				return err
			}
			cat, err := catalog.New(events)
			if err != nil {
				return err
			}
			v, err := runQuery(cat, opts.Config.CarouselStepPx, qo)
			if err != nil {
				return err
			}
			if qo.output == "json" {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(v)
			}
			printView(cmd.OutOrStdout(), v)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringSliceVar(&qo.tags, "tag", nil, "Active tag filter (repeatable or comma-separated)")
	f.StringVar(&qo.query, "q", "", "Free-text query")
	f.StringVar(&qo.transcript, "voice", "", "Voice transcript applied after --q")
	f.StringSliceVar(&qo.selects, "select", nil, "Event ids to select, in order (repeat an id to toggle it off)")
	f.StringVarP(&qo.output, "output", "o", "table", "Output format: table|json")
	return cmd
}

// runQuery replays the flags through a session in the order a user would:
// tags, typed query, voice, then selections.
func runQuery(cat *catalog.Catalog, step float64, qo *queryOptions) (types.View, error) {
	s := discovery.NewSession(cat, step)
	s.SetTags(qo.tags)
	s.SetQuery(qo.query)
	s.Transcript(qo.transcript)
	for _, id := range qo.selects {
		if s.Select(id) == discovery.TransitionIgnored {
			return types.View{}, fmt.Errorf("event not found: %s", id)
		}
	}
	return s.View(), nil
}

func printView(w io.Writer, v types.View) {
	bold := color.New(color.Bold)
	mark := color.New(color.FgGreen, color.Bold)

	if len(v.Displayed) == 0 {
		if v.Filtered {
			fmt.Fprintln(w, "No events found.")
		} else {
			fmt.Fprintln(w, "Catalog is empty.")
		}
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 40
	tbl.AddRow("", bold.Sprint("ID"), bold.Sprint("NAME"), bold.Sprint("TAGS"), bold.Sprint("LOCATION"), bold.Sprint("DATE"))
	for _, e := range v.Displayed {
		sel := ""
		if v.Selection.Selected && v.Selection.EventID == e.ID {
			sel = mark.Sprint("*")
		}
		tbl.AddRow(sel, e.ID, e.Name, strings.Join(e.Tags, ","), e.Location, e.Date)
	}
	fmt.Fprintln(w, tbl)

	if len(v.ActiveTags) > 0 || v.Query != "" {
		fmt.Fprintf(w, "\nfilters: tags=[%s] query=%q\n", strings.Join(v.ActiveTags, ","), v.Query)
	}
	if !v.Selection.Selected {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, bold.Sprint("Related"))
	if len(v.Related) == 0 {
		fmt.Fprintln(w, "  (none)")
		return
	}
	rel := uitable.New()
	rel.Separator = "  "
	for _, e := range v.Related {
		rel.AddRow(" ", e.ID, e.Name, strings.Join(e.Tags, ","))
	}
	fmt.Fprintln(w, rel)
}
