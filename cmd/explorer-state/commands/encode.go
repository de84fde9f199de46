package commands

import (
	"fmt"
	"os"

	"explorer-state/internal/explorer"
	"explorer-state/internal/statefile"

	"github.com/pkg/browser"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type encodeFlags struct {
	from     string
	baseURL  string
	open     bool
	scope    string
	interval string
	series   []string
	order    string
	groups   []string
	other    bool
	limit    int
	timeSpec string
}

var encodeOpts encodeFlags

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Build an Explorer link from flags or a state document",
	Example: `  explorer-state encode --scope spans --series 'line:AVG(duration)' --interval 5m
  explorer-state encode --interval NONE --series 'column:COUNT(calls)' --group service --limit 10 --order 'COUNT(calls):DESC'
  explorer-state encode --from dashboards/latency.yaml --open`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := encodeOpts.request()
		if err != nil {
			return err
		}

		base := encodeOpts.baseURL
		if base == "" {
			base = cfg.BaseURL
		}
		link, err := explorer.BuildLink(base, r)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), link)

		if encodeOpts.open {
			log.Debug().Str("url", link).Msg("Opening link in browser")
			if err := browser.OpenURL(link); err != nil {
				return fmt.Errorf("failed to open browser: %w", err)
			}
		}
		return nil
	},
}

// request builds the visualization request from a state document when --from
// is set, otherwise from the individual flags. Flag tokens are user input, so
// malformed ones are rejected instead of silently dropped.
func (f encodeFlags) request() (explorer.VisualizationRequest, error) {
	if f.from != "" {
		return loadDocument(f.from)
	}

	if explorer.ContextFromScope(f.scope).ScopeParam() != f.scope {
		return explorer.VisualizationRequest{}, fmt.Errorf("unknown scope %q", f.scope)
	}
	if _, auto := explorer.ParseInterval(f.interval).(explorer.AutoInterval); auto && f.interval != "" && f.interval != "AUTO" {
		return explorer.VisualizationRequest{}, fmt.Errorf("invalid interval %q, expected AUTO, NONE or a duration", f.interval)
	}

	doc := statefile.Document{
		Scope:     f.scope,
		Interval:  f.interval,
		TimeRange: f.timeSpec,
	}

	for _, tok := range f.series {
		s, ok := explorer.DecodeSeries(tok)
		if !ok {
			return explorer.VisualizationRequest{}, fmt.Errorf("invalid series %q, expected type:AGG(key)", tok)
		}
		doc.Series = append(doc.Series, statefile.SeriesDoc{Type: string(s.Type), Aggregation: string(s.Aggregation), Key: s.Key})
	}

	if len(f.groups) > 0 {
		g := &statefile.GroupByDoc{IncludeRest: f.other, Limit: f.limit}
		for _, tok := range f.groups {
			e := explorer.DecodeAttributeExpression(tok)
			g.Keys = append(g.Keys, statefile.AttributeDoc{Key: e.Key, Subpath: e.Subpath})
		}
		doc.GroupBy = g
	}

	if f.order != "" {
		o, ok := explorer.ParseOrderBy(f.order)
		if !ok {
			return explorer.VisualizationRequest{}, fmt.Errorf("invalid order %q, expected AGG(key):DIR", f.order)
		}
		doc.OrderBy = &statefile.OrderByDoc{Aggregation: string(o.Aggregation), Key: o.Key, Direction: string(o.Direction)}
	}

	return doc.Request(), nil
}

func loadDocument(path string) (explorer.VisualizationRequest, error) {
	format, err := statefile.FormatFromPath(path)
	if err != nil {
		return explorer.VisualizationRequest{}, err
	}
	file, err := os.Open(path)
	if err != nil {
		return explorer.VisualizationRequest{}, fmt.Errorf("failed to open state document: %w", err)
	}
	defer file.Close()

	doc, err := statefile.Load(file, format)
	if err != nil {
		return explorer.VisualizationRequest{}, fmt.Errorf("%s: %w", path, err)
	}
	return doc.Request(), nil
}

func init() {
	f := encodeCmd.Flags()
	f.StringVar(&encodeOpts.from, "from", "", "read the state from a .json, .yaml or .yml document")
	f.StringVar(&encodeOpts.baseURL, "base-url", "", "Explorer page to build the link on (default EXPLORER_BASE_URL)")
	f.BoolVar(&encodeOpts.open, "open", false, "open the link in the default browser")
	f.StringVar(&encodeOpts.scope, "scope", explorer.ContextEndpoint.ScopeParam(), "data context: endpoint-traces or spans")
	f.StringVar(&encodeOpts.interval, "interval", "AUTO", "AUTO, NONE or a duration such as 5m")
	f.StringArrayVar(&encodeOpts.series, "series", nil, "series as type:AGG(key), repeatable")
	f.StringVar(&encodeOpts.order, "order", "", "order as AGG(key):DIR, used when --interval NONE")
	f.StringArrayVar(&encodeOpts.groups, "group", nil, "group-by attribute as key or key__subpath, repeatable")
	f.BoolVar(&encodeOpts.other, "other", false, "fold remaining groups into an other bucket")
	f.IntVar(&encodeOpts.limit, "limit", explorer.DefaultGroupLimit, "maximum number of groups")
	f.StringVar(&encodeOpts.timeSpec, "time", "", "time range: duration such as 1h or startMillis-endMillis")
	encodeCmd.MarkFlagsMutuallyExclusive("from", "series")
	rootCmd.AddCommand(encodeCmd)
}
