package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"explorer-state/internal/explorer"
	"explorer-state/internal/navigation"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type lintResult struct {
	Line     int
	Link     string
	Findings []explorer.Finding
	Err      error
}

var lintCmd = &cobra.Command{
	Use:   "lint [file...]",
	Short: "Check saved Explorer links for parameters that decode to defaults",
	Long: `Reads one link per line from the given files (or stdin) and reports every
parameter that decoding would drop or reset. Blank lines and lines starting
with # are skipped. Exits non-zero when any link has findings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var links []string
		if len(args) == 0 {
			read, err := readLinks(cmd.InOrStdin())
			if err != nil {
				return err
			}
			links = read
		}
		for _, path := range args {
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", path, err)
			}
			read, err := readLinks(f)
			f.Close()
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			links = append(links, read...)
		}

		results, err := lintLinks(cmd.Context(), links, cfg.LintConcurrency)
		if err != nil {
			return err
		}

		bad := 0
		w := cmd.OutOrStdout()
		for _, res := range results {
			if res.Err != nil {
				bad++
				fmt.Fprintf(w, "%d: %v\n", res.Line, res.Err)
				continue
			}
			if len(res.Findings) == 0 {
				continue
			}
			bad++
			for _, f := range res.Findings {
				fmt.Fprintf(w, "%d: %s\n", res.Line, f)
			}
		}

		log.Info().Int("links", len(results)).Int("withFindings", bad).Msg("Lint finished")
		if bad > 0 {
			return fmt.Errorf("%d of %d links have findings", bad, len(results))
		}
		return nil
	},
}

func readLinks(r io.Reader) ([]string, error) {
	var links []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		links = append(links, line)
	}
	return links, sc.Err()
}

// lintLinks diagnoses links concurrently; results keep input order.
func lintLinks(ctx context.Context, links []string, concurrency int) ([]lintResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	results := make([]lintResult, len(links))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, link := range links {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			res := lintResult{Line: i + 1, Link: link}
			params, err := navigation.ParamMapFromLink(link)
			if err != nil {
				res.Err = err
			} else {
				res.Findings = explorer.Diagnose(params)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func init() {
	rootCmd.AddCommand(lintCmd)
}
