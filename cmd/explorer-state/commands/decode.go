package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"explorer-state/internal/explorer"
	"explorer-state/internal/navigation"
	"explorer-state/internal/statefile"
	"explorer-state/internal/visuals"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	decodeFormat  string
	decodeMermaid bool
	decodeStrict  bool
)

var decodeCmd = &cobra.Command{
	Use:   "decode <link|->",
	Short: "Decode an Explorer link into a state document",
	Example: `  explorer-state decode 'http://localhost:2020/explorer?scope=spans&series=line:AVG(duration)&interval=5m'
  echo 'scope=spans&interval=NONE' | explorer-state decode - --format yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := statefile.ParseFormat(decodeFormat)
		if err != nil {
			return err
		}

		link := args[0]
		if link == "-" {
			if link, err = readFirstLine(cmd.InOrStdin()); err != nil {
				return err
			}
		}

		params, err := navigation.ParamMapFromLink(link)
		if err != nil {
			return err
		}
		state := explorer.ToInitialState(params)
		findings := explorer.Diagnose(params)
		for _, f := range findings {
			log.Warn().Str("param", f.Param).Str("value", f.Value).Msg(f.Reason)
		}

		out, err := statefile.Marshal(statefile.FromRequest(state.Request()), format)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		fmt.Fprintln(w, strings.TrimRight(string(out), "\n"))
		if decodeMermaid {
			fmt.Fprintln(w, visuals.GenerateQueryFlow(state))
		}

		if decodeStrict && len(findings) > 0 {
			return fmt.Errorf("link has %d dropped or defaulted parameters", len(findings))
		}
		return nil
	},
}

func readFirstLine(r io.Reader) (string, error) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			return line, nil
		}
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("failed to read link: %w", err)
	}
	return "", navigation.ErrEmptyURL
}

func init() {
	decodeCmd.Flags().StringVarP(&decodeFormat, "format", "f", "json", "output format: json or yaml")
	decodeCmd.Flags().BoolVar(&decodeMermaid, "mermaid", false, "also print a Mermaid flowchart of the query")
	decodeCmd.Flags().BoolVar(&decodeStrict, "strict", false, "exit non-zero if any parameter was dropped or defaulted")
	rootCmd.AddCommand(decodeCmd)
}
