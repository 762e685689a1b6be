package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/golemcloud/golem-examples/internal/model"
	"github.com/golemcloud/golem-examples/internal/registry"
)

var (
	listMinTier  string
	listLanguage string
	listJSON     bool
)

var listCmd = &cobra.Command{
	Use:   "list-examples",
	Short: "List the built-in examples available for creating new components",
	Long: `List the built-in examples available for creating new components.

--min-tier N keeps examples whose language is tier N or better (tier 1 is the
most mature). --language keeps the examples of one guest language.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listMinTier, "min-tier", "m", "", "Minimum language tier to include (1-4 or tierN)")
	listCmd.Flags().StringVarP(&listLanguage, "language", "l", "", "Filter examples by guest language")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// listEntry represents an example for display.
type listEntry struct {
	Name        string `json:"name"`
	Language    string `json:"language"`
	Tier        string `json:"tier"`
	Description string `json:"description"`
}

func runList(cmd *cobra.Command, args []string) error {
	filter, err := listFilter(listMinTier, listLanguage)
	if err != nil {
		return err
	}

	s, err := openSession()
	if err != nil {
		return err
	}

	entries := listEntries(s.index.List(filter))
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No examples match the given filters.")
		return nil
	}

	if listJSON {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Name, e.Language, e.Tier, e.Description})
	}
	table, err := renderTable([]string{"NAME", "LANGUAGE", "TIER", "DESCRIPTION"}, rows)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), table)
	return err
}

// listFilter builds the index filter from the raw flag values.
func listFilter(minTier, language string) (registry.Filter, error) {
	var f registry.Filter
	if minTier != "" {
		tier, err := model.ParseTier(minTier)
		if err != nil {
			return f, err
		}
		f.MaxTier = tier
	}
	if language != "" {
		lang, err := model.ParseGuestLanguage(language)
		if err != nil {
			return f, err
		}
		f.Language = &lang
	}
	return f, nil
}

func listEntries(examples []model.Example) []listEntry {
	entries := make([]listEntry, 0, len(examples))
	for _, ex := range examples {
		entries = append(entries, listEntry{
			Name:        string(ex.Name),
			Language:    ex.Language.Name(),
			Tier:        ex.Language.Tier().Name(),
			Description: ex.Description,
		})
	}
	return entries
}
