package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"countryexplorer/internal/country"
)

type listOptions struct {
	search     string
	region     string
	jsonOutput bool
}

func newListCmd() *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List countries, optionally filtered by name and region",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			region, err := parseRegion(opts.region)
			if err != nil {
				return err
			}
			return withAppContext(cmd, func(ac *appContext, out io.Writer) error {
				all := ac.service.LoadDirectory(cmd.Context())
				visible := country.Filter(all, opts.search, region)
				if opts.jsonOutput {
					return renderListJSON(out, all, visible)
				}
				return renderListTable(out, visible)
			})
		},
	}

	cmd.Flags().StringVarP(&opts.search, "search", "s", "", "case-insensitive name substring")
	cmd.Flags().StringVarP(&opts.region, "region", "r", "", "region: africa, americas, asia, europe or oceania")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

// parseRegion accepts a region key or label, case-insensitively.
func parseRegion(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	for _, r := range country.Regions {
		if strings.EqualFold(s, r.Key) || strings.EqualFold(s, r.Label) {
			return r.Key, nil
		}
	}
	keys := make([]string, len(country.Regions))
	for i, r := range country.Regions {
		keys[i] = r.Key
	}
	return "", fmt.Errorf("unknown region %q (want one of %s)", s, strings.Join(keys, ", "))
}

func renderListTable(out io.Writer, countries []country.Country) error {
	if len(countries) == 0 {
		fmt.Fprintln(out, "No countries match.")
		return nil
	}

	flags := supportsUnicode(out)
	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "NAME\tREGION\tPOPULATION\tCAPITAL")
	for _, c := range countries {
		name := c.DisplayName()
		if flags && c.FlagEmoji != "" {
			name = c.FlagEmoji + " " + name
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", name, c.DisplayRegion(), c.DisplayPopulation(), c.DisplayCapital())
	}
	if err := writer.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "\n%d countries\n", len(countries))
	return nil
}

type listJSONCountry struct {
	Name       string   `json:"name"`
	Code       string   `json:"code"`
	Region     string   `json:"region"`
	Population int64    `json:"population"`
	Capital    []string `json:"capital"`
	Flag       string   `json:"flag,omitempty"`
}

type listJSONPayload struct {
	Total     int               `json:"total"`
	Count     int               `json:"count"`
	Countries []listJSONCountry `json:"countries"`
}

func renderListJSON(out io.Writer, all, visible []country.Country) error {
	payload := listJSONPayload{
		Total:     len(all),
		Count:     len(visible),
		Countries: make([]listJSONCountry, len(visible)),
	}
	for i, c := range visible {
		capital := c.Capital
		if capital == nil {
			capital = []string{}
		}
		payload.Countries[i] = listJSONCountry{
			Name:       c.CommonName,
			Code:       c.Code,
			Region:     c.Region,
			Population: c.Population,
			Capital:    capital,
			Flag:       c.FlagURL,
		}
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func supportsUnicode(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
