package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"countryexplorer/internal/country"
	"countryexplorer/internal/restcountries"
)

type showOptions struct {
	jsonOutput bool
}

func newShowCmd() *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Show one country by its exact common or official name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			return withAppContext(cmd, func(ac *appContext, out io.Writer) error {
				d, err := ac.service.LoadDetail(cmd.Context(), name)
				if err != nil {
					var derr *restcountries.DetailError
					if errors.As(err, &derr) && derr.Stage == restcountries.StageBorders {
						return fmt.Errorf("resolve borders of %q: %w", name, err)
					}
					return fmt.Errorf("country %q not found: %w", name, err)
				}
				if opts.jsonOutput {
					return renderShowJSON(out, d)
				}
				return renderShow(out, d)
			})
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func renderShow(out io.Writer, d country.Detail) error {
	fmt.Fprintln(out, d.DisplayName())
	fmt.Fprintln(out, strings.Repeat("=", len([]rune(d.DisplayName()))))

	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, f := range d.Fields() {
		fmt.Fprintf(writer, "%s:\t%s\n", f.Label, f.Value)
	}
	borders := "None"
	if len(d.Borders) > 0 {
		borders = strings.Join(d.Borders, ", ")
	}
	fmt.Fprintf(writer, "Bordering Countries:\t%s\n", borders)
	return writer.Flush()
}

type showJSONPayload struct {
	Name           string   `json:"name"`
	NativeName     string   `json:"native_name"`
	Code           string   `json:"code"`
	Population     int64    `json:"population"`
	Region         string   `json:"region"`
	Subregion      string   `json:"subregion"`
	Capital        []string `json:"capital"`
	TopLevelDomain string   `json:"top_level_domain"`
	Currencies     []string `json:"currencies"`
	Languages      []string `json:"languages"`
	Flag           string   `json:"flag,omitempty"`
	Borders        []string `json:"borders"`
}

func renderShowJSON(out io.Writer, d country.Detail) error {
	orEmpty := func(s []string) []string {
		if s == nil {
			return []string{}
		}
		return s
	}
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(showJSONPayload{
		Name:           d.CommonName,
		NativeName:     d.NativeName,
		Code:           d.Code,
		Population:     d.Population,
		Region:         d.Region,
		Subregion:      d.Subregion,
		Capital:        orEmpty(d.Capital),
		TopLevelDomain: d.TopLevelDomain,
		Currencies:     orEmpty(d.Currencies),
		Languages:      orEmpty(d.Languages),
		Flag:           d.FlagURL,
		Borders:        orEmpty(d.Borders),
	})
}
