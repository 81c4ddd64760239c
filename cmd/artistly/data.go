// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/taibuivan/artistly/internal/catalog"
	"github.com/taibuivan/artistly/internal/core/artist"
)

var errRejected = errors.New("dataset has rejected records")

func newValidateDataCmd() *cobra.Command {
	var artistsPath, submissionsPath string
	cmd := &cobra.Command{
		Use:   "validate-data",
		Short: "Validate the artist and submission datasets",
		Long: `Parses both datasets with the same rules the server applies at startup and
prints every rejected record. Files default to the copies embedded in the binary.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			embeddedArtists, embeddedSubmissions := catalog.Embedded()

			artistsData, err := readFileOr(artistsPath, embeddedArtists)
			if err != nil {
				return err
			}
			submissionsData, err := readFileOr(submissionsPath, embeddedSubmissions)
			if err != nil {
				return err
			}

			data, err := catalog.Parse(artistsData, submissionsData, logger(cmd))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "artists: %d accepted\n", data.Report.Artists)
			fmt.Fprintf(out, "submissions: %d accepted\n", data.Report.Submissions)
			for _, r := range data.Report.Rejected {
				fmt.Fprintf(out, "rejected %s[%d] id=%d: %s\n", r.Dataset, r.Index, r.ID, strings.Join(r.Reasons, "; "))
			}

			if !data.Report.Clean() {
				return fmt.Errorf("%w: %d", errRejected, len(data.Report.Rejected))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&artistsPath, "artists", "", "Path to an artists JSON file")
	cmd.Flags().StringVar(&submissionsPath, "submissions", "", "Path to a submissions JSON file")
	return cmd
}

func newFilterCmd() *cobra.Command {
	var (
		categories []string
		location   string
		search     string
		priceMin   int
		priceMax   int
		asJSON     bool
	)
	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Filter the embedded artist catalogue",
		Example: `  artistly filter --category singers --location pune
  artistly filter --search fusion --price-max 20000 --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := catalog.Load(logger(cmd))
			if err != nil {
				return err
			}

			values := url.Values{}
			for _, c := range categories {
				values.Add("categories", c)
			}
			values.Set("location", location)
			values.Set("search", search)
			if cmd.Flags().Changed("price-min") {
				values.Set("price_min", strconv.Itoa(priceMin))
			}
			if cmd.Flags().Changed("price-max") {
				values.Set("price_max", strconv.Itoa(priceMax))
			}

			filter, err := artist.FromQuery(values, artist.Categories(data.Artists))
			if err != nil {
				return err
			}
			matches := artist.Apply(data.Artists, filter)

			if asJSON {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(matches)
			}

			table := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(table, "ID\tNAME\tCATEGORY\tLOCATION\tPRICE")
			for _, a := range matches {
				fmt.Fprintf(table, "%d\t%s\t%s\t%s\t%s\n", a.ID, a.Name, a.Category, a.Location, a.DisplayPrice)
			}
			if err := table.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d of %d artists\n", len(matches), len(data.Artists))
			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&categories, "category", "c", nil, "Category name or link slug, repeatable")
	cmd.Flags().StringVarP(&location, "location", "l", "", "Substring of city, state or location")
	cmd.Flags().StringVarP(&search, "search", "s", "", "Search name, bio and languages")
	cmd.Flags().IntVar(&priceMin, "price-min", 0, "Lower fee bound in rupees")
	cmd.Flags().IntVar(&priceMax, "price-max", 0, "Upper fee bound in rupees")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print matches as JSON")
	return cmd
}

func newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the categories present in the catalogue",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := catalog.Load(logger(cmd))
			if err != nil {
				return err
			}
			for _, name := range artist.Categories(data.Artists) {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
