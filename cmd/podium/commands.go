package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/five82/podium/internal/api"
	"github.com/five82/podium/internal/app"
	"github.com/five82/podium/internal/fakeapi"
	"github.com/five82/podium/internal/logtail"
	"github.com/five82/podium/internal/state"
)

func newAboutUsCmd(opts *app.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aboutus",
		Short: "About Us commands",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the About Us entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := app.Connect(*opts)
			if err != nil {
				return err
			}
			entries, err := deps.Client.ListAboutUs(cmd.Context())
			if err != nil {
				return cliError("fetch about us", err)
			}
			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No About Us information.")
				return nil
			}
			for _, e := range entries {
				fmt.Fprintf(out, "%s (%s)\n\n%s\n", e.Title, e.ID, strings.TrimSpace(e.Description))
				if e.Image != "" {
					fmt.Fprintf(out, "\nimage: %s\n", e.Image)
				}
			}
			return nil
		},
	})
	return cmd
}

func newSponsorsCmd(opts *app.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sponsors",
		Short: "Sponsor commands",
	}

	var level string
	var page, perPage int
	list := &cobra.Command{
		Use:   "list",
		Short: "List sponsors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter api.Level
			if strings.TrimSpace(level) != "" {
				l, ok := api.ParseLevel(level)
				if !ok {
					return fmt.Errorf("unknown level %q (want Platinum or Gold)", level)
				}
				filter = l
			}
			deps, err := app.Connect(*opts)
			if err != nil {
				return err
			}
			sponsors, err := deps.Client.ListSponsors(cmd.Context())
			if err != nil {
				return cliError("fetch sponsors", err)
			}
			visible := state.FilterSponsorsByLevel(sponsors, filter)
			rows, indicator, err := pageOf(visible, page, pageSize(perPage, deps))
			if err != nil {
				return err
			}
			data := make([][]string, 0, len(rows))
			for _, s := range rows {
				data = append(data, []string{s.ID, s.CompanyName, string(s.Level), strconv.Itoa(len(s.Logos))})
			}
			printTable(cmd, []string{"ID", "COMPANY", "LEVEL", "LOGOS"}, data, indicator)
			return nil
		},
	}
	list.Flags().StringVar(&level, "level", "", "only show one level (Platinum or Gold)")
	list.Flags().IntVar(&page, "page", 1, "page to print")
	list.Flags().IntVar(&perPage, "per-page", 0, "rows per page (default from config)")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a sponsor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := app.Connect(*opts)
			if err != nil {
				return err
			}
			if err := deps.Client.DeleteSponsor(cmd.Context(), args[0]); err != nil {
				return cliError("delete sponsor", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Sponsor deleted successfully!")
			return nil
		},
	}

	cmd.AddCommand(list, del)
	return cmd
}

func newNomineesCmd(opts *app.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nominees",
		Short: "Nominee commands",
	}

	var page, perPage int
	list := &cobra.Command{
		Use:   "list",
		Short: "List nominee rounds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := app.Connect(*opts)
			if err != nil {
				return err
			}
			nominees, err := deps.Client.ListNominees(cmd.Context())
			if err != nil {
				return cliError("fetch nominees", err)
			}
			rows, indicator, err := pageOf(nominees, page, pageSize(perPage, deps))
			if err != nil {
				return err
			}
			data := make([][]string, 0, len(rows))
			for _, n := range rows {
				artists := 0
				names := make([]string, 0, len(n.Categories))
				for _, c := range n.Categories {
					artists += len(c.Artists)
					names = append(names, c.Name)
				}
				data = append(data, []string{n.ID, n.Round, string(n.Stage), strings.Join(names, ", "), strconv.Itoa(artists)})
			}
			printTable(cmd, []string{"ID", "ROUND", "STAGE", "CATEGORIES", "ARTISTS"}, data, indicator)
			return nil
		},
	}
	list.Flags().IntVar(&page, "page", 1, "page to print")
	list.Flags().IntVar(&perPage, "per-page", 0, "rows per page (default from config)")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a nominee round",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := app.Connect(*opts)
			if err != nil {
				return err
			}
			if err := deps.Client.DeleteNominee(cmd.Context(), args[0]); err != nil {
				return cliError("delete nominee", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Nominee deleted successfully!")
			return nil
		},
	}

	cmd.AddCommand(list, del)
	return cmd
}

func newFakeAPICmd() *cobra.Command {
	var addr string
	var seed bool

	cmd := &cobra.Command{
		Use:   "fakeapi",
		Short: "Serve an in-memory backend for local use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			backend := fakeapi.New()
			if seed {
				seedDemo(backend)
			}
			srv := &http.Server{
				Addr:              addr,
				Handler:           backend.Handler(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() { errCh <- srv.ListenAndServe() }()
			log.Printf("fake backend listening on http://%s", addr)

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return fmt.Errorf("serve fake backend: %w", err)
			case <-cmd.Context().Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			}
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8080", "listen address")
	cmd.Flags().BoolVar(&seed, "seed", false, "start with sample data")
	return cmd
}

func newLogsCmd(opts *app.Options) *cobra.Command {
	var lines int
	var failures bool
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Print the end of the TUI log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := app.Connect(*opts)
			if err != nil {
				return err
			}
			raw, err := logtail.Tail(deps.Config.LogPath, lines)
			if err != nil {
				return err
			}
			entries := make([]logtail.Entry, 0, len(raw))
			for _, line := range raw {
				entries = append(entries, logtail.Parse(line))
			}
			if failures {
				entries = logtail.Failures(entries)
			}
			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "Nothing to show.")
				return nil
			}
			styles := logtail.DefaultStyles()
			for _, e := range entries {
				fmt.Fprintln(out, styles.Render(e))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "number of lines to show (0 for all)")
	cmd.Flags().BoolVar(&failures, "failures", false, "only show failed operations")
	return cmd
}

// cliError turns API failures into the same one-line text the TUI shows.
func cliError(op string, err error) error {
	if id := api.RequestID(err); id != "" {
		log.Printf("%s failed (request %s): %v", op, id, err)
	}
	return errors.New(api.UserMessage(err))
}

func pageSize(flag int, deps app.Deps) int {
	if flag > 0 {
		return flag
	}
	return deps.Config.PageSize
}

// pageOf returns one page of items and its "n/total" indicator.
func pageOf[T any](items []T, page, size int) ([]T, string, error) {
	p := state.NewPager(size)
	p.SetTotal(len(items))
	if !p.GoTo(page) {
		return nil, "", fmt.Errorf("page %d out of range (1-%d)", page, p.TotalPages())
	}
	return state.Page(&p, items), p.View(), nil
}

func printTable(cmd *cobra.Command, headers []string, rows [][]string, indicator string) {
	out := cmd.OutOrStdout()
	if len(rows) == 0 {
		fmt.Fprintln(out, "Nothing to show.")
		return
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)
	fmt.Fprintln(out, t.Render())
	fmt.Fprintf(out, "page %s\n", indicator)
}

func seedDemo(backend *fakeapi.Server) {
	backend.SeedAboutUs(api.AboutUsEntry{
		ID:          "650000000000000000000001",
		Title:       "About the Awards",
		Description: "Celebrating **independent music** since 2015.",
		Image:       "https://images.example/aboutus.png",
	})
	backend.SeedSponsors(
		api.Sponsor{ID: "650000000000000000000101", CompanyName: "Acme Records", Level: api.LevelPlatinum, Description: "Headline sponsor.", Logos: []api.Logo{{URL: "https://images.example/acme.png", PublicID: "acme"}}},
		api.Sponsor{ID: "650000000000000000000102", CompanyName: "Globex Audio", Level: api.LevelGold, Description: "Sound partner.", Logos: []api.Logo{{URL: "https://images.example/globex.png", PublicID: "globex"}}},
	)
	backend.SeedNominees(api.Nominee{
		ID:    "650000000000000000000201",
		Round: "1",
		Stage: api.StagePreliminary,
		Categories: []api.Category{
			{Name: "Best New Artist", Artists: []api.Artist{{Name: "Ada Lane", SMSNumber: "AW101"}, {Name: "The Tides", SMSNumber: "AW102"}}},
		},
	})
}
