package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"lector/internal/bootstrap"
	providerdto "lector/internal/modules/provider/dto"
	"lector/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var libraryPath, dictDir string

	root := &cobra.Command{
		Use:           "lector",
		Short:         "Desktop reading companion backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&libraryPath, "library", ".", "library root path")
	root.PersistentFlags().StringVar(&dictDir, "dict-dir", "", "StarDict dictionary directory override")

	root.AddCommand(newLibraryCmd(&libraryPath, &dictDir))
	root.AddCommand(newReindexCmd(&libraryPath, &dictDir))
	root.AddCommand(newReaderCmd(&libraryPath, &dictDir))
	root.AddCommand(newDefineCmd(&libraryPath, &dictDir))
	root.AddCommand(newDictCmd(&libraryPath, &dictDir))
	root.AddCommand(newSessionCmd(&libraryPath, &dictDir))
	root.AddCommand(newPositionCmd(&libraryPath, &dictDir))
	root.AddCommand(newZoomCmd(&libraryPath, &dictDir))
	root.AddCommand(newProviderCmd(&libraryPath, &dictDir))
	return root
}

func loadApp(libraryPath, dictDir string) (*bootstrap.App, error) {
	cfg, err := config.New(libraryPath)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg.WithDictDir(dictDir))
}

func newLibraryCmd(libraryPath, dictDir *string) *cobra.Command {
	library := &cobra.Command{Use: "library", Short: "Manage the document shelf"}

	var format, title string
	var authors, tags []string
	add := &cobra.Command{
		Use:   "add <path>",
		Short: "Add a document to the shelf",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*libraryPath, *dictDir)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.LibraryCLI.AddDocument(context.Background(), args[0], format, title, authors, tags)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %s (%s) note=%s\n", out.Title, out.ID, out.NotePath)
			return nil
		},
	}
	add.Flags().StringVar(&format, "format", "", "document format: pdf|epub|text (detected from extension when empty)")
	add.Flags().StringVar(&title, "title", "", "document title (optional)")
	add.Flags().StringSliceVar(&authors, "authors", nil, "authors")
	add.Flags().StringSliceVar(&tags, "tags", nil, "tags")

	library.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List shelf documents",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*libraryPath, *dictDir)
			if err != nil {
				return err
			}
			defer app.Close()
			documents, err := app.LibraryCLI.ListDocuments(context.Background())
			if err != nil {
				return err
			}
			if len(documents) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no documents")
				return nil
			}
			tbl := table.New("ID", "Format", "Title", "Page", "Progress").WithWriter(cmd.OutOrStdout())
			for _, d := range documents {
				tbl.AddRow(d.ID, d.Format, d.Title, d.Page, fmt.Sprintf("%.1f%%", d.Percent))
			}
			tbl.Print()
			return nil
		},
	})

	var documentID string
	show := &cobra.Command{
		Use:   "show --id <id>",
		Short: "Show document details",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(documentID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*libraryPath, *dictDir)
			if err != nil {
				return err
			}
			defer app.Close()
			d, err := app.LibraryCLI.GetDocument(context.Background(), documentID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "id: %s\ntitle: %s\nformat: %s\nauthors: %s\nstatus: %s\nprogress: %.1f%% (page %d/%d)\nfile: %s\nnote: %s\ntags: %s\n",
				d.ID, d.Title, d.Format, strings.Join(d.Authors, ", "), d.Status, d.Percent, d.CurrentPage, d.PageCount, d.FilePath, d.NotePath, strings.Join(d.Tags, ", "))
			return nil
		},
	}
	show.Flags().StringVar(&documentID, "id", "", "document id")
	library.AddCommand(add, show)
	return library
}

func newReindexCmd(libraryPath, dictDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Rebuild SQLite projections from shelf markdown",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*libraryPath, *dictDir)
			if err != nil {
				return err
			}
			defer app.Close()
			if err := app.LibraryCLI.Reindex(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "reindex completed")
			return nil
		},
	}
}

func newReaderCmd(libraryPath, dictDir *string) *cobra.Command {
	reader := &cobra.Command{Use: "reader", Short: "Reader operations"}

	var openID string
	var openPage int
	open := &cobra.Command{
		Use:   "open --id <id>",
		Short: "Open a document at its saved position",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(openID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*libraryPath, *dictDir)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.ReaderCLI.OpenDocument(context.Background(), openID, openPage)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "document=%s title=%q format=%s page=%d/%d progress=%.1f%%\n",
				out.DocumentID, out.Title, out.Format, out.Page, out.TotalPages, out.Percent)
			if strings.TrimSpace(out.Content) != "" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Content)
			}
			return nil
		},
	}
	open.Flags().StringVar(&openID, "id", "", "document id")
	open.Flags().IntVar(&openPage, "page", 0, "page to open (defaults to saved position)")

	var textID string
	var textPage int
	text := &cobra.Command{
		Use:   "text --id <id> --page <n>",
		Short: "Print extracted text of one page",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(textID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*libraryPath, *dictDir)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.ReaderCLI.PageText(context.Background(), textID, textPage)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "page=%d/%d\n", out.Page, out.TotalPages)
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Text)
			return nil
		},
	}
	text.Flags().StringVar(&textID, "id", "", "document id")
	text.Flags().IntVar(&textPage, "page", 1, "page number")

	var wordID string
	var wordPage int
	var wordX, wordY float64
	wordAt := &cobra.Command{
		Use:   "word-at --id <id> --page <n> --x <pt> --y <pt>",
		Short: "Resolve the word under a page coordinate",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(wordID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*libraryPath, *dictDir)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.ReaderCLI.WordAt(context.Background(), wordID, wordPage, wordX, wordY)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "word=%q span=%q\n", out.Word, out.SpanText)
			return nil
		},
	}
	wordAt.Flags().StringVar(&wordID, "id", "", "document id")
	wordAt.Flags().IntVar(&wordPage, "page", 1, "page number")
	wordAt.Flags().Float64Var(&wordX, "x", 0, "x coordinate in page points")
	wordAt.Flags().Float64Var(&wordY, "y", 0, "y coordinate in page points")

	reader.AddCommand(open, text, wordAt)
	return reader
}

func newDefineCmd(libraryPath, dictDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "define <term>",
		Short: "Look up a term in the configured dictionaries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*libraryPath, *dictDir)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.DictCLI.Lookup(context.Background(), args[0])
			if err != nil {
				return err
			}
			if out.Matched != out.Term {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", out.Term, out.Matched)
			}
			for i, entry := range out.Entries {
				if i > 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout())
				}
				header := entry.Headword
				if entry.Phonetic != "" {
					header += " " + entry.Phonetic
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s [%s]\n%s\n", header, entry.Dictionary, entry.Definition)
			}
			return nil
		},
	}
}

func newDictCmd(libraryPath, dictDir *string) *cobra.Command {
	dict := &cobra.Command{Use: "dict", Short: "Dictionary catalog and history"}

	dict.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List available dictionaries",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*libraryPath, *dictDir)
			if err != nil {
				return err
			}
			defer app.Close()
			dictionaries, err := app.DictCLI.Dictionaries(context.Background())
			if err != nil {
				return err
			}
			if len(dictionaries) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no dictionaries")
				return nil
			}
			tbl := table.New("Name", "Words", "Source").WithWriter(cmd.OutOrStdout())
			for _, d := range dictionaries {
				tbl.AddRow(d.Name, d.WordCount, d.Source)
			}
			tbl.Print()
			return nil
		},
	})

	var limit int
	history := &cobra.Command{
		Use:   "history",
		Short: "Show recent lookups",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*libraryPath, *dictDir)
			if err != nil {
				return err
			}
			defer app.Close()
			items, err := app.DictCLI.History(context.Background(), limit)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no lookups yet")
				return nil
			}
			tbl := table.New("Term", "Matched", "Hits", "Last Lookup").WithWriter(cmd.OutOrStdout())
			for _, item := range items {
				tbl.AddRow(item.Term, item.Matched, item.Hits, item.LookedUp.Format(time.RFC3339))
			}
			tbl.Print()
			return nil
		},
	}
	history.Flags().IntVar(&limit, "limit", 20, "entries to show")
	dict.AddCommand(history)
	return dict
}

func newSessionCmd(libraryPath, dictDir *string) *cobra.Command {
	session := &cobra.Command{Use: "session", Short: "Reading session lifecycle"}

	var documentID, goal string
	start := &cobra.Command{
		Use:   "start --id <id>",
		Short: "Start a reading session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(documentID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*libraryPath, *dictDir)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.SessionCLI.Start(context.Background(), documentID, "", goal)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "session started: %s document=%s page=%d at=%s\n",
				out.SessionID, out.DocumentID, out.StartPage, out.StartedAt.Format(time.RFC3339))
			return nil
		},
	}
	start.Flags().StringVar(&documentID, "id", "", "document id")
	start.Flags().StringVar(&goal, "goal", "", "reading goal")

	var sessionID, outcome string
	end := &cobra.Command{
		Use:   "end --outcome <text>",
		Short: "End the active session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(outcome) == "" {
				return fmt.Errorf("--outcome is required")
			}
			app, err := loadApp(*libraryPath, *dictDir)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.SessionCLI.End(context.Background(), sessionID, outcome)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "session ended: %s document=%s duration=%dmin pages=%d (%d-%d) note=%s\n",
				out.SessionID, out.DocumentID, out.DurationMin, out.PagesRead, out.StartPage, out.EndPage, out.Path)
			return nil
		},
	}
	end.Flags().StringVar(&sessionID, "session-id", "", "optional session id (defaults to active session)")
	end.Flags().StringVar(&outcome, "outcome", "", "session outcome")

	session.AddCommand(start, end, &cobra.Command{
		Use:   "status",
		Short: "Show the active session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*libraryPath, *dictDir)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.SessionCLI.GetActive(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "session=%s document=%s title=%q page=%d since=%s\n",
				out.SessionID, out.DocumentID, out.DocumentTitle, out.StartPage, out.StartedAt.Format(time.RFC3339))
			if out.Goal != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "goal: %s\n", out.Goal)
			}
			return nil
		},
	})
	return session
}

func newPositionCmd(libraryPath, dictDir *string) *cobra.Command {
	position := &cobra.Command{Use: "position", Short: "Reading position persistence"}

	var setID string
	var setPage int
	set := &cobra.Command{
		Use:   "set --id <id> --page <n>",
		Short: "Save the reading position",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(setID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*libraryPath, *dictDir)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.SessionCLI.SetPosition(context.Background(), setID, setPage)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "document=%s page=%d zoom=%d%% mode=%s\n", out.DocumentID, out.Page, out.Zoom, out.ZoomMode)
			return nil
		},
	}
	set.Flags().StringVar(&setID, "id", "", "document id")
	set.Flags().IntVar(&setPage, "page", 1, "page number")

	var showID string
	show := &cobra.Command{
		Use:   "show --id <id>",
		Short: "Show the saved reading state",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(showID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*libraryPath, *dictDir)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.SessionCLI.GetState(context.Background(), showID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "document=%s page=%d zoom=%d%% mode=%s\n", out.DocumentID, out.Page, out.Zoom, out.ZoomMode)
			return nil
		},
	}
	show.Flags().StringVar(&showID, "id", "", "document id")

	position.AddCommand(set, show)
	return position
}

func newZoomCmd(libraryPath, dictDir *string) *cobra.Command {
	var documentID, mode string
	var level, preset int
	var zoomIn, zoomOut bool
	zoom := &cobra.Command{
		Use:   "zoom --id <id>",
		Short: "Adjust the saved zoom level",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(documentID) == "" {
				return fmt.Errorf("--id is required")
			}
			if zoomIn && zoomOut {
				return fmt.Errorf("--in and --out are mutually exclusive")
			}
			step := 0
			if zoomIn {
				step = 1
			}
			if zoomOut {
				step = -1
			}
			app, err := loadApp(*libraryPath, *dictDir)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.SessionCLI.SetZoom(context.Background(), documentID, level, mode, step, preset)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "document=%s page=%d zoom=%d%% mode=%s\n", out.DocumentID, out.Page, out.Zoom, out.ZoomMode)
			return nil
		},
	}
	zoom.Flags().StringVar(&documentID, "id", "", "document id")
	zoom.Flags().IntVar(&level, "set", 0, "zoom percentage (50-400)")
	zoom.Flags().StringVar(&mode, "mode", "", "zoom mode: custom|fit-width|fit-page")
	zoom.Flags().IntVar(&preset, "preset", 0, "preset zoom level (25, 50, 75, 100, 125, 150, 200, 300, 400)")
	zoom.Flags().BoolVar(&zoomIn, "in", false, "step zoom in")
	zoom.Flags().BoolVar(&zoomOut, "out", false, "step zoom out")
	return zoom
}

func newProviderCmd(libraryPath, dictDir *string) *cobra.Command {
	provider := &cobra.Command{Use: "provider", Short: "Lookup provider plugins"}

	provider.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List provider manifests",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*libraryPath, *dictDir)
			if err != nil {
				return err
			}
			defer app.Close()
			providers, err := app.ProviderCLI.List(context.Background())
			if err != nil {
				return err
			}
			if len(providers) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no providers configured")
				return nil
			}
			tbl := table.New("Name", "Version", "Enabled", "Binary").WithWriter(cmd.OutOrStdout())
			for _, p := range providers {
				tbl.AddRow(p.Name, p.Version, p.Enabled, p.Path)
			}
			tbl.Print()
			return nil
		},
	})

	provider.AddCommand(&cobra.Command{
		Use:   "doctor",
		Short: "Validate provider checksums and lifecycle",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*libraryPath, *dictDir)
			if err != nil {
				return err
			}
			defer app.Close()
			results, err := app.ProviderCLI.Doctor(context.Background())
			if err != nil {
				return err
			}
			if len(results) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no providers configured")
				return nil
			}
			for _, r := range results {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s checksum=%t binary=%t lifecycle=%t", r.Name, r.ChecksumValid, r.BinaryReachable, r.LifecycleOK)
				if r.Error != "" {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), " error=%q", r.Error)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	})

	var providerName string
	lookup := &cobra.Command{
		Use:   "lookup <term>",
		Short: "Look up a term through provider plugins",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*libraryPath, *dictDir)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.ProviderCLI.Lookup(context.Background(), providerdto.LookupInput{Provider: providerName, Term: args[0]})
			if err != nil {
				return err
			}
			if len(out.Entries) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no definitions")
				return nil
			}
			for _, entry := range out.Entries {
				header := entry.Headword
				if entry.Phonetic != "" {
					header += " " + entry.Phonetic
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s [%s]\n%s\n", header, entry.Dictionary, entry.Definition)
			}
			return nil
		},
	}
	lookup.Flags().StringVar(&providerName, "provider", "", "restrict to one provider")
	provider.AddCommand(lookup)
	return provider
}
