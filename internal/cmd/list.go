package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jimezsa/jobfeed/internal/catalog"
	"github.com/jimezsa/jobfeed/internal/config"
	"github.com/jimezsa/jobfeed/internal/export"
	"github.com/jimezsa/jobfeed/internal/feed"
	"github.com/jimezsa/jobfeed/internal/fetch"
	"github.com/jimezsa/jobfeed/internal/models"
	"github.com/jimezsa/jobfeed/internal/network"
	"github.com/muesli/termenv"
)

type ListCmd struct {
	Query    string `arg:"" optional:"" help:"Free-text filter on title, company and location."`
	Category string `help:"Category: all, fresher, remote, government, it, internship."`
	Page     int    `help:"Page number (1-based)." default:"1"`
	Format   string `help:"Output format: csv, json, md." enum:",csv,json,md" default:""`
	Links    string `help:"Table link display: short or full." enum:"short,full" default:"full"`
	Output   string `name:"output" short:"o" help:"Write output to a file."`
	FeedOptions
}

type FeedOptions struct {
	FeedURL string `name:"feed-url" help:"Feed endpoint returning a JSON array of job rows." env:"JOBFEED_FEED_URL"`
	Proxies string `help:"Comma-separated proxy URLs." env:"JOBFEED_PROXIES"`
}

// newSource is swapped in tests.
var newSource = func(cfg models.FeedConfig) (fetch.Source, error) {
	client, err := network.NewClientFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	return feed.NewHTTPSource(client, cfg.URL), nil
}

func (l *ListCmd) Run(ctx *Context) error {
	category := firstNonEmpty(l.Category, ctx.Config.DefaultCategory, catalog.CategoryAll)
	if !catalog.ValidCategory(category) {
		ctx.UI.Warnf("Unknown category %q; matching it exactly.", category)
	}

	loader, err := newLoader(ctx, l.FeedOptions)
	if err != nil {
		return err
	}
	defer loader.Close()

	snap, err := loadOnce(ctx, loader)
	if err != nil {
		return err
	}

	params := models.ListParams{Query: l.Query, Category: category, Page: l.Page}
	view, err := catalog.Query(snap.Jobs, params)
	if errors.Is(err, catalog.ErrPageOutOfRange) {
		totalPages := catalog.TotalPages(len(catalog.Filter(snap.Jobs, params.Query, category)), catalog.PageSize)
		if totalPages == 0 {
			return fmt.Errorf("page %d out of range: no jobs match, only page 1 is available", l.Page)
		}
		return fmt.Errorf("page %d out of range: valid pages are 1-%d", l.Page, totalPages)
	}
	if err != nil {
		return err
	}

	return writeView(ctx, view, l.Format, l.Links, l.Output)
}

func newLoader(ctx *Context, opts FeedOptions) (*fetch.Loader, error) {
	proxies, err := config.LoadProxies(opts.Proxies)
	if err != nil {
		return nil, err
	}

	feedCfg := ctx.Config.Feed(opts.FeedURL, proxies)
	if feedCfg.URL == "" {
		return nil, errors.New("feed url is required: pass --feed-url, set JOBFEED_FEED_URL, or add feed_url to config.json")
	}

	source, err := newSource(feedCfg)
	if err != nil {
		return nil, err
	}
	return fetch.NewLoader(source, ctx.Logger.With().Str("feed", feedCfg.URL).Logger()), nil
}

// loadOnce runs the single load behind a progress indicator and maps a
// transport failure to the user-facing message.
func loadOnce(ctx *Context, loader *fetch.Loader) (fetch.Snapshot, error) {
	stopIndicator := startLoadIndicator(ctx)
	err := loader.Load(context.Background())
	if stopIndicator != nil {
		stopIndicator()
	}

	snap := loader.Snapshot()
	if err != nil {
		if snap.Error != "" {
			return snap, errors.New(snap.Error)
		}
		return snap, err
	}
	return snap, nil
}

func writeView(ctx *Context, view catalog.View, formatFlag string, links string, outputPath string) error {
	format, err := resolveFormat(ctx, formatFlag, outputPath)
	if err != nil {
		return err
	}

	writer := ctx.Out
	if outputPath != "" {
		file, err := os.Create(outputPath)
		if err != nil {
			return err
		}
		defer file.Close()
		writer = file
	}

	if format == export.FormatJSON {
		return export.WriteJSON(writer, view)
	}

	if view.Total == 0 && format == export.FormatTable {
		ctx.UI.Warnf("No jobs found. Try adjusting your search criteria or filters.")
		return nil
	}

	colorEnabled := ctx.UI != nil && ctx.UI.ColorEnabled
	hyperlinks := colorEnabled && isTTY(writer)
	linkStyle := export.LinkStyleShort
	if strings.EqualFold(links, string(export.LinkStyleFull)) {
		linkStyle = export.LinkStyleFull
	}
	if err := export.WriteJobs(writer, view.Jobs, format, export.WriteOptions{
		ColorEnabled: colorEnabled,
		Hyperlinks:   hyperlinks,
		LinkStyle:    linkStyle,
	}); err != nil {
		return err
	}

	printPager(ctx, view.Page)
	return nil
}

func printPager(ctx *Context, page catalog.Page) {
	if ctx == nil || ctx.UI == nil {
		return
	}
	if err := export.WritePager(ctx.UI.Err, page, ctx.UI.Emphasis); err != nil {
		return
	}
	if next, ok := catalog.Navigate(page.Number, page.Number+1, page.TotalPages); ok {
		ctx.UI.Mutedf("%d more: --page %d", page.Remaining(), next)
	}
}

func resolveFormat(ctx *Context, formatFlag string, outputPath string) (export.Format, error) {
	if ctx.JSONOutput {
		return export.FormatJSON, nil
	}
	if ctx.PlainText {
		return export.FormatTSV, nil
	}
	if formatFlag != "" {
		return export.ParseFormat(formatFlag)
	}
	if outputPath != "" {
		return export.FormatCSV, nil
	}
	if isTTY(ctx.Out) {
		return export.FormatTable, nil
	}
	return export.FormatCSV, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

func isTTY(out io.Writer) bool {
	output := termenv.NewOutput(out)
	return output.ColorProfile() != termenv.Ascii
}

func startLoadIndicator(ctx *Context) func() {
	if ctx == nil || ctx.Err == nil || ctx.UI == nil {
		return nil
	}
	if !isTTY(ctx.Err) {
		return nil
	}

	done := make(chan struct{})
	stopped := make(chan struct{})

	go func() {
		defer close(stopped)
		start := time.Now()
		frames := []string{"|", "/", "-", "\\"}
		ticker := time.NewTicker(200 * time.Millisecond)
		defer ticker.Stop()
		index := 0

		for {
			select {
			case <-done:
				fmt.Fprint(ctx.Err, "\r\033[2K")
				return
			case <-ticker.C:
				seconds := int(time.Since(start).Seconds())
				frame := frames[index%len(frames)]
				fmt.Fprintf(ctx.Err, "\r\033[2KLoading job opportunities... %ds %s", seconds, frame)
				index++
			}
		}
	}()

	return func() {
		close(done)
		<-stopped
	}
}
