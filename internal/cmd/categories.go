package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/jimezsa/jobfeed/internal/catalog"
	"github.com/jimezsa/jobfeed/internal/export"
)

type CategoriesCmd struct {
	FeedOptions
}

func (c *CategoriesCmd) Run(ctx *Context) error {
	loader, err := newLoader(ctx, c.FeedOptions)
	if err != nil {
		return err
	}
	defer loader.Close()

	snap, err := loadOnce(ctx, loader)
	if err != nil {
		return err
	}

	stats := catalog.Stats(snap.Jobs)
	if ctx.JSONOutput {
		return export.WriteJSON(ctx.Out, stats)
	}

	if ctx.PlainText {
		for _, stat := range stats {
			fmt.Fprintf(ctx.Out, "%s\t%s\t%d\n", stat.ID, stat.Label, stat.Count)
		}
		return nil
	}

	tw := tabwriter.NewWriter(ctx.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "id\tcategory\tjobs")
	for _, stat := range stats {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", stat.ID, stat.Label, stat.Count)
	}
	return tw.Flush()
}
