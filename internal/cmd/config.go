package cmd

import (
	"fmt"
	"strings"

	"github.com/jimezsa/jobfeed/internal/config"
)

type ConfigCmd struct {
	Init InitConfigCmd `cmd:"" help:"Write default config and proxies files."`
	Path PathConfigCmd `cmd:"" help:"Print config directory."`
	Show ShowConfigCmd `cmd:"" help:"Print the effective configuration."`
}

type InitConfigCmd struct{}

type PathConfigCmd struct{}

type ShowConfigCmd struct{}

func (c *InitConfigCmd) Run(ctx *Context) error {
	paths, err := config.Init()
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		ctx.UI.Infof("Config already initialized at %s", ctx.ConfigDir)
		return nil
	}
	ctx.UI.Successf("Created: %s", strings.Join(paths, ", "))
	return nil
}

func (c *PathConfigCmd) Run(ctx *Context) error {
	_, err := fmt.Fprintln(ctx.Out, ctx.ConfigDir)
	return err
}

func (c *ShowConfigCmd) Run(ctx *Context) error {
	cfg := ctx.Config
	feedURL := cfg.FeedURL
	if feedURL == "" {
		feedURL = "(unset)"
	}
	_, err := fmt.Fprintf(ctx.Out,
		"feed_url=%s\ndefault_category=%s\ntimeout=%s\nlisten_addr=%s\n",
		feedURL, cfg.DefaultCategory, cfg.Timeout(), cfg.ListenAddr,
	)
	return err
}
