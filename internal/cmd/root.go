package cmd

import (
	"github.com/alecthomas/kong"
)

type CLI struct {
	Color   string `help:"Color output: auto, always, never." enum:"auto,always,never" default:"auto"`
	JSON    bool   `help:"JSON output to stdout; disables colors."`
	Plain   bool   `help:"TSV output to stdout; disables colors."`
	Verbose bool   `help:"Enable debug logging."`

	VersionFlag kong.VersionFlag `help:"Print version."`

	Version    VersionCmd    `cmd:"" help:"Print version."`
	Config     ConfigCmd     `cmd:"" help:"Manage configuration."`
	List       ListCmd       `cmd:"" default:"withargs" help:"List jobs from the feed, filtered and paginated."`
	Categories CategoriesCmd `cmd:"" help:"Show job counts per category."`
	Serve      ServeCmd      `cmd:"" help:"Serve the job list as a JSON API."`
	Proxies    ProxiesCmd    `cmd:"" help:"Proxy utilities."`
}

func NewCLI() *CLI {
	return &CLI{}
}
