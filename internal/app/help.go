package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/eternalcoin/eternalcoin/internal/i18n"
	"github.com/eternalcoin/eternalcoin/internal/params"
	"github.com/eternalcoin/eternalcoin/internal/ui"
)

type option struct {
	name string
	desc string
}

var options = []option{
	{"-?, -help", "This help message"},
	{"-conf=<file>", "Config file (default: eternalcoin.toml in the data directory)"},
	{"-datadir=<dir>", "Data directory (must exist when given)"},
	{"-testnet", "Use the test network"},
	{"-lang=<lang>", "Language, for example de_DE (default: system locale)"},
	{"-min", "Start in the compact layout"},
	{"-splash", "Show the splash screen on startup (default: 1)"},
	{"-daemon", "Run without a window"},
	{"-printtoconsole", "Also send log output to the console"},
	{"-debug", "Log debug detail to debug.log"},
	{"-logformat=<fmt>", "Log format, console or json (default: json with -daemon, otherwise console)"},
	{"-paytxfee=<amt>", "Fee per transaction the wallet pays without asking"},
	{"-rpcconnect=<ip>", fmt.Sprintf("Node RPC host (default: %s)", defaultRPCHost)},
	{"-rpcport=<port>", "Node RPC port (default: 9347, testnet: 19347)"},
	{"-rpcuser=<user>", "Node RPC user name"},
	{"-rpcpassword=<pw>", "Node RPC password"},
	{"-pollinterval=<n>", "Seconds between node status polls (default: 2)"},
	{"-checkupdates", "Check for a newer client on startup (default: 1 with -updateurl)"},
	{"-updateurl=<url>", "Where the latest client version is published"},
	{"-theme=<name>", "Window color theme: " + strings.Join(ui.ThemeNames(), ", ")},
}

// helpRequested reports whether -? or -help/--help was given.
func helpRequested(store *params.Store) bool {
	return store.Has("-?") || store.Has("-help")
}

func printHelp(w io.Writer, tr interface{ Translate(string) string }) {
	fmt.Fprintf(w, "%s %s\n\n", tr.Translate(i18n.AppName), Version())
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  eternalcoin-qt [options] [eternalcoin:URI]")
	fmt.Fprintln(w)

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Option", "Description"})
	for _, opt := range options {
		tw.AppendRow(table.Row{opt.name, opt.desc})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft, WidthMax: 64},
	})
	fmt.Fprintln(w, tw.Render())
}
