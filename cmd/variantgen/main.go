package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
)

type CLI struct {
	Version VersionCmd `cmd:"" help:"Print version information."`
	Gen     GenCmd     `cmd:"" help:"Generate variant helpers for annotated types."`
	Check   CheckCmd   `cmd:"" help:"Validate annotated types and print the resolved tables without writing files."`

	Verbose bool `help:"Enable debug logging." short:"v"`
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("variantgen"),
		kong.Description("Code generator for annotated Go enumeration types."),
		kong.UsageOnError(),
	)

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
