package main

import (
	"context"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/rmarchant/folio/cmd/server/internal/commands"
)

var (
	version = "dev"
	cli     struct {
		Debug   bool `help:"Enable debug mode."`
		Version kong.VersionFlag
		Server  commands.ServerCmd `cmd:"" help:"Start the website and API server"`
		Seed    commands.SeedCmd   `cmd:"" help:"Seed the database with an admin user and sample projects"`
	}
)

func main() {
	// Local development keeps secrets in a .env file. Missing file is fine.
	_ = godotenv.Load()

	ctx := context.Background()
	cmd := kong.Parse(&cli,
		kong.Vars{
			"version": version,
		},
		kong.BindTo(ctx, (*context.Context)(nil)))
	err := cmd.Run(&commands.Globals{Debug: cli.Debug, Version: version})
	cmd.FatalIfErrorf(err)
}
