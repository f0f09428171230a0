package cmd

import (
	"context"
	"log"
	"os"

	"github.com/Santander-alt/catalogo/app/configs"
	"github.com/Santander-alt/catalogo/app/db/seeders"
	"github.com/Santander-alt/catalogo/app/models/migrations"
	"github.com/urfave/cli/v3"
)

func RunCli(env configs.ENV) {
	cmd := &cli.Command{
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "Run database migration",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection(env)
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return err
					}
					log.Println("✅ Migration complete")
					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "Seed the catalog with demo categories and products",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection(env)
					if err != nil {
						return err
					}
					if err := seeders.DBSeed(db); err != nil {
						return err
					}
					log.Println("✅ Seed complete")
					return nil
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
