package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/tillworks/posledger/internal/clock"
	"github.com/tillworks/posledger/internal/config"
	"github.com/tillworks/posledger/internal/logger"
	"github.com/tillworks/posledger/internal/migration"
	"github.com/tillworks/posledger/internal/server"
	"github.com/tillworks/posledger/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		logger.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
		migration.Module,

		// Domain modules + HTTP surface
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
