package fx

import (
	"go.uber.org/fx"

	"liveclient-replay/internal/api"
	"liveclient-replay/internal/config"
	"liveclient-replay/internal/database"
	"liveclient-replay/internal/logger"
	"liveclient-replay/internal/repository"
	"liveclient-replay/internal/server"
	"liveclient-replay/internal/service"
)

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Provide(database.New),
	// repos
	fx.Provide(repository.NewDocumentRepository),
	// api clients
	fx.Provide(api.NewDDragonClient),
	fx.Provide(api.NewRiotClient),
	// svc
	fx.Provide(service.NewGameService),
	// server
	fx.Provide(server.NewLiveClientServer),
)
