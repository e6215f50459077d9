package saleslog

import (
	"github.com/tillworks/posledger/internal/saleslog/repository"
	"github.com/tillworks/posledger/internal/saleslog/service"
	"go.uber.org/fx"
)

var Module = fx.Module("saleslog.service",
	fx.Provide(repository.NewRepository),
	fx.Provide(service.NewService),
)
