package category

import (
	"github.com/tillworks/posledger/internal/category/repository"
	"github.com/tillworks/posledger/internal/category/service"
	"go.uber.org/fx"
)

var Module = fx.Module("category.service",
	fx.Provide(repository.NewRepository),
	fx.Provide(service.NewService),
)
