package invoice

import (
	"github.com/tillworks/posledger/internal/invoice/service"
	"go.uber.org/fx"
)

var Module = fx.Module("invoice.session",
	fx.Provide(service.NewSession),
)
