package components

import (
	"probook/internal/handler"
	"probook/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewProfessionalHandler,
		api.NewClientHandler,
	),
	fx.Invoke(handler.NewRouter),
)
