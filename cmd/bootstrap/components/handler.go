package components

import (
	"cellar-shop/internal/handler"
	"cellar-shop/internal/handler/api"
	"cellar-shop/internal/handler/middleware"
	"cellar-shop/internal/pkg/config"
	"cellar-shop/internal/usecase/commands"

	"go.uber.org/fx"
)

type apiHandlers struct {
	fx.In

	Products    *api.ProductHandler
	Cart        *api.CartHandler
	Orders      *api.OrderHandler
	AdminOrders *api.AdminOrderHandler
	Webhook     *api.CarrierWebhookHandler
}

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewProductHandler,
		api.NewCartHandler,
		api.NewOrderHandler,
		api.NewAdminOrderHandler,
		func(cmds commands.OrderCommands, cfg config.Config) *api.CarrierWebhookHandler {
			return api.NewCarrierWebhookHandler(cmds, cfg.Carrier.WebhookSecret)
		},
		func(in apiHandlers) handler.Handlers {
			return handler.Handlers{
				Products:    in.Products,
				Cart:        in.Cart,
				Orders:      in.Orders,
				AdminOrders: in.AdminOrders,
				Webhook:     in.Webhook,
			}
		},
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
