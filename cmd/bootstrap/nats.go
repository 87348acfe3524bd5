package bootstrap

import (
	"context"

	"auction-engine/internal/pkg/config"
	"auction-engine/internal/pkg/errs"

	"github.com/nats-io/nats.go"
	"go.uber.org/fx"
)

var NATSModule = fx.Module("nats",
	fx.Provide(
		NewNATS,
	),
)

func NewNATS(lc fx.Lifecycle, cfg config.Config) (*nats.Conn, error) {
	conn, err := nats.Connect(cfg.NATS.URL,
		nats.Name("auction-engine"),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, errs.Wrap(err, "failed to connect to nats")
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			conn.Close()
			return nil
		},
	})

	return conn, nil
}
