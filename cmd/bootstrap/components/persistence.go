package components

import (
	"go.uber.org/fx"

	"parkhub/internal/infra/readstore"
	"parkhub/internal/infra/uow"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		uow.NewPostgresUoW,
		readstore.NewEntryReadStore,
		readstore.NewLotReadStore,
		readstore.NewUserReadStore,
	),
)
