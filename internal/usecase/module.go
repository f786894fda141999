package usecase

import (
	"go.uber.org/fx"

	"github.com/polkiloo/kicktracker/internal/config"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewAuthUseCase,
	NewKickUseCase,
	newKickSettings,
)

func newKickSettings(cfg *config.Config) KickSettings {
	return KickSettings{Location: cfg.Location, DailyTarget: cfg.DailyTarget}
}
