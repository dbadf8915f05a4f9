package service

import (
	"github.com/mshakirov/go-journal-keeper/internal/config"
	"github.com/mshakirov/go-journal-keeper/internal/crypto"
	"github.com/mshakirov/go-journal-keeper/internal/logger"
	"github.com/mshakirov/go-journal-keeper/internal/store"
)

type Services struct {
	CredentialService CredentialService
	EntryService      EntryService
	VersionService    VersionService
	AppInfoService    AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		CredentialService: NewCredentialService(storages.CredentialRepository, crypto.NewPasswordHasher(), cfg.App, logger),
		EntryService:      NewEntryService(storages.EntryRepository, logger),
		VersionService:    NewVersionService(storages.VersionRepository, logger),
		AppInfoService:    appInfoService,
	}, nil
}
