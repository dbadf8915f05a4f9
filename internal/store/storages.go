package store

import "github.com/mshakirov/go-journal-keeper/internal/logger"

type Storages struct {
	CredentialRepository CredentialRepository
	EntryRepository      EntryRepository
	VersionRepository    VersionRepository
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		CredentialRepository: NewCredentialRepository(db, log),
		EntryRepository:      NewEntryRepository(db, log),
		VersionRepository:    NewVersionRepository(db, log),
	}
}
