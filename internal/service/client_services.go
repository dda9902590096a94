package service

import (
	"github.com/MKhiriev/credcache/internal/adapter"
	"github.com/MKhiriev/credcache/internal/config"
	"github.com/MKhiriev/credcache/internal/crypto"
	"github.com/MKhiriev/credcache/internal/logger"
	"github.com/MKhiriev/credcache/internal/store"
)

type ClientServices struct {
	CredentialService  CredentialService
	LaunchService      LaunchService
	InviteService      InviteService
	PreferencesService PreferencesService
}

func NewClientServices(storages *store.ClientStorages, homeserverAdapter adapter.HomeserverAdapter, appCfg config.App, logger *logger.Logger) *ClientServices {
	cipher := crypto.NewCredentialCipher(crypto.KDFParams{
		Time:      appCfg.KDFTime,
		MemoryKiB: appCfg.KDFMemoryKiB,
		Threads:   appCfg.KDFThreads,
	})

	return &ClientServices{
		CredentialService:  NewClientCredentialService(storages.BlobStore, cipher, appCfg, logger),
		LaunchService:      NewClientLaunchService(),
		InviteService:      NewClientInviteService(homeserverAdapter, logger),
		PreferencesService: NewClientPreferencesService(storages.PreferencesRepository, logger),
	}
}
