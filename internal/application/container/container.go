// Package container provides dependency injection for all singleton services
package container

import (
	"fmt"
	"net/http"

	"github.com/ModelHouseContracting/modelhouse-go/internal/application/services"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/caching/stores"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/email"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/i18n"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/messaging"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/observability/logging"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/observability/performance"
	contentrepo "github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/persistence/content"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/persistence/database"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/remote"
	"github.com/ModelHouseContracting/modelhouse-go/pkg/config"
)

// Container holds all singleton services and infrastructure dependencies
type Container struct {
	// Application Services
	ContentLoader  *services.ContentLoader
	PageService    *services.PageService
	AdminService   *services.AdminService
	AuthService    *services.AuthService
	ContactService *services.ContactService

	// Infrastructure Dependencies
	Documents   *stores.DocumentStore
	Sessions    *stores.SessionsStore
	Broadcaster *messaging.SSEBroadcaster
	Catalog     *i18n.Catalog
	Remote      *remote.Client
	Config      *config.Config
	Logger      *logging.ChanneledLogger
	PerfTracker *performance.Tracker
}

// NewContainer creates and wires all singleton services
func NewContainer(cfg *config.Config, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) (*Container, error) {
	catalog, err := i18n.LoadEmbedded()
	if err != nil {
		return nil, fmt.Errorf("failed to load translations: %w", err)
	}

	documents := stores.NewDocumentStore(logger)
	sessions := stores.NewSessionsStore(logger)
	broadcaster := messaging.NewSSEBroadcaster(logger)
	documents.OnReplace(broadcaster.BroadcastContentUpdated)

	httpClient := &http.Client{Timeout: cfg.ContentLoadTimeout}
	remoteClient := remote.NewClient(cfg.ContentAPIURL, cfg.ContentAPIToken, httpClient, logger)

	var mailer email.Service
	if cfg.EmailEnabled() {
		resendClient, err := email.NewService(cfg.ResendAPIKey, cfg.ContactEmailFrom, cfg.ContactEmailTo)
		if err != nil {
			return nil, fmt.Errorf("failed to create email service: %w", err)
		}
		mailer = resendClient
	} else {
		logger.Email().Warn("Email delivery disabled; contact inquiries will only be logged")
	}

	adminService := services.NewAdminService(documents, sessions, remoteClient, catalog, services.AdminConfig{
		SessionTTL: cfg.AdminSessionTTL,
		NoticeTTL:  cfg.NoticeTTL,
	}, logger, perfTracker)

	return &Container{
		ContentLoader:  services.NewContentLoader(remoteClient, documents, cfg.ContentLoadTimeout, logger, perfTracker),
		PageService:    services.NewPageService(documents, catalog),
		AdminService:   adminService,
		AuthService:    services.NewAuthService(cfg.AdminPassword, adminService, logger, perfTracker),
		ContactService: services.NewContactService(mailer, catalog, logger, perfTracker),

		Documents:   documents,
		Sessions:    sessions,
		Broadcaster: broadcaster,
		Catalog:     catalog,
		Remote:      remoteClient,
		Config:      cfg,
		Logger:      logger,
		PerfTracker: perfTracker,
	}, nil
}

// StoreContainer holds the singletons of the content store service
type StoreContainer struct {
	RecordService *services.RecordService

	DB          *database.DB
	Config      *config.StoreConfig
	Logger      *logging.ChanneledLogger
	PerfTracker *performance.Tracker
}

// NewStoreContainer opens the database and wires the record service
func NewStoreContainer(cfg *config.StoreConfig, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) (*StoreContainer, error) {
	db, err := database.NewConnectionWithLogger(cfg.DBDriver, cfg.DBDSN, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open content database: %w", err)
	}

	repo := contentrepo.NewRecordRepository(db, logger)
	return &StoreContainer{
		RecordService: services.NewRecordService(repo, logger, perfTracker),
		DB:            db,
		Config:        cfg,
		Logger:        logger,
		PerfTracker:   perfTracker,
	}, nil
}

// Close releases the database connection
func (c *StoreContainer) Close() error {
	return c.DB.Close()
}
