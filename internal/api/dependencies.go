package api

import (
	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"

	"github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/auth"
	"github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/common"
	"github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/config"
	"github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/db/repositories"
	"github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/logging"
	"github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/media"
	"github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/metrics"
	"github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/pages"
)

type Repositories struct {
	TeamMembers  *repositories.TeamMemberRepository
	Events       *repositories.EventRepository
	News         *repositories.NewsRepository
	Gallery      *repositories.GalleryRepository
	Applications *repositories.ApplicationRepository
	Subscribers  *repositories.SubscriberRepository
}

type Services struct {
	Sessions *auth.CookieManager
	Cache    common.CacheInterface
	Media    *media.Client
	Pages    *pages.Builder
}

type Dependencies struct {
	Config  *config.Config
	Repo    *Repositories
	Service *Services
	Metrics *metrics.MetricsRegistry
}

// InitDependencies wires repositories and services around the injected
// database handles. Nothing here reads the environment; everything comes
// from cfg.
func InitDependencies(cfg *config.Config, pool *sqlx.DB, orm *gorm.DB, metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {

	repos := &Repositories{
		TeamMembers:  repositories.NewTeamMemberRepository(orm),
		Events:       repositories.NewEventRepository(orm),
		News:         repositories.NewNewsRepository(orm),
		Gallery:      repositories.NewGalleryRepository(orm),
		Applications: repositories.NewApplicationRepository(orm),
		Subscribers:  repositories.NewSubscriberRepository(pool),
	}

	authority, err := auth.NewJWTAuthority(cfg.Admin.JWTSecret)
	if err != nil {
		return nil, err
	}
	sessions := auth.NewCookieManager(authority, cfg.AppEnv)

	var cacheSvc common.CacheInterface
	if cfg.Redis.Enabled() {
		redisCache, err := common.NewRedisCacheService(cfg.Redis)
		if err != nil {
			logging.Warn("Redis unavailable, falling back to in-memory cache", "error", err.Error())
			cacheSvc = common.NewCacheService(300, 600)
		} else {
			cacheSvc = redisCache
		}
	} else {
		cacheSvc = common.NewCacheService(300, 600)
	}

	var mediaClient *media.Client
	if err := cfg.Media.Validate(); err != nil {
		// Uploads stay disabled until the credentials are provisioned; every
		// other endpoint works without them.
		logging.Warn("Media credentials incomplete, gallery uploads disabled", "error", err.Error())
	} else {
		mediaClient, err = media.NewClient(cfg.Media)
		if err != nil {
			return nil, err
		}
	}

	pageBuilder := pages.NewBuilder(
		repos.TeamMembers,
		repos.Events,
		repos.News,
		repos.Gallery,
		cacheSvc,
		metricsReg,
	)

	return &Dependencies{
		Config: cfg,
		Repo:   repos,
		Service: &Services{
			Sessions: sessions,
			Cache:    cacheSvc,
			Media:    mediaClient,
			Pages:    pageBuilder,
		},
		Metrics: metricsReg,
	}, nil
}
