package di

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/neuralshield/neuralshield/internal/adapters/httpapi"
	"github.com/neuralshield/neuralshield/internal/config"
	"github.com/neuralshield/neuralshield/internal/core"
	"github.com/neuralshield/neuralshield/internal/detectors"
	"github.com/neuralshield/neuralshield/internal/factory"
	"github.com/neuralshield/neuralshield/internal/logging"
	"github.com/neuralshield/neuralshield/internal/metrics"
	"github.com/neuralshield/neuralshield/internal/nbmodel"
	"github.com/neuralshield/neuralshield/internal/session"
	"github.com/neuralshield/neuralshield/internal/textproc"
	"github.com/neuralshield/neuralshield/internal/utils"
)

// BuildContainer creates and configures a dependency injection container
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	providers := []interface{}{
		// Configuration and logging
		config.New,
		logging.InitLogger,

		// Metrics
		prometheus.NewRegistry,
		func(reg *prometheus.Registry) *metrics.Metrics {
			return metrics.New(reg)
		},

		// Trained model artifact; absence is fatal and surfaces here
		func(cfg *config.Config, logger *zap.Logger) (*nbmodel.Artifact, error) {
			mc := cfg.GetModel()
			artifact, err := nbmodel.Load(mc.VectorizerPath, mc.ClassifierPath)
			if err != nil {
				return nil, fmt.Errorf("model artifacts are required to serve scans: %w", err)
			}
			logger.Info("Loaded model artifacts",
				zap.String("vectorizer", mc.VectorizerPath),
				zap.String("classifier", mc.ClassifierPath),
				zap.String("version", artifact.Version()),
				zap.Int("dimensions", artifact.Dim()))
			return artifact, nil
		},

		// Text pipeline and detectors
		textproc.NewNormalizer,
		detectors.NewSuite,
		func(cfg *config.Config, logger *zap.Logger) (core.RedirectResolver, error) {
			lc, err := cfg.GetLookup()
			if err != nil {
				return nil, err
			}
			return detectors.NewHTTPRedirectResolver(lc.RedirectTimeout, logger), nil
		},
		func(cfg *config.Config, logger *zap.Logger) (core.RegistrarClient, error) {
			lc, err := cfg.GetLookup()
			if err != nil {
				return nil, err
			}
			return detectors.NewWhoisRegistrar(lc.WhoisTimeout, logger), nil
		},

		// Session state and rate limiting
		func(cfg *config.Config, logger *zap.Logger) (*session.Store, error) {
			sc, err := cfg.GetSession()
			if err != nil {
				return nil, err
			}
			return session.NewStore(sc.TTL, sc.HistoryLimit, logger), nil
		},
		func(cfg *config.Config) (*session.Cooldown, error) {
			sc, err := cfg.GetScan()
			if err != nil {
				return nil, err
			}
			return session.NewCooldown(sc.RateLimitInterval), nil
		},

		// Factories
		factory.NewCacheFactory,
		factory.NewFeedbackFactory,
		func(f *factory.CacheFactory) (core.VerdictCache, error) {
			return f.CreateVerdictCache()
		},
		func(f *factory.FeedbackFactory) (core.FeedbackStore, error) {
			return f.CreateFeedbackStore()
		},

		// Input sanitizer
		func(cfg *config.Config, logger *zap.Logger) (core.InputSanitizer, error) {
			sc, err := cfg.GetScan()
			if err != nil {
				return nil, err
			}
			return utils.NewSanitizer(logger, sc.MaxBodySize), nil
		},

		// Scan service
		func(
			cfg *config.Config,
			cacheFactory *factory.CacheFactory,
			normalizer *textproc.Normalizer,
			artifact *nbmodel.Artifact,
			suite *detectors.Suite,
			redirects core.RedirectResolver,
			registrar core.RegistrarClient,
			sessions *session.Store,
			limiter *session.Cooldown,
			sanitizer core.InputSanitizer,
			verdictCache core.VerdictCache,
			feedbackStore core.FeedbackStore,
			m *metrics.Metrics,
			logger *zap.Logger,
		) (*core.ScanService, error) {
			sc, err := cfg.GetScan()
			if err != nil {
				return nil, err
			}
			cacheTTL, err := cacheFactory.GetCacheTTL()
			if err != nil {
				return nil, err
			}
			opts := core.ScanOptions{
				CacheEnabled:  cacheFactory.IsCacheEnabled(),
				CacheTTL:      cacheTTL,
				SnippetLength: sc.SnippetLength,
			}
			return core.NewScanService(
				normalizer, artifact, suite, redirects, registrar,
				sessions, limiter, sanitizer, verdictCache, feedbackStore,
				m, logger, opts, utils.Snippet,
			), nil
		},

		// HTTP API
		func(
			cfg *config.Config,
			service *core.ScanService,
			sessions *session.Store,
			logger *zap.Logger,
			registry *prometheus.Registry,
			artifact *nbmodel.Artifact,
		) (*httpapi.Server, error) {
			srv, err := cfg.GetServer()
			if err != nil {
				return nil, err
			}
			info := httpapi.ModelInfo{
				Version:   artifact.Version(),
				Type:      artifact.ModelType(),
				TrainedAt: artifact.TrainedAt(),
			}
			return httpapi.NewServer(service, sessions, logger, registry, info,
				srv.ListenAddress, srv.ShutdownTimeout), nil
		},
	}

	for _, p := range providers {
		if err := container.Provide(p); err != nil {
			return nil, err
		}
	}

	return container, nil
}
