package cli

import (
	"context"
	"fmt"
	"time"

	"builderhub-payments/config"
	httpHandler "builderhub-payments/internal/adapter/http/handler"
	"builderhub-payments/internal/adapter/storage/memory"
	pgStorage "builderhub-payments/internal/adapter/storage/postgres"
	redisStorage "builderhub-payments/internal/adapter/storage/redis"
	"builderhub-payments/internal/core/domain"
	"builderhub-payments/internal/core/ports"
	"builderhub-payments/internal/gateway"
	"builderhub-payments/internal/service"
	"builderhub-payments/pkg/logger"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// repositories groups the persistence ports of one storage driver.
type repositories struct {
	wallets    ports.WalletRepository
	ledger     ports.WalletLedgerRepository
	methods    ports.PaymentMethodRepository
	txns       ports.TransactionRepository
	escrow     ports.EscrowRepository
	settings   ports.SettingsRepository
	audit      ports.AuditRepository
	transactor ports.DBTransactor
	health     ports.HealthChecker
}

// app is the fully wired service.
type app struct {
	router  *gin.Engine
	audit   *service.AuditServiceImpl
	closers []func()
}

// Close releases storage connections in reverse order of acquisition.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

func newApp(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*app, error) {
	a := &app{}

	repos, rdb, err := openStorage(ctx, cfg, log, a)
	if err != nil {
		a.Close()
		return nil, err
	}

	var encSvc ports.EncryptionService
	if cfg.Encryption.Key != "" {
		cipher, err := service.NewPhoneCipher(cfg.Encryption.Key)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("init phone cipher: %w", err)
		}
		encSvc = cipher
	} else {
		log.Warn().Msg("encryption.key not set, mobile-money payment methods cannot be saved")
	}

	if cfg.Auth.JWTSecret == "" {
		log.Warn().Msg("auth.jwt_secret not set, every bearer token will be rejected")
	}
	if cfg.Auth.ServiceKey == "" {
		log.Warn().Msg("auth.service_key not set, /process-payment and /send-notifications are closed")
	}

	sigSvc := service.NewHMACSignatureService()
	tokenSvc := service.NewJWTTokenService(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)
	idempCache := redisStorage.NewIdempotencyCache(rdb)
	nonceStore := redisStorage.NewNonceStore(rdb)

	settingsSvc := service.NewSettingsService(repos.settings, domain.FeeSettings{
		PlatformFeeRate: cfg.Payments.PlatformFeeRate,
		ApplicationFee:  cfg.Wallet.ApplicationFee,
	}, logger.Component(log, "settings"))

	walletSvc := service.NewWalletService(
		repos.wallets,
		repos.ledger,
		idempCache,
		settingsSvc,
		repos.transactor,
		service.WalletOptions{
			EnforceRechargeIdempotency: cfg.Wallet.EnforceRechargeIdempotency,
			IdempotencyTTL:             time.Duration(cfg.Wallet.IdempotencyTTLHours) * time.Hour,
		},
		logger.Component(log, "wallet"),
	)

	dispatcher := gateway.NewDispatcher(gateway.OptionsFromConfig(cfg), nil, logger.Component(log, "gateway"))
	recordSvc := service.NewRecordService(repos.txns, repos.escrow, repos.transactor, logger.Component(log, "records"))
	escrowSvc := service.NewEscrowService(repos.escrow, repos.txns, repos.transactor, logger.Component(log, "escrow"))
	methodSvc := service.NewPaymentMethodService(repos.methods, encSvc, repos.transactor, logger.Component(log, "payment_methods"))
	paymentSvc := service.NewPaymentService(methodSvc, recordSvc, dispatcher, settingsSvc, repos.escrow, logger.Component(log, "payments"))

	secrets := make(map[domain.ProviderID]string)
	for _, id := range domain.MobileMoneyProviders() {
		secrets[id] = cfg.Provider(string(id)).CallbackSecret
	}
	callbackSvc := service.NewCallbackService(recordSvc, repos.txns, nonceStore, sigSvc, secrets, logger.Component(log, "callbacks"))

	a.audit = service.NewAuditService(repos.audit, logger.Component(log, "audit"))

	metricsPath := ""
	if cfg.Metrics.Enabled {
		metricsPath = cfg.Metrics.Path
	}

	a.router = httpHandler.SetupRouter(httpHandler.RouterDeps{
		WalletSvc:      walletSvc,
		MethodSvc:      methodSvc,
		PaymentSvc:     paymentSvc,
		RecordSvc:      recordSvc,
		EscrowSvc:      escrowSvc,
		CallbackSvc:    callbackSvc,
		NotifySvc:      service.NewLogNotificationService(logger.Component(log, "notifications")),
		SettingsSvc:    settingsSvc,
		Dispatcher:     dispatcher,
		TokenSvc:       tokenSvc,
		ServiceKey:     cfg.Auth.ServiceKey,
		RateLimitStore: redisStorage.NewRateLimitStore(rdb),
		HealthCheckers: []ports.HealthChecker{repos.health, redisStorage.NewHealthCheck(rdb)},
		AuditSvc:       a.audit,
		MetricsPath:    metricsPath,
		Logger:         log,
	})

	return a, nil
}

// openStorage connects the configured driver. Memory mode pairs the
// in-process store with an embedded Redis.
func openStorage(ctx context.Context, cfg *config.Config, log zerolog.Logger, a *app) (repositories, *goredis.Client, error) {
	if cfg.Storage.Driver == "memory" {
		store := memory.NewStore()
		embedded, err := redisStorage.NewEmbedded(log)
		if err != nil {
			return repositories{}, nil, err
		}
		a.closers = append(a.closers, func() { _ = embedded.Close() })

		log.Warn().Msg("storage.driver is memory, all data is lost on restart")
		return repositories{
			wallets:    memory.NewWalletRepo(store),
			ledger:     memory.NewLedgerRepo(store),
			methods:    memory.NewPaymentMethodRepo(store),
			txns:       memory.NewTransactionRepo(store),
			escrow:     memory.NewEscrowRepo(store),
			settings:   memory.NewSettingsRepo(store),
			audit:      memory.NewAuditRepo(store),
			transactor: store,
			health:     memory.HealthCheck{},
		}, embedded.Client, nil
	}

	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		return repositories{}, nil, fmt.Errorf("connect postgres: %w", err)
	}
	a.closers = append(a.closers, pool.Close)

	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		return repositories{}, nil, fmt.Errorf("connect redis: %w", err)
	}
	a.closers = append(a.closers, func() { _ = rdb.Close() })

	return repositories{
		wallets:    pgStorage.NewWalletRepo(pool),
		ledger:     pgStorage.NewLedgerRepo(pool),
		methods:    pgStorage.NewPaymentMethodRepo(pool),
		txns:       pgStorage.NewTransactionRepo(pool),
		escrow:     pgStorage.NewEscrowRepo(pool),
		settings:   pgStorage.NewSettingsRepo(pool),
		audit:      pgStorage.NewAuditRepo(pool),
		transactor: pgStorage.NewTransactor(pool),
		health:     pgStorage.NewHealthCheck(pool),
	}, rdb, nil
}
