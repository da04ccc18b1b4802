package handler

import (
	"builderhub-payments/internal/adapter/http/middleware"
	redisStore "builderhub-payments/internal/adapter/storage/redis"
	"builderhub-payments/internal/core/ports"
	"builderhub-payments/internal/gateway"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	WalletSvc      ports.WalletService
	MethodSvc      ports.PaymentMethodService
	PaymentSvc     ports.PaymentService
	RecordSvc      ports.RecordService
	EscrowSvc      ports.EscrowService
	CallbackSvc    ports.CallbackService
	NotifySvc      ports.NotificationService
	SettingsSvc    ports.SettingsService
	Dispatcher     *gateway.Dispatcher
	TokenSvc       ports.TokenService
	ServiceKey     string
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	AuditSvc       ports.AuditService // nil = audit logging disabled
	MetricsPath    string             // empty = /metrics not exposed
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.MaxBodySize(1 << 20))
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	if deps.MetricsPath != "" {
		r.GET(deps.MetricsPath, gin.WrapH(promhttp.Handler()))
	}

	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	rules := middleware.DefaultRateLimitRules()
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}
	preflight := func(c *gin.Context) {}

	// --- Internal endpoints (service key, browser-callable) ---
	gatewayHandler := NewGatewayHandler(deps.Dispatcher, deps.Logger)
	notificationHandler := NewNotificationHandler(deps.NotifySvc)
	internal := r.Group("", middleware.CORS(), middleware.ServiceKey(deps.ServiceKey, deps.Logger))
	{
		internal.OPTIONS("/process-payment", preflight)
		internal.POST("/process-payment", rl("process_payment"), gatewayHandler.ProcessPayment)
		internal.OPTIONS("/send-notifications", preflight)
		internal.POST("/send-notifications", rl("notifications"), notificationHandler.Send)
	}

	v1 := r.Group("/api/v1")

	// --- Provider callbacks (signature-authenticated) ---
	callbackHandler := NewCallbackHandler(deps.CallbackSvc)
	v1.POST("/callbacks/:provider", rl("callbacks"), callbackHandler.Handle)

	// --- JWT-authenticated routes ---
	authed := v1.Group("", middleware.JWTAuth(deps.TokenSvc, deps.Logger))
	admin := middleware.RequireAdmin()

	walletHandler := NewWalletHandler(deps.WalletSvc)
	wallet := authed.Group("/wallet")
	{
		wallet.GET("", rl("read"), walletHandler.GetBalance)
		wallet.GET("/transactions", rl("read"), walletHandler.ListTransactions)
		wallet.GET("/can-apply", rl("read"), walletHandler.CanApply)
		wallet.POST("/recharge", rl("wallet_write"), walletHandler.Recharge)
		wallet.POST("/debit", rl("wallet_write"), walletHandler.Debit)
		wallet.POST("/apply-fee", rl("wallet_write"), walletHandler.ApplyFee)
		wallet.POST("/refund", admin, rl("wallet_write"), walletHandler.Refund)
	}

	methodHandler := NewPaymentMethodHandler(deps.MethodSvc)
	methods := authed.Group("/payment-methods")
	{
		methods.GET("", rl("read"), methodHandler.List)
		methods.POST("", rl("payments"), methodHandler.Create)
		methods.PUT("/:id/default", rl("payments"), methodHandler.SetDefault)
	}

	paymentHandler := NewPaymentHandler(deps.PaymentSvc, deps.RecordSvc)
	payments := authed.Group("/payments")
	{
		payments.POST("", rl("payments"), paymentHandler.Initiate)
		payments.GET("/:id", rl("read"), paymentHandler.Get)
		payments.POST("/:id/cancel", rl("payments"), paymentHandler.Cancel)
		payments.POST("/:id/confirm-cash", rl("payments"), paymentHandler.ConfirmCash)
	}
	authed.GET("/contracts/:id/payments", rl("read"), paymentHandler.ListByContract)

	escrowHandler := NewEscrowHandler(deps.EscrowSvc)
	escrow := authed.Group("/escrow")
	{
		escrow.POST("", rl("payments"), escrowHandler.Open)
		escrow.GET("/:contract_id", rl("read"), escrowHandler.Get)
		escrow.POST("/:contract_id/dispute", rl("payments"), escrowHandler.Dispute)
		escrow.POST("/:contract_id/release", admin, rl("payments"), escrowHandler.Release)
		escrow.POST("/:contract_id/close", admin, rl("payments"), escrowHandler.Close)
	}

	settingsHandler := NewSettingsHandler(deps.SettingsSvc)
	admins := authed.Group("/admin", admin)
	{
		admins.GET("/settings", rl("read"), settingsHandler.Get)
		admins.POST("/settings/reload", rl("wallet_write"), settingsHandler.Reload)
		admins.GET("/providers", rl("read"), Providers(deps.Dispatcher))
	}

	return r
}
