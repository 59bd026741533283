package routes

import (
	adminapi "quotedrop/internal/api/admin"
	authapi "quotedrop/internal/api/auth"
	"quotedrop/internal/api/billing"
	entityapi "quotedrop/internal/api/entity"
	"quotedrop/internal/api/plans"
	"quotedrop/internal/api/proposals"
	siteapi "quotedrop/internal/api/site"
	stripewebhooks "quotedrop/internal/api/stripewebhook"
	"quotedrop/internal/api/users"
	"quotedrop/internal/app/http/middleware"
	domainusers "quotedrop/internal/domain/users"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// the webhook verifies the raw body signature, so it skips sanitation
	r.POST("/webhook", stripewebhooks.StripeWebhook)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.GET("/site", siteapi.GetSiteConfig)
	public.GET("/entity", entityapi.GetEntityConfig)
	public.GET("/pricing", plans.ListPlans)
	public.GET("/pricing/:id", plans.GetPlan)
	public.GET("/q/:slug", proposals.GetSharedProposal)
	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)

	// Authenticated
	auth := r.Group("/")
	auth.Use(
		middleware.AuthMiddleware(),
		middleware.LoadUser(),
		middleware.SanitizeAndCleanInputMiddleware(),
	)
	auth.GET("/me", users.GetCurrentUser)
	auth.GET("/usage", plans.GetUsage)
	auth.POST("/change-password", authapi.ChangePassword)

	auth.GET("/proposals", proposals.ListProposals)
	auth.GET("/proposals/export", proposals.ExportProposals)
	auth.GET("/proposals/:id", proposals.GetProposal)
	auth.POST("/proposals", proposals.CreateProposal)
	auth.PUT("/proposals/:id", proposals.UpdateProposal)
	auth.DELETE("/proposals/:id", proposals.DeleteProposal)

	auth.GET("/payments", billing.GetPaymentHistory)
	auth.POST("/create-checkout-session", billing.CreateCheckoutSession)
	auth.POST("/billing-portal", billing.CreateBillingPortal)

	// Paid tiers
	paid := auth.Group("/")
	paid.Use(middleware.RequirePaidTier())
	paid.GET("/stats", proposals.GetProposalStats)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole(domainusers.RoleAdmin))
	admin.GET("/users", adminapi.ListAllUsers)
	admin.GET("/users/:id", adminapi.GetUserDetails)
	admin.GET("/stats", adminapi.GetAdminStats)
	admin.GET("/schema", adminapi.GetSchema)
	admin.POST("/check-prices", plans.CheckPricesAgainstStripe)
}
