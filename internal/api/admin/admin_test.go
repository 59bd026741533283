package admin

import (
	"net/http"
	"testing"
	"time"

	"quotedrop/database"
	"quotedrop/internal/domain/billing"
	"quotedrop/internal/domain/pricing"
	"quotedrop/internal/domain/proposals"
	"quotedrop/internal/domain/users"
	"quotedrop/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAdminStats(t *testing.T) {
	testutil.Setup(t)
	alice, _ := testutil.CreateUser(t, users.User{Email: "a@example.com"})
	bob, _ := testutil.CreateUser(t, users.User{Email: "b@example.com", Tier: pricing.TierPro})

	require.NoError(t, database.DB.Create(&proposals.Proposal{UserID: alice.ID, Title: "Site", ClientName: "Acme"}).Error)
	require.NoError(t, database.DB.Create(&[]billing.Payment{
		{UserID: bob.ID, Tier: pricing.TierPro, StripeSessionID: "cs_1", Amount: decimal.RequireFromString("15.00"), Status: "paid"},
		{UserID: bob.ID, Tier: pricing.TierPro, StripeSessionID: "cs_2", Amount: decimal.RequireFromString("144.00"), Status: "paid",
			CreatedAt: time.Now().UTC().AddDate(0, -3, 0)},
		{UserID: bob.ID, Tier: pricing.TierPro, StripeSessionID: "cs_3", Amount: decimal.RequireFromString("15.00"), Status: "unpaid"},
	}).Error)

	r := gin.New()
	r.GET("/admin/stats", GetAdminStats)

	w := testutil.Do(t, r, http.MethodGet, "/admin/stats", "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got AdminStats
	testutil.Decode(t, w, &got)
	assert.Equal(t, 2, got.TotalUsers)
	assert.Equal(t, 1, got.TotalProposals)
	assert.Equal(t, 1, got.ProposalsThisMonth)
	assert.Equal(t, "159.00", got.TotalRevenue)
	assert.Equal(t, "15.00", got.RecentRevenue)
	assert.Equal(t, map[string]int{"free": 1, "pro": 1}, got.UsersPerTier)
}

func TestListAllUsersHidesPasswords(t *testing.T) {
	testutil.Setup(t)
	hash := "$2a$10$abcdefghijklmnopqrstuv"
	testutil.CreateUser(t, users.User{Email: "a@example.com", Password: &hash, Tier: pricing.TierStudio})

	r := gin.New()
	r.GET("/admin/users", ListAllUsers)
	r.GET("/admin/users/:id", GetUserDetails)

	w := testutil.Do(t, r, http.MethodGet, "/admin/users", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), hash)

	var list []AdminUser
	testutil.Decode(t, w, &list)
	require.Len(t, list, 1)
	assert.Equal(t, pricing.TierStudio, list[0].Tier)
	assert.Equal(t, pricing.TierFree, list[0].EffectiveTier)

	w = testutil.Do(t, r, http.MethodGet, "/admin/users/1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), hash)

	w = testutil.Do(t, r, http.MethodGet, "/admin/users/99", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetSchema(t *testing.T) {
	r := gin.New()
	r.GET("/admin/schema", GetSchema)

	w := testutil.Do(t, r, http.MethodGet, "/admin/schema", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "CREATE TABLE")

	w = testutil.Do(t, r, http.MethodGet, "/admin/schema?format=zod", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "z.coerce.number()")
}
