package proposals

import (
	"net/http"
	"testing"
	"time"

	"quotedrop/database"
	"quotedrop/internal/app/http/middleware"
	"quotedrop/internal/domain/pricing"
	"quotedrop/internal/domain/proposals"
	"quotedrop/internal/domain/users"
	"quotedrop/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter() *gin.Engine {
	r := gin.New()
	r.GET("/q/:slug", GetSharedProposal)

	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware(), middleware.LoadUser())
	auth.GET("/proposals", ListProposals)
	auth.GET("/proposals/export", ExportProposals)
	auth.GET("/proposals/:id", GetProposal)
	auth.POST("/proposals", CreateProposal)
	auth.PUT("/proposals/:id", UpdateProposal)
	auth.DELETE("/proposals/:id", DeleteProposal)
	return r
}

func validBody(title string) map[string]any {
	return map[string]any{
		"title":        title,
		"client_name":  "Acme Corp.",
		"total_amount": "1500.00",
		"status":       "draft",
	}
}

func TestFreeTierStopsAtFive(t *testing.T) {
	testutil.Setup(t)
	r := newRouter()
	_, token := testutil.CreateUser(t, users.User{Email: "free@example.com", Tier: pricing.TierFree})

	for i := 0; i < 5; i++ {
		w := testutil.Do(t, r, http.MethodPost, "/proposals", token, validBody("Quote"))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w := testutil.Do(t, r, http.MethodPost, "/proposals", token, validBody("One too many"))
	require.Equal(t, http.StatusPaymentRequired, w.Code)

	var body map[string]any
	testutil.Decode(t, w, &body)
	assert.Equal(t, float64(5), body["limit"])
	assert.Equal(t, float64(5), body["used"])

	// archived proposals do not count
	var first proposals.Proposal
	require.NoError(t, database.DB.Order("created_at ASC").First(&first).Error)
	w = testutil.Do(t, r, http.MethodPut, "/proposals/"+first.ID, token, map[string]any{"status": "archived"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = testutil.Do(t, r, http.MethodPost, "/proposals", token, validBody("Fits again"))
	assert.Equal(t, http.StatusCreated, w.Code)

	// and cannot be restored past the cap
	w = testutil.Do(t, r, http.MethodPut, "/proposals/"+first.ID, token, map[string]any{"status": "draft"})
	assert.Equal(t, http.StatusPaymentRequired, w.Code)
}

func TestPaidTierIsUnlimited(t *testing.T) {
	testutil.Setup(t)
	r := newRouter()

	sub, status := "sub_1", "active"
	_, token := testutil.CreateUser(t, users.User{
		Email:                    "pro@example.com",
		Tier:                     pricing.TierPro,
		SubscriptionID:           &sub,
		StripeSubscriptionStatus: &status,
	})

	for i := 0; i < 7; i++ {
		w := testutil.Do(t, r, http.MethodPost, "/proposals", token, validBody("Quote"))
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := testutil.Do(t, r, http.MethodGet, "/proposals", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list ListResponse
	testutil.Decode(t, w, &list)
	assert.Len(t, list.Items, 7)
	assert.Equal(t, pricing.TierPro, list.Usage.Tier)
	assert.Equal(t, pricing.Unlimited, list.Usage.Remaining)
	assert.Len(t, list.Fields, 4)
	assert.NotContains(t, list.Items[0], "shareable_link")
}

func TestCreateValidatesAgainstEntity(t *testing.T) {
	testutil.Setup(t)
	r := newRouter()
	_, token := testutil.CreateUser(t, users.User{Email: "v@example.com"})

	body := validBody("Bad")
	body["status"] = "won"
	body["shareable_link"] = "nope"

	w := testutil.Do(t, r, http.MethodPost, "/proposals", token, body)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Fields map[string]string `json:"fields"`
	}
	testutil.Decode(t, w, &resp)
	assert.Contains(t, resp.Fields, "status")
	assert.Contains(t, resp.Fields, "shareable_link")
}

func TestCreateFillsShareLinkAndDefaults(t *testing.T) {
	testutil.Setup(t)
	r := newRouter()
	_, token := testutil.CreateUser(t, users.User{Email: "s@example.com"})

	body := validBody("Logo Design")
	delete(body, "status")
	body["status"] = "sent"

	w := testutil.Do(t, r, http.MethodPost, "/proposals", token, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created ProposalDTO
	testutil.Decode(t, w, &created)
	assert.Contains(t, created.ShareURL, "https://quotedrop.test/q/logo-design-")
	assert.Equal(t, created.ShareURL, created.Values["shareable_link"])

	var p proposals.Proposal
	require.NoError(t, database.DB.First(&p, "id = ?", created.ID).Error)

	// opening the share link marks a sent quote viewed and shows branding for free users
	w = testutil.Do(t, r, http.MethodGet, "/q/"+p.ShareSlug, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var shared SharedProposalDTO
	testutil.Decode(t, w, &shared)
	assert.Equal(t, proposals.StatusViewed, shared.Status)
	assert.Equal(t, "1500.00", shared.TotalAmount)
	assert.True(t, shared.ShowBranding)

	w = testutil.Do(t, r, http.MethodGet, "/q/unknown", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOwnershipAndDelete(t *testing.T) {
	testutil.Setup(t)
	r := newRouter()
	_, alice := testutil.CreateUser(t, users.User{Email: "alice@example.com"})
	_, bob := testutil.CreateUser(t, users.User{Email: "bob@example.com"})

	w := testutil.Do(t, r, http.MethodPost, "/proposals", alice, validBody("Alice quote"))
	require.Equal(t, http.StatusCreated, w.Code)
	var created ProposalDTO
	testutil.Decode(t, w, &created)

	assert.Equal(t, http.StatusNotFound, testutil.Do(t, r, http.MethodGet, "/proposals/"+created.ID, bob, nil).Code)
	assert.Equal(t, http.StatusNotFound, testutil.Do(t, r, http.MethodDelete, "/proposals/"+created.ID, bob, nil).Code)
	assert.Equal(t, http.StatusOK, testutil.Do(t, r, http.MethodGet, "/proposals/"+created.ID, alice, nil).Code)
	assert.Equal(t, http.StatusOK, testutil.Do(t, r, http.MethodDelete, "/proposals/"+created.ID, alice, nil).Code)
	assert.Equal(t, http.StatusNotFound, testutil.Do(t, r, http.MethodGet, "/proposals/"+created.ID, alice, nil).Code)
}

func TestUpdateCannotClearRequired(t *testing.T) {
	testutil.Setup(t)
	r := newRouter()
	_, token := testutil.CreateUser(t, users.User{Email: "u@example.com"})

	w := testutil.Do(t, r, http.MethodPost, "/proposals", token, validBody("Keep"))
	require.Equal(t, http.StatusCreated, w.Code)
	var created ProposalDTO
	testutil.Decode(t, w, &created)

	w = testutil.Do(t, r, http.MethodPut, "/proposals/"+created.ID, token, map[string]any{"title": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = testutil.Do(t, r, http.MethodPut, "/proposals/"+created.ID, token, map[string]any{"total_amount": 99.5, "acceptance_date": "2026-01-31"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated ProposalDTO
	testutil.Decode(t, w, &updated)
	assert.Equal(t, "Keep", updated.Values["title"])
	assert.Equal(t, "99.5", updated.Values["total_amount"])
}

func TestExportDisabled(t *testing.T) {
	testutil.Setup(t)
	r := newRouter()
	_, token := testutil.CreateUser(t, users.User{Email: "e@example.com"})

	w := testutil.Do(t, r, http.MethodGet, "/proposals/export", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestOrderClause(t *testing.T) {
	assert.Equal(t, "created_at DESC", orderClause("", ""))
	assert.Equal(t, "title ASC", orderClause("title", "asc"))
	assert.Equal(t, "created_at ASC", orderClause("shareable_link; DROP TABLE", "ASC"))
	assert.Equal(t, "total_amount DESC", orderClause("total_amount", "sideways"))
}

func TestMonthStart(t *testing.T) {
	got := proposals.MonthStart(time.Date(2026, 10, 18, 23, 0, 0, 0, time.FixedZone("x", -5*3600)))
	assert.Equal(t, time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -18), got)
}

func TestWinRate(t *testing.T) {
	assert.Equal(t, "0", winRate(0, 0).String())
	assert.Equal(t, "0.6667", winRate(2, 1).String())
	assert.Equal(t, "1", winRate(3, 0).String())
}

func TestProposalStatsRequirePaidTier(t *testing.T) {
	testutil.Setup(t)
	r := gin.New()
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware(), middleware.LoadUser())
	auth.POST("/proposals", CreateProposal)
	auth.GET("/stats", middleware.RequirePaidTier(), GetProposalStats)

	_, freeToken := testutil.CreateUser(t, users.User{Email: "f@example.com"})
	w := testutil.Do(t, r, http.MethodGet, "/stats", freeToken, nil)
	assert.Equal(t, http.StatusPaymentRequired, w.Code)

	sub, status := "sub_s", "active"
	_, token := testutil.CreateUser(t, users.User{
		Email:                    "stats@example.com",
		Tier:                     pricing.TierStudio,
		SubscriptionID:           &sub,
		StripeSubscriptionStatus: &status,
	})
	for _, st := range []string{"accepted", "accepted", "rejected", "sent"} {
		body := validBody("Q " + st)
		body["status"] = st
		w := testutil.Do(t, r, http.MethodPost, "/proposals", token, body)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w = testutil.Do(t, r, http.MethodGet, "/stats", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got StatsResponse
	testutil.Decode(t, w, &got)
	assert.Equal(t, 2, got.ByStatus["accepted"])
	assert.Equal(t, 0, got.ByStatus["draft"])
	assert.Equal(t, 3, got.Decided)
	assert.Equal(t, "0.6667", got.WinRate)
	assert.Equal(t, "3000.00", got.AcceptedValue)
}

func TestCreateWithoutStatusDefaultsToDraft(t *testing.T) {
	testutil.Setup(t)
	r := newRouter()
	_, token := testutil.CreateUser(t, users.User{Email: "d@example.com"})

	body := validBody("No status")
	delete(body, "status")

	w := testutil.Do(t, r, http.MethodPost, "/proposals", token, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created ProposalDTO
	testutil.Decode(t, w, &created)
	assert.Equal(t, proposals.StatusDraft, created.Values["status"])
}

func TestMalformedIDIsNotFound(t *testing.T) {
	testutil.Setup(t)
	r := newRouter()
	_, token := testutil.CreateUser(t, users.User{Email: "m@example.com"})

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		w := testutil.Do(t, r, method, "/proposals/not-a-uuid", token, map[string]any{"title": "x"})
		assert.Equal(t, http.StatusNotFound, w.Code, method)
	}
}
