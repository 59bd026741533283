package auth

import (
	"net/http"
	"testing"

	"quotedrop/database"
	"quotedrop/internal/domain/pricing"
	"quotedrop/internal/domain/users"
	"quotedrop/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func router() *gin.Engine {
	r := gin.New()
	r.POST("/register", Register)
	r.POST("/login", Login)
	return r
}

func TestIsPasswordStrong(t *testing.T) {
	assert.True(t, isPasswordStrong("abcdefg1"))
	assert.False(t, isPasswordStrong("abc1"))
	assert.False(t, isPasswordStrong("abcdefgh"))
	assert.False(t, isPasswordStrong("12345678"))
}

func TestRegisterThenLogin(t *testing.T) {
	testutil.Setup(t)
	r := router()

	w := testutil.Do(t, r, http.MethodPost, "/register", "", map[string]string{
		"name": "Ada", "email": "Ada@Example.com", "password": "s3cretpass",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var u users.User
	require.NoError(t, database.DB.Where("email = ?", "ada@example.com").First(&u).Error)
	assert.Equal(t, pricing.TierFree, u.Tier)
	require.NotNil(t, u.Password)
	assert.NotEqual(t, "s3cretpass", *u.Password)

	w = testutil.Do(t, r, http.MethodPost, "/register", "", map[string]string{
		"name": "Ada", "email": "ada@example.com", "password": "s3cretpass",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = testutil.Do(t, r, http.MethodPost, "/login", "", map[string]string{
		"email": "ada@example.com", "password": "s3cretpass",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Token string `json:"token"`
	}
	testutil.Decode(t, w, &body)
	assert.NotEmpty(t, body.Token)

	w = testutil.Do(t, r, http.MethodPost, "/login", "", map[string]string{
		"email": "ada@example.com", "password": "wrongpass1",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	testutil.Setup(t)

	w := testutil.Do(t, router(), http.MethodPost, "/register", "", map[string]string{
		"name": "Bo", "email": "bo@example.com", "password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
