package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
	"vitanet.io/elder-care-service/pkg/models"
)

type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

var registerRequestSchema = z.Struct(z.Shape{
	"Email":    z.String().Required(),
	"Name":     z.String().Required(),
	"Password": z.String().Required(),
})

// PostRegister always creates a caregiver; admin accounts are provisioned
// out of band.
func (rs *RestfulServer) PostRegister(c *gin.Context) {
	var req RegisterRequest
	if err := registerRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	user, err := rs.Care.Account.CreateAccount(req.Email, req.Name, req.Password, models.RoleCaregiver)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := rs.Tokens.IssueToken(user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

var loginRequestSchema = z.Struct(z.Shape{
	"Email":    z.String().Required(),
	"Password": z.String().Required(),
})

func (rs *RestfulServer) PostLogin(c *gin.Context) {
	var req LoginRequest
	if err := loginRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	user, err := rs.Care.Account.Authenticate(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := rs.Tokens.IssueToken(user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}
