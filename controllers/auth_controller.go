package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/parthdk16/Restaurant-Management-System-sub001/pkg/resp"
	"github.com/parthdk16/Restaurant-Management-System-sub001/services"
	"github.com/parthdk16/Restaurant-Management-System-sub001/utils"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (ac *AuthController) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, admin, err := ac.Auth.Login(req.Email, req.Password)
	if err != nil {
		resp.Unauthorized(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"token": token, "admin": admin})
}

func (ac *AuthController) Me(c *gin.Context) {
	admin, err := ac.Auth.GetProfile(utils.CurrentAdminID(c))
	if err != nil {
		resp.NotFound(c, "admin not found")
		return
	}
	resp.OK(c, admin)
}

func (ac *AuthController) Logout(c *gin.Context) {
	if err := ac.Auth.Logout(c.Request.Context(), utils.CurrentTokenID(c)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"loggedOut": true})
}
