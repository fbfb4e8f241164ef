package controllers

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/parthdk16/Restaurant-Management-System-sub001/pkg/objectstore"
	"github.com/parthdk16/Restaurant-Management-System-sub001/pkg/resp"
)

type UploadController struct {
	Store *objectstore.Local
}

func NewUploadController(store *objectstore.Local) *UploadController {
	return &UploadController{Store: store}
}

type presignReq struct {
	Key         string `json:"key" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
}

// Presign issues a short-lived write URL so the dashboard can PUT the
// photo bytes directly.
func (uc *UploadController) Presign(c *gin.Context) {
	var req presignReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	url, err := uc.Store.PresignPut(req.Key, req.ContentType)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"uploadUrl": url, "publicUrl": uc.Store.PublicURL(req.Key)})
}

// Put receives the bytes for a presigned token.
func (uc *UploadController) Put(c *gin.Context) {
	key, _, err := uc.Store.VerifyToken(c.Param("token"))
	if err != nil {
		resp.Unauthorized(c, err.Error())
		return
	}
	contentType := c.ContentType()
	url, err := uc.Store.Put(key, contentType, c.Request.Body)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"url": url})
}

// Direct is the one-shot multipart path (upload bytes, get a public URL
// back).
func (uc *UploadController) Direct(c *gin.Context) {
	file, err := c.FormFile("photo")
	if err != nil {
		resp.BadRequest(c, "photo file is required")
		return
	}
	src, err := file.Open()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	defer src.Close()

	key := fmt.Sprintf("menu/%d%s", time.Now().UnixNano(), filepath.Ext(file.Filename))
	url, err := uc.Store.Put(key, file.Header.Get("Content-Type"), src)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"url": url})
}
