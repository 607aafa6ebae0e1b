package controllers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/muhwezim78/Nashiecom-sub000/pkg/resp"
)

type UploadController struct {
	dir   string
	maxMB int64
}

func NewUploadController(dir string, maxMB int64) *UploadController {
	return &UploadController{dir: dir, maxMB: maxMB}
}

var allowedImageExt = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
}

// POST /uploads/image returns {url} for use as a chat image attachment
// or product picture.
func (c *UploadController) Image(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		resp.BadRequest(ctx, "missing file")
		return
	}
	if file.Size > c.maxMB<<20 {
		resp.BadRequest(ctx, fmt.Sprintf("file exceeds %dMB", c.maxMB))
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExt[ext] {
		resp.BadRequest(ctx, "unsupported image type")
		return
	}

	name := uuid.NewString() + ext
	if err := ctx.SaveUploadedFile(file, filepath.Join(c.dir, name)); err != nil {
		resp.ServerError(ctx, err)
		return
	}
	resp.Created(ctx, gin.H{"url": "/uploads/" + name})
}
