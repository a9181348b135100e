package api

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// maxUploadSize caps report photos at 10 MB
const maxUploadSize = 10 * 1024 * 1024

var allowedPhotoExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// uploadPhotoHandler handles POST /api/uploads. The file lands in the
// configured upload directory under a random name; the returned path is
// what a report stores in photo_path.
func uploadPhotoHandler(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{
			"error": "no file uploaded",
		})
	}

	if file.Size > maxUploadSize {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{
			"error": "file too large (max 10 MB)",
		})
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedPhotoExtensions[ext] {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{
			"error": "unsupported file type",
		})
	}

	src, err := file.Open()
	if err != nil {
		c.Logger().Error("open upload error: ", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to read uploaded file",
		})
	}
	defer src.Close()

	if err := os.MkdirAll(cfg.UploadDir, 0750); err != nil {
		c.Logger().Error("create upload dir error: ", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to store file",
		})
	}

	name := uuid.New().String() + ext
	destPath := filepath.Join(cfg.UploadDir, name)

	dst, err := os.Create(destPath)
	if err != nil {
		c.Logger().Error("create upload file error: ", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to store file",
		})
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		c.Logger().Error("write upload error: ", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to store file",
		})
	}

	return c.JSON(http.StatusCreated, map[string]string{
		"path": "/uploads/" + name,
	})
}
