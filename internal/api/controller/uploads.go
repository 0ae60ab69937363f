package controller

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/spf13/viper"

	"github.com/caminohealth/camino-backend/internal/domain"
	"github.com/caminohealth/camino-backend/internal/pkg/constants"
)

// UploadFile accepts a multipart dataset file, stores it under the
// upload dir and queues it for ingestion; the response carries the job
// to poll.
func (c *Controller) UploadFile(ctx echo.Context) error {
	domainName := ctx.Param("domain")

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return constants.ErrBadUpload
	}

	src, err := fileHeader.Open()
	if err != nil {
		return fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	uploadDir := viper.GetString(constants.ViperUploadDir)
	if err = os.MkdirAll(uploadDir, 0o755); err != nil {
		return fmt.Errorf("mkdir upload dir: %w", err)
	}

	// uuid prefix keeps same-named re-uploads from clobbering each other.
	stored := filepath.Join(uploadDir, uuid.NewString()+"_"+filepath.Base(fileHeader.Filename))
	dst, err := os.Create(stored)
	if err != nil {
		return fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, src); err != nil {
		return fmt.Errorf("save upload: %w", err)
	}

	job, err := c.runner.Enqueue(ctx.Request().Context(), domainName, fileHeader.Filename, stored)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusAccepted, domain.StatusResponse{
		Status:  "queued",
		Message: fmt.Sprintf("upload queued for %s", domainName),
		Data:    job,
	})
}

func (c *Controller) GetUploadJob(ctx echo.Context) error {
	job := c.runner.Job(ctx.Param("id"))
	if job == nil {
		return constants.ErrDBNotFound
	}

	return ctx.JSON(http.StatusOK, job)
}
