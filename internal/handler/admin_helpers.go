package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-concierge-api/internal/service"
	appErrors "github.com/noah-isme/campus-concierge-api/pkg/errors"
	"github.com/noah-isme/campus-concierge-api/pkg/response"
)

type exporter interface {
	Export(ctx context.Context, table service.ExportTable, format service.ExportFormat) (*service.ExportFile, error)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "id must be a positive integer"))
		return 0, false
	}
	return id, true
}

func writeExport(c *gin.Context, svc exporter, table service.ExportTable) {
	format, err := service.ParseExportFormat(c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	file, err := svc.Export(c.Request.Context(), table, format)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+file.Filename+`"`)
	c.Data(http.StatusOK, file.ContentType, file.Payload)
}
