package httpapi

import (
	"net/http"

	"dataforge-server/internal/dataset/domain"
	"dataforge-server/internal/dataset/httpapi/internal"
	"dataforge-server/internal/dataset/usecases"
	"dataforge-server/internal/infra/httpserver"

	"github.com/go-playground/validator/v10"
)

const (
	generatePreviewErrMessage = "Failed to generate data"
	exportErrMessage          = "Failed to export data"
)

func NewDataController(service usecases.DataService) *DataController {
	return &DataController{
		service:  service,
		validate: internal.NewValidator(),
	}
}

type DataController struct {
	service  usecases.DataService
	validate *validator.Validate
}

func (c *DataController) AddRoutes(router *http.ServeMux) {
	router.Handle("POST /api/generate-preview", c.generatePreview())
	router.Handle("POST /api/export", c.export())
}

func (c *DataController) generatePreview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.PreviewRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidBodyErrMessage)
			return
		}

		if err := c.validate.Struct(body); err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, internal.ValidationMessage(err))
			return
		}

		table, err := c.service.Preview(r.Context(), internal.ToFields(body.Fields), body.RowCount)
		if err != nil {
			replyWithServiceError(w, err, generatePreviewErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToPreviewResponse(table))
	}
}

func (c *DataController) export() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.ExportRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidBodyErrMessage)
			return
		}

		if err := c.validate.Struct(body); err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, internal.ValidationMessage(err))
			return
		}

		result, err := c.service.Export(r.Context(), internal.ToTypedFields(body.Fields), body.RowCount, domain.ExportFormat(body.Format))
		if err != nil {
			replyWithServiceError(w, err, exportErrMessage)
			return
		}

		httpserver.ReplyWithAttachment(w, result.MediaType, result.Filename, result.Content)
	}
}
