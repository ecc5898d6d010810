package httpapi

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"dataforge-server/internal/dataset/httpapi/internal"
	"dataforge-server/internal/dataset/usecases"
	"dataforge-server/internal/infra/httpserver"

	"github.com/go-playground/validator/v10"
)

const (
	missingFileErrMessage    = "No file uploaded"
	uploadTooLargeErrMessage = "File size exceeds maximum limit"
	readUploadErrMessage     = "Failed to read uploaded file"
	invalidBodyErrMessage    = "invalid request body"
	generateSchemaErrMessage = "Failed to generate schema"
	multipartOverhead        = 1 << 20
	uploadFormField          = "file"
)

func NewSchemaController(service usecases.SchemaService, maxUploadSize int64) *SchemaController {
	return &SchemaController{
		service:       service,
		maxUploadSize: maxUploadSize,
		validate:      internal.NewValidator(),
	}
}

type SchemaController struct {
	service       usecases.SchemaService
	maxUploadSize int64
	validate      *validator.Validate
}

func (c *SchemaController) AddRoutes(router *http.ServeMux) {
	router.Handle("POST /api/upload", c.upload())
	router.Handle("POST /api/generate-schema", c.generateSchema())
}

func (c *SchemaController) upload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, c.maxUploadSize+multipartOverhead)

		file, header, err := r.FormFile(uploadFormField)
		if err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				httpserver.ReplyWithError(w, http.StatusBadRequest, uploadTooLargeErrMessage)
				return
			}
			httpserver.ReplyWithError(w, http.StatusBadRequest, missingFileErrMessage)
			return
		}
		defer file.Close()

		content, err := io.ReadAll(file)
		if err != nil {
			slog.Error("reading upload", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusBadRequest, readUploadErrMessage)
			return
		}

		fields, err := c.service.InferFromUpload(r.Context(), header.Filename, content)
		if err != nil {
			replyWithServiceError(w, err, "")
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToFieldListResponse(fields))
	}
}

func (c *SchemaController) generateSchema() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.GenerateSchemaRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidBodyErrMessage)
			return
		}

		if err := c.validate.Struct(body); err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, internal.ValidationMessage(err))
			return
		}

		fields, err := c.service.GenerateFromPrompt(r.Context(), body.Prompt)
		if err != nil {
			replyWithServiceError(w, err, generateSchemaErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToFieldListResponse(fields))
	}
}
