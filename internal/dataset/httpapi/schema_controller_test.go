package httpapi_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"

	"dataforge-server/internal/dataset/domain"
	"dataforge-server/internal/dataset/httpapi"
	"dataforge-server/internal/infra/httpserver"
	mockusecases "dataforge-server/test/unit/doubles/dataset/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

func multipartUpload(fieldName, filename string, content []byte) *http.Request {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(fieldName, filename)
	Expect(err).NotTo(HaveOccurred())
	_, err = part.Write(content)
	Expect(err).NotTo(HaveOccurred())
	Expect(writer.Close()).To(Succeed())

	request := httptest.NewRequest(http.MethodPost, "/api/upload", &body)
	request.Header.Set("Content-Type", writer.FormDataContentType())
	return request
}

func decodeError(recorder *httptest.ResponseRecorder) string {
	var response httpserver.ErrorResponse
	Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
	return response.Message
}

var _ = Describe("SchemaController", func() {
	var ctrl *gomock.Controller
	var mockService *mockusecases.MockSchemaService
	var router *http.ServeMux
	var recorder *httptest.ResponseRecorder

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockService = mockusecases.NewMockSchemaService(ctrl)
		router = http.NewServeMux()
		httpapi.NewSchemaController(mockService, 1024).AddRoutes(router)
		recorder = httptest.NewRecorder()
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("upload", func() {
		It("returns the inferred fields", func() {
			content := []byte("Email,Age\na@b.co,3\n")
			mockService.EXPECT().
				InferFromUpload(gomock.Any(), "people.csv", content).
				Return([]domain.Field{
					{ID: "f-1", Name: "Email", Type: domain.DataTypeEmail, Order: 0},
					{ID: "f-2", Name: "Age", Type: domain.DataTypeNumber, Order: 1},
				}, nil)

			router.ServeHTTP(recorder, multipartUpload("file", "people.csv", content))

			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(recorder.Body.String()).To(MatchJSON(`{"fields":[
				{"id":"f-1","name":"Email","type":"email","order":0},
				{"id":"f-2","name":"Age","type":"number","order":1}
			]}`))
		})

		It("rejects a request without a file", func() {
			router.ServeHTTP(recorder, multipartUpload("attachment", "people.csv", []byte("a\n1\n")))

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			Expect(decodeError(recorder)).To(Equal("No file uploaded"))
		})

		It("rejects bodies larger than the upload limit", func() {
			content := bytes.Repeat([]byte("x"), 2<<20)

			router.ServeHTTP(recorder, multipartUpload("file", "big.csv", content))

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})

		It("reports inference failures as bad requests", func() {
			mockService.EXPECT().
				InferFromUpload(gomock.Any(), "notes.txt", gomock.Any()).
				Return(nil, domain.NewInputError("Unsupported file format. Please upload CSV or Excel files."))

			router.ServeHTTP(recorder, multipartUpload("file", "notes.txt", []byte("hello")))

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			Expect(decodeError(recorder)).To(Equal("Unsupported file format. Please upload CSV or Excel files."))
		})
	})

	Context("generateSchema", func() {
		It("returns the generated fields", func() {
			mockService.EXPECT().
				GenerateFromPrompt(gomock.Any(), "customers with email and age").
				Return([]domain.Field{{ID: "f-1", Name: "email", Type: domain.DataTypeEmail}}, nil)

			request := httptest.NewRequest(http.MethodPost, "/api/generate-schema",
				strings.NewReader(`{"prompt":"customers with email and age"}`))
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(recorder.Body.String()).To(MatchJSON(`{"fields":[{"id":"f-1","name":"email","type":"email","order":0}]}`))
		})

		It("rejects short prompts without calling the service", func() {
			request := httptest.NewRequest(http.MethodPost, "/api/generate-schema", strings.NewReader(`{"prompt":"users"}`))
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			Expect(decodeError(recorder)).To(Equal("Prompt must be at least 10 characters"))
		})

		It("rejects malformed json", func() {
			request := httptest.NewRequest(http.MethodPost, "/api/generate-schema", strings.NewReader(`{"prompt":`))
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})

		It("maps model failures to bad gateway", func() {
			mockService.EXPECT().
				GenerateFromPrompt(gomock.Any(), gomock.Any()).
				Return(nil, domain.NewUpstreamError(errors.New("quota exceeded"), "Failed to generate schema"))

			request := httptest.NewRequest(http.MethodPost, "/api/generate-schema",
				strings.NewReader(`{"prompt":"a list of orders with prices"}`))
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusBadGateway))
			Expect(decodeError(recorder)).To(Equal("Failed to generate schema: quota exceeded"))
		})
	})
})
