package usecases_test

import (
	"context"
	"errors"
	"time"

	"dataforge-server/internal/dataset/domain"
	"dataforge-server/internal/dataset/usecases"
	"dataforge-server/internal/infra/cache"
	"dataforge-server/internal/infra/llm"
	mockusecases "dataforge-server/test/unit/doubles/dataset/usecases"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = ginkgo.Describe("SchemaService", func() {
	var (
		ctrl         *gomock.Controller
		mockInferrer *mockusecases.MockFieldInferrer
		mockModel    *mockusecases.MockLanguageModel
		service      *usecases.SimpleSchemaService
		ctx          context.Context
	)

	ginkgo.BeforeEach(func() {
		ctrl = gomock.NewController(ginkgo.GinkgoT())
		mockInferrer = mockusecases.NewMockFieldInferrer(ctrl)
		mockModel = mockusecases.NewMockLanguageModel(ctrl)
		service = usecases.NewSchemaService(mockInferrer, mockModel)
		ctx = context.Background()
	})

	ginkgo.AfterEach(func() {
		ctrl.Finish()
	})

	ginkgo.Context("InferFromUpload", func() {
		ginkgo.It("should return the inferred fields", func() {
			fields := []domain.Field{{ID: "1", Name: "email", Type: domain.DataTypeEmail}}
			mockInferrer.EXPECT().InferFields("people.csv", []byte("email\na@b.c\n")).Return(fields, nil)

			result, err := service.InferFromUpload(ctx, "people.csv", []byte("email\na@b.c\n"))

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(result).To(gomega.Equal(fields))
		})

		ginkgo.It("should pass inference errors through", func() {
			inputErr := domain.NewInputError("File has no extension")
			mockInferrer.EXPECT().InferFields("people", gomock.Any()).Return(nil, inputErr)

			_, err := service.InferFromUpload(ctx, "people", []byte("x"))

			gomega.Expect(err).To(gomega.Equal(inputErr))
		})
	})

	ginkgo.Context("GenerateFromPrompt", func() {
		ginkgo.It("should reject short prompts without calling the model", func() {
			_, err := service.GenerateFromPrompt(ctx, "users")

			gomega.Expect(errors.Is(err, domain.ErrInvalidInput)).To(gomega.BeTrue())
		})

		ginkgo.It("should send the request wrapped in instructions", func() {
			mockModel.EXPECT().GenerateJSON(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, prompt string) (string, error) {
					gomega.Expect(prompt).To(gomega.ContainSubstring("User request: customer records with emails"))
					gomega.Expect(prompt).To(gomega.ContainSubstring(
						"string, number, date, boolean, email, phone, address, url, uuid, currency"))
					return `{"fields":[{"name":"email","type":"email","order":7}]}`, nil
				})

			_, err := service.GenerateFromPrompt(ctx, "customer records with emails")

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
		})

		ginkgo.It("should assign fresh ids and positional order", func() {
			reply := `{"fields":[
				{"name":"name","type":"string","order":5},
				{"name":"mood","type":"emotion","order":2},
				{"name":"age","type":"number"}
			]}`
			mockModel.EXPECT().GenerateJSON(gomock.Any(), gomock.Any()).Return(reply, nil)

			fields, err := service.GenerateFromPrompt(ctx, "a list of people and moods")

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(fields).To(gomega.HaveLen(3))
			for i, field := range fields {
				gomega.Expect(field.Order).To(gomega.Equal(i))
				gomega.Expect(field.ID).NotTo(gomega.BeEmpty())
			}
			gomega.Expect(fields[1].Type).To(gomega.Equal(domain.DataType("emotion")))
			gomega.Expect(fields[2].Type).To(gomega.Equal(domain.DataTypeNumber))
			gomega.Expect(fields[0].ID).NotTo(gomega.Equal(fields[1].ID))
		})

		ginkgo.It("should accept a reply wrapped in a code fence", func() {
			reply := "```json\n{\"fields\":[{\"name\":\"email\",\"type\":\"email\"}]}\n```"
			mockModel.EXPECT().GenerateJSON(gomock.Any(), gomock.Any()).Return(reply, nil)

			fields, err := service.GenerateFromPrompt(ctx, "customer records with emails")

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(fields).To(gomega.HaveLen(1))
		})

		ginkgo.DescribeTable("should reject malformed replies",
			func(reply string) {
				mockModel.EXPECT().GenerateJSON(gomock.Any(), gomock.Any()).Return(reply, nil)

				_, err := service.GenerateFromPrompt(ctx, "customer records with emails")

				gomega.Expect(errors.Is(err, domain.ErrUpstream)).To(gomega.BeTrue())
				gomega.Expect(errors.Is(err, usecases.ErrInvalidModelReply)).To(gomega.BeTrue())
				gomega.Expect(err.Error()).To(gomega.HavePrefix("Failed to generate schema: Invalid response from AI"))
			},
			ginkgo.Entry("not json", "sorry, I cannot help"),
			ginkgo.Entry("missing fields", `{"columns":[]}`),
			ginkgo.Entry("fields not a list", `{"fields":{"name":"x"}}`),
			ginkgo.Entry("empty fields", `{"fields":[]}`),
			ginkgo.Entry("field without name", `{"fields":[{"type":"string"}]}`),
			ginkgo.Entry("field not an object", `{"fields":["email"]}`),
		)

		ginkgo.It("should report model failures as upstream errors", func() {
			cause := errors.New("quota exceeded")
			mockModel.EXPECT().GenerateJSON(gomock.Any(), gomock.Any()).Return("", cause)

			_, err := service.GenerateFromPrompt(ctx, "customer records with emails")

			gomega.Expect(errors.Is(err, domain.ErrUpstream)).To(gomega.BeTrue())
			gomega.Expect(errors.Is(err, cause)).To(gomega.BeTrue())
			gomega.Expect(err.Error()).To(gomega.Equal("Failed to generate schema: quota exceeded"))
		})
	})
})

// scriptedModel answers with its replies in turn and repeats the last one.
type scriptedModel struct {
	replies []string
	calls   int
}

func (m *scriptedModel) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	reply := m.replies[min(m.calls, len(m.replies)-1)]
	m.calls++
	return reply, nil
}

var _ = ginkgo.Describe("SchemaService with a reply cache", func() {
	var (
		store *cache.RistrettoCache
		ctx   context.Context
	)

	ginkgo.BeforeEach(func() {
		var err error
		store, err = cache.NewRistrettoCache(nil)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		ctx = context.Background()
	})

	ginkgo.AfterEach(func() {
		store.Close()
	})

	ginkgo.It("should ask the model again after a malformed reply", func() {
		model := &scriptedModel{replies: []string{
			`{"columns":[]}`,
			`{"fields":[{"name":"email","type":"email"}]}`,
		}}
		service := usecases.NewSchemaService(nil, llm.NewCachedModel(model, store, 10*time.Minute, usecases.ValidateModelReply))

		_, err := service.GenerateFromPrompt(ctx, "customer records with emails")
		gomega.Expect(errors.Is(err, usecases.ErrInvalidModelReply)).To(gomega.BeTrue())

		fields, err := service.GenerateFromPrompt(ctx, "customer records with emails")
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(fields).To(gomega.HaveLen(1))
		gomega.Expect(fields[0].Name).To(gomega.Equal("email"))

		again, err := service.GenerateFromPrompt(ctx, "customer records with emails")
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(again[0].Name).To(gomega.Equal("email"))
		gomega.Expect(model.calls).To(gomega.Equal(2))
	})
})
