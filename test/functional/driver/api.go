package driver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
)

type Field struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Order int    `json:"order"`
}

type APIDriver struct {
	baseURL string
	client  *http.Client
}

func NewAPIDriver(baseURL string) *APIDriver {
	return &APIDriver{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

func (d *APIDriver) GetHealth() (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/api/health", d.baseURL))
}

func (d *APIDriver) Get(path string) (*http.Response, error) {
	return d.client.Get(d.baseURL + path)
}

func (d *APIDriver) Upload(filename string, content []byte) (*http.Response, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		panic(err)
	}
	if _, err := part.Write(content); err != nil {
		panic(err)
	}
	if err := writer.Close(); err != nil {
		panic(err)
	}
	return d.client.Post(fmt.Sprintf("%s/api/upload", d.baseURL), writer.FormDataContentType(), &body)
}

func (d *APIDriver) GenerateSchema(prompt string) (*http.Response, error) {
	return d.postJSON("/api/generate-schema", map[string]any{"prompt": prompt})
}

func (d *APIDriver) GeneratePreview(fields []Field, rowCount *int) (*http.Response, error) {
	body := map[string]any{"fields": fields}
	if rowCount != nil {
		body["rowCount"] = *rowCount
	}
	return d.postJSON("/api/generate-preview", body)
}

func (d *APIDriver) Export(fields []Field, rowCount int, format string) (*http.Response, error) {
	return d.postJSON("/api/export", map[string]any{
		"fields":   fields,
		"rowCount": rowCount,
		"format":   format,
	})
}

func (d *APIDriver) CreateTemplate(name string, description *string, fields []Field) (*http.Response, error) {
	body := map[string]any{"name": name, "fields": fields}
	if description != nil {
		body["description"] = *description
	}
	return d.postJSON("/api/templates", body)
}

func (d *APIDriver) ListTemplates() (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/api/templates", d.baseURL))
}

func (d *APIDriver) DeleteTemplate(id string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/api/templates/%s", d.baseURL, id), nil)
	if err != nil {
		panic(err)
	}
	return d.client.Do(req)
}

func (d *APIDriver) postJSON(path string, body any) (*http.Response, error) {
	reqBody, err := json.Marshal(body)
	if err != nil {
		panic(err)
	}
	return d.client.Post(d.baseURL+path, "application/json", bytes.NewBuffer(reqBody))
}
