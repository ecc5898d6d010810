package steps

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"io"
	"regexp"

	"dataforge-server/test/functional/driver"

	"github.com/cucumber/godog"
)

func (fc *FeatureContext) theFields(table *godog.Table) error {
	fc.fields = fieldsFromTable(table)
	return nil
}

func fieldsFromTable(table *godog.Table) []driver.Field {
	fields := make([]driver.Field, 0, len(table.Rows)-1)
	for i, row := range table.Rows[1:] {
		fields = append(fields, driver.Field{
			ID:    row.Cells[0].Value,
			Name:  row.Cells[0].Value,
			Type:  row.Cells[1].Value,
			Order: i,
		})
	}
	return fields
}

func (fc *FeatureContext) iRequestAPreviewOfRows(rowCount int) error {
	return fc.keep(fc.apiDriver.GeneratePreview(fc.fields, &rowCount))
}

func (fc *FeatureContext) iRequestAPreviewWithoutARowCount() error {
	return fc.keep(fc.apiDriver.GeneratePreview(fc.fields, nil))
}

func (fc *FeatureContext) previewRecords() []map[string]any {
	var data struct {
		Data []map[string]any `json:"data"`
	}
	fc.decodeBody(&data)
	return data.Data
}

func (fc *FeatureContext) thePreviewShouldContainRecords(count int) error {
	fc.require.Len(fc.previewRecords(), count)
	return nil
}

func (fc *FeatureContext) everyPreviewRecordShouldHaveTheColumnsOfTheFields() error {
	for _, record := range fc.previewRecords() {
		fc.require.Len(record, len(fc.fields))
		for _, field := range fc.fields {
			fc.require.Contains(record, field.Name)
		}
	}
	return nil
}

func (fc *FeatureContext) iExportRowsAs(rowCount int, format string) error {
	return fc.keep(fc.apiDriver.Export(fc.fields, rowCount, format))
}

func (fc *FeatureContext) theDownloadShouldBeNamedLike(pattern string) error {
	disposition := fc.response.Header.Get("Content-Disposition")
	fc.require.Regexp(regexp.MustCompile(`^attachment; filename="`+pattern+`"$`), disposition)
	return nil
}

func (fc *FeatureContext) theDownloadContentTypeShouldBe(mediaType string) error {
	fc.require.Equal(mediaType, fc.response.Header.Get("Content-Type"))
	return nil
}

func (fc *FeatureContext) theCSVDownloadShouldHaveLines(count int) error {
	lines := bytes.Split(bytes.TrimRight(fc.responseBody, "\n"), []byte("\n"))
	fc.require.Len(lines, count)
	return nil
}

func (fc *FeatureContext) theJSONDownloadShouldContainRecords(count int) error {
	var records []map[string]any
	fc.require.NoError(json.Unmarshal(fc.responseBody, &records))
	fc.require.Len(records, count)
	return nil
}

func (fc *FeatureContext) theXMLDownloadShouldContainRows(count int) error {
	decoder := xml.NewDecoder(bytes.NewReader(fc.responseBody))
	rows := 0
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		fc.require.NoError(err)
		if start, ok := token.(xml.StartElement); ok && start.Name.Local == "row" {
			rows++
		}
	}
	fc.require.Equal(count, rows)
	return nil
}
