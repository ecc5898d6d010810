package steps

import (
	"github.com/cucumber/godog"
)

func (fc *FeatureContext) iUploadAFileNamedWithContent(filename string, content *godog.DocString) error {
	return fc.keep(fc.apiDriver.Upload(filename, []byte(content.Content+"\n")))
}

func (fc *FeatureContext) iUploadAnEmptyFileNamed(filename string) error {
	return fc.keep(fc.apiDriver.Upload(filename, nil))
}

func (fc *FeatureContext) theInferredFieldsShouldBe(table *godog.Table) error {
	var data struct {
		Fields []struct {
			ID    string `json:"id"`
			Name  string `json:"name"`
			Type  string `json:"type"`
			Order int    `json:"order"`
		} `json:"fields"`
	}
	fc.decodeBody(&data)

	expected := table.Rows[1:]
	fc.require.Len(data.Fields, len(expected))
	for i, row := range expected {
		fc.require.NotEmpty(data.Fields[i].ID)
		fc.require.Equal(row.Cells[0].Value, data.Fields[i].Name)
		fc.require.Equal(row.Cells[1].Value, data.Fields[i].Type, "type of %s", data.Fields[i].Name)
		fc.require.Equal(i, data.Fields[i].Order)
	}
	return nil
}
