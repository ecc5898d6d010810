package steps

import (
	"dataforge-server/test/functional/driver"

	"github.com/cucumber/godog"
)

type templateResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Fields      []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		Type string `json:"type"`
	} `json:"fields"`
}

func (fc *FeatureContext) iCreateATemplateNamedWithTheFields(name string, table *godog.Table) error {
	fc.fields = fieldsFromTable(table)
	return fc.keep(fc.apiDriver.CreateTemplate(name, nil, fc.fields))
}

func (fc *FeatureContext) aTemplateNamedExists(name string) error {
	fc.fields = []driver.Field{{ID: "email", Name: "email", Type: "email", Order: 0}}
	if err := fc.keep(fc.apiDriver.CreateTemplate(name, nil, fc.fields)); err != nil {
		return err
	}
	fc.require.Equal(201, fc.response.StatusCode)
	return fc.theResponseShouldContainTheTemplateDetails()
}

func (fc *FeatureContext) theResponseShouldContainTheTemplateDetails() error {
	var data templateResponse
	fc.decodeBody(&data)

	fc.require.NotEmpty(data.ID)
	fc.require.Len(data.Fields, len(fc.fields))
	for i, field := range data.Fields {
		fc.require.NotEmpty(field.ID)
		fc.require.NotEqual(fc.fields[i].ID, field.ID, "template fields get fresh ids")
		fc.require.Equal(fc.fields[i].Name, field.Name)
		fc.require.Equal(fc.fields[i].Type, field.Type)
	}

	fc.templateID = data.ID
	return nil
}

func (fc *FeatureContext) iListAllTemplates() error {
	return fc.keep(fc.apiDriver.ListTemplates())
}

func (fc *FeatureContext) listedTemplates() []templateResponse {
	var data []templateResponse
	fc.decodeBody(&data)
	return data
}

func (fc *FeatureContext) theListShouldContainTheTemplateNamed(name string) error {
	for _, template := range fc.listedTemplates() {
		if template.ID == fc.templateID {
			fc.require.Equal(name, template.Name)
			return nil
		}
	}
	fc.require.Fail("template not found in list", "id %s", fc.templateID)
	return nil
}

func (fc *FeatureContext) theListShouldNotContainTheTemplate() error {
	for _, template := range fc.listedTemplates() {
		fc.require.NotEqual(fc.templateID, template.ID)
	}
	return nil
}

func (fc *FeatureContext) iDeleteTheTemplate() error {
	return fc.keep(fc.apiDriver.DeleteTemplate(fc.templateID))
}

func (fc *FeatureContext) iDeleteTheTemplateWithID(id string) error {
	return fc.keep(fc.apiDriver.DeleteTemplate(id))
}
