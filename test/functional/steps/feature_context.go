package steps

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"dataforge-server/test/functional/driver"

	"github.com/cucumber/godog"
	"github.com/stretchr/testify/require"
)

type FeatureContext struct {
	apiDriver    *driver.APIDriver
	response     *http.Response
	responseBody []byte
	fields       []driver.Field
	templateID   string
	require      *require.Assertions
	t            godog.TestingT
}

func NewFeatureContext(baseURL string) *FeatureContext {
	return &FeatureContext{
		apiDriver: driver.NewAPIDriver(baseURL),
	}
}

func (fc *FeatureContext) RegisterSteps(ctx *godog.ScenarioContext) {
	// Generic steps
	ctx.Then(`^the response status code should be (\d+)$`, fc.theResponseStatusCodeShouldBe)
	ctx.Then(`^the error message should be "([^"]*)"$`, fc.theErrorMessageShouldBe)
	ctx.Then(`^the error message should start with "([^"]*)"$`, fc.theErrorMessageShouldStartWith)

	// Health steps
	ctx.When(`^I call the health endpoint$`, fc.iCallTheHealthEndpoint)
	ctx.Then(`^the service should report itself healthy$`, fc.theServiceShouldReportItselfHealthy)
	ctx.When(`^I request the unknown api path "([^"]*)"$`, fc.iRequestTheUnknownAPIPath)

	// Upload steps
	ctx.When(`^I upload a file named "([^"]*)" with content:$`, fc.iUploadAFileNamedWithContent)
	ctx.When(`^I upload an empty file named "([^"]*)"$`, fc.iUploadAnEmptyFileNamed)
	ctx.Then(`^the inferred fields should be:$`, fc.theInferredFieldsShouldBe)

	// Schema steps
	ctx.When(`^I ask for a schema with the prompt "([^"]*)"$`, fc.iAskForASchemaWithThePrompt)

	// Data steps
	ctx.Given(`^the fields:$`, fc.theFields)
	ctx.When(`^I request a preview of (-?\d+) rows$`, fc.iRequestAPreviewOfRows)
	ctx.When(`^I request a preview without a row count$`, fc.iRequestAPreviewWithoutARowCount)
	ctx.Then(`^the preview should contain (\d+) records$`, fc.thePreviewShouldContainRecords)
	ctx.Then(`^every preview record should have the columns of the fields$`, fc.everyPreviewRecordShouldHaveTheColumnsOfTheFields)
	ctx.When(`^I export (\d+) rows as "([^"]*)"$`, fc.iExportRowsAs)
	ctx.Then(`^the download should be named like "([^"]*)"$`, fc.theDownloadShouldBeNamedLike)
	ctx.Then(`^the download content type should be "([^"]*)"$`, fc.theDownloadContentTypeShouldBe)
	ctx.Then(`^the csv download should have (\d+) lines$`, fc.theCSVDownloadShouldHaveLines)
	ctx.Then(`^the json download should contain (\d+) records$`, fc.theJSONDownloadShouldContainRecords)
	ctx.Then(`^the xml download should contain (\d+) rows$`, fc.theXMLDownloadShouldContainRows)

	// Template steps
	ctx.When(`^I create a template named "([^"]*)" with the fields$`, fc.iCreateATemplateNamedWithTheFields)
	ctx.Given(`^a template named "([^"]*)" exists$`, fc.aTemplateNamedExists)
	ctx.Then(`^the response should contain the template details$`, fc.theResponseShouldContainTheTemplateDetails)
	ctx.When(`^I list all templates$`, fc.iListAllTemplates)
	ctx.Then(`^the list should contain the template named "([^"]*)"$`, fc.theListShouldContainTheTemplateNamed)
	ctx.Then(`^the list should not contain the template$`, fc.theListShouldNotContainTheTemplate)
	ctx.When(`^I delete the template$`, fc.iDeleteTheTemplate)
	ctx.When(`^I delete the template with id "([^"]*)"$`, fc.iDeleteTheTemplateWithID)

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		fc.t = godog.T(ctx)
		fc.require = require.New(fc.t)

		fc.reset()
		return ctx, nil
	})
}

func (fc *FeatureContext) reset() {
	fc.response = nil
	fc.responseBody = nil
	fc.fields = nil
	fc.templateID = ""
}

// keep reads and closes the body so later steps can decode it more than once.
func (fc *FeatureContext) keep(response *http.Response, err error) error {
	if err != nil {
		return err
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return err
	}

	fc.response = response
	fc.responseBody = body
	return nil
}

func (fc *FeatureContext) decodeBody(target any) {
	fc.require.NoError(json.Unmarshal(fc.responseBody, target), "response body: %s", fc.responseBody)
}
