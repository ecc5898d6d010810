package steps

func (fc *FeatureContext) iAskForASchemaWithThePrompt(prompt string) error {
	return fc.keep(fc.apiDriver.GenerateSchema(prompt))
}
