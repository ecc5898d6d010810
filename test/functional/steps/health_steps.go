package steps

func (fc *FeatureContext) iCallTheHealthEndpoint() error {
	return fc.keep(fc.apiDriver.GetHealth())
}

func (fc *FeatureContext) theServiceShouldReportItselfHealthy() error {
	var data map[string]any
	fc.decodeBody(&data)

	fc.require.Equal("healthy", data["status"])
	fc.require.Equal("DataForge AI", data["service"])
	fc.require.NotEmpty(data["version"], "version should be present")
	return nil
}

func (fc *FeatureContext) iRequestTheUnknownAPIPath(path string) error {
	return fc.keep(fc.apiDriver.Get(path))
}
