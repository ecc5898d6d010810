package domain

// DataType tags the kind of value a field holds.
type DataType string

const (
	DataTypeString   DataType = "string"
	DataTypeNumber   DataType = "number"
	DataTypeDate     DataType = "date"
	DataTypeBoolean  DataType = "boolean"
	DataTypeEmail    DataType = "email"
	DataTypePhone    DataType = "phone"
	DataTypeAddress  DataType = "address"
	DataTypeURL      DataType = "url"
	DataTypeUUID     DataType = "uuid"
	DataTypeCurrency DataType = "currency"
)

var dataTypes = []DataType{
	DataTypeString,
	DataTypeNumber,
	DataTypeDate,
	DataTypeBoolean,
	DataTypeEmail,
	DataTypePhone,
	DataTypeAddress,
	DataTypeURL,
	DataTypeUUID,
	DataTypeCurrency,
}

// DataTypes returns every supported tag in declaration order.
func DataTypes() []DataType {
	result := make([]DataType, len(dataTypes))
	copy(result, dataTypes)
	return result
}

func (t DataType) IsValid() bool {
	for _, candidate := range dataTypes {
		if t == candidate {
			return true
		}
	}
	return false
}

func (t DataType) String() string {
	return string(t)
}

type ExportFormat string

const (
	ExportFormatJSON ExportFormat = "json"
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatXML  ExportFormat = "xml"
)

func (f ExportFormat) IsValid() bool {
	switch f {
	case ExportFormatJSON, ExportFormatCSV, ExportFormatXML:
		return true
	}
	return false
}

func (f ExportFormat) String() string {
	return string(f)
}
