package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"dataforge-server/internal/dataset/domain"
)

const (
	MediaTypeJSON = "application/json"
	MediaTypeCSV  = "text/csv"
	MediaTypeXML  = "application/xml"

	xmlRoot   = "data"
	xmlRecord = "row"
)

// Serialize encodes table in the given format. Filename is left for the caller to set.
func Serialize(table domain.Table, format domain.ExportFormat) (domain.Export, error) {
	var (
		content []byte
		media   string
		err     error
	)

	switch format {
	case domain.ExportFormatJSON:
		content, err = encodeJSON(table)
		media = MediaTypeJSON
	case domain.ExportFormatCSV:
		content, err = encodeCSV(table)
		media = MediaTypeCSV
	case domain.ExportFormatXML:
		content, err = encodeXML(table)
		media = MediaTypeXML
	default:
		return domain.Export{}, domain.NewInputError("Unsupported format: %s", format)
	}

	if err != nil {
		return domain.Export{}, fmt.Errorf("encoding %s: %w", format, err)
	}

	return domain.Export{
		Content:   content,
		MediaType: media,
		Extension: format.String(),
	}, nil
}

func encodeJSON(table domain.Table) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(table.Records()); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func encodeCSV(table domain.Table) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write(table.Columns); err != nil {
		return nil, err
	}

	record := make([]string, len(table.Columns))
	for _, row := range table.Rows {
		for i, value := range row {
			record[i] = text(value)
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeXML(table domain.Table) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	encoder := xml.NewEncoder(&buf)
	encoder.Indent("", "  ")

	names := make([]xml.Name, len(table.Columns))
	for i, column := range table.Columns {
		names[i] = xml.Name{Local: ElementName(column)}
	}

	root := xml.StartElement{Name: xml.Name{Local: xmlRoot}}
	if err := encoder.EncodeToken(root); err != nil {
		return nil, err
	}
	for _, row := range table.Rows {
		record := xml.StartElement{Name: xml.Name{Local: xmlRecord}}
		if err := encoder.EncodeToken(record); err != nil {
			return nil, err
		}
		for i, value := range row {
			if err := encoder.EncodeElement(text(value), xml.StartElement{Name: names[i]}); err != nil {
				return nil, err
			}
		}
		if err := encoder.EncodeToken(record.End()); err != nil {
			return nil, err
		}
	}
	if err := encoder.EncodeToken(root.End()); err != nil {
		return nil, err
	}
	if err := encoder.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func text(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return fmt.Sprint(value)
}

// ElementName turns a column name into a valid XML element name. Invalid characters become
// underscores and names that cannot start an element get a leading underscore.
func ElementName(column string) string {
	var b strings.Builder
	for _, r := range column {
		if isNameRune(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}

	name := b.String()
	if name == "" {
		return "_"
	}
	first := []rune(name)[0]
	if !unicode.IsLetter(first) && first != '_' {
		name = "_" + name
	}
	if strings.HasPrefix(strings.ToLower(name), "xml") {
		name = "_" + name
	}
	return name
}

func isNameRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' || r == '.'
}
