package enums

// OutputFormat selects how the rangeparser command writes expanded values.
type OutputFormat string

const (
	OutputFormatText  OutputFormat = "TEXT"
	OutputFormatJSON  OutputFormat = "JSON"
	OutputFormatYAML  OutputFormat = "YAML"
	OutputFormatTable OutputFormat = "TABLE"
)

// OutputFormatValues returns all output formats.
func OutputFormatValues() []OutputFormat {
	return []OutputFormat{OutputFormatText, OutputFormatJSON, OutputFormatYAML, OutputFormatTable}
}

// ElementType names the Go numeric type ranges are expanded into.
type ElementType string

const (
	ElementTypeInt     ElementType = "int"
	ElementTypeInt8    ElementType = "int8"
	ElementTypeInt16   ElementType = "int16"
	ElementTypeInt32   ElementType = "int32"
	ElementTypeInt64   ElementType = "int64"
	ElementTypeUint    ElementType = "uint"
	ElementTypeUint8   ElementType = "uint8"
	ElementTypeUint16  ElementType = "uint16"
	ElementTypeUint32  ElementType = "uint32"
	ElementTypeUint64  ElementType = "uint64"
	ElementTypeFloat32 ElementType = "float32"
	ElementTypeFloat64 ElementType = "float64"
)

// ElementTypeValues returns all element types.
func ElementTypeValues() []ElementType {
	return []ElementType{
		ElementTypeInt, ElementTypeInt8, ElementTypeInt16, ElementTypeInt32, ElementTypeInt64,
		ElementTypeUint, ElementTypeUint8, ElementTypeUint16, ElementTypeUint32, ElementTypeUint64,
		ElementTypeFloat32, ElementTypeFloat64,
	}
}
