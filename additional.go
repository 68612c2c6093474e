package opendrive

// AdditionalData is the schema extension slot most elements carry: free
// user payload, file includes and a data quality description. The reader
// accepts these children anywhere inside their parent, the writer emits
// them after the regular children.
type AdditionalData struct {
	UserData    []UserData
	Include     []Include
	DataQuality *DataQuality
}

// IsEmpty reports whether there is nothing to serialize.
func (a *AdditionalData) IsEmpty() bool {
	return len(a.UserData) == 0 && len(a.Include) == 0 && a.DataQuality == nil
}

// UserData is an opaque payload owned by the producing application. Its
// child elements are snapshotted verbatim and round-trip unchanged.
type UserData struct {
	Code    string
	Value   *string
	Content []RawElement
}

// RawElement preserves arbitrary XML content in document order.
type RawElement struct {
	Name     string
	Attrs    []RawAttr
	Text     string
	Children []RawElement
}

type RawAttr struct {
	Key   string
	Value string
}

// Include points to another file to be merged into the document.
type Include struct {
	File string
}

// DataQuality describes precision and origin of the data of the enclosing
// element.
type DataQuality struct {
	Error   *DataQualityError
	RawData *RawData
}

// DataQualityError holds measurement offsets relative to the world and to
// other elements, in meters.
type DataQualityError struct {
	XYAbsolute Length
	XYRelative Length
	ZAbsolute  Length
	ZRelative  Length
}

// RawData describes the source the data was produced from.
type RawData struct {
	Date                  string
	Source                DataSource
	SourceComment         *string
	PostProcessing        DataPostProcessing
	PostProcessingComment *string
}

type DataSource uint8

const (
	SOURCE_SENSOR = DataSource(iota + 1)
	SOURCE_CADASTER
	SOURCE_CUSTOM
)

func (iotaIdx DataSource) String() string {
	return [...]string{"sensor", "cadaster", "custom"}[iotaIdx-1]
}

var dataSourceByName = map[string]DataSource{
	"sensor":   SOURCE_SENSOR,
	"cadaster": SOURCE_CADASTER,
	"custom":   SOURCE_CUSTOM,
}

type DataPostProcessing uint8

const (
	POST_PROCESSING_RAW = DataPostProcessing(iota + 1)
	POST_PROCESSING_CLEANED
	POST_PROCESSING_PROCESSED
	POST_PROCESSING_FUSED
)

func (iotaIdx DataPostProcessing) String() string {
	return [...]string{"raw", "cleaned", "processed", "fused"}[iotaIdx-1]
}

var dataPostProcessingByName = map[string]DataPostProcessing{
	"raw":       POST_PROCESSING_RAW,
	"cleaned":   POST_PROCESSING_CLEANED,
	"processed": POST_PROCESSING_PROCESSED,
	"fused":     POST_PROCESSING_FUSED,
}
