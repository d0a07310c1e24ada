package client

// TargetType enumerates the color target types supported by the API.
type TargetType string

const (
	TargetGoldenThreadObjectLevel TargetType = "golden_thread_object_level"
	TargetGoldenThreadDeviceLevel TargetType = "golden_thread_device_level"
	TargetColorCheckerClassic     TargetType = "color_checker_classic"
	TargetColorCheckerSG          TargetType = "color_checker_sg"
	TargetDTNextGen2              TargetType = "dt_next_gen_2"
	TargetFADGI19264              TargetType = "fadgi_19264"
	TargetRezChecker              TargetType = "rez_checker"
)

// FormField is one key/value pair of a presigned POST policy.
type FormField struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// PresignedUpload describes a single-use S3 form POST issued by the API.
// UploadID is the correlation key for the whole session: the same value must
// be passed unchanged to RequestAnalysis and PollResults.
type PresignedUpload struct {
	URL      string      `json:"url"`
	Fields   []FormField `json:"fields"`
	UploadID string      `json:"uploadId"`
}

// UserData is the account information returned by /user-data.
type UserData struct {
	AnalysisBalance int    `json:"analysisBalance"`
	TierName        string `json:"tierName"`
}

// NewTarget is the payload for creating or updating a target in the library.
type NewTarget struct {
	Name                string     `json:"name"`
	TargetType          TargetType `json:"targetType"`
	ReferenceDataSource string     `json:"referenceDataSource"`
}

// Target is a reusable reference object in the API's target library.
type Target struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	TargetType          TargetType `json:"targetType"`
	ReferenceDataSource string     `json:"referenceDataSource"`
}

// Analysis job states as reported in a results summary. A summary the server
// is still working on is signalled via an ErrAnalysisPending error rather
// than a status value.
const (
	StatusComplete = "complete"
	StatusFailed   = "failed"
)

// Metric is a single quality measurement within a metric group.
type Metric struct {
	Name      string `json:"name"`
	Stars     int    `json:"stars"`
	IsPassing bool   `json:"isPassing"`
}

// MetricGroup bundles related metrics of a results summary.
type MetricGroup struct {
	Name    string   `json:"name"`
	Metrics []Metric `json:"metrics"`
}

// ResultSummary is the terminal outcome of an analysis job.
type ResultSummary struct {
	FilePath            string        `json:"filePath"`
	Status              string        `json:"status"`
	Passing             bool          `json:"passing"`
	ReferenceValuesUsed string        `json:"referenceValuesUsed"`
	Spec                string        `json:"spec"`
	TargetType          TargetType    `json:"targetType"`
	MetricGroups        []MetricGroup `json:"metricGroups"`
}
