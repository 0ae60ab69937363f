package domain

// Data type tags carried by unified WHO events.
const (
	DataTypeSignal            = "signal"
	DataTypeReadinessSummary  = "readiness_summary"
	DataTypeReadinessCategory = "readiness_category"
	DataTypeExisting          = "existing"
)

// Grade vocabulary, best to worst.
const (
	Grade1   = "Grade 1"
	Grade2   = "Grade 2"
	Grade3   = "Grade 3"
	Ungraded = "Ungraded"
)

// Status vocabulary for signal events.
const (
	StatusOngoing    = "Ongoing"
	StatusMonitoring = "Monitoring"
	StatusClosed     = "Closed"
)

// Event is one record of the unified WHO view: a signal event, a
// readiness summary, a readiness category breakdown, or a stored
// existing record. Fields not applicable to the record's DataType are
// zero-valued and omitted from JSON.
type Event struct {
	ID       string `json:"id"`
	Source   string `json:"source"`
	DataType string `json:"dataType"`

	Country  string `json:"country"`
	District string `json:"district,omitempty"`
	Disease  string `json:"disease,omitempty"`

	EventType   string  `json:"eventType"`
	Grade       string  `json:"grade,omitempty"`
	Status      string  `json:"status,omitempty"`
	Description string  `json:"description,omitempty"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Year        int     `json:"year"`
	ReportDate  string  `json:"reportDate"`
	Cases       int     `json:"cases"`
	Deaths      int     `json:"deaths"`

	AdminLevel    string `json:"adminLevel,omitempty"`
	IsSubnational bool   `json:"isSubnational"`

	AvgCategoryScore float64 `json:"avgCategoryScore,omitempty"`
	AvgQuestionScore float64 `json:"avgQuestionScore,omitempty"`
	ReadinessGrade   string  `json:"readinessGrade,omitempty"`
	TotalQuestions   int     `json:"totalQuestions,omitempty"`
	YesResponses     int     `json:"yesResponses,omitempty"`
	NoResponses      int     `json:"noResponses,omitempty"`
	ResponseRate     float64 `json:"responseRate,omitempty"`
	CategoriesCount  int     `json:"categoriesCount,omitempty"`
	Categories       []string `json:"categories,omitempty"`
	DataPeriod       string  `json:"dataPeriod,omitempty"`

	Category            string  `json:"category,omitempty"`
	CategoryCode        string  `json:"categoryCode,omitempty"`
	CategoryScore       float64 `json:"categoryScore,omitempty"`
	CategoryWeight      float64 `json:"categoryWeight,omitempty"`
	CategoryGrade       string  `json:"categoryGrade,omitempty"`
	QuestionsInCategory int     `json:"questionsInCategory,omitempty"`
	CompletionRate      float64 `json:"completionRate,omitempty"`

	SourceFile     string `json:"sourceFile,omitempty"`
	SourcePriority int    `json:"source_priority,omitempty"`
}
