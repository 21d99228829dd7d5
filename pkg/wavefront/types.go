package wavefront

// Alert represents an alert resource.
type Alert struct {
	ID                  string            `json:"id,omitempty"                  yaml:"id,omitempty"`
	Name                string            `json:"name"                          yaml:"name"`
	Condition           string            `json:"condition"                     yaml:"condition"`
	DisplayExpression   string            `json:"displayExpression,omitempty"   yaml:"displayExpression,omitempty"`
	Minutes             int               `json:"minutes"                       yaml:"minutes"`
	ResolveAfterMinutes int               `json:"resolveAfterMinutes,omitempty" yaml:"resolveAfterMinutes,omitempty"`
	Severity            string            `json:"severity"                      yaml:"severity"`
	Status              []string          `json:"status,omitempty"              yaml:"status,omitempty"`
	Tags                AlertTags         `json:"tags,omitempty"                yaml:"tags,omitempty"`
	Target              string            `json:"target,omitempty"              yaml:"target,omitempty"`
	AdditionalInfo      string            `json:"additionalInformation,omitempty" yaml:"additionalInformation,omitempty"`
	SnoozedUntil        int64             `json:"snoozed,omitempty"             yaml:"snoozed,omitempty"`
	CreatedEpochMillis  int64             `json:"createdEpochMillis,omitempty"  yaml:"createdEpochMillis,omitempty"`
	UpdatedEpochMillis  int64             `json:"updatedEpochMillis,omitempty"  yaml:"updatedEpochMillis,omitempty"`
	CreatorID           string            `json:"creatorId,omitempty"           yaml:"creatorId,omitempty"`
	UpdaterID           string            `json:"updaterId,omitempty"           yaml:"updaterId,omitempty"`
	InTrash             bool              `json:"inTrash,omitempty"             yaml:"inTrash,omitempty"`
	FailingHostLabels   []SourceLabelPair `json:"failingHostLabelPairs,omitempty" yaml:"failingHostLabelPairs,omitempty"`
}

// AlertTags holds customer-visible alert tags.
type AlertTags struct {
	CustomerTags []string `json:"customerTags,omitempty" yaml:"customerTags,omitempty"`
}

// SourceLabelPair identifies a source currently failing an alert.
type SourceLabelPair struct {
	Host     string `json:"host"     yaml:"host"`
	Firing   int    `json:"firing"   yaml:"firing"`
	Observed int    `json:"observed" yaml:"observed"`
}

// Event represents an event resource.
type Event struct {
	ID               string            `json:"id,omitempty"               yaml:"id,omitempty"`
	Name             string            `json:"name"                       yaml:"name"`
	StartTime        int64             `json:"startTime,omitempty"        yaml:"startTime,omitempty"`
	EndTime          int64             `json:"endTime,omitempty"          yaml:"endTime,omitempty"`
	Annotations      map[string]string `json:"annotations"                yaml:"annotations"`
	Hosts            []string          `json:"hosts,omitempty"            yaml:"hosts,omitempty"`
	Tags             []string          `json:"tags,omitempty"             yaml:"tags,omitempty"`
	IsEphemeral      bool              `json:"isEphemeral,omitempty"      yaml:"isEphemeral,omitempty"`
	IsUserEvent      bool              `json:"isUserEvent,omitempty"      yaml:"isUserEvent,omitempty"`
	RunningState     string            `json:"runningState,omitempty"     yaml:"runningState,omitempty"`
	CreatorID        string            `json:"creatorId,omitempty"        yaml:"creatorId,omitempty"`
	CreatedAtMillis  int64             `json:"createdEpochMillis,omitempty" yaml:"createdEpochMillis,omitempty"`
	UpdatedAtMillis  int64             `json:"updatedEpochMillis,omitempty" yaml:"updatedEpochMillis,omitempty"`
	CanDelete        bool              `json:"canDelete,omitempty"        yaml:"canDelete,omitempty"`
	CanClose         bool              `json:"canClose,omitempty"         yaml:"canClose,omitempty"`
	CreatorType      []string          `json:"creatorType,omitempty"      yaml:"creatorType,omitempty"`
	SummarizedEvents int               `json:"summarizedEvents,omitempty" yaml:"summarizedEvents,omitempty"`
}

// Source represents a source (host) resource.
type Source struct {
	ID                 string            `json:"id"                           yaml:"id"`
	Description        string            `json:"description,omitempty"        yaml:"description,omitempty"`
	Tags               map[string]bool   `json:"tags,omitempty"               yaml:"tags,omitempty"`
	SourceName         string            `json:"sourceName,omitempty"         yaml:"sourceName,omitempty"`
	Hidden             bool              `json:"hidden,omitempty"             yaml:"hidden,omitempty"`
	CreatedEpochMillis int64             `json:"createdEpochMillis,omitempty" yaml:"createdEpochMillis,omitempty"`
	UpdatedEpochMillis int64             `json:"updatedEpochMillis,omitempty" yaml:"updatedEpochMillis,omitempty"`
	CreatorID          string            `json:"creatorId,omitempty"          yaml:"creatorId,omitempty"`
	UpdaterID          string            `json:"updaterId,omitempty"          yaml:"updaterId,omitempty"`
	Annotations        map[string]string `json:"annotations,omitempty"        yaml:"annotations,omitempty"`
}

// User represents a user account.
type User struct {
	Identifier  string   `json:"identifier"            yaml:"identifier"`
	Customer    string   `json:"customer,omitempty"    yaml:"customer,omitempty"`
	Groups      []string `json:"groups,omitempty"      yaml:"groups,omitempty"`
	Permissions []string `json:"permissions,omitempty" yaml:"permissions,omitempty"`
	SelfDeleted bool     `json:"selfDeleted,omitempty" yaml:"selfDeleted,omitempty"`
}

// Message represents a system message addressed to the account.
type Message struct {
	ID           string   `json:"id"                     yaml:"id"`
	Title        string   `json:"title"                  yaml:"title"`
	Content      string   `json:"content"                yaml:"content"`
	Severity     string   `json:"severity,omitempty"     yaml:"severity,omitempty"`
	Source       string   `json:"source,omitempty"       yaml:"source,omitempty"`
	Scope        string   `json:"scope,omitempty"        yaml:"scope,omitempty"`
	Read         bool     `json:"read,omitempty"         yaml:"read,omitempty"`
	DisplayUntil int64    `json:"displayExpirationTime,omitempty" yaml:"displayExpirationTime,omitempty"`
	Attributes   []string `json:"attributes,omitempty"   yaml:"attributes,omitempty"`
}

// QueryResult represents the chart API response for one query.
type QueryResult struct {
	Query       string                 `json:"query"                 yaml:"query"`
	Name        string                 `json:"name,omitempty"        yaml:"name,omitempty"`
	Granularity int                    `json:"granularity,omitempty" yaml:"granularity,omitempty"`
	Timeseries  []Timeseries           `json:"timeseries,omitempty"  yaml:"timeseries,omitempty"`
	Stats       map[string]interface{} `json:"stats,omitempty"       yaml:"stats,omitempty"`
	Warnings    string                 `json:"warnings,omitempty"    yaml:"warnings,omitempty"`
}

// Timeseries is one series of a query result. Each data point is a
// [timestamp, value] pair with the timestamp in epoch seconds.
type Timeseries struct {
	Label string            `json:"label"          yaml:"label"`
	Host  string            `json:"host,omitempty" yaml:"host,omitempty"`
	Tags  map[string]string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Data  [][2]float64      `json:"data"           yaml:"data"`
}

// SearchCondition is one predicate of a search body.
type SearchCondition struct {
	Key            string `json:"key"                      yaml:"key"`
	Value          string `json:"value"                    yaml:"value"`
	MatchingMethod string `json:"matchingMethod,omitempty" yaml:"matchingMethod,omitempty"`
}
