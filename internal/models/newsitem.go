package models

import "time"

// Query string parameter names accepted by the submission endpoint
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldDate        = "date"
)

// NewsItem is a single submitted news entry as stored in the newsitems table
type NewsItem struct {
	Title       string `json:"title" dynamodbav:"title"`
	Description string `json:"description" dynamodbav:"description"`
	// Date is kept as submitted; no format is enforced
	Date string `json:"date" dynamodbav:"date"`
}

// NewsItemList is the listing response body
type NewsItemList struct {
	Data []NewsItem `json:"data"`
}

// NewsItemSnapshot is the document written by the snapshot exporter
type NewsItemSnapshot struct {
	SnapshotID  string     `json:"snapshot_id"`
	GeneratedAt time.Time  `json:"generated_at"`
	TotalItems  int        `json:"total_items"`
	Data        []NewsItem `json:"data"`
}

// NewsItemFromQuery builds a NewsItem from query string parameters.
// An absent key reads as an empty value, so Validate reports it the same way.
func NewsItemFromQuery(params map[string]string) *NewsItem {
	return &NewsItem{
		Title:       params[FieldTitle],
		Description: params[FieldDescription],
		Date:        params[FieldDate],
	}
}

// Validate checks that title, description and date are present, in that order
func (n *NewsItem) Validate() error {
	if n.Title == "" {
		return newMissingFieldError(FieldTitle)
	}
	if n.Description == "" {
		return newMissingFieldError(FieldDescription)
	}
	// TODO: check the date against a layout once one is agreed for submitters
	if n.Date == "" {
		return newMissingFieldError(FieldDate)
	}
	return nil
}

// NewNewsItemList wraps items for the listing response, never producing a null data array
func NewNewsItemList(items []NewsItem) NewsItemList {
	if items == nil {
		items = []NewsItem{}
	}
	return NewsItemList{Data: items}
}
