// Package model defines the shared types flowing through the extraction
// pipeline and the export collaborator.
package model

// Priority is the urgency level attached to a delivery.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityNormal Priority = "normal"
	PriorityLow    Priority = "low"
)

// TempClass is the temperature-handling classification of an item.
type TempClass string

const (
	TempAmbient TempClass = "ambient"
	TempChilled TempClass = "chilled"
	TempFrozen  TempClass = "frozen"
)

// Sentinel values substituted when a field cannot be extracted. Consumers
// rely on every Address being fully populated, so these are never empty.
const (
	AddressNotFound = "Adres niet gevonden"
	ContactUnknown  = "Onbekend"
	PhoneUnknown    = "+32 000 000 000"
	ContactDefault  = "Contact persoon"
	ItemDefault     = "Pakket uit document"
)

// RawDocument is the immutable input to an extraction call. HTMLContent, if
// present and containing a table, is flattened into pseudo-text table lines
// and prepended to Text before classification.
type RawDocument struct {
	Text        string `json:"text"`
	HTMLContent string `json:"htmlContent,omitempty"`
}

// Address is a delivery address with contact details. All three fields are
// always populated; missing values are replaced by sentinels.
type Address struct {
	Line1        string `json:"line1"`
	ContactName  string `json:"contactName"`
	ContactPhone string `json:"contactPhone"`
}

// Found reports whether the address line was actually extracted rather than
// filled with the not-found sentinel.
func (a Address) Found() bool {
	return a.Line1 != "" && a.Line1 != AddressNotFound
}

// Item is a single line item on a delivery.
type Item struct {
	Description string    `json:"description"`
	Quantity    int       `json:"quantity"`
	TempClass   TempClass `json:"tempClass"`
}

// DeliveryRecord is the normalized structured output for one delivery.
type DeliveryRecord struct {
	TaskID          string   `json:"taskId"`
	CustomerRef     string   `json:"customerRef"`
	DeliveryAddress Address  `json:"deliveryAddress"`
	ServiceDate     string   `json:"serviceDate"` // YYYY-MM-DD
	TimeWindowStart string   `json:"timeWindowStart"`
	TimeWindowEnd   string   `json:"timeWindowEnd"`
	Items           []Item   `json:"items"`
	Notes           string   `json:"notes,omitempty"`
	Priority        Priority `json:"priority"`
}

// HasSignal reports whether the record carries enough extracted data to be
// worth keeping: a customer reference or a real address line.
func (d DeliveryRecord) HasSignal() bool {
	return d.CustomerRef != "" || d.DeliveryAddress.Found()
}

// Extraction methods reported in ExtractionResult.Method.
const (
	MethodRemote    = "claude"
	MethodHeuristic = "patterns"
)

// ExtractionResult is the outcome of one analysis call.
type ExtractionResult struct {
	Success            bool             `json:"success"`
	Confidence         int              `json:"confidence"`
	RawText            string           `json:"rawText"`
	Deliveries         []DeliveryRecord `json:"deliveries"`
	DeliveryCount      int              `json:"deliveryCount"`
	MultipleDeliveries bool             `json:"multipleDeliveries"`
	AIPowered          bool             `json:"aiPowered"`
	Method             string           `json:"method"`
}

// NewExtractionResult assembles a result from kept deliveries, maintaining
// the count/multiple invariants and the two-level confidence score.
func NewExtractionResult(rawText string, deliveries []DeliveryRecord, aiPowered bool, method string) ExtractionResult {
	confidence := 60
	if len(deliveries) > 0 {
		confidence = 85
	}
	return ExtractionResult{
		Success:            true,
		Confidence:         confidence,
		RawText:            rawText,
		Deliveries:         deliveries,
		DeliveryCount:      len(deliveries),
		MultipleDeliveries: len(deliveries) > 1,
		AIPowered:          aiPowered,
		Method:             method,
	}
}
