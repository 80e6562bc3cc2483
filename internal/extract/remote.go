package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/routeworks/docscan/internal/model"
	"github.com/routeworks/docscan/pkg/anthropic"
)

const remoteSystemPrompt = `Je bent een expert in het extraheren van leveringsinformatie uit documenten. Analyseer de tekst en haal ALLE afzonderlijke leveringen eruit.

Antwoord UITSLUITEND met een JSON-array. Elk element beschrijft één levering:
[
  {
    "customerRef": "klantreferentie of ordernummer",
    "deliveryAddress": {
      "line1": "straat huisnummer, postcode plaats",
      "contactName": "naam van contactpersoon of bedrijf",
      "contactPhone": "telefoonnummer"
    },
    "serviceDate": "YYYY-MM-DD",
    "timeWindowStart": "HH:MM",
    "timeWindowEnd": "HH:MM",
    "items": [{"description": "omschrijving", "quantity": 1, "tempClass": "ambient"}],
    "notes": "bijzonderheden",
    "priority": "high, normal of low"
  }
]

Regels:
- Eén element per levering; meerdere adressen betekent meerdere elementen.
- Datums in ISO-vorm; Nederlandse notatie DD/MM/YYYY lees je dag-eerst.
- Gebruik "Adres niet gevonden" als er geen adres in de tekst staat.
- Geen toelichting buiten de JSON.`

// extractRemote sends the document to the model and decodes the returned
// delivery array. Any failure (throttled, timeout, transport, malformed
// JSON, empty array) is an error; the caller falls back to patterns.
func (a *Analyzer) extractRemote(ctx context.Context, text string) ([]model.DeliveryRecord, error) {
	if a.limiter != nil && !a.limiter.Allow() {
		return nil, eris.New("remote extraction throttled")
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	resp, err := a.client.CreateMessage(ctx, anthropic.MessageRequest{
		Model:     a.model,
		MaxTokens: a.maxTokens,
		System:    remoteSystemPrompt,
		Messages: []anthropic.Message{
			{Role: "user", Content: fmt.Sprintf("Extraheer alle leveringen uit dit document:\n\n%s", text)},
		},
	})
	if err != nil {
		return nil, eris.Wrap(err, "remote extraction")
	}
	resp.Usage.LogCost(a.model, "extract")

	records, err := decodeDeliveries(resp.Text())
	if err != nil {
		return nil, err
	}
	for i := range records {
		a.finishRecord(&records[i], i)
	}
	return records, nil
}

// decodeDeliveries parses a model response into delivery records. Code
// fences are stripped, a bare object is wrapped into a one-element array,
// and as a last resort the first [...] span in the text is parsed.
func decodeDeliveries(raw string) ([]model.DeliveryRecord, error) {
	cleaned := stripFences(raw)

	var records []model.DeliveryRecord
	if err := json.Unmarshal([]byte(cleaned), &records); err == nil {
		return nonEmpty(records)
	}

	var single model.DeliveryRecord
	if err := json.Unmarshal([]byte(cleaned), &single); err == nil && (single.CustomerRef != "" || single.DeliveryAddress.Line1 != "") {
		return []model.DeliveryRecord{single}, nil
	}

	start := strings.Index(cleaned, "[")
	end := strings.LastIndex(cleaned, "]")
	if start >= 0 && end > start {
		if err := json.Unmarshal([]byte(cleaned[start:end+1]), &records); err == nil {
			return nonEmpty(records)
		}
	}
	zap.S().Debugw("undecodable remote response", "length", len(raw))
	return nil, eris.New("remote response is not a delivery array")
}

func nonEmpty(records []model.DeliveryRecord) ([]model.DeliveryRecord, error) {
	if len(records) == 0 {
		return nil, eris.New("remote response holds no deliveries")
	}
	return records, nil
}

// stripFences removes markdown code fences around a JSON payload.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// finishRecord fills the fields the model may omit so remote records meet
// the same shape guarantees as heuristic ones.
func (a *Analyzer) finishRecord(rec *model.DeliveryRecord, index int) {
	if rec.TaskID == "" {
		rec.TaskID = a.ids.TaskID(index)
	}
	if rec.CustomerRef == "" {
		rec.CustomerRef = a.ids.AutoRef()
	}
	if rec.DeliveryAddress.Line1 == "" {
		rec.DeliveryAddress.Line1 = model.AddressNotFound
	}
	if rec.DeliveryAddress.ContactName == "" {
		rec.DeliveryAddress.ContactName = model.ContactUnknown
	}
	if rec.DeliveryAddress.ContactPhone == "" {
		rec.DeliveryAddress.ContactPhone = model.PhoneUnknown
	}
	rec.ServiceDate = NormalizeDate(rec.ServiceDate, a.now())
	if rec.TimeWindowStart == "" {
		rec.TimeWindowStart = defaultWindowStart
	}
	if rec.TimeWindowEnd == "" {
		rec.TimeWindowEnd = defaultWindowEnd
	}
	if len(rec.Items) == 0 {
		rec.Items = []model.Item{{Description: model.ItemDefault, Quantity: 1, TempClass: model.TempAmbient}}
	}
	switch rec.Priority {
	case model.PriorityHigh, model.PriorityNormal, model.PriorityLow:
	default:
		rec.Priority = model.PriorityNormal
	}
}
