package extract

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/routeworks/docscan/internal/model"
)

// extractWithPatterns runs the heuristic cascade over every section of the
// document and keeps the records that carry a real signal. It never fails:
// a section that blows up is logged and skipped, and when every section is
// discarded a single whole-text record is built so the caller always gets
// at least one delivery.
func (a *Analyzer) extractWithPatterns(text string) []model.DeliveryRecord {
	sections := Segment(text)
	if len(sections) == 0 {
		sections = []string{text}
	}
	zap.S().Debugw("segmented document", "sections", len(sections), "format", Classify(text))

	records := make([]model.DeliveryRecord, 0, len(sections))
	for i, section := range sections {
		rec, ok := a.buildRecord(section, i)
		if !ok {
			continue
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		// Nothing passed the keep rule; fall back to one record over the
		// full text so the result is never empty.
		rec, _ := a.buildRecord(text, 0)
		if rec.TaskID == "" {
			rec = a.emptyRecord(0)
		}
		records = append(records, rec)
	}
	return records
}

// buildRecord extracts every field from one section. keep is true when the
// record carries a customer reference or a located address; sections with
// neither are presumed boilerplate. A panic in any field extractor is
// contained to the section.
func (a *Analyzer) buildRecord(section string, index int) (rec model.DeliveryRecord, keep bool) {
	defer func() {
		if r := recover(); r != nil {
			zap.S().Warnw("section extraction panicked", "section", index, "cause", r)
			rec, keep = model.DeliveryRecord{}, false
		}
	}()

	ref := extractCustomerRef(section)
	addr := a.extractAddress(section)
	keep = ref != "" || addr.Found()

	start, end := extractTimeWindow(section)
	rec = model.DeliveryRecord{
		TaskID:          a.ids.TaskID(index),
		CustomerRef:     ensureRef(ref, a.ids),
		DeliveryAddress: addr,
		ServiceDate:     a.extractServiceDate(section),
		TimeWindowStart: start,
		TimeWindowEnd:   end,
		Items:           extractItems(section),
		Notes:           fmt.Sprintf("Geëxtraheerd uit sectie %d", index+1),
		Priority:        extractPriority(section, index),
	}
	return rec, keep
}

// emptyRecord is the all-sentinel fallback for text nothing could be read
// from.
func (a *Analyzer) emptyRecord(index int) model.DeliveryRecord {
	start, end := defaultWindowStart, defaultWindowEnd
	return model.DeliveryRecord{
		TaskID:      a.ids.TaskID(index),
		CustomerRef: a.ids.AutoRef(),
		DeliveryAddress: model.Address{
			Line1:        model.AddressNotFound,
			ContactName:  model.ContactUnknown,
			ContactPhone: model.PhoneUnknown,
		},
		ServiceDate:     a.now().AddDate(0, 0, 1).Format("2006-01-02"),
		TimeWindowStart: start,
		TimeWindowEnd:   end,
		Items:           []model.Item{{Description: model.ItemDefault, Quantity: 1, TempClass: model.TempAmbient}},
		Notes:           "Geëxtraheerd uit sectie 1",
		Priority:        model.PriorityHigh,
	}
}

func ensureRef(ref string, ids IDSource) string {
	if ref != "" {
		return ref
	}
	return ids.AutoRef()
}
