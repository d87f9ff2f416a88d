package voice

// Field is one extracted value with the model's confidence in it.
// Unmentioned fields carry a nil value and zero confidence.
type Field struct {
	Value      *string `json:"value"`
	Confidence float64 `json:"confidence"`
}

// ExtractedLineItem is one line item the model heard in the note.
type ExtractedLineItem struct {
	Category    string  `json:"category"`
	Description string  `json:"description"`
	QualityTier *string `json:"quality_tier"`
	Confidence  float64 `json:"confidence"`
}

// Extraction is the structured data pulled from a transcript.
type Extraction struct {
	ClientName     Field               `json:"client_name"`
	ProjectAddress Field               `json:"project_address"`
	ProjectCity    Field               `json:"project_city"`
	ProjectState   Field               `json:"project_state"`
	TemplateType   Field               `json:"template_type"`
	ProjectSize    Field               `json:"project_size"`
	LineItems      []ExtractedLineItem `json:"line_items"`
}

// AverageConfidence is the mean over every positive confidence in the
// extraction. Zero-confidence fields are absent, not uncertain, so
// they do not drag the score down.
func (e *Extraction) AverageConfidence() float64 {
	var sum float64

	var n int

	for _, f := range []Field{
		e.ClientName, e.ProjectAddress, e.ProjectCity,
		e.ProjectState, e.TemplateType, e.ProjectSize,
	} {
		if f.Confidence > 0 {
			sum += f.Confidence
			n++
		}
	}

	for _, li := range e.LineItems {
		if li.Confidence > 0 {
			sum += li.Confidence
			n++
		}
	}

	if n == 0 {
		return 0
	}

	return sum / float64(n)
}
