package questionnaire

// Progress is a display-only completion signal. It never gates a save.
type Progress struct {
	Answered int     `json:"answered"`
	Total    int     `json:"total"`
	Ratio    float64 `json:"ratio"`
}

// ComputeProgress counts schema questions with a non-empty canonical
// answer. Stored keys outside the schema do not count either way.
func ComputeProgress(schema Schema, answers AnswerMap) Progress {
	p := Progress{}
	for _, category := range schema {
		for _, question := range category.Questions {
			p.Total++
			if !answers[question.ID].IsEmpty() {
				p.Answered++
			}
		}
	}
	if p.Total > 0 {
		p.Ratio = float64(p.Answered) / float64(p.Total)
	}
	return p
}
