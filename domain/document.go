package domain

// TrainingDocument is one labeled example for topic model training.
// A document may carry several topics; it counts toward every one of them.
type TrainingDocument struct {
	Content string   `json:"content"`
	Topics  []string `json:"topics"`
}

// Trainable reports whether the document can participate in training.
// Documents with no content or no topics are skipped silently.
func (d TrainingDocument) Trainable() bool {
	return d.Content != "" && len(d.Topics) > 0
}

// TopicScore is one entry of a classification result.
type TopicScore struct {
	Topic      string  `json:"topic"`
	Confidence float64 `json:"confidence"`
}
