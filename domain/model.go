package domain

import (
	"encoding/json"
	"fmt"
)

// TopicModel is the trained Naive Bayes artifact. It is a plain value with
// no external resources: built once by the trainer, serialized, and read by
// the classifier. A model is never mutated after construction, so it may be
// shared freely between goroutines.
//
// WordGivenTopic holds Laplace-smoothed likelihoods for words observed under
// each topic. Words never observed for a topic have no entry; the classifier
// reconstructs their smoothing floor from TopicWordCounts and VocabularySize.
type TopicModel struct {
	TopicPriors     map[string]float64            `json:"topic_priors"`
	WordGivenTopic  map[string]map[string]float64 `json:"word_given_topic"`
	VocabularySize  int                           `json:"vocabulary_size"`
	TopicWordCounts map[string]int                `json:"topic_word_counts"`
}

// Topics returns the topic labels known to the model, in map order.
func (m *TopicModel) Topics() []string {
	topics := make([]string, 0, len(m.TopicPriors))
	for topic := range m.TopicPriors {
		topics = append(topics, topic)
	}
	return topics
}

// Encode serializes the model to its portable JSON form.
func (m *TopicModel) Encode() ([]byte, error) {
	blob, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode topic model: %w", err)
	}
	return blob, nil
}

// DecodeTopicModel reconstructs a model from its portable form. A blob that
// does not parse as a model is reported as ErrModelDecode; classification
// cannot proceed without a valid model.
func DecodeTopicModel(blob []byte) (*TopicModel, error) {
	var model TopicModel
	if err := json.Unmarshal(blob, &model); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelDecode, err)
	}
	if model.TopicPriors == nil {
		return nil, fmt.Errorf("%w: missing topic_priors", ErrModelDecode)
	}
	return &model, nil
}
