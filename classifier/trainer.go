package classifier

import (
	"github.com/Ch4s3/langler/domain"
)

// Train builds a TopicModel from labeled documents.
//
// Documents with empty content or no topics are skipped rather than rejected,
// so a batch of mixed-quality input does not abort the whole run. Train
// returns domain.ErrNoTrainingData when nothing survives that filter.
//
// Labels are multi-label, not mutually exclusive: a document increments the
// document counter of every topic it carries and contributes its word counts
// to each of those topics independently. Priors are therefore per-topic
// document fractions and may sum to more than 1 across topics.
func Train(docs []domain.TrainingDocument) (*domain.TopicModel, error) {
	var (
		accepted  []domain.TrainingDocument
		tokenized [][]string
	)
	vocabulary := make(map[string]struct{})

	for _, doc := range docs {
		if !doc.Trainable() {
			continue
		}
		tokens := Tokenize(doc.Content)
		for _, token := range tokens {
			vocabulary[token] = struct{}{}
		}
		accepted = append(accepted, doc)
		tokenized = append(tokenized, tokens)
	}

	if len(accepted) == 0 {
		return nil, domain.ErrNoTrainingData
	}

	docCounts := make(map[string]int)
	rawWordCounts := make(map[string]map[string]int)
	topicWordCounts := make(map[string]int)

	for i, doc := range accepted {
		for _, topic := range doc.Topics {
			docCounts[topic]++

			wordCounts, ok := rawWordCounts[topic]
			if !ok {
				wordCounts = make(map[string]int)
				rawWordCounts[topic] = wordCounts
			}
			if _, ok := topicWordCounts[topic]; !ok {
				topicWordCounts[topic] = 0
			}

			for _, token := range tokenized[i] {
				if _, inVocab := vocabulary[token]; inVocab {
					wordCounts[token]++
					topicWordCounts[topic]++
				}
			}
		}
	}

	totalDocs := float64(len(accepted))
	vocabularySize := len(vocabulary)

	topicPriors := make(map[string]float64, len(docCounts))
	for topic, count := range docCounts {
		topicPriors[topic] = float64(count) / totalDocs
	}

	// Laplace add-one smoothing. Only observed words get table entries; the
	// classifier recomputes the same floor for absent words from the stored
	// per-topic totals.
	wordGivenTopic := make(map[string]map[string]float64, len(rawWordCounts))
	for topic, wordCounts := range rawWordCounts {
		denominator := float64(topicWordCounts[topic] + vocabularySize)
		probs := make(map[string]float64, len(wordCounts))
		for word, count := range wordCounts {
			probs[word] = float64(count+1) / denominator
		}
		wordGivenTopic[topic] = probs
	}

	return &domain.TopicModel{
		TopicPriors:     topicPriors,
		WordGivenTopic:  wordGivenTopic,
		VocabularySize:  vocabularySize,
		TopicWordCounts: topicWordCounts,
	}, nil
}
