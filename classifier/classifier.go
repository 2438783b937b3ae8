package classifier

import (
	"math"
	"sort"

	"github.com/Ch4s3/langler/domain"
)

// Classify scores a document against a trained model and returns one entry
// per model topic, sorted by descending confidence. Confidences form a
// probability distribution summing to 1. Equal confidences are ordered by
// topic name so results are fully deterministic.
//
// Scoring runs in log space: multiplying hundreds of small likelihoods
// underflows float64, so each topic accumulates ln(prior) plus per-token log
// likelihoods. Tokens without a table entry for a topic, including words
// never seen in training at all, take that topic's Laplace floor
// 1/(topicWordCount+V), the same value a zero-count vocabulary word received
// during training.
//
// A model trained on documents that all tokenized to nothing has an empty
// vocabulary, which makes the floor ln(1/0) = +Inf; classifying a non-empty
// document against such a model yields NaN confidences. Callers that train
// on unfiltered input and need a defined answer should check
// VocabularySize before classifying.
func Classify(text string, model *domain.TopicModel) []domain.TopicScore {
	tokens := Tokenize(text)

	scores := make([]domain.TopicScore, 0, len(model.TopicPriors))
	for topic, prior := range model.TopicPriors {
		logProb := math.Log(prior)

		table := model.WordGivenTopic[topic]
		floor := math.Log(1.0 / float64(model.TopicWordCounts[topic]+model.VocabularySize))

		for _, token := range tokens {
			if prob, ok := table[token]; ok {
				logProb += math.Log(prob)
			} else {
				logProb += floor
			}
		}

		scores = append(scores, domain.TopicScore{Topic: topic, Confidence: logProb})
	}

	// Log-sum-exp: subtract the max before exponentiating so very negative
	// log scores do not all collapse to zero.
	maxLog := math.Inf(-1)
	for _, score := range scores {
		if score.Confidence > maxLog {
			maxLog = score.Confidence
		}
	}

	var sum float64
	for i := range scores {
		scores[i].Confidence = math.Exp(scores[i].Confidence - maxLog)
		sum += scores[i].Confidence
	}

	if sum > 0 {
		for i := range scores {
			scores[i].Confidence /= sum
		}
	}

	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Confidence != scores[j].Confidence {
			return scores[i].Confidence > scores[j].Confidence
		}
		return scores[i].Topic < scores[j].Topic
	})

	return scores
}
