package classifier

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ch4s3/langler/domain"
)

func trainingDocs() []domain.TrainingDocument {
	return []domain.TrainingDocument{
		{Content: "stocks rally amid economic growth", Topics: []string{"finance"}},
		{Content: "team wins championship game", Topics: []string{"sports"}},
	}
}

func TestTrain_NoValidDocuments(t *testing.T) {
	tests := map[string]struct {
		docs []domain.TrainingDocument
	}{
		"empty input": {
			docs: nil,
		},
		"all missing content": {
			docs: []domain.TrainingDocument{
				{Content: "", Topics: []string{"finance"}},
				{Content: "", Topics: []string{"sports"}},
			},
		},
		"all missing topics": {
			docs: []domain.TrainingDocument{
				{Content: "stocks rally today", Topics: nil},
				{Content: "team wins again", Topics: []string{}},
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			model, err := Train(tc.docs)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrNoTrainingData))
			assert.Nil(t, model)
		})
	}
}

func TestTrain_SkipsInvalidDocuments(t *testing.T) {
	docs := []domain.TrainingDocument{
		{Content: "", Topics: []string{"finance"}},
		{Content: "stocks rally amid economic growth", Topics: []string{"finance"}},
		{Content: "team wins championship", Topics: nil},
	}

	model, err := Train(docs)
	require.NoError(t, err)

	// Only the one valid document counts: its topic has prior 1.0 and the
	// skipped sports document leaves no trace.
	assert.Equal(t, map[string]float64{"finance": 1.0}, model.TopicPriors)
	assert.NotContains(t, model.WordGivenTopic, "sports")
}

func TestTrain_Priors(t *testing.T) {
	model, err := Train(trainingDocs())
	require.NoError(t, err)

	assert.InDelta(t, 0.5, model.TopicPriors["finance"], 1e-12)
	assert.InDelta(t, 0.5, model.TopicPriors["sports"], 1e-12)

	for topic, prior := range model.TopicPriors {
		assert.Greater(t, prior, 0.0, "prior for %s", topic)
		assert.LessOrEqual(t, prior, 1.0, "prior for %s", topic)
	}
}

func TestTrain_MultiLabelPriorsExceedOne(t *testing.T) {
	docs := []domain.TrainingDocument{
		{Content: "stocks rally after championship win", Topics: []string{"finance", "sports"}},
		{Content: "markets close higher today", Topics: []string{"finance"}},
	}

	model, err := Train(docs)
	require.NoError(t, err)

	// Multi-label priors are per-topic document fractions, not a partition:
	// the two-topic document counts toward both.
	assert.InDelta(t, 1.0, model.TopicPriors["finance"], 1e-12)
	assert.InDelta(t, 0.5, model.TopicPriors["sports"], 1e-12)

	var sum float64
	for _, prior := range model.TopicPriors {
		sum += prior
	}
	assert.Greater(t, sum, 1.0)
}

func TestTrain_MultiLabelCountsContributeToEveryTopic(t *testing.T) {
	docs := []domain.TrainingDocument{
		{Content: "championship stocks", Topics: []string{"finance", "sports"}},
	}

	model, err := Train(docs)
	require.NoError(t, err)

	assert.Equal(t, 2, model.TopicWordCounts["finance"])
	assert.Equal(t, 2, model.TopicWordCounts["sports"])
	assert.Contains(t, model.WordGivenTopic["finance"], "championship")
	assert.Contains(t, model.WordGivenTopic["sports"], "championship")
}

func TestTrain_LaplaceSmoothing(t *testing.T) {
	model, err := Train(trainingDocs())
	require.NoError(t, err)

	// Vocabulary: stocks rally amid economic growth team wins championship game.
	require.Equal(t, 9, model.VocabularySize)
	require.Equal(t, 5, model.TopicWordCounts["finance"])
	require.Equal(t, 4, model.TopicWordCounts["sports"])

	// Observed once under finance: (1+1)/(5+9).
	assert.InDelta(t, 2.0/14.0, model.WordGivenTopic["finance"]["stocks"], 1e-12)
	// Observed once under sports: (1+1)/(4+9).
	assert.InDelta(t, 2.0/13.0, model.WordGivenTopic["sports"]["team"], 1e-12)

	for topic, table := range model.WordGivenTopic {
		for word, prob := range table {
			assert.Greater(t, prob, 0.0, "%s/%s", topic, word)
			assert.Less(t, prob, 1.0, "%s/%s", topic, word)
		}
	}
}

func TestTrain_TopicKeysConsistent(t *testing.T) {
	model, err := Train(trainingDocs())
	require.NoError(t, err)

	for topic := range model.TopicPriors {
		_, hasTable := model.WordGivenTopic[topic]
		_, hasCount := model.TopicWordCounts[topic]
		assert.True(t, hasTable, "missing word table for %s", topic)
		assert.True(t, hasCount, "missing word count for %s", topic)
	}
}

func TestTrain_ShortWordsExcludedFromVocabulary(t *testing.T) {
	docs := []domain.TrainingDocument{
		{Content: "it is a big market move", Topics: []string{"finance"}},
	}

	model, err := Train(docs)
	require.NoError(t, err)

	assert.Equal(t, 3, model.VocabularySize)
	assert.NotContains(t, model.WordGivenTopic["finance"], "it")
	assert.Contains(t, model.WordGivenTopic["finance"], "market")
}
