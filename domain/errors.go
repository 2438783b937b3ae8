// ABOUTME: Domain-level sentinel errors for the langler content service
// ABOUTME: These errors are used with errors.Is() for error type checking
package domain

import "errors"

// Training errors
var (
	// ErrNoTrainingData indicates that no document survived input filtering,
	// so there is nothing to train on.
	ErrNoTrainingData = errors.New("no valid training documents")
)

// Model errors
var (
	// ErrModelDecode indicates the serialized model is corrupt or does not
	// match the expected schema.
	ErrModelDecode = errors.New("failed to decode topic model")

	// ErrModelNotFound indicates no trained model exists under the requested name.
	ErrModelNotFound = errors.New("topic model not found")
)

// Extraction errors
var (
	// ErrNoArticleContent indicates the extractor could not locate any
	// article body in the supplied HTML.
	ErrNoArticleContent = errors.New("no article content found")
)

// Validation errors
var (
	// ErrEmptyDocument indicates the classify request carried no text.
	ErrEmptyDocument = errors.New("document text cannot be empty")
)
