package domain

// ExtractedArticle is the result of running the body extractor over a raw
// HTML page. Content holds plain text paragraphs joined by blank lines.
type ExtractedArticle struct {
	Title   string `json:"title,omitempty"`
	Content string `json:"content,omitempty"`
	Excerpt string `json:"excerpt,omitempty"`
	Author  string `json:"author,omitempty"`
	Length  int    `json:"length"`
}

// Article is a fetched page after extraction, ready for classification.
type Article struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	URL     string `json:"url"`
}
