package models

// ConvertResponse is returned by the document converter's POST /convert.
type ConvertResponse struct {
	Data ConvertedDocument `json:"data"`
}

type ConvertedDocument struct {
	Text     string `json:"text"`
	Filename string `json:"filename"`
	Pages    int    `json:"pages"`
}
