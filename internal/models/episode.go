package models

type Episode struct {
	PageURL  string
	Title    string
	AudioURL string
}

type Transcription struct {
	Episode
	Text       string
	Summary    string
	OutputPath string
}
