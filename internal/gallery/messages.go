package gallery

// Texts are the user-visible strings the controller writes
type Texts struct {
	Instructions string
	Searching    string
	Failed       string
	Play         string
	Pause        string
}

// DefaultTexts returns the English strings
func DefaultTexts() Texts {
	return Texts{
		Instructions: "Type in a term, select a media type, then click the button.",
		Searching:    "Getting images...",
		Failed:       "Last attempt to get images failed...",
		Play:         "Play",
		Pause:        "Pause",
	}
}
