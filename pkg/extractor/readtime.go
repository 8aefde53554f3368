package extractor

import (
	"math"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/dtnitsch/page-snapshot/models"
)

const (
	WordsPerMinute  = 250
	SecondsPerImage = 4
)

// EstimateReadTime counts the words of the visible body text and every
// <img> in the document. Any positive duration rounds up to whole
// minutes, so a single word reads in one minute.
func EstimateReadTime(doc *goquery.Document) models.ReadTimeEstimate {
	if doc == nil {
		return models.ReadTimeEstimate{}
	}

	words := len(strings.Fields(visibleText(doc)))
	images := doc.Find("img").Length()

	est := models.ReadTimeEstimate{
		WordCount:    words,
		ImageCount:   images,
		ImageSeconds: images * SecondsPerImage,
	}
	if words == 0 && images == 0 {
		return est
	}

	est.RawMinutes = float64(words)/WordsPerMinute + float64(est.ImageSeconds)/60
	if est.RawMinutes > 0 {
		est.Minutes = int(math.Ceil(est.RawMinutes))
	}
	return est
}
