// Package keywords suggests tags for a snapshot from the frequency of
// the words in its text.
package keywords

import (
	"sort"
	"strings"
	"unicode"
)

// MinTagLength is the shortest word that can become a tag.
const MinTagLength = 3

// stopwords are ignored in frequency analysis: common English function
// words, plus words that markdown links and page chrome leave behind.
var stopwords = toSet(
	// articles, pronouns, determiners
	"a", "an", "the", "this", "that", "these", "those",
	"i", "me", "my", "mine", "myself", "we", "us", "our", "ours", "ourselves",
	"you", "your", "yours", "yourself", "yourselves",
	"he", "him", "his", "himself", "she", "her", "hers", "herself",
	"it", "its", "itself", "they", "them", "their", "theirs", "themselves",
	"who", "whom", "whose", "which", "what", "whatever", "whoever",
	"all", "any", "both", "each", "either", "every", "few", "many", "much",
	"more", "most", "other", "others", "another", "some", "such", "same",
	"several", "none", "nothing", "something", "anything", "everything",
	"someone", "anyone", "everyone", "nobody", "own",

	// auxiliaries and very common verbs
	"am", "is", "are", "was", "were", "be", "been", "being",
	"have", "has", "had", "having", "do", "does", "did", "doing", "done",
	"can", "cannot", "could", "may", "might", "must", "shall", "should",
	"will", "would", "get", "gets", "got", "make", "made", "take", "use",
	"let", "see", "seem", "seems", "keep", "put",

	// contractions
	"aren't", "can't", "couldn't", "didn't", "doesn't", "don't", "hadn't",
	"hasn't", "haven't", "isn't", "it's", "let's", "mustn't", "shouldn't",
	"that's", "there's", "they're", "we're", "you're", "wasn't", "weren't",
	"won't", "wouldn't", "i'm", "i've", "i'll", "i'd", "you've", "you'll",
	"we've", "we'll", "they've", "they'll", "he's", "she's", "what's",

	// prepositions and conjunctions
	"about", "above", "across", "after", "against", "along", "among",
	"around", "as", "at", "before", "behind", "below", "beneath", "beside",
	"between", "beyond", "by", "down", "during", "for", "from", "in",
	"inside", "into", "near", "of", "off", "on", "onto", "out", "outside",
	"over", "per", "since", "through", "throughout", "to", "toward",
	"towards", "under", "until", "up", "upon", "via", "with", "within",
	"without", "and", "but", "or", "nor", "so", "yet", "if", "then",
	"than", "because", "although", "though", "while", "whereas", "whether",
	"unless",

	// adverbs
	"again", "also", "already", "always", "even", "ever", "here", "there",
	"how", "however", "just", "less", "least", "never", "not", "no", "now",
	"often", "once", "only", "perhaps", "quite", "rather", "really",
	"still", "sometimes", "thus", "too", "very", "well", "when", "where",
	"why", "therefore", "indeed", "maybe", "etc",

	// links, markup and page chrome
	"http", "https", "www", "com", "org", "net", "html", "htm", "php",
	"png", "jpg", "jpeg", "gif", "svg", "webp", "br",
	"click", "button", "link", "links", "menu", "page", "pages", "site",
	"website", "home", "homepage", "search", "login", "share", "subscribe",
	"newsletter", "cookie", "cookies", "loading", "read", "more",
)

func toSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// IsStopword reports whether word is ignored by WordFrequency.
func IsStopword(word string) bool {
	_, ok := stopwords[strings.ToLower(word)]
	return ok
}

// WordFrequency counts the lower-cased words of text. Leading and
// trailing punctuation is trimmed, stopwords and empty tokens dropped.
func WordFrequency(text string) map[string]int {
	frequencies := make(map[string]int)

	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.TrimFunc(word, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if word == "" || IsStopword(word) {
			continue
		}
		frequencies[word]++
	}

	return frequencies
}

// Merge sums several frequency maps.
func Merge(counts ...map[string]int) map[string]int {
	merged := make(map[string]int)
	for _, c := range counts {
		for word, n := range c {
			merged[word] += n
		}
	}
	return merged
}

type wordCount struct {
	Word  string
	Count int
}

// Top returns up to n words from frequencies that are usable as tags,
// most frequent first. Equal counts are ordered alphabetically so the
// result does not depend on map iteration order.
func Top(frequencies map[string]int, n int) []string {
	if n <= 0 {
		return nil
	}

	counts := make([]wordCount, 0, len(frequencies))
	for word, count := range frequencies {
		if isValidKeyword(word) {
			counts = append(counts, wordCount{word, count})
		}
	}

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Word < counts[j].Word
	})

	limit := min(n, len(counts))
	top := make([]string, limit)
	for i := 0; i < limit; i++ {
		top[i] = counts[i].Word
	}
	return top
}

// SuggestTags returns the n most frequent keywords across texts.
func SuggestTags(n int, texts ...string) []string {
	counts := make([]map[string]int, len(texts))
	for i, text := range texts {
		counts[i] = WordFrequency(text)
	}
	return Top(Merge(counts...), n)
}

// isValidKeyword filters tokens that are too short, purely numeric or
// obviously broken (unbalanced delimiters and quotes, dangling : or =).
func isValidKeyword(word string) bool {
	if len([]rune(word)) < MinTagLength {
		return false
	}
	if strings.IndexFunc(word, unicode.IsLetter) < 0 {
		return false
	}
	if strings.HasSuffix(word, ":") || strings.HasSuffix(word, "=") {
		return false
	}
	for _, pair := range [][2]string{{"(", ")"}, {"[", "]"}, {"{", "}"}} {
		if strings.Count(word, pair[0]) != strings.Count(word, pair[1]) {
			return false
		}
	}
	return strings.Count(word, `"`)%2 == 0 && strings.Count(word, "'")%2 == 0
}
