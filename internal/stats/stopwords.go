package stats

// stopWords is the fixed filter list for the word-frequency dashboard:
// common English function words that would otherwise dominate the tallies.
var stopWords = map[string]bool{
	"the": true, "and": true, "or": true, "but": true, "in": true,
	"on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "an": true, "a": true, "is": true,
	"are": true, "was": true, "were": true, "be": true, "been": true,
	"being": true, "have": true, "has": true, "had": true, "having": true,
	"do": true, "does": true, "did": true, "doing": true, "will": true,
	"would": true, "shall": true, "should": true, "may": true, "might": true,
	"must": true, "can": true, "could": true, "this": true, "that": true,
	"these": true, "those": true, "i": true, "me": true, "my": true,
	"myself": true, "we": true, "our": true, "ours": true, "ourselves": true,
	"you": true, "your": true, "yours": true, "yourself": true, "yourselves": true,
	"he": true, "him": true, "his": true, "himself": true, "she": true,
	"her": true, "hers": true, "herself": true, "it": true, "its": true,
	"itself": true, "they": true, "them": true, "their": true, "theirs": true,
	"themselves": true, "what": true, "which": true, "who": true, "whom": true,
	"whose": true, "am": true,
}
