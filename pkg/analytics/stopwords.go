package analytics

// englishStopwords are high-frequency English words ignored in keyword ranking.
var englishStopwords = []string{
	"a", "an", "and", "are", "as", "at", "be", "but", "by", "for", "if", "in",
	"into", "is", "it", "no", "not", "of", "on", "or", "such", "that", "the",
	"their", "then", "there", "these", "they", "this", "to", "was", "will", "with",

	"about", "above", "after", "again", "against", "all", "am", "any",
	"because", "been", "before", "being", "between", "both",
	"did", "do", "does", "doing", "down", "during",
	"each", "few", "from", "further",
	"had", "has", "have", "having", "he", "her", "here", "hers", "him", "his", "how",
	"i", "itself", "just", "me", "more", "most", "my", "myself",
	"now", "off", "once", "only", "other", "our", "ours", "ourselves", "out", "over", "own",
	"same", "she", "should", "some", "than", "theirs", "them", "themselves", "those",
	"through", "under", "until", "up", "very",
	"we", "were", "what", "when", "where", "which", "while", "who", "whom", "why",
	"you", "your", "yours", "yourself", "yourselves",
}

// frenchStopwords include multi-word phrases; they never match a single token
// but are kept so the table mirrors the published list.
var frenchStopwords = []string{
	"le", "la", "les", "un", "une", "des", "de", "du", "et", "ou", "ne", "pas",
	"il", "elle", "on", "nous", "vous", "ils", "elles", "ce", "ces",
	"à", "au", "aux", "en", "dans", "sur", "par", "pour", "avec", "sans", "mais",
	"où", "quand", "comment", "que", "qui", "quoi", "dont",
	"mon", "ton", "son", "ma", "ta", "sa", "mes", "tes", "ses",
	"notre", "votre", "leur", "nos", "vos",
	"je", "tu", "se", "me", "te", "lui", "y",
	"tout", "tous", "toute", "toutes", "chaque", "plus", "moins", "aussi", "très",
	"bien", "mal", "si", "donc", "car", "parce", "comme", "lorsque", "depuis",
	"avant", "après", "pendant", "vers", "chez", "entre", "parmi", "sous", "devant",
	"derrière", "contre", "malgré", "hormis", "sauf", "selon", "voici", "voilà",
	"afin", "quoique", "tandis", "alors", "jusqu'à", "pourvu",
	"à condition", "en cas", "au lieu de",
	"plutôt", "soit", "ni", "non", "seulement", "d'ailleurs", "outre", "enfin",
	"bref", "en somme", "ainsi", "par conséquent", "c'est", "pourquoi",
	"c'est-à-dire", "autrement", "dit", "par exemple", "notamment", "surtout",
	"en particulier", "quant à", "ici", "là", "même", "toujours", "jamais",
	"souvent", "trop", "peut-être", "plusieurs", "aucun", "certains", "chacun",
	"quelque", "toutefois", "néanmoins", "or",
	"alors que", "depuis que", "avant que", "après que",
}

// elisionPrefixes are the French elided forms stripped before tokenization.
var elisionPrefixes = []string{"l'", "d'", "c'", "j'", "n'", "s'", "t'", "qu'"}

// stopwords is built once at init and only read afterwards.
var stopwords map[string]struct{}

func init() {
	stopwords = make(map[string]struct{}, len(englishStopwords)+len(frenchStopwords)+len(elisionPrefixes))
	for _, list := range [][]string{englishStopwords, frenchStopwords, elisionPrefixes} {
		for _, w := range list {
			stopwords[w] = struct{}{}
		}
	}
}

// IsStopword reports whether an already-lowercased token is a stop word.
// The match is exact; callers fold case first.
func IsStopword(word string) bool {
	_, exists := stopwords[word]
	return exists
}
