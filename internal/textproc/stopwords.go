package textproc

// stopWords is the fixed bilingual stop-word set. Tokens of length <= 2 are
// dropped before this lookup, so two-letter function words are omitted.
var stopWords = map[string]struct{}{
	// English
	"the": {}, "and": {}, "for": {}, "are": {}, "but": {}, "not": {},
	"you": {}, "your": {}, "all": {}, "any": {}, "can": {}, "had": {},
	"has": {}, "have": {}, "was": {}, "were": {}, "will": {}, "with": {},
	"this": {}, "that": {}, "they": {}, "them": {}, "then": {}, "than": {},
	"from": {}, "what": {}, "when": {}, "who": {}, "how": {}, "out": {},
	"get": {}, "about": {}, "into": {}, "some": {}, "there": {}, "where": {},
	"would": {}, "could": {}, "should": {}, "please": {},

	// French
	"les": {}, "des": {}, "une": {}, "est": {}, "sont": {}, "pour": {},
	"avec": {}, "dans": {}, "que": {}, "qui": {}, "quoi": {}, "mais": {},
	"sur": {}, "pas": {}, "par": {}, "mon": {}, "mes": {}, "ses": {},
	"nous": {}, "vous": {}, "ils": {}, "elles": {}, "cette": {}, "ces": {},
	"comment": {}, "suis": {}, "avoir": {}, "avez": {}, "faire": {},
	"veux": {}, "peux": {}, "quel": {}, "quelle": {},
}
