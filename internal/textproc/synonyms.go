package textproc

// synonyms maps a lowercase token to related tokens, bilingual in both
// directions. The dictionary is deliberately static: it trades coverage for
// predictability, and exists to widen lexical recall before the scorer runs.
var synonyms = map[string][]string{
	// Basic needs
	"hungry":    {"food", "meal", "eat", "faim", "nourriture"},
	"faim":      {"food", "hungry", "nourriture", "manger"},
	"food":      {"meal", "grocery", "nourriture", "pantry"},
	"eat":       {"food", "meal", "hungry"},
	"manger":    {"food", "nourriture", "faim"},
	"groceries": {"food", "grocery", "pantry"},
	"meal":      {"food", "eat", "repas"},
	"repas":     {"meal", "food", "nourriture"},
	"homeless":  {"shelter", "housing", "logement", "itinerance"},
	"shelter":   {"housing", "refuge", "bed", "hebergement"},
	"evicted":   {"housing", "eviction", "shelter", "expulsion"},
	"eviction":  {"housing", "tenant", "legal"},
	"rent":      {"housing", "loyer", "tenant"},
	"loyer":     {"rent", "housing", "logement"},
	"logement":  {"housing", "shelter", "rent"},
	"warm":      {"shelter", "clothing", "winter"},

	// Health and wellness
	"sick":        {"health", "doctor", "clinic", "malade"},
	"malade":      {"sick", "health", "medecin"},
	"doctor":      {"health", "clinic", "physician", "medecin"},
	"medecin":     {"doctor", "health", "clinique"},
	"clinic":      {"health", "doctor", "clinique"},
	"dentist":     {"dental", "health", "dentiste"},
	"anxious":     {"anxiety", "mental", "counselling"},
	"anxiety":     {"mental", "counselling", "anxiete"},
	"anxiete":     {"anxiety", "mental", "sante"},
	"depressed":   {"depression", "mental", "counselling"},
	"depression":  {"mental", "counselling", "therapy"},
	"counselling": {"therapy", "mental", "counseling"},
	"counseling":  {"therapy", "mental", "counselling"},
	"addiction":   {"substance", "recovery", "dependance"},
	"drugs":       {"substance", "addiction", "harm"},

	// Legal and employment
	"lawyer":   {"legal", "avocat", "law"},
	"avocat":   {"legal", "lawyer", "droit"},
	"legal":    {"lawyer", "law", "juridique"},
	"job":      {"employment", "work", "emploi"},
	"jobs":     {"employment", "work", "emploi"},
	"emploi":   {"job", "employment", "travail"},
	"travail":  {"work", "job", "emploi"},
	"work":     {"job", "employment", "travail"},
	"fired":    {"employment", "job", "unemployment"},
	"resume":   {"employment", "job", "cv"},
	"benefits": {"financial", "assistance", "prestations"},
	"money":    {"financial", "assistance", "argent"},
	"argent":   {"money", "financial", "aide"},

	// Identity and community
	"native":     {"indigenous", "aboriginal", "autochtone"},
	"indigenous": {"aboriginal", "autochtone", "metis", "inuit"},
	"autochtone": {"indigenous", "aboriginal"},
	"teen":       {"youth", "young", "jeune"},
	"teenager":   {"youth", "young", "jeune"},
	"jeune":      {"youth", "young"},
	"youth":      {"young", "teen", "jeune"},
	"elderly":    {"senior", "aine", "aging"},
	"aine":       {"senior", "elderly"},
	"lgbtq":      {"queer", "pride", "2slgbtq"},
	"queer":      {"lgbtq", "pride", "2slgbtq"},
	"newcomer":   {"immigrant", "refugee", "settlement"},
	"refugee":    {"newcomer", "immigrant", "refugie"},

	// Misspellings and shorthand
	"hungy":    {"hungry", "food"},
	"foodbank": {"food", "bank", "pantry"},
	"docter":   {"doctor", "health"},
	"councelling": {"counselling", "therapy"},
	"sucide":   {"suicide", "crisis"},
	"appt":     {"appointment"},
}

// ExpandSynonyms returns tokens unioned with their dictionary expansions,
// originals first, deduplicated. Pure function; unknown tokens pass through.
func ExpandSynonyms(tokens []string) []string {
	seen := make(map[string]bool, len(tokens))
	expanded := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if !seen[tok] {
			seen[tok] = true
			expanded = append(expanded, tok)
		}
	}
	for _, tok := range tokens {
		for _, syn := range synonyms[tok] {
			if !seen[syn] {
				seen[syn] = true
				expanded = append(expanded, syn)
			}
		}
	}
	return expanded
}
