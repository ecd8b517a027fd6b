// Package category assigns coarse semantic categories to vocabulary
// words by matching known proper names against the Greek form and
// keyword patterns against the English gloss and definition.
package category

import (
	"regexp"
	"strings"

	"github.com/koinevocab/curator/internal/domain"
)

// ruleSet is one category with its gloss/definition patterns.
type ruleSet struct {
	category string
	patterns []*regexp.Regexp
	// verbOnly restricts the rule to words tagged as verbs.
	verbOnly bool
}

// Categorizer classifies vocabulary words. Category precedence is the
// fixed order of the rule list; the first match wins and "general" is
// the fallback.
type Categorizer struct {
	names  []string
	places []string
	rules  []ruleSet
}

func compileAll(patterns []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile(p))
	}
	return out
}

// Default returns the categorizer with the curated keyword tables.
func Default() *Categorizer {
	return &Categorizer{
		names:  defaultNames,
		places: defaultPlaces,
		rules: []ruleSet{
			{category: "theological", patterns: compileAll([]string{
				`sin`, `salv`, `grace`, `faith`, `righteous`, `holy`, `spirit`,
				`gospel`, `kingdom`, `eternal`, `redeem`, `forgive`, `covenant`,
				`bapti`, `resurrect`, `sanctif`, `justify`, `atone`, `glory`,
				`bless`, `worship`, `pray`, `prophecy`, `messiah`, `christ`,
				`cross`, `blood`, `lamb`, `sacrifice`, `temple`, `altar`,
			})},
			{category: "body", patterns: compileAll([]string{
				`\bhand\b`, `\bfoot\b`, `\bfeet\b`, `\beye\b`, `\bear\b`, `\bmouth\b`,
				`\bhead\b`, `\bheart\b`, `\bface\b`, `\bflesh\b`, `\bbody\b`, `\bblood\b`,
				`\bbone\b`, `\btongue\b`, `\btooth\b`, `\bhair\b`, `\barm\b`, `\bleg\b`,
				`\bneck\b`, `\bfinger\b`, `\bknee\b`,
			})},
			{category: "time", patterns: compileAll([]string{
				`\bday\b`, `\bnight\b`, `\bhour\b`, `\btime\b`, `\byear\b`, `\bmonth\b`,
				`\bweek\b`, `\bsabbath\b`, `\bmorning\b`, `\bevening\b`, `\bseason\b`,
				`\bage\b`, `\beternity\b`, `\bforever\b`, `\bnow\b`, `\bthen\b`,
				`\bmoment\b`, `\bera\b`, `\bgeneration\b`,
			})},
			{category: "family", patterns: compileAll([]string{
				`\bfather\b`, `\bmother\b`, `\bson\b`, `\bdaughter\b`, `\bbrother\b`,
				`\bsister\b`, `\bchild\b`, `\bparent\b`, `\bhusband\b`, `\bwife\b`,
				`\bwidow\b`, `\borphan\b`, `\bfamily\b`, `\bancestor\b`, `\bdescend`,
			})},
			{category: "nature", patterns: compileAll([]string{
				`\bsea\b`, `\bwater\b`, `\bheaven\b`, `\bearth\b`, `\bsky\b`, `\bstar\b`,
				`\bsun\b`, `\bmoon\b`, `\bwind\b`, `\bfire\b`, `\blight\b`, `\bdark\b`,
				`\bmountain\b`, `\bhill\b`, `\briver\b`, `\btree\b`, `\bfruit\b`, `\bseed\b`,
				`\bfield\b`, `\bvine\b`, `\bwheat\b`, `\bfish\b`, `\bbird\b`, `\banimal\b`,
				`\bsheep\b`, `\bwolf\b`, `\blion\b`, `\bcloud\b`, `\brain\b`, `\bstone\b`,
			})},
			{category: "emotion", patterns: compileAll([]string{
				`\blove\b`, `\bjoy\b`, `\bfear\b`, `\banger\b`, `\bsorrow\b`, `\bgrief\b`,
				`\bhappy\b`, `\bsad\b`, `\bweep\b`, `\bcry\b`, `\blaugh\b`, `\bhate\b`,
				`\bdesire\b`, `\bhope\b`, `\bworry\b`, `\banxious\b`, `\bpeace\b`,
				`\bcomfort\b`, `\bafraid\b`,
			})},
			{category: "religious", patterns: compileAll([]string{
				`\bpray\b`, `\bworship\b`, `\boffering\b`, `\bsacrifice\b`, `\btemple\b`,
				`\bsynagogue\b`, `\bchurch\b`, `\bpriest\b`, `\blevite\b`, `\bpharisee\b`,
				`\bsadducee\b`, `\bscribe\b`, `\bfeast\b`, `\bfasting\b`, `\btith`,
				`\bcircumci`, `\bclean\b`, `\bunclean\b`, `\bpure\b`, `\bimpure\b`,
			})},
			{category: "authority", patterns: compileAll([]string{
				`\bking\b`, `\blord\b`, `\bruler\b`, `\bmaster\b`, `\bservant\b`, `\bslave\b`,
				`\bauthority\b`, `\bpower\b`, `\bthrone\b`, `\bcrown\b`, `\bgovernor\b`,
				`\bjudge\b`, `\bcaptain\b`, `\bcommand\b`, `\breign\b`, `\bdomin`,
			})},
			{category: "speech", patterns: compileAll([]string{
				`\bsay\b`, `\bspeak\b`, `\btell\b`, `\bword\b`, `\bvoice\b`, `\bcall\b`,
				`\bcry\b`, `\bshout\b`, `\bteach\b`, `\bpreach\b`, `\bproclaim\b`,
				`\bannounce\b`, `\bdeclare\b`, `\bwitness\b`, `\btestif`, `\bconfess\b`,
				`\bask\b`, `\banswer\b`, `\bquestion\b`, `\bwrite\b`, `\bread\b`,
			})},
			{category: "abstract", patterns: compileAll([]string{
				`\btruth\b`, `\bwisdom\b`, `\bknowledge\b`, `\bpower\b`, `\bstrength\b`,
				`\bpeace\b`, `\bhope\b`, `\blife\b`, `\bdeath\b`, `\bjudg`, `\blaw\b`,
				`\bword\b`, `\bname\b`, `\bwill\b`, `\bway\b`, `\bwork\b`, `\bplan\b`,
				`\bpurpose\b`, `\bmystery\b`, `\bsecret\b`, `\brevelat`,
			})},
			{category: "action", verbOnly: true, patterns: compileAll([]string{
				`\bgo\b`, `\bcome\b`, `\bwalk\b`, `\brun\b`, `\bsend\b`, `\bsee\b`,
				`\bhear\b`, `\btake\b`, `\bgive\b`, `\bdo\b`, `\bmake\b`, `\bput\b`,
				`\bset\b`, `\bbring\b`, `\blead\b`, `\bfollow\b`, `\bfind\b`, `\bseek\b`,
				`\bleave\b`, `\benter\b`, `\bopen\b`, `\bclose\b`, `\beat\b`, `\bdrink\b`,
				`\bsleep\b`, `\brise\b`, `\bfall\b`, `\bstand\b`, `\bsit\b`, `\blie\b`,
			})},
		},
	}
}

// matchesAny reports whether the lowercased text matches any pattern.
func matchesAny(text string, patterns []*regexp.Regexp) bool {
	for _, p := range patterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

// Categorize returns the semantic category for a word. Proper names
// and places are recognized by Greek substring containment; everything
// else is keyword matching over gloss and definition.
func (c *Categorizer) Categorize(w *domain.VocabularyWord) string {
	for _, name := range c.names {
		if strings.Contains(w.Greek, name) {
			return "name"
		}
	}
	for _, place := range c.places {
		if strings.Contains(w.Greek, place) {
			return "place"
		}
	}

	text := strings.ToLower(w.Gloss + " " + w.Definition)
	for _, rs := range c.rules {
		if rs.verbOnly && w.PartOfSpeech != "verb" {
			continue
		}
		if matchesAny(text, rs.patterns) {
			return rs.category
		}
	}
	return "general"
}

// CategorizeAll sets SemanticCategory on every word and returns the
// category distribution.
func (c *Categorizer) CategorizeAll(words []*domain.VocabularyWord) map[string]int {
	counts := make(map[string]int)
	for _, w := range words {
		cat := c.Categorize(w)
		w.SemanticCategory = cat
		counts[cat]++
	}
	return counts
}

// defaultNames are Greek forms of biblical figures.
var defaultNames = []string{
	"Ἰησοῦς", "Χριστός", "Πέτρος", "Παῦλος", "Ἰωάννης", "Μαρία", "Μάρθα",
	"Ἀβραάμ", "Μωϋσῆς", "Δαυίδ", "Ἰακώβ", "Ἰσραήλ", "Πιλᾶτος", "Ἡρῴδης",
	"Βαρναβᾶς", "Σίμων", "Τιμόθεος", "Φίλιππος", "Ἀνδρέας", "Θωμᾶς",
	"Ματθαῖος", "Ἰούδας", "Στέφανος", "Σατανᾶς", "Λάζαρος", "Ἠλίας",
	"Ἰωσήφ", "Σολομών", "Σαμουήλ", "Ἀδάμ", "Εὔα", "Καῖσαρ",
}

// defaultPlaces are Greek forms of biblical locations.
var defaultPlaces = []string{
	"Ἰερουσαλήμ", "Ἱεροσόλυμα", "Γαλιλαία", "Ἰουδαία", "Σαμάρεια",
	"Ἰορδάνης", "Βηθλέεμ", "Ναζαρέθ", "Καπερναούμ", "Ῥώμη", "Ἀθῆναι",
	"Κόρινθος", "Ἔφεσος", "Ἀντιόχεια", "Δαμασκός", "Αἴγυπτος", "Σιών",
	"Βαβυλών", "Γαλατία", "Μακεδονία", "Ἀχαΐα", "Ἀσία", "Κρήτη",
}
