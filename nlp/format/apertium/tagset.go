package apertium

import (
	"fmt"
	"sort"

	nlp "yu-val-weiss/ape2ud/nlp/types"
)

// Dialect selects the tag notation of the analyzer output.
type Dialect int

const (
	// Ape is the apertium notation: lemma<tag1><tag2>
	Ape Dialect = iota
	// Giella is the giellatekno notation: lemma+Tag1+Tag2
	Giella
)

var dialectNames = map[Dialect]string{
	Ape:    "ape",
	Giella: "giella",
}

func (d Dialect) String() string {
	if name, exists := dialectNames[d]; exists {
		return name
	}
	return fmt.Sprintf("Dialect(%d)", int(d))
}

func ParseDialect(name string) (Dialect, error) {
	for d, n := range dialectNames {
		if n == name {
			return d, nil
		}
	}
	return Ape, fmt.Errorf("unknown dialect %q (want ape or giella)", name)
}

func Dialects() []Dialect {
	return []Dialect{Ape, Giella}
}

// A Feature is a single name=value pair
type Feature struct {
	Name, Value string
}

// A TagEffect is what one analyzer tag contributes to an analysis.
// The zero TagEffect is a deliberate no-op.
type TagEffect struct {
	UPOS  nlp.UPOS
	Feats []Feature
	Misc  []Feature
}

func (e TagEffect) IsNoop() bool {
	return e.UPOS == nlp.NoUPOS && len(e.Feats) == 0 && len(e.Misc) == 0
}

func pos(u nlp.UPOS) TagEffect {
	return TagEffect{UPOS: u}
}

func feat(kv ...string) TagEffect {
	return TagEffect{Feats: pairs(kv)}
}

func misc(kv ...string) TagEffect {
	return TagEffect{Misc: pairs(kv)}
}

var noop = TagEffect{}

func pairs(kv []string) []Feature {
	if len(kv)%2 != 0 {
		panic("odd number of feature strings")
	}
	features := make([]Feature, len(kv)/2)
	for i := range features {
		features[i] = Feature{kv[2*i], kv[2*i+1]}
	}
	return features
}

// apeTags maps every tag of the apertium analyzer inventory.
// A tag missing here aborts the conversion.
var apeTags = map[string]TagEffect{
	// parts of speech
	"n":      pos(nlp.NOUN),
	"adj":    pos(nlp.ADJ),
	"vblex":  pos(nlp.VERB),
	"vaux":   pos(nlp.AUX),
	"vbser":  pos(nlp.AUX),
	"vbmod":  pos(nlp.AUX),
	"vbdo":   pos(nlp.AUX),
	"cnjcoo": pos(nlp.CCONJ),
	"cnjadv": pos(nlp.SCONJ),
	"cnjsub": pos(nlp.SCONJ),
	"ij":     pos(nlp.INTJ),
	"np":     pos(nlp.PROPN),
	"prn":    pos(nlp.PRON),
	"num":    pos(nlp.NUM),
	"adv":    pos(nlp.ADV),
	"post":   pos(nlp.ADP),
	"pp":     pos(nlp.ADP),
	"pcle":   pos(nlp.PART),
	"punct":  pos(nlp.PUNCT),
	"sym":    pos(nlp.SYM),

	// number and case
	"sg":  feat("Number", "Sing"),
	"pl":  feat("Number", "Plur"),
	"nom": feat("Case", "Nom"),
	"par": feat("Case", "Par"),
	"gen": feat("Case", "Gen"),
	"ill": feat("Case", "Ill"),
	"ela": feat("Case", "Ela"),
	"ade": feat("Case", "Ade"),
	"abe": feat("Case", "Abe"),
	"abl": feat("Case", "Abl"),
	"ine": feat("Case", "Ine"),
	"all": feat("Case", "All"),
	"ess": feat("Case", "Ess"),
	"tra": feat("Case", "Tra"),

	// verbal
	"act":    feat("Voice", "Act"),
	"actv":   feat("Voice", "Act"),
	"pasv":   feat("Voice", "Pass"),
	"pri":    feat("Tense", "Pres", "Mood", "Ind", "VerbForm", "Fin"),
	"past":   feat("Tense", "Past", "Mood", "Ind", "VerbForm", "Fin"),
	"impv":   feat("Mood", "Imp", "VerbForm", "Fin"),
	"p1":     feat("Person", "1"),
	"p2":     feat("Person", "2"),
	"p3":     feat("Person", "3"),
	"inf":    feat("VerbForm", "Inf"),
	"ger":    feat("VerbForm", "Ger"),
	"conneg": feat("Connegative", "Yes"),
	"neg":    feat("Polarity", "Neg"),

	// pronouns
	"pers":  feat("PronType", "Pers"),
	"dem":   feat("PronType", "Dem"),
	"rel":   feat("PronType", "Rel"),
	"indef": feat("PronType", "Ind"),
	"refl":  feat("Reflex", "Yes"),

	// possessives, comparison, clitics
	"pxsg1": feat("Person[psor]", "1", "Number[psor]", "Sing"),
	"pxsg2": feat("Person[psor]", "2", "Number[psor]", "Sing"),
	"pxsp3": feat("Person[psor]", "3"),
	"comp":  feat("Degree", "Cmp"),
	"sup":   feat("Degree", "Sup"),
	"ki":    feat("Clitic", "Ki"),
	"acr":   feat("Abbr", "Yes"),
	"abbr":  feat("Abbr", "Yes"),

	// not in the UD feature set
	"cog":    misc("PropnType", "Cog"),
	"top":    misc("PropnType", "Top"),
	"al":     misc("PropnType", "Al"),
	"ant":    misc("PropnType", "Ant"),
	"interr": misc("PronType", "Interr"),
	"itg":    misc("PronType", "Interr"),
	"f":      misc("Gender", "Female"),
	"m":      misc("Gender", "Male"),

	// unmodelled
	"enc": noop,
	"ja":  noop,
}

// giellaTags maps the giellatekno analyzer inventory.
var giellaTags = map[string]TagEffect{
	"N":      pos(nlp.NOUN),
	"A":      pos(nlp.ADJ),
	"V":      pos(nlp.VERB),
	"Adv":    pos(nlp.ADV),
	"Pron":   pos(nlp.PRON),
	"Num":    pos(nlp.NUM),
	"CC":     pos(nlp.CCONJ),
	"CS":     pos(nlp.SCONJ),
	"Interj": pos(nlp.INTJ),
	"Po":     pos(nlp.ADP),
	"Pr":     pos(nlp.ADP),
	"Pcle":   pos(nlp.PART),
	"Punct":  pos(nlp.PUNCT),
	"CLB":    pos(nlp.PUNCT),
	"Symbol": pos(nlp.SYM),
	"Det":    pos(nlp.DET),
	"Aux":    pos(nlp.AUX),

	"Sg":  feat("Number", "Sing"),
	"Pl":  feat("Number", "Plur"),
	"Nom": feat("Case", "Nom"),
	"Par": feat("Case", "Par"),
	"Gen": feat("Case", "Gen"),
	"Ill": feat("Case", "Ill"),
	"Ine": feat("Case", "Ine"),
	"Ela": feat("Case", "Ela"),
	"All": feat("Case", "All"),
	"Ade": feat("Case", "Ade"),
	"Abl": feat("Case", "Abl"),
	"Ess": feat("Case", "Ess"),
	"Tra": feat("Case", "Tra"),
	"Abe": feat("Case", "Abe"),
	"Ins": feat("Case", "Ins"),
	"Com": feat("Case", "Com"),
	"Acc": feat("Case", "Acc"),

	"Act":    feat("Voice", "Act"),
	"Pss":    feat("Voice", "Pass"),
	"Prs":    feat("Tense", "Pres", "Mood", "Ind", "VerbForm", "Fin"),
	"Prt":    feat("Tense", "Past", "Mood", "Ind", "VerbForm", "Fin"),
	"Ind":    feat("Mood", "Ind", "VerbForm", "Fin"),
	"Cond":   feat("Mood", "Cnd", "VerbForm", "Fin"),
	"Pot":    feat("Mood", "Pot", "VerbForm", "Fin"),
	"Imprt":  feat("Mood", "Imp", "VerbForm", "Fin"),
	"Sg1":    feat("Number", "Sing", "Person", "1"),
	"Sg2":    feat("Number", "Sing", "Person", "2"),
	"Sg3":    feat("Number", "Sing", "Person", "3"),
	"Pl1":    feat("Number", "Plur", "Person", "1"),
	"Pl2":    feat("Number", "Plur", "Person", "2"),
	"Pl3":    feat("Number", "Plur", "Person", "3"),
	"Inf":    feat("VerbForm", "Inf"),
	"InfA":   feat("VerbForm", "Inf", "InfForm", "1"),
	"InfE":   feat("VerbForm", "Inf", "InfForm", "2"),
	"InfMa":  feat("VerbForm", "Inf", "InfForm", "3"),
	"PrsPrc": feat("VerbForm", "Part", "PartForm", "Pres"),
	"PrfPrc": feat("VerbForm", "Part", "PartForm", "Past"),
	"AgPrc":  feat("VerbForm", "Part", "PartForm", "Agt"),
	"NegPrc": feat("VerbForm", "Part", "PartForm", "Neg"),
	"ConNeg": feat("Connegative", "Yes"),
	"Neg":    feat("Polarity", "Neg"),

	"Pers":   feat("PronType", "Pers"),
	"Dem":    feat("PronType", "Dem"),
	"Rel":    feat("PronType", "Rel"),
	"Indef":  feat("PronType", "Ind"),
	"Recipr": feat("PronType", "Rcp"),
	"Refl":   feat("Reflex", "Yes"),

	"PxSg1":  feat("Person[psor]", "1", "Number[psor]", "Sing"),
	"PxSg2":  feat("Person[psor]", "2", "Number[psor]", "Sing"),
	"PxSg3":  feat("Person[psor]", "3", "Number[psor]", "Sing"),
	"PxPl1":  feat("Person[psor]", "1", "Number[psor]", "Plur"),
	"PxPl2":  feat("Person[psor]", "2", "Number[psor]", "Plur"),
	"PxPl3":  feat("Person[psor]", "3", "Number[psor]", "Plur"),
	"Px3":    feat("Person[psor]", "3"),
	"Comp":   feat("Degree", "Cmp"),
	"Superl": feat("Degree", "Sup"),
	"Pos":    feat("Degree", "Pos"),
	"Card":   feat("NumType", "Card"),
	"Ord":    feat("NumType", "Ord"),
	"ABBR":   feat("Abbr", "Yes"),
	"ACR":    feat("Abbr", "Yes"),

	"Foc_kin":  feat("Clitic", "Kin"),
	"Foc_kaan": feat("Clitic", "Kaan"),
	"Foc_han":  feat("Clitic", "Han"),
	"Foc_pa":   feat("Clitic", "Pa"),
	"Qst":      feat("Clitic", "Ko"),

	"Prop":   pos(nlp.PROPN),
	"Sur":    misc("PropnType", "Cog"),
	"Plc":    misc("PropnType", "Top"),
	"Interr": misc("PronType", "Interr"),
	"Fem":    misc("Gender", "Female"),
	"Mal":    misc("Gender", "Male"),

	"Sem_Hum":  noop,
	"Sem_Org":  noop,
	"Err_Orth": noop,
	"Use_NG":   noop,
	"Cmp":      noop,
}

var tables = map[Dialect]map[string]TagEffect{
	Ape:    apeTags,
	Giella: giellaTags,
}

// Lookup returns the effect of tag in dialect d, and false if the tag is
// not part of the dialect's inventory.
func Lookup(d Dialect, tag string) (TagEffect, bool) {
	table, exists := tables[d]
	if !exists {
		return TagEffect{}, false
	}
	effect, exists := table[tag]
	return effect, exists
}

// Tags lists the inventory of dialect d in sorted order.
func Tags(d Dialect) []string {
	table := tables[d]
	tags := make([]string, 0, len(table))
	for tag := range table {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
