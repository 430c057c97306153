package classifier

import (
	"strings"

	"github.com/eslsoft/vocdeck/internal/entity"
)

// irregularER lists the -er verbs that do not conjugate like the first group.
var irregularER = map[string]struct{}{
	"aller": {},
}

type groupRule struct {
	match  func(lemma, presentParticiple string) bool
	group  entity.VerbGroup
	reason string
}

var groupRules = []groupRule{
	{
		match: func(lemma, _ string) bool {
			_, ok := irregularER[lemma]
			return ok
		},
		group:  entity.VerbGroupThird,
		reason: "-er exception",
	},
	{
		match:  func(lemma, _ string) bool { return strings.HasSuffix(lemma, "er") },
		group:  entity.VerbGroupFirst,
		reason: "regular -er",
	},
	{
		match:  func(lemma, _ string) bool { return strings.HasSuffix(lemma, "oir") },
		group:  entity.VerbGroupThird,
		reason: "-oir",
	},
	{
		match: func(lemma, ppr string) bool {
			return strings.HasSuffix(lemma, "ir") && strings.HasSuffix(ppr, "issant")
		},
		group:  entity.VerbGroupSecond,
		reason: "regular -ir (-issant)",
	},
	{
		match:  func(lemma, _ string) bool { return strings.HasSuffix(lemma, "ir") },
		group:  entity.VerbGroupThird,
		reason: "-ir sans -issant",
	},
	{
		match:  func(lemma, _ string) bool { return strings.HasSuffix(lemma, "re") },
		group:  entity.VerbGroupThird,
		reason: "-re",
	},
}

// ClassifyVerbGroup assigns the conjugation group from the infinitive and,
// for -ir verbs, the present participle.
func ClassifyVerbGroup(lemma, presentParticiple string) entity.VerbClassification {
	for _, r := range groupRules {
		if r.match(lemma, presentParticiple) {
			return entity.VerbClassification{Group: r.group, Reason: r.reason}
		}
	}
	return entity.VerbClassification{Group: entity.VerbGroupThird, Reason: "unknown"}
}

// VerbNotes returns the memorization hint for a well-known irregular verb.
func VerbNotes(lemma string) string {
	return verbNotes[lemma]
}

var verbNotes = map[string]string{
	"être":       "auxiliaire",
	"avoir":      "auxiliaire",
	"aller":      "3e groupe (-er exception)",
	"pouvoir":    "-oir (je peux, je pourrai)",
	"vouloir":    "-oir (je veux, je voudrai)",
	"savoir":     "-oir (je sais, je saurai)",
	"devoir":     "-oir (je dois, je devrai)",
	"voir":       "-oir (je vois, je verrai)",
	"recevoir":   "-cevoir (je reçois)",
	"apercevoir": "-cevoir (j'aperçois)",
	"concevoir":  "-cevoir (je conçois)",
	"décevoir":   "-cevoir (je déçois)",
	"falloir":    "-oir impersonnel (il faut)",
	"valoir":     "-oir (je vaux, je vaudrai)",
	"pleuvoir":   "-oir impersonnel (il pleut)",
	"venir":      "-enir (je viens, je viendrai)",
	"tenir":      "-enir (je tiens, je tiendrai)",
	"devenir":    "-enir (je deviens)",
	"revenir":    "-enir (je reviens)",
	"appartenir": "-enir (j'appartiens)",
	"contenir":   "-enir (je contiens)",
	"obtenir":    "-enir (j'obtiens)",
	"retenir":    "-enir (je retiens)",
	"maintenir":  "-enir (je maintiens)",
	"soutenir":   "-enir (je soutiens)",
	"partir":     "-tir (je pars)",
	"sortir":     "-tir (je sors)",
	"sentir":     "-tir (je sens)",
	"mentir":     "-tir (je mens)",
	"servir":     "-vir (je sers)",
	"dormir":     "-mir (je dors)",
	"mourir":     "-ourir (je meurs, je mourrai)",
	"courir":     "-ourir (je cours, je courrai)",
	"acquérir":   "-érir (j'acquiers, j'acquerrai)",
	"ouvrir":     "-vrir (j'ouvre) - comme -er",
	"couvrir":    "-vrir (je couvre) - comme -er",
	"offrir":     "-frir (j'offre) - comme -er",
	"souffrir":   "-frir (je souffre) - comme -er",
	"cueillir":   "-illir (je cueille) - comme -er",
	"prendre":    "-endre (je prends)",
	"apprendre":  "-endre (j'apprends)",
	"comprendre": "-endre (je comprends)",
	"attendre":   "-endre (j'attends) - régulier",
	"entendre":   "-endre (j'entends) - régulier",
	"mettre":     "-ettre (je mets)",
	"permettre":  "-ettre (je permets)",
	"promettre":  "-ettre (je promets)",
	"battre":     "-attre (je bats)",
	"faire":      "très irrégulier (je fais, je ferai)",
	"dire":       "irrégulier (je dis, vous dites)",
	"lire":       "-ire (je lis)",
	"écrire":     "-ire (j'écris)",
	"conduire":   "-uire (je conduis)",
	"produire":   "-uire (je produis)",
	"construire": "-uire (je construis)",
	"détruire":   "-uire (je détruis)",
	"traduire":   "-uire (je traduis)",
	"vivre":      "-ivre (je vis)",
	"suivre":     "-ivre (je suis)",
	"boire":      "irrégulier (je bois, nous buvons)",
	"croire":     "-oire (je crois)",
	"connaître":  "-aître (je connais)",
	"paraître":   "-aître (je parais)",
	"naître":     "-aître (je nais)",
	"plaire":     "-aire (je plais)",
	"craindre":   "-aindre (je crains)",
	"peindre":    "-eindre (je peins)",
	"joindre":    "-oindre (je joins)",
	"résoudre":   "-oudre (je résous)",
	"coudre":     "-oudre (je couds)",
	"moudre":     "-oudre (je mouds)",
	"rompre":     "-ompre (je romps)",
	"vaincre":    "-aincre (je vaincs)",
	"conclure":   "-clure (je conclus)",
	"inclure":    "-clure (j'inclus)",
}
