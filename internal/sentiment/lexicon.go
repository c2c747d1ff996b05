package sentiment

// lexicon is a subset of the AFINN-165 wordlist covering terms common in
// short product and business chatter. Values range -5..+5.
var lexicon = map[string]int{
	"abandon":       -2,
	"ability":       2,
	"amazing":       4,
	"angry":         -3,
	"annoying":      -2,
	"appreciate":    2,
	"approve":       2,
	"approved":      2,
	"awesome":       4,
	"awful":         -3,
	"bad":           -3,
	"benefit":       2,
	"best":          3,
	"better":        2,
	"block":         -1,
	"boost":         1,
	"breakthrough":  3,
	"broke":         -1,
	"broken":        -1,
	"bug":           -2,
	"cancel":        -1,
	"celebrate":     3,
	"challenge":     -1,
	"cheap":         -1,
	"confident":     2,
	"confused":      -2,
	"crash":         -2,
	"critical":      -2,
	"damage":        -3,
	"dead":          -3,
	"delight":       3,
	"delighted":     3,
	"disappointed":  -2,
	"disappointing": -2,
	"disaster":      -2,
	"dislike":       -2,
	"doubt":         -1,
	"down":          -1,
	"easy":          1,
	"effective":     2,
	"efficient":     2,
	"enjoy":         2,
	"error":         -2,
	"excellent":     3,
	"excited":       3,
	"exciting":      3,
	"fail":          -2,
	"failed":        -2,
	"failure":       -2,
	"fantastic":     4,
	"fast":          1,
	"fear":          -2,
	"fine":          2,
	"fired":         -2,
	"fix":           1,
	"fixed":         1,
	"fraud":         -4,
	"free":          1,
	"frustrated":    -2,
	"frustrating":   -2,
	"fun":           4,
	"glad":          3,
	"good":          3,
	"great":         3,
	"growth":        2,
	"happy":         3,
	"hate":          -3,
	"helpful":       2,
	"hope":          2,
	"hopeless":      -2,
	"huge":          1,
	"impressed":     3,
	"impressive":    3,
	"improve":       2,
	"improved":      2,
	"improvement":   2,
	"innovative":    2,
	"interesting":   2,
	"issue":         -1,
	"joy":           3,
	"launch":        1,
	"like":          2,
	"limited":       -1,
	"losing":        -3,
	"loss":          -3,
	"lost":          -3,
	"love":          3,
	"lucky":         3,
	"mess":          -2,
	"mistake":       -2,
	"nice":          3,
	"noisy":         -1,
	"opportunity":   2,
	"outage":        -2,
	"outstanding":   5,
	"overpriced":    -2,
	"pain":          -2,
	"perfect":       3,
	"please":        1,
	"pleased":       3,
	"poor":          -2,
	"popular":       3,
	"positive":      2,
	"problem":       -2,
	"problems":      -2,
	"progress":      2,
	"promising":     1,
	"proud":         2,
	"recommend":     2,
	"regret":        -2,
	"reject":        -1,
	"rejected":      -2,
	"reliable":      2,
	"risk":          -2,
	"sad":           -2,
	"scam":          -2,
	"scared":        -2,
	"slow":          -2,
	"smart":         1,
	"smooth":        2,
	"solid":         2,
	"solution":      1,
	"solutions":     1,
	"sorry":         -1,
	"strong":        2,
	"struggle":      -2,
	"struggling":    -2,
	"stuck":         -2,
	"success":       2,
	"successful":    3,
	"support":       2,
	"terrible":      -3,
	"thanks":        2,
	"tired":         -2,
	"top":           2,
	"tough":         -2,
	"trouble":       -2,
	"trust":         1,
	"ugly":          -3,
	"unhappy":       -2,
	"unreliable":    -2,
	"upset":         -2,
	"useful":        2,
	"useless":       -2,
	"value":         1,
	"waste":         -1,
	"weak":          -2,
	"welcome":       2,
	"win":           4,
	"winner":        4,
	"winning":       4,
	"wonderful":     4,
	"worried":       -3,
	"worry":         -3,
	"worse":         -3,
	"worst":         -3,
	"worthless":     -2,
	"wow":           4,
	"wrong":         -2,
}
