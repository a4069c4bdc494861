package segmenter

// Fixed vocabulary sets for break scoring. These are closed lists, not a
// language model: they mark words that tend to end or open a visual beat.
// Changing them changes segment boundaries for previously processed audio.

var moodShiftWords = map[string]bool{
	"but": true, "yet": true, "however": true, "suddenly": true, "then": true,
	"meanwhile": true, "instead": true, "although": true, "except": true,
	"until": true, "unless": true, "still": true, "anyway": true,
	"nevertheless": true, "finally": true, "so": true, "therefore": true,
	"now": true, "and": true,
}

var visualNouns = map[string]bool{
	"sky": true, "sun": true, "moon": true, "star": true, "stars": true,
	"cloud": true, "clouds": true, "rain": true, "snow": true,
	"fire": true, "flame": true, "water": true, "ocean": true, "sea": true,
	"river": true, "lake": true, "mountain": true,
	"tree": true, "forest": true, "garden": true, "flower": true,
	"flowers": true, "rose": true, "roses": true,
	"gate": true, "door": true, "wall": true, "walls": true, "window": true,
	"road": true, "path": true, "bridge": true,
	"house": true, "castle": true, "tower": true, "city": true,
	"village": true, "light": true, "shadow": true,
	"bird": true, "birds": true, "horse": true, "wolf": true, "dragon": true,
	"king": true, "queen": true,
	"sword": true, "ship": true, "stone": true, "iron": true, "gold": true,
	"silver": true, "blood": true,
	"eye": true, "eyes": true, "hand": true, "hands": true, "face": true,
	"heart": true, "crown": true,
	"ivy": true, "thorns": true, "branches": true, "fountain": true,
	"apple": true, "fruit": true, "skin": true,
}

var actionVerbs = map[string]bool{
	"ran": true, "run": true, "runs": true, "running": true,
	"walked": true, "walk": true, "fell": true, "fall": true,
	"climbed": true, "climb": true, "jumped": true, "jump": true,
	"flew": true, "fly": true, "turned": true,
	"opened": true, "closed": true, "broke": true, "burned": true,
	"burst": true, "crashed": true, "died": true,
	"screamed": true, "whispered": true, "shouted": true, "fought": true,
	"struck": true, "grew": true,
	"covered": true, "locking": true, "picked": true, "answered": true,
	"refused": true, "abandoned": true,
}
