package bytewords

// words is the canonical 256-word table, indexed by byte value. Every
// word is four letters; its first and last letters (used by the
// "minimal" style) are unique across the table.
var words = [256]string{
	"able", "acid", "also", "apex", "aqua", "arch", "atom", "aunt", "away", "axis",
	"back", "bald", "barn", "belt", "beta", "bias", "blue", "body", "brag", "brew",
	"bulb", "buzz", "calm", "cash", "cats", "chef", "city", "claw", "code", "cola",
	"cook", "cost", "crux", "curl", "cusp", "cyan", "dark", "data", "days", "deli",
	"dice", "diet", "door", "down", "draw", "drop", "drum", "dull", "duty", "each",
	"easy", "echo", "edge", "epic", "even", "exam", "exit", "eyes", "fact", "fair",
	"fern", "figs", "film", "fish", "fizz", "flap", "flew", "flux", "foxy", "free",
	"frog", "fuel", "fund", "glen", "gala", "game", "gear", "gems", "gift", "glow",
	"girl", "good", "grim", "gray", "guru", "gyro", "gush", "half", "hard", "hang",
	"harm", "hawk", "heat", "help", "high", "hill", "holy", "hope", "horn", "huts",
	"iced", "idea", "idle", "iris", "iron", "item", "jade", "jazz", "jinx", "join",
	"jolt", "jowl", "judo", "jugs", "jump", "junk", "jury", "keep", "keno", "kept",
	"keys", "kick", "kiln", "king", "kite", "kiwi", "knob", "lamb", "lava", "leaf",
	"legs", "liar", "limp", "list", "logo", "lion", "luau", "loud", "love", "luck",
	"lung", "lush", "main", "many", "math", "maze", "memo", "menu", "meow", "mild",
	"mint", "miss", "monk", "nail", "navy", "need", "news", "next", "noon", "note",
	"numb", "obey", "oboe", "omit", "onyx", "open", "oval", "owls", "paid", "part",
	"peck", "play", "plus", "poem", "pool", "pose", "puff", "puma", "pump", "purr",
	"quad", "quip", "quiz", "race", "redo", "ramp", "real", "rich", "road", "ruby",
	"rock", "runs", "roof", "ruin", "rust", "safe", "saga", "silk", "skew", "sand",
	"scar", "sets", "slot", "soap", "surf", "swan", "solo", "song", "stub", "tent",
	"tied", "talc", "tiny", "tank", "taxi", "toys", "trip", "time", "toil", "tomb",
	"tour", "tuna", "twin", "user", "ugly", "very", "undo", "unit", "urge", "view",
	"visa", "vast", "veto", "vial", "vibe", "warm", "void", "wave", "vows", "webs",
	"what", "when", "whiz", "wall", "wand", "yank", "wasp", "yell", "waxy", "wolf",
	"work", "yawn", "yoga", "zone", "zoom", "zero",
}
