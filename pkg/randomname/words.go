package randomname

var words = map[WordType][]string{
	Adjective: {
		"brave", "calm", "eager", "fancy", "gentle", "happy", "jolly", "kind",
		"lively", "nice", "proud", "silly", "witty", "zealous", "mighty", "swift",
		"sharp", "bold", "daring", "bright", "dynamic", "vibrant", "radiant", "honest",
		"steadfast", "spirited", "graceful", "focused", "robust", "agile", "ancient",
		"brilliant", "charming", "cheerful", "clever", "cosmic", "crisp", "curious",
		"elegant", "epic", "fearless", "fierce", "friendly", "frosty", "golden",
		"humble", "luminous", "majestic", "mystical", "noble", "peaceful", "playful",
		"quick", "quirky", "serene", "sleek", "stellar", "sunny", "tranquil",
		"valiant", "vivid", "warm", "wise", "zesty", "zippy",
	},
	Noun: {
		"squirrel", "tiger", "eagle", "dolphin", "panther", "lion", "panda", "koala",
		"whale", "shark", "wolf", "falcon", "otter", "rabbit", "bear", "fox", "hedgehog",
		"owl", "leopard", "cheetah", "zebra", "giraffe", "coyote", "raccoon", "badger",
		"moose", "gazelle", "jaguar", "bison", "beaver", "alpaca", "beetle", "bobcat",
		"camel", "canary", "condor", "crane", "crow", "deer", "duck", "elk", "ferret",
		"finch", "gecko", "heron", "ibis", "kiwi", "lemur", "llama", "lynx", "magpie",
		"narwhal", "newt", "octopus", "orca", "osprey", "parrot", "pelican", "penguin",
		"puma", "quail", "raven", "robin", "salmon", "seal", "sparrow", "swan",
		"tapir", "toucan", "walrus", "wombat", "yak",
	},
	Color: {
		"amber", "azure", "coral", "crimson", "cyan", "emerald", "indigo", "ivory",
		"jade", "lilac", "magenta", "ochre", "olive", "pearl", "plum", "ruby",
		"saffron", "scarlet", "silver", "teal", "umber", "violet",
	},
}
