package wordlist

var builtin = []string{
	"SECRET", "CIPHER", "CODE", "KEY", "PUZZLE", "MYSTERY", "HIDDEN", "ENIGMA",
	"SPY", "AGENT", "DRAGON", "WIZARD", "CASTLE", "KNIGHT", "PIRATE", "TREASURE",
	"ROCKET", "PLANET", "GALAXY", "ROBOT", "MONKEY", "TIGER", "PANDA", "ZEBRA",
	"DOLPHIN", "PENGUIN", "RAINBOW", "THUNDER", "LIGHTNING", "SUNSHINE", "MOONLIGHT", "SHADOW",
	"PHANTOM", "NINJA", "SAMURAI", "PHOENIX", "UNICORN", "JUNGLE", "FOREST", "OCEAN",
	"ISLAND", "VOLCANO", "DIAMOND", "EMERALD", "GOLDEN", "SILVER", "COMPUTER", "KEYBOARD",
	"PASSWORD", "LOCK", "BRIDGE", "GARDEN", "SCHOOL", "FRIEND", "FAMILY", "PIZZA",
	"COOKIE", "CHOCOLATE", "BANANA", "APPLE", "ORANGE", "SOCCER", "FOOTBALL", "BASKETBALL",
	"DETECTIVE", "SHERLOCK", "WATSON", "CAESAR", "VIGENERE", "ATBASH", "MORSE", "PIGPEN",
	"ALPHABET", "ZOOKEEPER", "BUTTERFLY", "SPACESHIP", "ASTRONAUT", "EXPLORER", "ADVENTURE", "MAGIC",
	"SECRET CODE", "TOP SECRET", "OPEN SESAME", "KIDS CODE CLUB", "HAPPY BIRTHDAY", "ICE CREAM",
	"TREASURE MAP", "SECRET AGENT", "HELLO WORLD", "SUPER HERO",
}

var offline = []string{
	"CRYPTO", "MATRIX", "QUANTUM", "VECTOR", "BINARY", "PYTHON", "MARBLE", "CANDLE",
	"LANTERN", "COMPASS", "ANCHOR", "HARBOR", "MEADOW", "MOUNTAIN", "RIVER", "VALLEY",
	"DESERT", "GLACIER", "COMET", "METEOR", "NEBULA", "ORBIT", "SATELLITE", "TELESCOPE",
	"MICROSCOPE", "LIBRARY", "JOURNAL", "NOTEBOOK", "PENCIL", "ERASER", "CRAYON", "PAINTER",
	"MUSIC", "GUITAR", "PIANO", "VIOLIN", "TRUMPET", "DRUMMER", "WHISPER", "RIDDLE",
}

// Builtin returns the keywords that are always tried.
func Builtin() []string {
	return append([]string(nil), builtin...)
}

// Offline returns the keywords used when the remote list is unavailable.
func Offline() []string {
	return append([]string(nil), offline...)
}
