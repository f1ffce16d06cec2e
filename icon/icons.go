package icon

// Icon is a stable identifier for a UI symbol in the global registry.
type Icon int

const (
	Fail Icon = iota + 1
	Success
	Progress
	Search
	Live
	Offline
	Record
	Lock
)

// icons maps every identifier to its per-variant representations.
var icons = map[Icon]*iconDef{
	Fail: {
		emoji:   "💀",
		nerd:    "",
		plain:   "[X]",
		kaomoji: "(╥﹏╥)",
		squares: "▨",
	},
	Success: {
		emoji:   "✅",
		nerd:    "",
		plain:   "[OK]",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "▣",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "...",
		kaomoji: "(￣ー￣)ゞ",
		squares: "▩",
	},
	Search: {
		emoji:   "🔍",
		nerd:    "",
		plain:   "[?]",
		kaomoji: "(・・ ) ?",
		squares: "▢",
	},
	Live: {
		emoji:   "🔴",
		nerd:    "",
		plain:   "[LIVE]",
		kaomoji: "(☆▽☆)",
		squares: "■",
	},
	Offline: {
		emoji:   "💤",
		nerd:    "",
		plain:   "[OFF]",
		kaomoji: "(－ω－) zzZ",
		squares: "□",
	},
	Record: {
		emoji:   "⏺️",
		nerd:    "",
		plain:   "[REC]",
		kaomoji: "(•̀ᴗ•́)و",
		squares: "◉",
	},
	Lock: {
		emoji:   "🔑",
		nerd:    "",
		plain:   "[KEY]",
		kaomoji: "(－‸ლ)",
		squares: "▦",
	},
}
