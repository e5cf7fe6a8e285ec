package champions

// pool is the full champion roster in display order.
var pool = []string{
	"Aatrox", "Ahri", "Akali", "Akshan", "Alistar", "Ambessa", "Amumu", "Anivia",
	"Annie", "Aphelios", "Ashe", "Aurelion Sol", "Aurora", "Azir", "Bard", "Bel'Veth",
	"Blitzcrank", "Brand", "Braum", "Briar", "Caitlyn", "Camille", "Cassiopeia", "Cho'Gath",
	"Corki", "Darius", "Diana", "Dr. Mundo", "Draven", "Ekko", "Elise", "Evelynn",
	"Ezreal", "Fiddlesticks", "Fiora", "Fizz", "Galio", "Gangplank", "Garen", "Gnar",
	"Gragas", "Graves", "Gwen", "Hecarim", "Heimerdinger", "Hwei", "Illaoi", "Irelia",
	"Ivern", "Janna", "Jarvan IV", "Jax", "Jayce", "Jhin", "Jinx", "Kai'Sa",
	"Kalista", "Karma", "Karthus", "Kassadin", "Katarina", "Kayle", "Kayn", "Kennen",
	"Kha'Zix", "Kindred", "Kled", "Kog'Maw", "K'Sante", "LeBlanc", "Lee Sin", "Leona",
	"Lillia", "Lissandra", "Lucian", "Lulu", "Lux", "Malphite", "Malzahar", "Maokai",
	"Master Yi", "Mel", "Milio", "Miss Fortune", "Mordekaiser", "Morgana", "Naafiri", "Nami",
	"Nasus", "Nautilus", "Neeko", "Nidalee", "Nilah", "Nocturne", "Nunu & Willump", "Olaf",
	"Orianna", "Ornn", "Pantheon", "Poppy", "Pyke", "Qiyana", "Quinn", "Rakan",
	"Rammus", "Rek'Sai", "Rell", "Renata Glasc", "Renekton", "Rengar", "Riven", "Rumble",
	"Ryze", "Samira", "Sejuani", "Senna", "Seraphine", "Sett", "Shaco", "Shen",
	"Shyvana", "Singed", "Sion", "Sivir", "Skarner", "Smolder", "Sona", "Soraka",
	"Swain", "Sylas", "Syndra", "Tahm Kench", "Taliyah", "Talon", "Taric", "Teemo",
	"Thresh", "Tristana", "Trundle", "Tryndamere", "Twisted Fate", "Twitch", "Udyr", "Urgot",
	"Varus", "Vayne", "Veigar", "Vel'Koz", "Vex", "Vi", "Viego", "Viktor",
	"Vladimir", "Volibear", "Warwick", "Wukong", "Xayah", "Xerath", "Xin Zhao", "Yasuo",
	"Yone", "Yorick", "Yuumi", "Zac", "Zed", "Zeri", "Ziggs", "Zilean",
	"Zoe", "Zyra",
}

// unkillables are removed from the eligible pool when the exclude filter is set.
var unkillables = []string{
	"Sion", "Dr. Mundo", "Cho'Gath", "Tahm Kench", "Nautilus", "Ornn", "Zac", "Rammus",
}

var unkillableSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(unkillables))
	for _, name := range unkillables {
		m[name] = struct{}{}
	}
	return m
}()

// Pool returns a copy of the full champion roster.
func Pool() []string {
	out := make([]string, len(pool))
	copy(out, pool)
	return out
}

// Unkillables returns a copy of the champions dropped by the exclude filter.
func Unkillables() []string {
	out := make([]string, len(unkillables))
	copy(out, unkillables)
	return out
}

// IsUnkillable reports whether name is dropped by the exclude filter.
func IsUnkillable(name string) bool {
	_, ok := unkillableSet[name]
	return ok
}

// Eligible returns the pool a draw is made from, in roster order.
func Eligible(excludeUnkillables bool) []string {
	if !excludeUnkillables {
		return Pool()
	}
	out := make([]string, 0, len(pool)-len(unkillables))
	for _, name := range pool {
		if !IsUnkillable(name) {
			out = append(out, name)
		}
	}
	return out
}
