package levels

// Demo is the built-in level used when nothing else is loaded.
var Demo = []string{
	".....................................................",
	".....................................................",
	"..............g.g.g..................................",
	"............#######..................................",
	"...........................<......................>..",
	"......................###########..............#####.",
	"........s.s.....................................g.g..",
	".P.1...######5....t..........t......d.......^^^..6...",
	"##########..##########~~~~~##########################",
	"##########..##########~~~~~##########################",
	"##########~~##########~~~~~##########################",
}
