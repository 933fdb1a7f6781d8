package rules

// Cell states of the sand medium.
const (
	Empty  uint8 = 0
	Grain  uint8 = 1
	Solid  uint8 = 2
	Source uint8 = 3
)

// Sand returns the rule table for a granular sand medium. Table order
// matters: the paired drop must come before the single straight fall, which
// would otherwise match the same block and leave the right grain hanging.
func Sand() Table {
	return Table{
		// 1,1,0,0 -> 0,0,1,1  two grains drop together
		{
			In:     Pattern{Lit(Grain), Lit(Grain), Lit(Empty), Lit(Empty)},
			Out:    Template{Out(Empty), Out(Empty), Out(Grain), Out(Grain)},
			Mirror: true,
		},
		// 1,a,0,b -> 0,a,1,b  a grain falls straight down
		{
			In:     Pattern{Lit(Grain), Any(), Lit(Empty), Any()},
			Out:    Template{Out(Empty), Keep(), Out(Grain), Keep()},
			Mirror: true,
		},
		// 1,0,a,0 -> 0,0,a,1  a grain on a pile topples diagonally
		{
			In:     Pattern{Lit(Grain), Lit(Empty), Any(), Lit(Empty)},
			Out:    Template{Out(Empty), Out(Empty), Keep(), Out(Grain)},
			Mirror: true,
		},
		// 3,a,0,b -> 3,a,1,b  a source emits a grain below itself
		{
			In:     Pattern{Lit(Source), Any(), Lit(Empty), Any()},
			Out:    Template{Out(Source), Keep(), Out(Grain), Keep()},
			Mirror: true,
		},
	}
}
