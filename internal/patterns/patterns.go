// Package patterns registers well-known Life patterns with the core registry.
// Patterns are stored in the same "x,y" per line format read by life.Parse.
package patterns

import (
	"strings"

	"mad-life/internal/core"
	"mad-life/pkg/life"
)

var builtin = map[string]string{
	"block": `0,0
1,0
0,1
1,1`,
	"blinker": `0,-1
0,0
0,1`,
	"glider": `1,0
2,1
0,2
1,2
2,2`,
	"lwss": `1,0
4,0
0,1
0,2
4,2
0,3
1,3
2,3
3,3`,
	"r-pentomino": `1,0
2,0
0,1
1,1
1,2`,
	"acorn": `1,0
3,1
0,2
1,2
4,2
5,2
6,2`,
	"gosper-gun": `24,0
22,1
24,1
12,2
13,2
20,2
21,2
34,2
35,2
11,3
15,3
20,3
21,3
34,3
35,3
0,4
1,4
10,4
16,4
20,4
21,4
0,5
1,5
10,5
14,5
16,5
17,5
22,5
24,5
10,6
16,6
24,6
11,7
15,7
12,8
13,8`,
}

// MustParse parses a pattern literal and panics on malformed input.
func MustParse(src string) *life.Grid {
	g, err := life.Parse(strings.NewReader(src))
	if err != nil {
		panic("patterns: " + err.Error())
	}
	return g
}

func init() {
	for name, src := range builtin {
		core.Register(name, func() *life.Grid { return MustParse(src) })
	}
}
