package arith

// fallbackSet holds curated operand pairs for one difficulty level, split by
// whether they exhibit the constrained property (carry, borrow, regroup).
type fallbackSet struct {
	with    [][2]int
	without [][2]int
}

// additionFallbacks are known-valid pairs for the carry/no-carry search at
// levels 1-3.
var additionFallbacks = map[int]fallbackSet{
	1: {
		with:    [][2]int{{7, 8}, {9, 6}, {5, 7}, {8, 4}},
		without: [][2]int{{2, 3}, {4, 5}, {6, 2}, {3, 1}},
	},
	2: {
		with:    [][2]int{{38, 7}, {56, 8}, {49, 3}, {27, 5}},
		without: [][2]int{{21, 7}, {43, 5}, {62, 3}, {34, 4}},
	},
	3: {
		with:    [][2]int{{47, 38}, {56, 67}, {29, 45}, {78, 34}},
		without: [][2]int{{21, 34}, {42, 51}, {63, 25}, {14, 73}},
	},
}

// subtractionFallbacks are known-valid pairs for the borrow/no-borrow search
// at levels 1-3. Minuend first; minuend >= subtrahend throughout.
var subtractionFallbacks = map[int]fallbackSet{
	1: {
		with:    [][2]int{{12, 5}, {14, 8}, {11, 3}, {16, 9}},
		without: [][2]int{{9, 4}, {8, 2}, {7, 5}, {17, 6}},
	},
	2: {
		with:    [][2]int{{42, 7}, {53, 8}, {61, 4}, {34, 9}},
		without: [][2]int{{48, 5}, {79, 6}, {57, 3}, {95, 4}},
	},
	3: {
		with:    [][2]int{{52, 38}, {73, 45}, {81, 29}, {64, 47}},
		without: [][2]int{{87, 43}, {96, 52}, {78, 36}, {59, 17}},
	},
}

// multiplicationFallbacks are known-valid pairs for the regroup search.
// Level 2 pairs avoid regrouping; level 3 pairs require it.
var multiplicationFallbacks = map[int][][2]int{
	2: {{21, 4}, {32, 3}, {43, 2}, {12, 4}, {11, 8}},
	3: {{27, 4}, {38, 6}, {46, 7}, {59, 3}, {75, 8}},
}
