package timely

// Built-in glyph outlines. Every glyph is 13 points: a move anchor and four
// cubic segments. Points occupy the same segment roles across glyphs so that
// a point-for-point blend reads as a change of shape. Glyphs with fewer
// natural strokes park their surplus segments on their final endpoint.
var defaultGlyphs = map[GlyphID]GlyphPath{
	GlyphBlank: {
		{0.5, 0.5},
		{0.5, 0.5}, {0.5, 0.5}, {0.5, 0.5},
		{0.5, 0.5}, {0.5, 0.5}, {0.5, 0.5},
		{0.5, 0.5}, {0.5, 0.5}, {0.5, 0.5},
		{0.5, 0.5}, {0.5, 0.5}, {0.5, 0.5},
	},
	Glyph0: {
		{0.5, 0.1},
		{0.638, 0.1}, {0.75, 0.279}, {0.75, 0.5},
		{0.75, 0.721}, {0.638, 0.9}, {0.5, 0.9},
		{0.362, 0.9}, {0.25, 0.721}, {0.25, 0.5},
		{0.25, 0.279}, {0.362, 0.1}, {0.5, 0.1},
	},
	Glyph1: {
		{0.35, 0.25},
		{0.42, 0.2}, {0.5, 0.15}, {0.55, 0.1},
		{0.55, 0.37}, {0.55, 0.63}, {0.55, 0.9},
		{0.55, 0.9}, {0.55, 0.9}, {0.55, 0.9},
		{0.55, 0.9}, {0.55, 0.9}, {0.55, 0.9},
	},
	Glyph2: {
		{0.27, 0.3},
		{0.3, 0.05}, {0.7, 0.05}, {0.72, 0.3},
		{0.74, 0.5}, {0.4, 0.72}, {0.25, 0.9},
		{0.42, 0.9}, {0.58, 0.9}, {0.75, 0.9},
		{0.75, 0.9}, {0.75, 0.9}, {0.75, 0.9},
	},
	Glyph3: {
		{0.27, 0.2},
		{0.35, 0.08}, {0.72, 0.06}, {0.72, 0.27},
		{0.72, 0.45}, {0.55, 0.48}, {0.45, 0.48},
		{0.78, 0.5}, {0.8, 0.9}, {0.5, 0.9},
		{0.38, 0.9}, {0.27, 0.86}, {0.25, 0.78},
	},
	Glyph4: {
		{0.62, 0.9},
		{0.62, 0.63}, {0.62, 0.37}, {0.62, 0.1},
		{0.49, 0.28}, {0.35, 0.47}, {0.22, 0.65},
		{0.41, 0.65}, {0.6, 0.65}, {0.78, 0.65},
		{0.78, 0.65}, {0.78, 0.65}, {0.78, 0.65},
	},
	Glyph5: {
		{0.72, 0.1},
		{0.59, 0.1}, {0.46, 0.1}, {0.33, 0.1},
		{0.31, 0.22}, {0.3, 0.33}, {0.28, 0.45},
		{0.5, 0.33}, {0.76, 0.4}, {0.75, 0.65},
		{0.74, 0.92}, {0.38, 0.98}, {0.25, 0.8},
	},
	Glyph6: {
		{0.68, 0.15},
		{0.45, 0.02}, {0.25, 0.25}, {0.25, 0.6},
		{0.25, 0.8}, {0.36, 0.9}, {0.5, 0.9},
		{0.66, 0.9}, {0.74, 0.78}, {0.74, 0.64},
		{0.74, 0.36}, {0.36, 0.36}, {0.27, 0.58},
	},
	Glyph7: {
		{0.25, 0.1},
		{0.42, 0.1}, {0.58, 0.1}, {0.75, 0.1},
		{0.62, 0.35}, {0.47, 0.62}, {0.4, 0.9},
		{0.4, 0.9}, {0.4, 0.9}, {0.4, 0.9},
		{0.4, 0.9}, {0.4, 0.9}, {0.4, 0.9},
	},
	Glyph8: {
		{0.5, 0.48},
		{0.75, 0.45}, {0.72, 0.1}, {0.5, 0.1},
		{0.28, 0.1}, {0.25, 0.45}, {0.5, 0.48},
		{0.8, 0.52}, {0.78, 0.9}, {0.5, 0.9},
		{0.22, 0.9}, {0.2, 0.52}, {0.5, 0.48},
	},
	Glyph9: {
		{0.74, 0.35},
		{0.7, 0.56}, {0.27, 0.58}, {0.26, 0.33},
		{0.26, 0.15}, {0.38, 0.1}, {0.5, 0.1},
		{0.66, 0.1}, {0.74, 0.2}, {0.74, 0.4},
		{0.74, 0.7}, {0.6, 0.88}, {0.32, 0.88},
	},
}
