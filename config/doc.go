// Package config loads effect pipelines from YAML or TOML documents.
//
// A document has an optional engine table and a list of effects. Each
// effect entry names exactly one kind:
//
//	engine:
//	  accelerate: true
//	  downscale: 2
//	effects:
//	  - grey: {coef1: 0.5, coef2: 0.5}
//	  - blur: {radius: 6}
//	  - rounded_rect: {x: 0, y: 0, width: 320, height: 200, radius: 24}
//
// The TOML form of the same document uses an array of tables:
//
//	[[effects]]
//	[effects.blur]
//	radius = 6
//
// Unknown fields are rejected.
package config
