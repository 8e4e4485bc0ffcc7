// Package config reads optional greet defaults from a CUE file.
//
//	configVersion: "1"
//	name:      "Ada"
//	languages: ["english", "french"]
//	party:     true
//	typewriter: {enabled: true, delayMs: 30}
//	transform: inline: "return string.upper(text)"
package config
