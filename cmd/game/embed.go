package main

import "embed"

// gameFS holds the default configuration and the sprite assets. Asset
// paths in game.json are relative to its root.
//
//go:embed configs assets
var gameFS embed.FS
