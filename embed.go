package homesite

import "embed"

// EmbeddedAssets holds the default stylesheet served at /assets/styles.css.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
