package main

import (
	. "github.com/saylorsolutions/modmake"
)

const (
	streamarmorVersion = "0.1.0"
	armorgenVersion    = "0.1.0"
)

func main() {
	b := NewBuild()
	b.Generate().DependsOnRunner("tidy", "", Go().ModTidy())

	for _, app := range []*AppBuild{
		newApp("streamarmor", "cmd/streamarmor", streamarmorVersion),
		newApp("armorgen", "cmd/armorgen", armorgenVersion),
	} {
		b.ImportApp(app)
	}

	b.Execute()
}

func newApp(name, path, version string) *AppBuild {
	app := NewAppBuild(name, path, version)
	app.Build(func(gb *GoBuild) {
		gb.
			StripDebugSymbols().
			SetVariable("main", "version", version).
			CgoEnabled(false)
	})
	app.Variant("windows", "amd64")
	app.Variant("linux", "amd64")
	app.Variant("linux", "arm64")
	app.Variant("darwin", "amd64")
	app.Variant("darwin", "arm64")
	return app
}
