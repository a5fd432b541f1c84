/*
Package iconmaker turns a source image into the full set of
platform-mandated app icon assets: an iOS AppIcon.appiconset with its
Contents.json manifest and Android density-bucketed launcher mipmaps,
including layered adaptive icons.

The package provides a command line interface; to check the supported
commands type:

	$ ino-icon-maker --help

In case you wish to integrate the API in a self constructed environment
here is a simple example:

	package main

	import (
		"fmt"

		iconmaker "github.com/narek589/ino-icon-maker-sub001"
		"github.com/narek589/ino-icon-maker-sub001/layer"
	)

	func main() {
		deps := iconmaker.DefaultDeps()
		gen, _ := iconmaker.NewGenerator(iconmaker.IOS, deps)

		res, err := iconmaker.Generate(gen, deps, &iconmaker.Options{
			Input:     "icon.png",
			OutputDir: "out",
			Padding:   layer.DefaultPadding(),
		})
		if err != nil {
			fmt.Printf("Error generating the icons: %s", err.Error())
			return
		}
		fmt.Printf("Generated %d files in %s\n", len(res.Files), res.OutputDir)
	}
*/
package iconmaker
