// Command tmx2fusemap converts a Tiled TMX map into a Sprite Fusion JSON
// export.
//
// Usage:
//
//	tmx2fusemap [-o out.json] level1.tmx
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/automoto/fusemap"
	"github.com/automoto/fusemap/convert"
)

func main() {
	out := flag.String("o", "", "output path (default: input with a .json extension)")
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatal("usage: tmx2fusemap [-o out.json] map.tmx")
	}
	input := flag.Arg(0)

	dir, base := filepath.Split(input)
	if dir == "" {
		dir = "."
	}
	doc, err := convert.FromTMX(os.DirFS(dir), base)
	if err != nil {
		log.Fatal(err)
	}

	data, err := fusemap.Encode(doc)
	if err != nil {
		log.Fatal(err)
	}

	outPath := *out
	if outPath == "" {
		outPath = strings.TrimSuffix(input, filepath.Ext(input)) + ".json"
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s: %d layers, %d tiles", outPath, len(doc.Layers), doc.TileCount())
}
