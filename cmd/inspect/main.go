package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sparsebitmap"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <file.sbm|file.sbm.zst>\n", os.Args[0])
		os.Exit(1)
	}

	path := os.Args[1]
	var b *sparsebitmap.Bitmap
	var err error
	if strings.HasSuffix(strings.ToLower(path), ".zst") {
		b, err = openCompressed(path)
	} else {
		b, err = openPlain(path)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open %s: %v\n", path, err)
		os.Exit(1)
	}

	fmt.Printf("Inspecting %s: %s\n", filepath.Base(path), path)
	fmt.Println()
	fmt.Printf("Cardinality: %d\n", b.Cardinality())
	fmt.Printf("Size in bytes: %d\n", b.SizeInBytes())

	positions := b.ToArray()
	fmt.Printf("First positions: %v\n", head(positions, 10))
}

func openPlain(path string) (*sparsebitmap.Bitmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return sparsebitmap.Deserialize(f)
}

func openCompressed(path string) (*sparsebitmap.Bitmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return sparsebitmap.LoadCompressed(f)
}

func head(s []int32, n int) []int32 {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
