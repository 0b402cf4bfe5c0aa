package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"sparsebitmap"
	"sparsebitmap/internal/bench"
)

func main() {
	bitmaps := map[string]*sparsebitmap.Bitmap{}

	fmt.Println("sbm - sparsebitmap demo")
	fmt.Println("commands: new <name> | set <name> <p1,p2,...> | print <name> | card <name>")
	fmt.Println("          and/or/xor <dst> <a> <b> | save <name> <file> | load <name> <file>")
	fmt.Println("          list | exit")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := strings.ToLower(parts[0])

		switch cmd {
		case "new":
			if len(parts) != 2 {
				fmt.Println("usage: new <name>")
				continue
			}
			bitmaps[parts[1]] = sparsebitmap.New()
			fmt.Println("ok")
		case "set":
			if len(parts) != 3 {
				fmt.Println("usage: set <name> <p1,p2,...>")
				continue
			}
			positions, err := parsePositions(parts[2])
			if err != nil {
				fmt.Printf("set error: %v\n", err)
				continue
			}
			b, err := sparsebitmap.BitmapOf(positions...)
			if err != nil {
				fmt.Printf("set error: %v\n", err)
				continue
			}
			bitmaps[parts[1]] = b
			fmt.Println("ok")
		case "print":
			if len(parts) != 2 {
				fmt.Println("usage: print <name>")
				continue
			}
			b, ok := bitmaps[parts[1]]
			if !ok {
				fmt.Println("no such bitmap")
				continue
			}
			fmt.Println(b.String())
		case "card":
			if len(parts) != 2 {
				fmt.Println("usage: card <name>")
				continue
			}
			b, ok := bitmaps[parts[1]]
			if !ok {
				fmt.Println("no such bitmap")
				continue
			}
			fmt.Println(b.Cardinality())
		case "and", "or", "xor":
			if len(parts) != 4 {
				fmt.Printf("usage: %s <dst> <a> <b>\n", cmd)
				continue
			}
			a, ok := bitmaps[parts[2]]
			if !ok {
				fmt.Println("no such bitmap:", parts[2])
				continue
			}
			b, ok := bitmaps[parts[3]]
			if !ok {
				fmt.Println("no such bitmap:", parts[3])
				continue
			}
			start := time.Now()
			var result *sparsebitmap.Bitmap
			switch cmd {
			case "and":
				result = a.And(b)
			case "or":
				result = a.Or(b)
			case "xor":
				result = a.Xor(b)
			}
			bench.LogOp(start, fmt.Sprintf("%s(%s, %s)", cmd, parts[2], parts[3]), result.Cardinality())
			bitmaps[parts[1]] = result
			fmt.Println("ok")
		case "save":
			if len(parts) != 3 {
				fmt.Println("usage: save <name> <file>")
				continue
			}
			b, ok := bitmaps[parts[1]]
			if !ok {
				fmt.Println("no such bitmap")
				continue
			}
			if err := saveToFile(b, parts[2]); err != nil {
				fmt.Printf("save error: %v\n", err)
				continue
			}
			fmt.Println("ok")
		case "load":
			if len(parts) != 3 {
				fmt.Println("usage: load <name> <file>")
				continue
			}
			b, err := loadFromFile(parts[2])
			if err != nil {
				fmt.Printf("load error: %v\n", err)
				continue
			}
			bitmaps[parts[1]] = b
			fmt.Println("ok")
		case "list":
			for name := range bitmaps {
				fmt.Println(name)
			}
		case "exit", "quit":
			return
		default:
			fmt.Println("unknown command")
		}
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "input error: %v\n", err)
	}
}

func parsePositions(s string) ([]int32, error) {
	fields := strings.Split(s, ",")
	positions := make([]int32, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("parse position %q: %w", f, err)
		}
		positions = append(positions, int32(v))
	}
	return positions, nil
}

func saveToFile(b *sparsebitmap.Bitmap, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = b.Serialize(f)
	return err
}

func loadFromFile(path string) (*sparsebitmap.Bitmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return sparsebitmap.Deserialize(f)
}
