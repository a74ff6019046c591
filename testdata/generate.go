//go:build ignore

// Generates the sample inputs used in the tabq usage examples.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	"github.com/parquet-go/parquet-go"
)

type City struct {
	Name       string `parquet:"Name"`
	City       string `parquet:"City"`
	Population int64  `parquet:"Population"`
}

const people = `Name,Age
Alice,30
Bob,25
Charlie,35
Diana,28
Eve,42
`

func main() {
	out := flag.String("out", ".", "output directory")
	flag.Parse()

	if err := os.WriteFile(filepath.Join(*out, "people.csv"), []byte(people), 0o644); err != nil {
		log.Fatal(err)
	}

	gz, err := os.Create(filepath.Join(*out, "people.csv.gz"))
	if err != nil {
		log.Fatal(err)
	}
	zw := gzip.NewWriter(gz)
	if _, err := zw.Write([]byte(people)); err != nil {
		log.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		log.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		log.Fatal(err)
	}

	cities := []City{
		{Name: "Alice", City: "NYC", Population: 8336817},
		{Name: "Bob", City: "LA", Population: 3979576},
		{Name: "Frank", City: "Chicago", Population: 2693976},
	}

	file, err := os.Create(filepath.Join(*out, "cities.parquet"))
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[City](file)
	if _, err := writer.Write(cities); err != nil {
		log.Fatal(err)
	}
	if err := writer.Close(); err != nil {
		log.Fatal(err)
	}

	log.Printf("Generated people.csv, people.csv.gz and cities.parquet in %s", *out)
}
