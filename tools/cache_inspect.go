package main

import (
	"chat-flex/translator"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"
)

// Lists the translations cached in a badger directory:
//
//	go run ./tools -db ./data/translations
func main() {
	dbPath := flag.String("db", "", "Path to the translation cache")
	limit := flag.Int("limit", 100, "Maximum number of entries to print")
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("-db is required")
	}

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Source", "Target", "Hash", "Expires", "Translation"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	count := 0
	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(translator.CachePrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix) && count < *limit; it.Next() {
			item := it.Item()
			// tr:{source}:{target}:{hash}
			parts := strings.SplitN(strings.TrimPrefix(string(item.Key()), translator.CachePrefix), ":", 3)
			if len(parts) != 3 {
				fmt.Printf("Skipping malformed key %s\n", item.Key())
				continue
			}

			expires := "never"
			if at := item.ExpiresAt(); at > 0 {
				expires = time.Unix(int64(at), 0).Format(time.DateTime)
			}

			hash := parts[2]
			if len(hash) > 8 {
				hash = hash[:8]
			}

			err := item.Value(func(v []byte) error {
				table.Append([]string{parts[0], parts[1], hash, expires, string(v)})
				return nil
			})
			if err != nil {
				return err
			}
			count++
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	table.Render()
	fmt.Printf("%d entries\n", count)
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)
	return badger.Open(opts)
}
