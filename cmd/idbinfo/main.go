// Command idbinfo prints a summary of a disassembler database file: its
// section directory, segment table, and name count.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/laenix/idbgo/idb"
	"github.com/laenix/idbgo/internal/logz"
)

func main() {
	logger, _ := zap.NewDevelopment()
	logz.SetLogger(logger)
	defer logger.Sync()

	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <database file>\n", os.Args[0])
		os.Exit(2)
	}

	f, err := idb.Open(os.Args[1], idb.Options{})
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}

	fmt.Printf("version: %d\n", f.Header.Version)

	sectionNames := [...]string{"id0", "id1", "nam", "seg", "til", "id2"}
	for i, off := range f.Header.Offsets {
		fmt.Printf("section %s: offset %#x\n", sectionNames[i], off)
	}

	if f.ID1 != nil {
		fmt.Printf("segments: %d\n", len(f.ID1.Segments))
		for i, seg := range f.ID1.Segments {
			fmt.Printf("  [%d] %#x..%#x\n", i, seg.Bounds.Start, seg.Bounds.End)
		}
	} else {
		fmt.Println("segments: (no id1 section)")
	}

	if f.Nam != nil {
		fmt.Printf("named addresses: %d\n", f.Nam.NameCount)
	} else {
		fmt.Println("named addresses: (no nam section)")
	}

	if f.ID0 != nil {
		fmt.Printf("id0: page_size=%d page_count=%d record_count=%d root_page=%d\n",
			f.ID0.PageSize, f.ID0.PageCount, f.ID0.RecordCount, f.ID0.RootPage)
	} else {
		fmt.Println("id0: (not present)")
	}
}
