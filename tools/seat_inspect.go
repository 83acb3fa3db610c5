package main

import (
	"flag"
	"fmt"
	"game-lab/repositories"
	"log"
	"os"
	"sort"
	"strconv"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/database"
	"github.com/olekukonko/tablewriter"
)

// Dumps the persisted seat bindings of a stopped server.
func main() {
	dbPath := flag.String("db", database.DefaultPath, "Path to badger DB")
	room := flag.String("room", "", "Only show this room")
	flag.Parse()

	db, err := badger.Open(badger.DefaultOptions(*dbPath).WithReadOnly(true).WithLoggingLevel(badger.ERROR))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	bindings, err := repositories.NewSeatBindingRepository(db).All()
	if err != nil {
		log.Fatal("Error while reading seat bindings: ", err)
	}
	sort.Slice(bindings, func(i, j int) bool {
		if bindings[i].RoomID != bindings[j].RoomID {
			return bindings[i].RoomID < bindings[j].RoomID
		}
		return bindings[i].Seat < bindings[j].Seat
	})

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Room", "Seat", "Session"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	count := 0
	for _, b := range bindings {
		if *room != "" && string(b.RoomID) != *room {
			continue
		}
		table.Append([]string{string(b.RoomID), strconv.Itoa(b.Seat), b.SessionID})
		count++
	}
	table.Render()
	fmt.Printf("\n%d binding(s)\n", count)
}
