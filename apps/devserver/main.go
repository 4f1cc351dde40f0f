// Command devserver runs the fake backend with demo data for local
// development of the portal client.
package main

import (
	"flag"

	"github.com/scut1er/studentportal/services/fakeapi"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	db := fakeapi.OpenDB()
	fakeapi.SeedDemo(db)

	app := fakeapi.NewServer(&fakeapi.Options{
		Address: *addr,
		DB:      db,
	})
	app.Start()
}
