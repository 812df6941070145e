package main

import (
	"flag"
	"fmt"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"

	"github.com/atakhatri/UNO-sub000/network"
	"github.com/atakhatri/UNO-sub000/store"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()

	addr := flag.String("addr", ":9998", "websocket listen address")
	dsn := flag.String("dsn", "", "optional postgres dsn for the finished-game archive")
	flag.Parse()

	memory := store.NewMemory()
	if *dsn != "" {
		archive, err := store.OpenArchive(*dsn)
		if err != nil {
			log.Error(err)
			return
		}
		memory.SetArchive(archive)
	}

	server := network.NewWebsocketServer(*addr, memory)
	log.Error(server.Serve())
}
