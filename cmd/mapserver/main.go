package main

import (
	"log"
	"net/http"
	"os"

	"terramap/internal/server"
	"terramap/internal/store"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	st, err := openStore()
	if err != nil {
		log.Fatalf("Failed to initialize map store: %v", err)
	}
	defer st.Close()

	srv := server.New(st)

	log.Printf("Map server listening on :%s", port)
	log.Fatal(http.ListenAndServe(":"+port, srv.Handler()))
}

func openStore() (store.Store, error) {
	switch os.Getenv("STORE_TYPE") {
	case "postgres":
		dsn := os.Getenv("DATABASE_URL")
		if dsn == "" {
			dsn = "postgres://localhost/terramap?sslmode=disable"
		}
		return store.NewPostgresStore(dsn)
	default:
		dir := os.Getenv("MAPS_DIR")
		if dir == "" {
			dir = "maps"
		}
		return store.NewDirStore(dir)
	}
}
