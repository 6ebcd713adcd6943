package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"terramap/internal/render"
	"terramap/internal/store"
	"terramap/internal/terrain"
)

const defaultDSN = "postgres://localhost/terramap?sslmode=disable"

func main() {
	defaults := terrain.DefaultConfig()

	dim := flag.Int("dim", defaults.Dim, "map dimension in cells")
	seed := flag.Int64("seed", defaults.Seed, "world seed")
	backend := flag.String("backend", defaults.Backend, "heightmap backend (diamond or perlin)")
	pngPath := flag.String("png", "", "write a PNG overview to this path")
	scale := flag.Int("scale", 4, "pixel scale for the PNG overview")
	saveName := flag.String("save", "", "persist the generated map under this name")
	loadName := flag.String("load", "", "load a saved map instead of generating")
	list := flag.Bool("list", false, "list saved maps and exit")
	storeKind := flag.String("store", "dir", "map store backend (dir or postgres)")
	dirPath := flag.String("dir", "maps", "directory for the dir store")
	dsn := flag.String("dsn", defaultDSN, "connection string for the postgres store")
	verify := flag.Bool("verify", false, "regenerate and compare fingerprints")
	timing := flag.Bool("timing", false, "print per-stage generation times")

	params := map[string]string{}
	flag.Func("set", "override a generator parameter (key=value, repeatable)", func(s string) error {
		key, value, ok := strings.Cut(s, "=")
		if !ok {
			return fmt.Errorf("expected key=value, got %q", s)
		}
		params[key] = value
		return nil
	})
	flag.Parse()

	if *list {
		st := mustOpenStore(*storeKind, *dirPath, *dsn)
		defer st.Close()
		names, err := st.List()
		if err != nil {
			log.Fatalf("list maps: %v", err)
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return
	}

	if *loadName != "" {
		st := mustOpenStore(*storeKind, *dirPath, *dsn)
		defer st.Close()
		m, err := st.Load(*loadName)
		if err != nil {
			log.Fatalf("load map: %v", err)
		}
		for _, w := range m.Warnings {
			log.Printf("warning: %s", w)
		}
		fmt.Printf("%s: dim=%d seed=%d backend=%s rivers=%d cities=%d fingerprint=%s\n",
			m.Name, m.Config.Dim, m.Config.Seed, m.Config.Backend, len(m.Rivers), len(m.Cities), m.Fingerprint)
		if *verify {
			if err := m.Verify(); err != nil {
				log.Fatalf("verify %q: %v", m.Name, err)
			}
			fmt.Println("determinism verified")
		}
		if *pngPath != "" {
			world, err := terrain.GenerateWithConfig(m.Config)
			if err != nil {
				log.Fatalf("rebuild %q: %v", m.Name, err)
			}
			if err := writePNG(world, *pngPath, *scale); err != nil {
				log.Fatalf("write png: %v", err)
			}
			fmt.Printf("wrote %s\n", *pngPath)
		}
		return
	}

	params["dim"] = strconv.Itoa(*dim)
	params["seed"] = strconv.FormatInt(*seed, 10)
	params["backend"] = *backend
	cfg := terrain.FromMap(params)

	var world *terrain.Terrain
	var err error
	if *timing {
		world, err = terrain.GenerateObserved(cfg, func(stage string, d time.Duration) {
			fmt.Printf("%-9s %s\n", stage, d.Round(time.Microsecond))
		})
	} else {
		world, err = terrain.GenerateWithConfig(cfg)
	}
	if err != nil {
		log.Fatalf("generate: %v", err)
	}

	for _, w := range world.Warnings() {
		log.Printf("warning: %s", w)
	}
	fmt.Printf("%dx%d map: seed=%d backend=%s rivers=%d cities=%d fingerprint=%016x\n",
		world.Dim(), world.Dim(), world.Seed(), cfg.Backend, len(world.Rivers()), len(world.Cities()), world.Fingerprint())

	if *verify {
		if err := world.Verify(); err != nil {
			log.Fatalf("verify: %v", err)
		}
		fmt.Println("determinism verified")
	}

	if *pngPath != "" {
		if err := writePNG(world, *pngPath, *scale); err != nil {
			log.Fatalf("write png: %v", err)
		}
		fmt.Printf("wrote %s\n", *pngPath)
	}

	if *saveName != "" {
		st := mustOpenStore(*storeKind, *dirPath, *dsn)
		defer st.Close()
		if err := st.Save(store.Snapshot(world, *saveName)); err != nil {
			log.Fatalf("save map: %v", err)
		}
		fmt.Printf("saved %s\n", *saveName)
	}
}

func mustOpenStore(kind, dir, dsn string) store.Store {
	st, err := openStore(kind, dir, dsn)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	return st
}

func openStore(kind, dir, dsn string) (store.Store, error) {
	switch kind {
	case "dir":
		return store.NewDirStore(dir)
	case "postgres":
		return store.NewPostgresStore(dsn)
	default:
		return nil, fmt.Errorf("unknown store %q (want dir or postgres)", kind)
	}
}

func writePNG(world *terrain.Terrain, path string, scale int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.WritePNG(f, world, scale); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
