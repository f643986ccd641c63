package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/ashpect/microcache/pkg/cache"
	"github.com/ashpect/microcache/pkg/config"
	"github.com/ashpect/microcache/pkg/logging"
	"github.com/ashpect/microcache/pkg/memoize"
)

func main() {
	configFile := flag.String("config", "config.toml", "location of config file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	opts := []logging.InitOption{}
	if !cfg.Logging.Console {
		opts = append(opts, logging.WithStream(nil))
	}
	if cfg.Logging.File != "" {
		opts = append(opts, logging.WithFile(cfg.Logging.File))
	}
	if err := logging.Init(opts...); err != nil {
		log.Fatalf("logging error: %v", err)
	}
	defer logging.Close()

	c := cache.New(
		cache.WithEnabled(cfg.Cache.Enabled),
		cache.WithDebug(cfg.Cache.Debug),
	)
	ttl := time.Duration(cfg.Cache.DefaultTTL) * time.Second

	// A deliberately slow function to show memoization paying off.
	slowSquare := func(n int) (int, error) {
		time.Sleep(200 * time.Millisecond)
		return n * n, nil
	}
	square := memoize.Wrap1(c, slowSquare,
		memoize.WithName("slowSquare"),
		memoize.WithTTL(ttl),
	)

	for _, n := range []int{7, 7, 8, 7} {
		start := time.Now()
		v, err := square(n)
		if err != nil {
			log.Fatalf("square error: %v", err)
		}
		fmt.Printf("square(%d) = %d (%s)\n", n, v, time.Since(start).Round(time.Millisecond))
	}

	c.Upsert("greeting/en", "hello", ttl)
	c.Upsert("greeting/fr", "bonjour", ttl)
	c.Upsert("farewell/en", "bye", ttl)
	for _, item := range c.Items("greeting") {
		fmt.Printf("%s = %v\n", item.Key, item.Value)
	}
}
