package main

import (
	"fmt"
	"os"

	"github.com/go-logr/logr/funcr"

	"github.com/odysseythink/mcontainers/containers/maps/lrumap"
)

func main() {
	logger := funcr.New(func(prefix, args string) {
		fmt.Println(prefix, args)
	}, funcr.Options{Verbosity: 1})

	cache, err := lrumap.New[string, string](3,
		lrumap.WithLogger[string, string](logger),
		lrumap.WithEvictCallback(func(key, value string) {
			fmt.Printf("evicted %s=%s\n", key, value)
		}),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cache.Put("a", "alpha")
	cache.Put("b", "bravo")
	cache.Put("c", "charlie")
	cache.Get("a")
	cache.Put("d", "delta")

	fmt.Println(cache)
	fmt.Printf("%+v\n", cache.Stats())
}
