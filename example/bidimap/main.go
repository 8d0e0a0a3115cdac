package main

import (
	"fmt"

	"github.com/odysseythink/mcontainers/containers/maps/hashbidimap"
)

func main() {
	ports := hashbidimap.New[string, int]()
	ports.Put("http", 80)
	ports.Put("https", 443)
	ports.Put("ssh", 22)

	if name, ok := ports.GetKey(443); ok {
		fmt.Println("443 is", name)
	}

	// "web" takes 80 away from "http"
	ports.Put("web", 80)
	_, ok := ports.Get("http")
	fmt.Println("http still mapped:", ok)

	it := ports.EntrySet().Iterator()
	for it.Next() {
		if it.Key() == "ssh" {
			if _, err := it.Entry().SetValue(2222); err != nil {
				fmt.Println("set value:", err)
			}
		}
	}
	if err := it.Err(); err != nil {
		fmt.Println("iterate:", err)
	}

	fmt.Println(ports)
	fmt.Println(ports.Inverse())
}
