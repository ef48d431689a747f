package main

import (
	"os"

	"github.com/ED-LetsCode/Foodtable-Backend/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
