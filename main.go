package main

import "github.com/ramasheshasai/Calorie-Builder/cmd/calorie"

func main() {
	calorie.Execute()
}
