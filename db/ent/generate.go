package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target:  "gen/ent",
			Package: "github.com/dentistnoor/DentistFriend-V2-sub000/gen/ent",
			Schema:  "github.com/dentistnoor/DentistFriend-V2-sub000/db/ent/schema",
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}
