package deckgen_test

import (
	"context"
	"fmt"
	"log"

	"github.com/alnah/go-deckgen"
)

func ExampleNormalize() {
	content := deckgen.Normalize(`{"title":"Intro","bullets":["Why","How"]}`, deckgen.DocumentSlide, "")
	fmt.Println(content.Markup)
	fmt.Println(content.Stage)
	// Output:
	// <h2>Intro</h2><ul><li>Why</li><li>How</li></ul>
	// structured
}

func ExampleResolveTemplate() {
	tmpl, err := deckgen.ResolveTemplate(&deckgen.StyleTemplate{Name: "my_brand", AccentColor: "e4572e"})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(tmpl.AccentColor, tmpl.BackgroundColor, tmpl.BackgroundType)
	// Output:
	// #E4572E #FFFFFF solid
}

func ExampleAssembler_Assemble() {
	deck, err := deckgen.DecodeDeck([]byte(`
title: Demo
slides:
  - type: title
    subtitle: A short deck
  - type: skills
    bullets: [Go, SQL, Docker]
`))
	if err != nil {
		log.Fatal(err)
	}

	asm, err := deckgen.NewAssembler()
	if err != nil {
		log.Fatal(err)
	}
	doc, err := asm.Assemble(context.Background(), deck)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(doc[:2]))
	// Output: PK
}
