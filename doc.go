// Package deckgen builds slide decks and reports from generated content.
//
// # Quick Start
//
// Decode a deck description, assemble it, and write the presentation:
//
//	deck, err := deckgen.DecodeDeck(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	asm, err := deckgen.NewAssembler()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	doc, err := asm.Assemble(ctx, deck)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("deck.pptx", doc, 0644)
//
// A deck description lists typed slides:
//
//	title: Jane Doe
//	template: professional_clean
//	slides:
//	  - type: title
//	    subtitle: Platform Engineer
//	  - type: skills
//	    bullets: [Go, Kubernetes, Postgres, Terraform]
//	  - type: experience
//	    items:
//	      - role: Staff Engineer
//	        company: Acme
//	        dates: 2019-2024
//	        bullets: [Led the storage team]
//
// # Pipeline
//
//  1. Content generation: a Provider returns raw text, which Normalize turns
//     into canonical markup (h1-h4, p, ul, ol, li). Provider failures fall
//     back to mock content.
//  2. Template resolution: a StyleTemplate is merged with the bundled
//     template of the same name, then with hard defaults.
//  3. Slide rendering: each slide kind maps to a layout strategy that may
//     produce several pages.
//  4. Serialization: pages are written as a PresentationML package.
//
// # Templates
//
// Bundled templates can be listed and overridden field by field:
//
//	res := deckgen.NewTemplateResolver(nil)
//	infos, _ := res.List()
//	tmpl, err := res.Resolve(&deckgen.StyleTemplate{
//	    Name:        "professional_clean",
//	    AccentColor: "#C0392B",
//	})
//
// Custom template directories are loaded with NewAssetLoader:
//
//	loader, err := deckgen.NewAssetLoader("/path/to/assets")
//	asm, err := deckgen.NewAssembler(deckgen.WithAssetLoader(loader))
//
// Asset directory structure:
//
//	assets/
//	├── styles/
//	│   └── report.css
//	└── templates/
//	    └── custom.yaml
//
// # Content Generation
//
//	gen := deckgen.NewGenerator(deckgen.WithProvider(provider))
//	content, err := gen.Generate(ctx, deckgen.Request{
//	    ProjectID: "p1",
//	    SectionID: "s1",
//	    Context:   "Quarterly results",
//	    Kind:      deckgen.DocumentSlide,
//	})
//
// # Reports
//
// ReportExporter prints sections as a themed PDF with headless Chrome. For
// batch exports use ExporterPool, which lazily creates one browser per slot:
//
//	pool := deckgen.NewExporterPool(deckgen.ResolvePoolSize(0))
//	defer pool.Close()
//
//	exp, err := pool.Acquire()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer pool.Release(exp)
//	result, err := exp.Export(ctx, deckgen.ReportInput{Title: "Report", Sections: sections})
//
// # Error Handling
//
// Errors wrap sentinels and can be checked with errors.Is:
//
//	doc, err := asm.Assemble(ctx, deck)
//	if errors.Is(err, deckgen.ErrInvalidDeck) {
//	    var verr *deckgen.ValidationError
//	    errors.As(err, &verr)
//	    // verr.SlideIndices() lists the offending slides
//	}
//	if errors.Is(err, deckgen.ErrAssembly) {
//	    // a slide could not be laid out
//	}
package deckgen
