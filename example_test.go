package araignee_test

import (
	"fmt"
	"log"

	"github.com/aretw0/araignee"
	"github.com/aretw0/araignee/pkg/dsl"
	"github.com/aretw0/araignee/pkg/loader"
)

// ExampleNew demonstrates how to tick a tree built with the DSL.
func ExampleNew() {
	b := dsl.New()
	root := b.ID("retry").Limiter(3, b.ID("flaky").TemporaryFailed(2))

	node, err := b.Build(root)
	if err != nil {
		log.Fatal(err)
	}

	tree, err := araignee.New(node, araignee.WithName("example"))
	if err != nil {
		log.Fatal(err)
	}
	if err := tree.Start(); err != nil {
		log.Fatal(err)
	}

	for i := 0; i < 3; i++ {
		resp, err := tree.Tick(nil, nil)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(tree.Ticks(), resp)
	}
	// Output:
	// 1 failed
	// 2 failed
	// 3 succeeded
}

// ExampleNew_definition demonstrates how to tick a tree read from a YAML definition.
func ExampleNew_definition() {
	def, err := loader.New().Parse([]byte(`
name: guard
root:
  kind: guard
  id: healthy
  interrogator: { kind: condition, expression: "entity.hp > 20" }
  child: { kind: succeeded }
`), loader.FormatYAML)
	if err != nil {
		log.Fatal(err)
	}

	tree, err := araignee.New(def.Root, araignee.WithName(def.Name))
	if err != nil {
		log.Fatal(err)
	}
	if err := tree.Start(); err != nil {
		log.Fatal(err)
	}

	for _, hp := range []int{30, 10} {
		resp, _ := tree.Tick(map[string]any{"hp": hp}, nil)
		fmt.Printf("hp=%d %s\n", hp, resp)
	}
	// Output:
	// hp=30 succeeded
	// hp=10 failed
}
