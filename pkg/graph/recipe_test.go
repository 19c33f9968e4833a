package graph

import "testing"

const sampleRecipe = `
shapes:
  - name: base
    kind: box
    dims: {x: 100, y: 60, z: 10}
  - name: post
    kind: cylinder
    height: 80
    radius: 10
    at: {x: 50, y: 30, z: 10}
  - name: body
    kind: union
    of: [base, post]
`

func TestParseRecipe(t *testing.T) {
	g, err := ParseRecipe([]byte(sampleRecipe))
	if err != nil {
		t.Fatalf("ParseRecipe: %v", err)
	}

	// base, post, body, plus one transform wrapper for post.
	if g.NodeCount() != 4 {
		t.Fatalf("NodeCount() = %d, want 4", g.NodeCount())
	}

	body := g.Lookup("body")
	if body == nil || body.Kind != NodeBoolean {
		t.Fatalf("body node = %+v, want a boolean node", body)
	}
	if len(body.Children) != 2 {
		t.Fatalf("body has %d children, want 2", len(body.Children))
	}

	// post is placed: its reference must resolve to the transform wrapper.
	wrapper := g.Get(body.Children[1])
	if wrapper == nil || wrapper.Kind != NodeTransform {
		t.Fatalf("second union operand = %+v, want the transform wrapper", wrapper)
	}
	td := wrapper.Data.(TransformData)
	if td.Translation == nil || td.Translation.X != 50 {
		t.Fatalf("wrapper translation = %+v", td.Translation)
	}

	// Only body is unreferenced, so it is the single root.
	if len(g.Roots) != 1 {
		t.Fatalf("Roots = %v, want exactly one", g.Roots)
	}
	if g.Get(g.Roots[0]).Name != "body" {
		t.Fatalf("root = %s, want body", g.Get(g.Roots[0]).Name)
	}
}

func TestParseRecipeErrors(t *testing.T) {
	cases := []struct {
		name   string
		recipe string
	}{
		{"unknown kind", "shapes:\n  - name: a\n    kind: sphere\n"},
		{"missing name", "shapes:\n  - kind: box\n    dims: {x: 1, y: 1, z: 1}\n"},
		{"duplicate name", "shapes:\n  - name: a\n    kind: box\n    dims: {x: 1, y: 1, z: 1}\n  - name: a\n    kind: box\n    dims: {x: 1, y: 1, z: 1}\n"},
		{"box without dims", "shapes:\n  - name: a\n    kind: box\n"},
		{"unknown reference", "shapes:\n  - name: u\n    kind: union\n    of: [x, y]\n"},
		{"not yaml", "::::"},
	}
	for _, tc := range cases {
		if _, err := ParseRecipe([]byte(tc.recipe)); err == nil {
			t.Errorf("%s: ParseRecipe = nil error, want failure", tc.name)
		}
	}
}

func TestParseRecipeValidatable(t *testing.T) {
	// A parseable recipe with bad geometry parses fine and is caught by
	// Validate, not by the parser.
	g, err := ParseRecipe([]byte("shapes:\n  - name: a\n    kind: cylinder\n    height: 0\n    radius: 5\n"))
	if err != nil {
		t.Fatalf("ParseRecipe: %v", err)
	}
	if errs := Validate(g); len(errs) == 0 {
		t.Fatal("Validate passed a zero-height cylinder")
	}
}
